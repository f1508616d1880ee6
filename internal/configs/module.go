package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/vic/tromp/internal/logs"
)

//go:embed schema.cue
var Schema string

type Module struct {
	dscope.Module
}

// Paths lists the config files to read, most specific first.
type Paths []string

func (Module) Paths() Paths {
	filenames := []string{
		"tromp.cue",
		".tromp.cue",
	}

	var dirs []string
	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	var paths Paths
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) Loader(
	paths Paths,
	logger logs.Logger,
) Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return NewLoader(paths, Schema)
}
