package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/vic/tromp/internal/logs"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Flags holds the command line. Zero values mean "use the config file".
type Flags struct {
	Expr     string
	File     string
	Limit    int
	Interval time.Duration
	Frames   string
	Debug    bool
}

func parseFlags() Flags {
	var flags Flags
	flag.StringVar(&flags.Expr, "e", "", "reduce this term instead of reading input")
	flag.IntVar(&flags.Limit, "limit", 0, "maximum number of beta steps per term")
	flag.DurationVar(&flags.Interval, "interval", 0, "pause between steps")
	flag.StringVar(&flags.Frames, "frames", "", "write one PNG diagram per step into this directory")
	flag.BoolVar(&flags.Debug, "debug", false, "log every step")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "usage: tromp [flags] [file]\n\n")
		fmt.Fprint(os.Stderr, "tromp reduces lambda terms in normal order and draws them as Tromp diagrams.\n")
		fmt.Fprint(os.Stderr, "Without a file or -e it reads stdin, or starts a prompt on a terminal.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	flags.File = flag.Arg(0)
	return flags
}

func main() {
	flags := parseFlags()
	if flags.Debug {
		logs.SetLevel(slog.LevelDebug)
	}

	scope := dscope.New(
		new(Module),
	).Fork(
		func() Flags {
			return flags
		},
	)

	scope.Call(func(
		logger logs.Logger,
		run Run,
	) {
		if err := run(context.Background()); err != nil {
			logger.Error("tromp", "error", wrap(err))
			os.Exit(1)
		}
	})
}
