package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/tromp/internal/logs"
	"github.com/vic/tromp/pkg/lambda"
	"github.com/vic/tromp/pkg/render"
	"github.com/vic/tromp/pkg/tromp"
)

// Frames writes one PNG per reduction step when -frames is set.
type Frames struct {
	dir      string
	cfg      tromp.Config
	opts     render.Options
	captions Captions
	logger   logs.Logger
}

func (Module) Frames(
	flags Flags,
	cfg tromp.Config,
	opts render.Options,
	captions Captions,
	logger logs.Logger,
) Frames {
	return Frames{
		dir:      flags.Frames,
		cfg:      cfg,
		opts:     opts,
		captions: captions,
		logger:   logger,
	}
}

// Writer returns the frame callback for one term. After the first
// failure it stops writing frames for that term.
func (f Frames) Writer(ctx context.Context) func(step int, t lambda.Term) {
	if f.dir == "" {
		return func(int, lambda.Term) {}
	}
	failed := false
	return func(step int, t lambda.Term) {
		if failed {
			return
		}
		if err := f.write(step, t); err != nil {
			failed = true
			var unbound *tromp.UnboundVariableError
			if errors.As(err, &unbound) {
				f.logger.WarnContext(ctx, "cannot draw open term",
					"variable", unbound.Name,
				)
				return
			}
			f.logger.ErrorContext(ctx, "write frame", "step", step, "error", err)
		}
	}
}

func (f Frames) write(step int, t lambda.Term) error {
	// reduction can duplicate binder names; the diagram needs them unique
	_, segments, err := tromp.LayoutWith(f.cfg, lambda.Uniqueify(t), tromp.Point{})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}
	opts := f.opts
	if f.captions {
		opts.Caption = fmt.Sprintf("%d: %s", step, lambda.Pretty(t))
	}
	path := filepath.Join(f.dir, fmt.Sprintf("step-%04d.png", step))
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.RenderPNG(out, segments, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
