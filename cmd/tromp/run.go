package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vic/tromp/internal/logs"
	"github.com/vic/tromp/pkg/lambda"
)

type Run func(ctx context.Context) error

func (Module) Run(
	flags Flags,
	eval Eval,
	repl REPL,
) Run {
	return func(ctx context.Context) error {
		switch {
		case flags.Expr != "":
			return eval(ctx, flags.Expr)

		case flags.File != "":
			input, err := os.ReadFile(flags.File)
			if err != nil {
				return fmt.Errorf("read %s: %w", flags.File, err)
			}
			return eval(ctx, string(input))

		case term.IsTerminal(int(os.Stdin.Fd())):
			return repl(ctx)

		default:
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return eval(ctx, string(input))
		}
	}
}

// Eval parses one term and prints its reduction sequence to stdout.
type Eval func(ctx context.Context, src string) error

func (Module) Eval(
	logger logs.Logger,
	newSpan logs.NewSpan,
	limit StepLimit,
	interval Interval,
	frames Frames,
) Eval {
	return func(ctx context.Context, src string) error {
		ctx, _ = newSpan(ctx)

		t, err := lambda.Parse(src)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "parsed", "term", t.String())

		write := frames.Writer(ctx)
		stepper := lambda.NewStepper(t)
		start := time.Now()

		for stepper.Next() {
			current := stepper.Term()
			fmt.Printf("%4d  %s\n", stepper.Steps(), lambda.Pretty(current))
			logger.DebugContext(ctx, "step",
				"step", stepper.Steps(),
				"size", lambda.Size(current),
			)
			write(stepper.Steps(), current)

			if stepper.Steps() >= int(limit) {
				if lambda.IsRedex(current) {
					logger.InfoContext(ctx, "step limit reached",
						"limit", int(limit),
					)
					return nil
				}
			}

			if interval > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(interval)):
				}
			}
		}

		stats := stepper.Stats()
		logger.InfoContext(ctx, "normal form",
			"steps", stats.Steps,
			"max_size", stats.MaxSize,
			"elapsed", time.Since(start),
		)
		return nil
	}
}

func isParseError(err error) bool {
	return errors.Is(err, lambda.ErrParse)
}
