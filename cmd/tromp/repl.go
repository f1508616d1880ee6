package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/vic/tromp/internal/logs"
)

// REPL reads terms from the terminal until EOF.
type REPL func(ctx context.Context) error

func (Module) REPL(
	eval Eval,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		var historyPath string
		if dir, err := os.UserConfigDir(); err != nil {
			logger.Warn("get history path error", "err", err)
		} else {
			historyPath = filepath.Join(dir, "tromp-history")
			if f, err := os.Open(historyPath); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}
		defer func() {
			if historyPath == "" {
				return
			}
			if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
				logger.Warn("create history dir error", "err", err)
				return
			}
			f, err := os.Create(historyPath)
			if err != nil {
				logger.Warn("create history file error", "err", err)
				return
			}
			line.WriteHistory(f)
			f.Close()
		}()

		for {
			input, err := line.Prompt("λ> ")
			if err != nil {
				switch err {
				case io.EOF, liner.ErrPromptAborted:
					return nil
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			line.AppendHistory(input)

			switch input {
			case ":quit", ":q":
				return nil
			}

			if err := eval(ctx, input); err != nil {
				if isParseError(err) {
					logger.Warn("parse", "error", err)
					continue
				}
				return err
			}
		}
	}
}
