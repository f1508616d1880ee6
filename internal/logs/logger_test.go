package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("reduce", "steps", 3)
		if !strings.Contains(buf.String(), "steps=3") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelInfo)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx)
		ctx2, span2 := newSpan(ctx1)
		logger.InfoContext(ctx2, "normal form")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines: %q", len(lines), buf.String())
		}
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := WrapSpan(context.Background(), context.Canceled)
	if err != context.Canceled {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err = WrapSpan(ctx, context.Canceled)
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
}
