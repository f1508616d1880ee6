package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one unit of work, such as the reduction of one input
// term, across log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

type NewSpan func(ctx context.Context) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context) (context.Context, Span) {
		var args []any
		if v := ctx.Value(SpanKey); v != nil {
			args = append(args, "parent", v.(Span))
		}
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.DebugContext(ctx, "new span", args...)
		return ctx, span
	}
}

func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
