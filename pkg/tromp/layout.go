// Package tromp lays out lambda terms as Tromp diagrams.
//
// Abstractions are horizontal bars, variables are vertical lines hanging
// from the bar of their binder, and applications are horizontal lines
// joining the outputs of the function and the argument. Every diagram has
// one output line, leaving its box at (Box.X, Box.Bottom()).
package tromp

import (
	"errors"
	"fmt"

	"github.com/vic/tromp/pkg/lambda"
)

var (
	ErrUnboundVariable = errors.New("free variable not found")
	ErrInvalidConfig   = errors.New("invalid layout config")
)

// UnboundVariableError reports a variable with no enclosing binder.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("free variable %s not found", e.Name)
}

func (e *UnboundVariableError) Is(target error) bool {
	return target == ErrUnboundVariable
}

// Config holds the spacing of a diagram. Gaps only change the picture,
// never its topology.
type Config struct {
	HGap float64
	VGap float64
}

func DefaultConfig() Config {
	return Config{
		HGap: 50,
		VGap: 50,
	}
}

func (c Config) Validate() error {
	if c.HGap <= 0 || c.VGap <= 0 {
		return fmt.Errorf("%w: gaps must be positive, got %gx%g", ErrInvalidConfig, c.HGap, c.VGap)
	}
	return nil
}

// Layout lays out t with the default config. t must have unique binder
// names (see lambda.Uniqueify) and no free variables.
func Layout(t lambda.Term, origin Point) (Box, []Segment, error) {
	return LayoutWith(DefaultConfig(), t, origin)
}

// LayoutTerm uniqueifies t and lays it out at (0, 0).
func LayoutTerm(t lambda.Term) (Box, []Segment, error) {
	return Layout(lambda.Uniqueify(t), Point{})
}

func LayoutWith(cfg Config, t lambda.Term, origin Point) (Box, []Segment, error) {
	if err := cfg.Validate(); err != nil {
		return Box{}, nil, err
	}
	l := &layouter{
		cfg:     cfg,
		heights: make(map[string]float64),
	}
	box, err := l.layout(t, origin)
	if err != nil {
		return Box{}, nil, err
	}
	return box, l.segments, nil
}

// layouter carries the state of one Layout call.
type layouter struct {
	cfg Config
	// binder name -> y of its bar
	heights  map[string]float64
	segments []Segment
}

func (l *layouter) line(x1, y1, x2, y2 float64) {
	l.segments = append(l.segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (l *layouter) layout(t lambda.Term, origin Point) (Box, error) {
	switch t := t.(type) {

	case lambda.Abs:
		old, shadowing := l.heights[t.Arg]
		l.heights[t.Arg] = origin.Y

		body, err := l.layout(t.Body, Point{X: origin.X, Y: origin.Y + l.cfg.VGap})
		if err != nil {
			return Box{}, err
		}

		if shadowing {
			l.heights[t.Arg] = old
		} else {
			delete(l.heights, t.Arg)
		}

		l.line(origin.X, origin.Y, body.Right()+l.cfg.HGap/2, origin.Y)
		return Box{
			X: body.X,
			Y: origin.Y,
			W: body.W,
			H: body.Bottom() - origin.Y,
		}, nil

	case lambda.App:
		fun, err := l.layout(t.Fun, origin)
		if err != nil {
			return Box{}, err
		}
		arg, err := l.layout(t.Arg, Point{X: fun.Right() + l.cfg.HGap, Y: origin.Y})
		if err != nil {
			return Box{}, err
		}

		bottom := max(fun.Bottom(), arg.Bottom())
		l.line(fun.X, bottom, arg.X, bottom)
		// extend the shorter side down to the connector
		if fun.Bottom() < bottom {
			l.line(fun.X, fun.Bottom(), fun.X, bottom)
		}
		if arg.Bottom() < bottom {
			l.line(arg.X, arg.Bottom(), arg.X, bottom)
		}
		l.line(fun.X, bottom, fun.X, bottom+l.cfg.VGap)

		return Box{
			X: fun.X,
			Y: origin.Y,
			W: arg.Right() - fun.X,
			H: bottom + l.cfg.VGap - origin.Y,
		}, nil

	case lambda.Var:
		height, ok := l.heights[t.Name]
		if !ok {
			return Box{}, &UnboundVariableError{Name: t.Name}
		}
		x := origin.X + l.cfg.HGap/2
		l.line(x, height, x, origin.Y)
		l.line(x, origin.Y, x, origin.Y+l.cfg.VGap)
		return Box{
			X: x,
			Y: origin.Y,
			H: l.cfg.VGap,
		}, nil

	default:
		panic(fmt.Errorf("%w: %T", lambda.ErrMalformedTerm, t))
	}
}
