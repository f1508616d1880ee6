package tromp

import "fmt"

type Point struct {
	X, Y float64
}

// Box is the rectangle a sub-diagram occupies. (X, Y) is the top-left
// corner; the diagram's output line leaves the box at (X, Bottom()).
type Box struct {
	X, Y, W, H float64
}

func (b Box) Right() float64 {
	return b.X + b.W
}

func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	x, y := min(b.X, o.X), min(b.Y, o.Y)
	return Box{
		X: x,
		Y: y,
		W: max(b.Right(), o.Right()) - x,
		H: max(b.Bottom(), o.Bottom()) - y,
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", b.X, b.Y, b.W, b.H)
}

// Segment is an axis-aligned line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

func (s Segment) Horizontal() bool {
	return s.Y1 == s.Y2
}

func (s Segment) Vertical() bool {
	return s.X1 == s.X2
}

// Bounds returns the zero-width or zero-height box covered by s.
func (s Segment) Bounds() Box {
	x, y := min(s.X1, s.X2), min(s.Y1, s.Y2)
	return Box{
		X: x,
		Y: y,
		W: max(s.X1, s.X2) - x,
		H: max(s.Y1, s.Y2) - y,
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.X1, s.Y1, s.X2, s.Y2)
}
