package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vic/tromp/pkg/lambda"
	"github.com/vic/tromp/pkg/tromp"
)

func identitySegments(t *testing.T) []tromp.Segment {
	t.Helper()
	_, segments, err := tromp.LayoutTerm(lambda.I())
	if err != nil {
		t.Fatal(err)
	}
	return segments
}

func TestBounds(t *testing.T) {
	if got := Bounds(nil); got != (tromp.Box{}) {
		t.Fatalf("got %v", got)
	}
	// the bar reaches past the zero-width box of the identity
	if got, want := Bounds(identitySegments(t)), (tromp.Box{X: 0, Y: 0, W: 50, H: 100}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRenderIdentity(t *testing.T) {
	img := Render(identitySegments(t), DefaultOptions())
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 92 || h != 142 {
		t.Fatalf("size %dx%d", w, h)
	}

	dark := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r>>8 < 100 && g>>8 < 100 && b>>8 < 100
	}
	// the variable line at x=25 sits at 20+25 after the margin
	if !dark(45, 90) && !dark(46, 90) {
		t.Fatalf("no ink at the variable line")
	}
	if r, g, b, _ := img.At(5, 5).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("margin is not white: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestRenderCaption(t *testing.T) {
	opts := DefaultOptions()
	opts.Caption = "λx. x"
	img := Render(identitySegments(t), opts)
	if h := img.Bounds().Dy(); h != 142+2*opts.FontSize {
		t.Fatalf("height %d", h)
	}
}

func TestRenderPNG(t *testing.T) {
	_, segments, err := tromp.LayoutTerm(lambda.S())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := RenderPNG(&buf, segments, Options{}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	bounds := Bounds(segments)
	// zero options mean no margin and the default stroke
	if w := img.Bounds().Dx(); w != int(bounds.W)+DefaultOptions().Stroke {
		t.Fatalf("width %d for %v", w, bounds)
	}
}
