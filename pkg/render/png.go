// Package render paints Tromp diagram segments to PNG.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/samber/lo"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/vic/tromp/pkg/tromp"
)

// Options configures PNG rendering.
type Options struct {
	Margin   int
	Stroke   int
	Scale    int // supersampling factor
	FontSize int
	Caption  string
}

func DefaultOptions() Options {
	return Options{
		Margin:   20,
		Stroke:   2,
		Scale:    4,
		FontSize: 14,
	}
}

var (
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorInk   = color.RGBA{0, 0, 0, 255}
	colorLabel = color.RGBA{102, 102, 102, 255}
)

// Bounds returns the box covered by segments, including bars that
// reach past their sub-diagram's box.
func Bounds(segments []tromp.Segment) tromp.Box {
	if len(segments) == 0 {
		return tromp.Box{}
	}
	return lo.Reduce(segments[1:], func(b tromp.Box, s tromp.Segment, _ int) tromp.Box {
		return b.Union(s.Bounds())
	}, segments[0].Bounds())
}

// RenderPNG paints segments and writes a PNG to w.
// Rendering happens at opts.Scale times the final size and is then
// downsampled.
func RenderPNG(w io.Writer, segments []tromp.Segment, opts Options) error {
	return png.Encode(w, Render(segments, opts))
}

func Render(segments []tromp.Segment, opts Options) *image.RGBA {
	opts = withDefaults(opts)
	bounds := Bounds(segments)

	captionHeight := 0
	if opts.Caption != "" {
		captionHeight = opts.FontSize * 2
	}
	width := int(math.Ceil(bounds.W)) + 2*opts.Margin + opts.Stroke
	height := int(math.Ceil(bounds.H)) + 2*opts.Margin + opts.Stroke + captionHeight

	scale := opts.Scale
	large := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.Draw(large, large.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	ink := image.NewUniform(colorInk)
	stroke := opts.Stroke * scale
	toPixel := func(v, origin float64) int {
		return int(math.Round((v-origin+float64(opts.Margin))*float64(scale))) + stroke/2
	}
	for _, s := range segments {
		x1, y1 := toPixel(s.X1, bounds.X), toPixel(s.Y1, bounds.Y)
		x2, y2 := toPixel(s.X2, bounds.X), toPixel(s.Y2, bounds.Y)
		rect := image.Rect(
			min(x1, x2)-stroke/2,
			min(y1, y2)-stroke/2,
			max(x1, x2)+stroke-stroke/2,
			max(y1, y2)+stroke-stroke/2,
		)
		draw.Draw(large, rect, ink, image.Point{}, draw.Src)
	}

	if opts.Caption != "" {
		drawCaption(large, opts.Caption, opts.FontSize*scale, opts.Margin*scale, (height-opts.Margin/2)*scale)
	}

	final := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final
}

func drawCaption(img *image.RGBA, text string, size, x, baseline int) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}
	defer face.Close()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Stroke <= 0 {
		opts.Stroke = def.Stroke
	}
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	return opts
}
