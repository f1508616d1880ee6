package main

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/vic/tromp/internal/configs"
	"github.com/vic/tromp/internal/logs"
	"github.com/vic/tromp/pkg/render"
	"github.com/vic/tromp/pkg/tromp"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

// StepLimit bounds the beta steps taken for one term.
type StepLimit int

// Interval is the pause between two steps, the frame pacing of an
// animation.
type Interval time.Duration

func (Module) StepLimit(
	flags Flags,
	loader configs.Loader,
) StepLimit {
	if flags.Limit > 0 {
		return StepLimit(flags.Limit)
	}
	return StepLimit(configs.First(loader, "reduce.limit", 1000))
}

func (Module) Interval(
	flags Flags,
	loader configs.Loader,
	logger logs.Logger,
) Interval {
	if flags.Interval > 0 {
		return Interval(flags.Interval)
	}
	str := configs.First(loader, "reduce.interval", "")
	if str == "" {
		return 0
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		logger.Warn("bad reduce.interval", "value", str, "error", err)
		return 0
	}
	return Interval(d)
}

func (Module) LayoutConfig(
	loader configs.Loader,
) tromp.Config {
	def := tromp.DefaultConfig()
	return tromp.Config{
		HGap: configs.First(loader, "layout.hgap", def.HGap),
		VGap: configs.First(loader, "layout.vgap", def.VGap),
	}
}

// Captions turns on the step caption under each frame.
type Captions bool

func (Module) Captions(
	loader configs.Loader,
) Captions {
	return Captions(configs.First(loader, "render.caption", true))
}

func (Module) RenderOptions(
	loader configs.Loader,
) render.Options {
	def := render.DefaultOptions()
	return render.Options{
		Margin:   configs.First(loader, "render.margin", def.Margin),
		Stroke:   configs.First(loader, "render.stroke", def.Stroke),
		Scale:    configs.First(loader, "render.scale", def.Scale),
		FontSize: def.FontSize,
	}
}
