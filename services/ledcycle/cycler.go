// Package ledcycle steps one pixel of an addressable strip through a
// colour palette at a fixed period.
package ledcycle

import (
	"image/color"
	"time"

	"pocket32-go/errcode"
)

// Strip is an addressable LED chain (ws2812.Device satisfies it).
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

var (
	Red  = color.RGBA{R: 0xFF, A: 0xFF}
	Blue = color.RGBA{B: 0xFF, A: 0xFF}
)

type Config struct {
	Pixels     int
	Target     int
	Period     time.Duration
	Brightness uint8
	Palette    []color.RGBA
}

// DefaultConfig drives pixel 0 of an 8-LED strip red/blue every 500 ms at
// brightness 50/255.
var DefaultConfig = Config{
	Pixels:     8,
	Target:     0,
	Period:     500 * time.Millisecond,
	Brightness: 50,
	Palette:    []color.RGBA{Red, Blue},
}

type Cycler struct {
	strip Strip
	cfg   Config

	px  []color.RGBA // logical colours
	out []color.RGBA // scaled frame sent to the strip

	step    int
	last    time.Time
	started bool
}

func New(strip Strip, cfg Config) (*Cycler, error) {
	if cfg.Pixels <= 0 || cfg.Target < 0 || cfg.Target >= cfg.Pixels || len(cfg.Palette) == 0 || cfg.Period <= 0 {
		return nil, errcode.InvalidParams
	}
	return &Cycler{
		strip: strip,
		cfg:   cfg,
		px:    make([]color.RGBA, cfg.Pixels),
		out:   make([]color.RGBA, cfg.Pixels),
	}, nil
}

// Clear blanks every pixel.
func (c *Cycler) Clear() error {
	for i := range c.px {
		c.px[i] = color.RGBA{}
	}
	return c.show()
}

// Step paints the next palette colour on the target pixel.
func (c *Cycler) Step() error {
	c.px[c.cfg.Target] = c.cfg.Palette[c.step]
	c.step = (c.step + 1) % len(c.cfg.Palette)
	return c.show()
}

// Tick steps when a full period has passed since the previous step. The
// first call always steps.
func (c *Cycler) Tick(now time.Time) (bool, error) {
	if c.started && now.Sub(c.last) < c.cfg.Period {
		return false, nil
	}
	c.started = true
	c.last = now
	return true, c.Step()
}

func (c *Cycler) show() error {
	b := c.cfg.Brightness
	for i, p := range c.px {
		c.out[i] = color.RGBA{R: scale8(p.R, b), G: scale8(p.G, b), B: scale8(p.B, b), A: p.A}
	}
	return c.strip.WriteColors(c.out)
}

// scale8 multiplies by (scale+1)/256 so full scale is lossless.
func scale8(v, scale uint8) uint8 {
	return uint8((uint16(v) * (1 + uint16(scale))) >> 8)
}
