// Package snapshot draws a computed tooltip placement to a PNG image.
//
// The image shows the target rectangle, the tooltip container at its
// computed position and a guide between the two. It is a debugging aid for
// the placement math, not a renderer for real tooltip content.
//
//	pos, _ := tooltip.ComputePosition(x, y, &target, container, tooltip.Bottom)
//	err := snapshot.RenderPNG(f, snapshot.Scene{
//	    Container: container,
//	    Target:    &target,
//	    Position:  pos,
//	}, snapshot.WithScale(4))
package snapshot

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// Defaults for RenderPNG.
const (
	DefaultScale   = 4.0
	DefaultPadding = 16.0

	// maxSide caps either image dimension in pixels.
	maxSide = 4096
)

var (
	colorBackground = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorTarget     = color.RGBA{R: 0x4c, G: 0x8b, B: 0xf5, A: 0xff}
	colorContainer  = color.RGBA{R: 0xf5, G: 0xa6, B: 0x23, A: 0xff}
	colorGuide      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorOrigin     = color.RGBA{R: 0xd0, G: 0x3b, B: 0x3b, A: 0xff}
)

// Scene is one placement to draw.
type Scene struct {
	// Container is the tooltip container; only its size is used.
	Container tooltip.Rect

	// Target is optional. Without it only the container is drawn.
	Target *tooltip.Rect

	// Position is the computed top-left corner of the container.
	Position tooltip.Point

	// Label is drawn in the top-left corner of the image, in pixel space.
	Label string
}

type config struct {
	scale   float64
	padding float64
}

// Option configures RenderPNG.
type Option func(*config)

// WithScale sets how many pixels one layout unit covers. Non-positive
// values are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithPadding sets the margin around the drawing in pixels. Negative values
// are ignored.
func WithPadding(p float64) Option {
	return func(c *config) {
		if p >= 0 {
			c.padding = p
		}
	}
}

// placed returns the container rect at its computed position.
func (s Scene) placed() tooltip.Rect {
	return tooltip.Rect{X: s.Position.X, Y: s.Position.Y, Width: s.Container.Width, Height: s.Container.Height}
}

// bounds returns the smallest rect covering everything that is drawn.
func (s Scene) bounds() tooltip.Rect {
	r := s.placed()
	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.Width, r.Y+r.Height
	if t := s.Target; t != nil {
		minX, minY = math.Min(minX, t.X), math.Min(minY, t.Y)
		maxX, maxY = math.Max(maxX, t.X+t.Width), math.Max(maxY, t.Y+t.Height)
	}
	return tooltip.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (s Scene) validate() error {
	if err := s.Container.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "container")
	}
	if s.Target != nil {
		if err := s.Target.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "target")
		}
	}
	if err := errors.ValidateCoordinate("x", s.Position.X); err != nil {
		return err
	}
	return errors.ValidateCoordinate("y", s.Position.Y)
}

// Size returns the pixel dimensions RenderPNG produces for s. Scenes wider
// or taller than 4096 pixels at the chosen scale are INVALID_INPUT.
func Size(s Scene, opts ...Option) (int, int, error) {
	return newConfig(opts).size(s)
}

func (cfg config) size(s Scene) (int, int, error) {
	b := s.bounds()
	w := math.Ceil(b.Width*cfg.scale + 2*cfg.padding)
	h := math.Ceil(b.Height*cfg.scale + 2*cfg.padding)
	// compare as floats; huge coordinates overflow int
	if !(w <= maxSide && h <= maxSide) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"snapshot would be %gx%g pixels (max %d per side); lower the scale", w, h, maxSide)
	}
	return max(1, int(w)), max(1, int(h)), nil
}

func newConfig(opts []Option) config {
	cfg := config{scale: DefaultScale, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RenderPNG draws s and writes it to w as PNG.
func RenderPNG(w io.Writer, s Scene, opts ...Option) error {
	if err := s.validate(); err != nil {
		return err
	}
	cfg := newConfig(opts)
	width, height, err := cfg.size(s)
	if err != nil {
		return err
	}

	b := s.bounds()
	origin := tooltip.Point{X: b.X, Y: b.Y}
	dc := gg.NewContext(width, height)
	dc.SetColor(colorBackground)
	dc.Clear()

	// layout units to pixels
	dc.Translate(cfg.padding, cfg.padding)
	dc.Scale(cfg.scale, cfg.scale)
	line := 1.5 / cfg.scale

	// shapes are drawn relative to the bounds so the transform stays small
	p := shift(s.placed(), origin)
	if s.Target != nil {
		t := shift(*s.Target, origin)
		dc.SetColor(withAlpha(colorTarget, 0x55))
		dc.DrawRectangle(t.X, t.Y, t.Width, t.Height)
		dc.FillPreserve()
		dc.SetColor(colorTarget)
		dc.SetLineWidth(line)
		dc.Stroke()

		tc, pc := t.Center(), p.Center()
		dc.SetColor(colorGuide)
		dc.SetDash(4/cfg.scale, 3/cfg.scale)
		dc.DrawLine(tc.X, tc.Y, pc.X, pc.Y)
		dc.Stroke()
		dc.SetDash()
	}

	dc.SetColor(withAlpha(colorContainer, 0x55))
	dc.DrawRectangle(p.X, p.Y, p.Width, p.Height)
	dc.FillPreserve()
	dc.SetColor(colorContainer)
	dc.SetLineWidth(line)
	dc.Stroke()

	// the computed point is the container's top-left corner
	dc.SetColor(colorOrigin)
	dc.DrawCircle(p.X, p.Y, 2.5/cfg.scale)
	dc.Fill()

	if s.Label != "" {
		dc.Identity()
		dc.SetColor(colorGuide)
		// gg falls back to a 7x13 bitmap face when no font is loaded
		dc.DrawStringAnchored(s.Label, 4, 2, 0, 1)
	}

	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

func shift(r tooltip.Rect, o tooltip.Point) tooltip.Rect {
	r.X -= o.X
	r.Y -= o.Y
	return r
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
