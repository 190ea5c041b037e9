package screen

import (
	"cmp"
	"context"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/ident"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// Canvas is a fixed-size terminal surface holding boxes and the tooltips
// attached to them. It implements tooltip.Host.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	boxes         []*Box
	byID          map[string]*Box
	tips          []*tooltip.Tooltip
	theme         Theme
	logger        *log.Logger
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger used for skipped layout passes.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTheme sets the stylesheet for tooltip containers.
func WithTheme(t Theme) Option {
	return func(c *Canvas) { c.theme = t }
}

// NewCanvas creates an empty canvas of width x height cells.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		width:  max(0, width),
		height: max(0, height),
		byID:   make(map[string]*Box),
		theme:  DefaultTheme(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Resize changes the canvas dimensions. Boxes keep their positions.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(0, width), max(0, height)
}

// AddBox attaches b. Ids must be valid and unique.
func (c *Canvas) AddBox(b *Box) error {
	if err := errors.ValidateElementID(b.ElementID()); err != nil {
		return err
	}
	if _, dup := c.byID[b.id]; dup {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate element id %q", b.id)
	}
	c.boxes = append(c.boxes, b)
	c.byID[b.id] = b
	return nil
}

// Box returns the attached box with the given id.
func (c *Canvas) Box(id string) (*Box, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Boxes returns the attached boxes in insertion order.
func (c *Canvas) Boxes() []*Box { return slices.Clone(c.boxes) }

// Remove detaches the box with the given id. Tooltips anchored to it are
// hidden and stay hidden until an element with that id is attached again.
// Removing a tooltip's container removes the tooltip.
func (c *Canvas) Remove(id string) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	for _, tip := range c.tips {
		if el := tip.Target(); el != nil && el.ElementID() == id {
			tip.Hide(c)
		}
	}
	delete(c.byID, id)
	c.boxes = slices.DeleteFunc(c.boxes, func(b *Box) bool { return b.id == id })
	c.tips = slices.DeleteFunc(c.tips, func(t *tooltip.Tooltip) bool { return t.ID() == id })
}

// AddTooltip creates a hidden container box for opts and attaches a
// tooltip that positions it. The container id is opts.ID, or generated.
func (c *Canvas) AddTooltip(opts tooltip.Options) (*tooltip.Tooltip, error) {
	if opts.ID == "" {
		opts.ID = ident.NewID("tip")
	}
	style, err := c.theme.StyleFor(opts)
	if err != nil {
		return nil, err
	}
	box := NewBox(opts.ID, opts.Content, 0, 0).SetStyle(style).SetZ(opts.ZIndex).SetHidden(true)

	tip, err := tooltip.New(box, opts)
	if err != nil {
		return nil, err
	}
	if err := c.AddBox(box); err != nil {
		return nil, err
	}
	c.tips = append(c.tips, tip)
	return tip, nil
}

// Tooltips returns the attached tooltips in insertion order.
func (c *Canvas) Tooltips() []*tooltip.Tooltip { return slices.Clone(c.tips) }

// Bounds implements tooltip.Geometry. Only attached boxes have bounds;
// hidden boxes are still measured.
func (c *Canvas) Bounds(el tooltip.Element) (tooltip.Rect, bool) {
	if el == nil {
		return tooltip.Rect{}, false
	}
	b, ok := c.byID[el.ElementID()]
	if !ok {
		return tooltip.Rect{}, false
	}
	return b.Rect(), true
}

// Place implements tooltip.Host. Coordinates are rounded to whole cells.
func (c *Canvas) Place(el tooltip.Element, p tooltip.Point) {
	if b, ok := c.byID[el.ElementID()]; ok {
		b.MoveTo(int(math.Round(p.X)), int(math.Round(p.Y)))
	}
}

// SetVisible implements tooltip.Host.
func (c *Canvas) SetVisible(el tooltip.Element, visible bool) {
	if b, ok := c.byID[el.ElementID()]; ok {
		b.SetHidden(!visible)
	}
}

// Layout runs one layout pass for every tooltip. Failures are local: a
// tooltip whose pass fails keeps its previous state, and one whose target
// is not a valid element is hidden.
func (c *Canvas) Layout(ctx context.Context) {
	for _, tip := range c.tips {
		box := c.byID[tip.ID()]
		if !tip.Renderable() {
			tip.Hide(c)
			c.logger.Debug("tooltip not rendered", "tooltip", tip.ID(), "reason", errors.ErrCodeInvalidTargetKind)
			continue
		}

		opts := tip.Options()
		style, err := c.theme.StyleFor(opts)
		if err != nil {
			c.logger.Warn("tooltip style rejected", "tooltip", tip.ID(), "err", err)
			continue
		}
		box.SetContent(opts.Content).SetStyle(style).SetZ(opts.ZIndex)

		p, err := tip.Layout(ctx, c)
		if err != nil {
			c.logger.Debug("layout skipped", "tooltip", tip.ID(), "code", errors.GetCode(err), "err", err)
			continue
		}
		c.logger.Debug("layout", "tooltip", tip.ID(), "placement", opts.Placement, "x", p.X, "y", p.Y)
	}
}

// Draw composes every visible box by ascending z-index. Boxes with equal
// z-index keep insertion order. Cells outside the canvas are clipped.
func (c *Canvas) Draw() string {
	ordered := slices.Clone(c.boxes)
	slices.SortStableFunc(ordered, func(a, b *Box) int { return cmp.Compare(a.z, b.z) })

	g := newGrid(c.width, c.height)
	for _, b := range ordered {
		if b.hidden {
			continue
		}
		g.draw(b.x, b.y, b.View())
	}
	return g.String()
}

// Render runs a layout pass and then draws the canvas.
func (c *Canvas) Render(ctx context.Context) string {
	c.Layout(ctx)
	return c.Draw()
}
