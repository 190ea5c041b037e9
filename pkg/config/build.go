package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/screen"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// defaultAnchorColor is used for anchors without a color.
const defaultAnchorColor = "75"

// AnchorStyle returns the box style for an anchor.
func AnchorStyle(a Anchor) (lipgloss.Style, error) {
	color := a.Color
	if color == "" {
		color = defaultAnchorColor
	}
	border := a.Border
	if border == "" {
		border = "normal"
	}
	// anchors reuse the tooltip property table so scenes validate the same way
	return screen.PlainTheme().StyleFor(tooltip.Options{
		Width: a.Width,
		Styles: map[string]string{
			"border":            border,
			"border-foreground": color,
			"foreground":        color,
			"padding":           "0 1",
		},
	})
}

// Build creates a canvas holding every anchor and tooltip in the scene.
func (s *Scene) Build(opts ...screen.Option) (*screen.Canvas, error) {
	c := screen.NewCanvas(s.Canvas.Width, s.Canvas.Height, opts...)

	for _, a := range s.Anchors {
		style, err := AnchorStyle(a)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "anchor %q", a.ID)
		}
		label := a.Label
		if label == "" {
			label = a.ID
		}
		if err := c.AddBox(screen.NewBox(a.ID, label, a.X, a.Y).SetStyle(style)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "anchor %q", a.ID)
		}
	}

	for i, t := range s.Tooltips {
		var target *screen.Box
		if t.Target != "" {
			b, ok := c.Box(t.Target)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "tooltip %d: unknown target %q", i+1, t.Target)
			}
			target = b
		}
		opts := t.options(nil)
		if target != nil {
			opts.Target = target
		}
		if _, err := c.AddTooltip(opts); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "tooltip %d", i+1)
		}
	}
	return c, nil
}
