package screen

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// Box is a positioned block of styled text on a Canvas.
type Box struct {
	id      string
	x, y    int
	z       int
	content string
	style   lipgloss.Style
	hidden  bool
}

// NewBox creates a visible box at (x, y).
func NewBox(id, content string, x, y int) *Box {
	return &Box{id: id, content: content, x: x, y: y, style: lipgloss.NewStyle()}
}

// ElementID implements tooltip.Element. It returns "" for a nil box.
func (b *Box) ElementID() string {
	if b == nil {
		return ""
	}
	return b.id
}

// View renders the box content with its style.
func (b *Box) View() string {
	return b.style.Render(b.content)
}

// Size returns the rendered width and height in cells.
func (b *Box) Size() (w, h int) {
	v := b.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}

// Rect returns the box's current bounding box.
func (b *Box) Rect() tooltip.Rect {
	w, h := b.Size()
	return tooltip.Rect{X: float64(b.x), Y: float64(b.y), Width: float64(w), Height: float64(h)}
}

// Position returns the top-left cell.
func (b *Box) Position() (x, y int) { return b.x, b.y }

// MoveTo sets the top-left cell.
func (b *Box) MoveTo(x, y int) *Box {
	b.x, b.y = x, y
	return b
}

// MoveBy shifts the box by (dx, dy) cells.
func (b *Box) MoveBy(dx, dy int) *Box {
	b.x += dx
	b.y += dy
	return b
}

// SetStyle replaces the box style.
func (b *Box) SetStyle(s lipgloss.Style) *Box {
	b.style = s
	return b
}

// Style returns the box style.
func (b *Box) Style() lipgloss.Style { return b.style }

// SetContent replaces the box text.
func (b *Box) SetContent(s string) *Box {
	b.content = s
	return b
}

// Content returns the unstyled box text.
func (b *Box) Content() string { return b.content }

// SetZ sets the stacking order. Higher values draw later.
func (b *Box) SetZ(z int) *Box {
	b.z = z
	return b
}

// Z returns the stacking order.
func (b *Box) Z() int { return b.z }

// Hidden reports whether the box is skipped when drawing.
func (b *Box) Hidden() bool { return b.hidden }

// SetHidden shows or hides the box.
func (b *Box) SetHidden(h bool) *Box {
	b.hidden = h
	return b
}
