package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// grid is a fixed-size block of terminal rows. Rows may contain ANSI
// escape sequences; widths are measured in cells.
type grid struct {
	width int
	rows  []string
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, rows: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range g.rows {
		g.rows[i] = blank
	}
	return g
}

// draw paints view with its top-left cell at (x, y). Cells outside the grid
// are dropped; nothing is moved to stay on screen.
func (g *grid) draw(x, y int, view string) {
	for i, line := range strings.Split(view, "\n") {
		row := y + i
		if row < 0 || row >= len(g.rows) {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= g.width {
			continue
		}
		line = ansi.Truncate(line, g.width-col, "")
		g.rows[row] = overlay(g.rows[row], line, col)
	}
}

// overlay replaces the cells of row starting at col with line.
func overlay(row, line string, col int) string {
	w := ansi.StringWidth(line)
	if w == 0 {
		return row
	}
	left := ansi.Truncate(row, col, "")
	if lw := ansi.StringWidth(left); lw < col {
		// a wide rune straddled col
		left += strings.Repeat(" ", col-lw)
	}
	right := ansi.TruncateLeft(row, col+w, "")
	return closeStyle(left) + closeStyle(line) + right
}

// closeStyle resets SGR state after s so a cut segment cannot bleed into
// the next one. Plain text is returned unchanged.
func closeStyle(s string) string {
	if strings.Contains(s, "\x1b[") {
		return s + ansi.ResetStyle
	}
	return s
}

func (g *grid) String() string {
	return strings.Join(g.rows, "\n")
}
