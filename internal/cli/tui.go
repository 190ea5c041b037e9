package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tipkit/pkg/config"
	"github.com/matzehuels/tipkit/pkg/ident"
	"github.com/matzehuels/tipkit/pkg/screen"
	"github.com/matzehuels/tipkit/pkg/textutil"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// statusLines is the number of rows below the canvas.
const statusLines = 2

// nudge is the string offset the n key toggles on the focus tooltip.
var nudge = [2]string{"2", "1"}

// Status styles
var (
	statusKeyStyle   = lipgloss.NewStyle().Foreground(colorGray)
	statusValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	statusHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DemoModel - Interactive placement playground
// =============================================================================

// DemoModel is the bubbletea model for the demo command. Every View runs a
// fresh layout pass over the canvas.
type DemoModel struct {
	ctx      context.Context
	canvas   *screen.Canvas
	anchors  []*screen.Box
	focus    *tooltip.Tooltip
	base     [2]tooltip.Offset // focus offsets before nudging
	selected int
	nudged   bool
	width    int
}

// newDemoModel wraps canvas, which must hold the scene's anchors, and adds
// the focus tooltip on the first anchor.
func newDemoModel(ctx context.Context, canvas *screen.Canvas, scene *config.Scene) (DemoModel, error) {
	m := DemoModel{ctx: ctx, canvas: canvas}
	m.width, _ = canvas.Size()
	for _, a := range scene.Anchors {
		if b, ok := canvas.Box(a.ID); ok {
			m.anchors = append(m.anchors, b)
		}
	}

	opts := tooltip.Options{ID: ident.NewID("focus"), ZIndex: 100, Classes: "bold"}
	if len(m.anchors) > 0 {
		opts.Target = m.anchors[0]
	}
	focus, err := canvas.AddTooltip(opts)
	if err != nil {
		return DemoModel{}, err
	}
	m.focus = focus
	m.base = [2]tooltip.Offset{focus.Options().X, focus.Options().Y}
	m.describe()
	return m, nil
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(0, -1)
		case "down", "j":
			m.move(0, 1)
		case "left", "h":
			m.move(-1, 0)
		case "right", "l":
			m.move(1, 0)
		case "tab":
			m.selectAnchor(m.selected + 1)
		case "shift+tab":
			m.selectAnchor(m.selected - 1)
		case "p":
			_ = m.focus.SetPlacement(m.focus.Options().Placement.Next())
		case "n":
			m.nudged = !m.nudged
			if m.nudged {
				_ = m.focus.SetOffsets(tooltip.Delta(nudge[0]), tooltip.Delta(nudge[1]))
			} else {
				_ = m.focus.SetOffsets(m.base[0], m.base[1])
			}
		}
		m.describe()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.canvas.Resize(msg.Width, max(0, msg.Height-statusLines))
	}
	return m, nil
}

func (m DemoModel) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.Render(m.ctx))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(statusHelpStyle.Render(textutil.Truncate("←↑↓→/hjkl move  tab next  p placement  n nudge  q quit", m.width, "…")))
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func (m *DemoModel) move(dx, dy int) {
	if a := m.anchor(); a != nil {
		a.MoveBy(dx, dy)
	}
}

func (m *DemoModel) selectAnchor(i int) {
	if len(m.anchors) == 0 {
		return
	}
	m.selected = (i%len(m.anchors) + len(m.anchors)) % len(m.anchors)
	m.focus.SetTarget(m.anchors[m.selected])
}

func (m DemoModel) anchor() *screen.Box {
	if len(m.anchors) == 0 {
		return nil
	}
	return m.anchors[m.selected]
}

// describe writes the focus tooltip's own settings into its content.
func (m *DemoModel) describe() {
	if m.anchor() == nil {
		m.focus.SetContent("no anchors")
		return
	}
	opts := m.focus.Options()
	content := opts.Placement.String()
	if m.nudged {
		content += fmt.Sprintf(" +(%s,%s)", nudge[0], nudge[1])
	}
	m.focus.SetContent(content)
}

func (m DemoModel) status() string {
	field := func(k, v string) string {
		return statusKeyStyle.Render(k+" ") + statusValueStyle.Render(v)
	}
	parts := []string{}
	if a := m.anchor(); a != nil {
		x, y := a.Position()
		parts = append(parts,
			field("anchor", fmt.Sprintf("%s %d/%d", a.ElementID(), m.selected+1, len(m.anchors))),
			field("at", fmt.Sprintf("(%d,%d)", x, y)),
		)
	}
	parts = append(parts, field("tooltip", m.focus.Position().String()))
	if !m.focus.Visible() {
		parts = append(parts, StyleWarning.Render("hidden"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
