package cli

import (
	"context"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/tipkit/pkg/config"
	"github.com/matzehuels/tipkit/pkg/textutil"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

func newTestModel(t *testing.T) DemoModel {
	t.Helper()
	s := &config.Scene{
		Canvas: config.Canvas{Width: 40, Height: 20},
		Anchors: []config.Anchor{
			{ID: "a", Label: "A", X: 2, Y: 2},
			{ID: "b", Label: "B", X: 20, Y: 8},
		},
	}
	c, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := newDemoModel(context.Background(), c, s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m DemoModel, msgs ...tea.Msg) DemoModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(DemoModel)
	}
	return m
}

func TestDemoCyclesPlacement(t *testing.T) {
	m := newTestModel(t)
	want := []tooltip.Placement{tooltip.Right, tooltip.Top, tooltip.Left, tooltip.Bottom}
	for _, p := range want {
		m = update(m, runes("p"))
		if got := m.focus.Options().Placement; got != p {
			t.Fatalf("placement = %s, want %s", got, p)
		}
		if got := m.focus.Options().Content; got != p.String() {
			t.Errorf("content = %q, want %q", got, p)
		}
	}
}

func TestDemoSelectsAnchors(t *testing.T) {
	m := newTestModel(t)

	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus.Target().ElementID() != "b" {
		t.Errorf("tab should target b, got %s", m.focus.Target().ElementID())
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus.Target().ElementID() != "a" {
		t.Errorf("tab should wrap to a, got %s", m.focus.Target().ElementID())
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus.Target().ElementID() != "b" {
		t.Errorf("shift+tab should wrap to b, got %s", m.focus.Target().ElementID())
	}
}

func TestDemoMovesAnchor(t *testing.T) {
	m := newTestModel(t)
	m = update(m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyDown}, runes("k"), runes("k"))

	x, y := m.anchors[0].Position()
	if x != 4 || y != 1 {
		t.Errorf("anchor at (%d,%d), want (4,1)", x, y)
	}
	if x, y := m.anchors[1].Position(); x != 20 || y != 8 {
		t.Errorf("unselected anchor moved to (%d,%d)", x, y)
	}
}

func TestDemoTogglesNudge(t *testing.T) {
	m := newTestModel(t)
	base := m.focus.Options().X

	m = update(m, runes("n"))
	if got := m.focus.Options(); got.X != tooltip.Delta("2") || got.Y != tooltip.Delta("1") {
		t.Errorf("nudged offsets = %v, %v", got.X, got.Y)
	}
	if !strings.Contains(m.focus.Options().Content, "+(2,1)") {
		t.Errorf("content = %q, should mention the nudge", m.focus.Options().Content)
	}

	m = update(m, runes("n"))
	if got := m.focus.Options().X; got != base {
		t.Errorf("offsets after second toggle = %v, want %v", got, base)
	}
}

func TestDemoView(t *testing.T) {
	m := newTestModel(t)
	view := ansi.Strip(m.View())

	// anchor "A" is 5x3 at (2,2); the focus box "bottom" is 10x3
	if !strings.Contains(view, "anchor a 1/2") {
		t.Errorf("status missing selection:\n%s", view)
	}
	if !strings.Contains(view, "tooltip (-0.5,10)") {
		t.Errorf("status missing computed position:\n%s", view)
	}
	if !m.focus.Visible() {
		t.Error("focus tooltip should be visible after a view")
	}
	if !strings.Contains(view, "tab next") {
		t.Errorf("help line missing:\n%s", view)
	}
}

func TestDemoResize(t *testing.T) {
	m := update(newTestModel(t), tea.WindowSizeMsg{Width: 30, Height: 10})
	if w, h := m.canvas.Size(); w != 30 || h != 10-statusLines {
		t.Errorf("canvas = %dx%d, want 30x%d", w, h, 10-statusLines)
	}
}

func TestDemoQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := newTestModel(t).Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected a command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestDemoWithoutAnchors(t *testing.T) {
	s := &config.Scene{Canvas: config.Canvas{Width: 20, Height: 10}}
	c, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := newDemoModel(context.Background(), c, s)
	if err != nil {
		t.Fatal(err)
	}
	m = update(m, tea.KeyMsg{Type: tea.KeyTab}, runes("h"))
	if m.focus.Options().Content != "no anchors" {
		t.Errorf("content = %q", m.focus.Options().Content)
	}
	if !strings.Contains(ansi.Strip(m.View()), "no anchors") {
		t.Error("focus tooltip should draw at its manual position")
	}
}

func TestDemoAnchorNamedFocus(t *testing.T) {
	s := &config.Scene{
		Canvas:  config.Canvas{Width: 40, Height: 20},
		Anchors: []config.Anchor{{ID: "focus", Label: "Focus", X: 2, Y: 2}},
	}
	c, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	m, err := newDemoModel(context.Background(), c, s)
	if err != nil {
		t.Fatalf("newDemoModel() error = %v", err)
	}
	if m.focus.ID() == "focus" || m.focus.Target().ElementID() != "focus" {
		t.Errorf("focus tooltip %q should target the anchor named focus", m.focus.ID())
	}
}

func TestRandomScene(t *testing.T) {
	a, err := randomScene(7, 80, 22)
	if err != nil {
		t.Fatalf("randomScene() error = %v", err)
	}
	b, _ := randomScene(7, 80, 22)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same scene")
	}

	if n := len(a.Anchors); n < 3 || n > 5 {
		t.Errorf("got %d anchors, want 3 to 5", n)
	}
	for i, tip := range a.Tooltips {
		if tip.Target != a.Anchors[i].ID {
			t.Errorf("tooltip %d targets %q, want %q", i, tip.Target, a.Anchors[i].ID)
		}
	}
	for _, an := range a.Anchors {
		if an.X < 0 || an.X+textutil.Width(an.Label) > 80 || an.Y < 0 || an.Y >= 22 {
			t.Errorf("anchor %s at (%d,%d) is off canvas", an.ID, an.X, an.Y)
		}
	}
}
