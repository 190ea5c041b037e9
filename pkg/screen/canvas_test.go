package screen

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

func lines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestCanvasDrawsTooltipBelowAnchor(t *testing.T) {
	c := NewCanvas(20, 10, WithTheme(PlainTheme()))
	anchor := NewBox("ok", "OK", 8, 0)
	if err := c.AddBox(anchor); err != nil {
		t.Fatal(err)
	}
	tip, err := c.AddTooltip(tooltip.Options{ID: "tip", Content: "hi", Target: anchor})
	if err != nil {
		t.Fatal(err)
	}

	out := lines(c.Render(context.Background()))

	if len(out) != 10 {
		t.Fatalf("rendered %d rows, want 10", len(out))
	}
	if got, want := out[0], "        OK          "; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := out[6], "        hi          "; got != want {
		t.Errorf("row 6 = %q, want %q", got, want)
	}
	if !tip.Visible() {
		t.Error("tooltip should be visible after render")
	}
	if got := tip.Position(); got != (tooltip.Point{X: 8, Y: 6}) {
		t.Errorf("Position() = %v, want (8,6)", got)
	}
}

func TestCanvasManualPlacement(t *testing.T) {
	c := NewCanvas(12, 8, WithTheme(PlainTheme()))
	_, err := c.AddTooltip(tooltip.Options{ID: "tip", Content: "x", X: tooltip.Abs(2), Y: tooltip.Delta("3")})
	if err != nil {
		t.Fatal(err)
	}

	out := lines(c.Render(context.Background()))
	if got, want := out[3], "  x         "; got != want {
		t.Errorf("row 3 = %q, want %q", got, want)
	}
}

func TestCanvasRoundsHalfCells(t *testing.T) {
	c := NewCanvas(10, 10, WithTheme(PlainTheme()))
	anchor := NewBox("a", "abc", 0, 0)
	_ = c.AddBox(anchor)
	tip, _ := c.AddTooltip(tooltip.Options{ID: "tip", Content: "hi", Target: anchor})

	c.Layout(context.Background())

	if got := tip.Position(); got.X != 0.5 {
		t.Fatalf("Position().X = %v, want 0.5", got.X)
	}
	box, _ := c.Box("tip")
	if x, y := box.Position(); x != 1 || y != 6 {
		t.Errorf("box at (%d,%d), want (1,6)", x, y)
	}
}

func TestCanvasZOrder(t *testing.T) {
	c := NewCanvas(5, 1, WithTheme(PlainTheme()))
	_ = c.AddBox(NewBox("top", "TT", 1, 0).SetZ(10))
	_ = c.AddBox(NewBox("bottom", "bbbb", 0, 0))

	out := lines(c.Draw())
	if got, want := out[0], "bTTb "; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}

func TestCanvasClipsWithoutClamping(t *testing.T) {
	c := NewCanvas(6, 3, WithTheme(PlainTheme()))
	_ = c.AddBox(NewBox("left", "abc", -1, 0))
	_ = c.AddBox(NewBox("right", "xyz", 4, 1))
	_ = c.AddBox(NewBox("below", "zzz", 0, 5))
	_ = c.AddBox(NewBox("above", "qqq", 0, -1))

	out := lines(c.Draw())
	want := []string{
		"bc    ",
		"    xy",
		"      ",
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestCanvasInvalidTargetRendersNothing(t *testing.T) {
	c := NewCanvas(10, 10, WithTheme(PlainTheme()))
	tip, err := c.AddTooltip(tooltip.Options{ID: "tip", Content: "hidden", Target: (*Box)(nil)})
	if err != nil {
		t.Fatal(err)
	}

	out := ansi.Strip(c.Render(context.Background()))
	if strings.Contains(out, "hidden") {
		t.Error("tooltip with invalid target should not be drawn")
	}
	if tip.Renderable() || tip.Visible() {
		t.Error("tooltip with invalid target should be neither renderable nor visible")
	}
}

func TestCanvasDetachedTargetSkipsPass(t *testing.T) {
	c := NewCanvas(10, 10, WithTheme(PlainTheme()))
	anchor := NewBox("a", "A", 2, 2)
	tip, _ := c.AddTooltip(tooltip.Options{ID: "tip", Content: "t", Target: anchor})

	out := ansi.Strip(c.Render(context.Background()))
	if strings.Contains(out, "t") || tip.Visible() {
		t.Error("tooltip should stay hidden while its target is detached")
	}

	_ = c.AddBox(anchor)
	out = ansi.Strip(c.Render(context.Background()))
	if !strings.Contains(out, "t") || !tip.Visible() {
		t.Error("tooltip should appear once its target is attached")
	}

	anchor.MoveTo(2, 1)
	c.Remove("a")
	out = ansi.Strip(c.Render(context.Background()))
	if strings.Contains(out, "t") || tip.Visible() {
		t.Errorf("tooltip of a removed anchor should be hidden:\n%s", out)
	}

	_ = c.AddBox(anchor)
	c.Render(context.Background())
	if !tip.Visible() || tip.Position().Y != 7 {
		t.Errorf("tooltip should follow the re-attached anchor, visible=%v pos=%v", tip.Visible(), tip.Position())
	}
}

func TestCanvasSkippedPassKeepsVisibility(t *testing.T) {
	c := NewCanvas(10, 10, WithTheme(PlainTheme()))
	anchor := NewBox("a", "A", 2, 2)
	_ = c.AddBox(anchor)
	tip, _ := c.AddTooltip(tooltip.Options{ID: "tip", Content: "t", Target: anchor})
	c.Render(context.Background())

	// a new element with a detached target: Bounds fails for it
	tip.SetTarget(NewBox("b", "B", 0, 0))
	c.Render(context.Background())
	if !tip.Visible() {
		t.Error("skipped pass should keep the previous visibility")
	}
}

func TestCanvasRemoveTooltipContainer(t *testing.T) {
	c := NewCanvas(4, 4)
	_, _ = c.AddTooltip(tooltip.Options{ID: "tip", Content: "t"})
	c.Remove("tip")
	if len(c.Tooltips()) != 0 || len(c.Boxes()) != 0 {
		t.Error("removing the container should remove the tooltip")
	}
	c.Remove("missing")
}

func TestCanvasContentChangeRemeasures(t *testing.T) {
	c := NewCanvas(30, 10, WithTheme(PlainTheme()))
	anchor := NewBox("a", "AAAAAAAAAA", 10, 0)
	_ = c.AddBox(anchor)
	tip, _ := c.AddTooltip(tooltip.Options{ID: "tip", Content: "xx", Target: anchor})

	c.Layout(context.Background())
	first := tip.Position()

	tip.SetContent("xxxxxx")
	c.Layout(context.Background())
	second := tip.Position()

	if first.X != 14 || second.X != 12 {
		t.Errorf("x before/after content change = %v/%v, want 14/12", first.X, second.X)
	}
}

func TestCanvasAddErrors(t *testing.T) {
	c := NewCanvas(4, 4)
	if err := c.AddBox(NewBox("", "x", 0, 0)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("AddBox(empty id) error = %v", err)
	}
	_ = c.AddBox(NewBox("a", "x", 0, 0))
	if err := c.AddBox(NewBox("a", "y", 0, 0)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("AddBox(duplicate) error = %v", err)
	}
	if _, err := c.AddTooltip(tooltip.Options{ID: "a"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("AddTooltip(duplicate id) error = %v", err)
	}
	if _, err := c.AddTooltip(tooltip.Options{Placement: "middle"}); !errors.Is(err, errors.ErrCodeUnrecognizedPlacement) {
		t.Errorf("AddTooltip(bad placement) error = %v", err)
	}
	if _, err := c.AddTooltip(tooltip.Options{Styles: map[string]string{"blink": "true"}}); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("AddTooltip(bad style) error = %v", err)
	}
	if len(c.Tooltips()) != 0 {
		t.Error("failed AddTooltip calls must not attach anything")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(20, 20)
	tip, err := c.AddTooltip(tooltip.Options{ID: "tip", Content: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	r, ok := c.Bounds(tip.Container())
	if !ok {
		t.Fatal("hidden container should still have bounds")
	}
	// rounded border plus one cell of horizontal padding
	if r.Width != 6 || r.Height != 3 {
		t.Errorf("Bounds() = %v, want 6x3", r)
	}
	if _, ok := c.Bounds(nil); ok {
		t.Error("Bounds(nil) should report no geometry")
	}
	if _, ok := c.Bounds(NewBox("detached", "x", 0, 0)); ok {
		t.Error("Bounds(detached) should report no geometry")
	}
}

func TestCanvasDefaultThemeBorder(t *testing.T) {
	c := NewCanvas(20, 6)
	_, _ = c.AddTooltip(tooltip.Options{ID: "tip", Content: "hi", X: tooltip.Abs(0), Y: tooltip.Abs(0)})

	out := lines(c.Render(context.Background()))
	if got, want := out[0], "╭────╮              "; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := out[1], "│ hi │              "; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Resize(5, 3)
	if w, h := c.Size(); w != 5 || h != 3 {
		t.Errorf("Size() = %dx%d, want 5x3", w, h)
	}
	c.Resize(-1, -1)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %dx%d, want 0x0", w, h)
	}
}
