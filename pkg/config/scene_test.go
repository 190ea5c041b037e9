package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

const tomlScene = `
[canvas]
width = 40
height = 12

[[anchor]]
label = "Save File"
x = 2
y = 1

[[tooltip]]
id = "save-tip"
target = "save-file"
content = "Write to disk"
placement = "Right"
x = 100
y = "-1"
classes = "info"

[tooltip.styles]
bold = "true"

[[tooltip]]
content = "Manual"
x = 3
y = 9
`

const yamlScene = `
canvas:
  width: 40
  height: 12
anchors:
  - label: Save File
    x: 2
    y: 1
tooltips:
  - id: save-tip
    target: save-file
    content: Write to disk
    placement: right
    x: 100
    y: "-1"
    classes: info
    styles:
      bold: "true"
  - content: Manual
    x: 3
    y: 9
`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"toml", FormatTOML, tomlScene},
		{"yaml", FormatYAML, yamlScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.doc), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if s.Canvas.Width != 40 || s.Canvas.Height != 12 {
				t.Errorf("canvas = %+v, want 40x12", s.Canvas)
			}
			if len(s.Anchors) != 1 || s.Anchors[0].ID != "save-file" {
				t.Fatalf("anchors = %+v, want one with slug id save-file", s.Anchors)
			}
			if len(s.Tooltips) != 2 {
				t.Fatalf("got %d tooltips, want 2", len(s.Tooltips))
			}
			tip := s.Tooltips[0]
			if tip.X != tooltip.Abs(100) || tip.Y != tooltip.Delta("-1") {
				t.Errorf("offsets = %#v, %#v, want Abs(100), Delta(-1)", tip.X, tip.Y)
			}
			if tip.Styles["bold"] != "true" {
				t.Errorf("styles = %v", tip.Styles)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"anchors": [{"id": "a", "label": "A"}], "tooltips": [{"target": "a", "x": "2"}]}`
	s, err := Decode(strings.NewReader(doc), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.Canvas.Width != DefaultWidth || s.Canvas.Height != DefaultHeight {
		t.Errorf("canvas = %+v, want defaults", s.Canvas)
	}
	if s.Tooltips[0].X != tooltip.Delta("2") {
		t.Errorf("x = %#v, want Delta(2)", s.Tooltips[0].X)
	}

	_, err = Decode(strings.NewReader(`{"bogus": 1}`), FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown field error = %v, want INVALID_CONFIG", err)
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(empty) error = %v", err)
	}
	if s.Canvas.Width != DefaultWidth {
		t.Errorf("width = %d, want %d", s.Canvas.Width, DefaultWidth)
	}
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown target", "[[tooltip]]\ntarget = \"nope\"\n"},
		{"bad placement", "[[anchor]]\nid = \"a\"\n[[tooltip]]\ntarget = \"a\"\nplacement = \"middle\"\n"},
		{"bad offset", "[[tooltip]]\nx = \"wide\"\n"},
		{"offset of wrong type", "[[tooltip]]\nx = true\n"},
		{"duplicate anchor", "[[anchor]]\nid = \"a\"\n[[anchor]]\nid = \"a\"\n"},
		{"tooltip id clashes with anchor", "[[anchor]]\nid = \"a\"\n[[tooltip]]\nid = \"a\"\n"},
		{"empty anchor id", "[[anchor]]\nlabel = \"!!!\"\n"},
		{"negative canvas", "[canvas]\nwidth = -1\n"},
		{"malformed", "[[anchor\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatTOML)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"scene.toml", FormatTOML, false},
		{"scene.YAML", FormatYAML, false},
		{"dir/scene.yml", FormatYAML, false},
		{"scene.json", FormatJSON, false},
		{"scene.ini", "", true},
		{"scene", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(tomlScene), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Tooltips) != 2 {
		t.Errorf("got %d tooltips, want 2", len(s.Tooltips))
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
	}
	if _, err := Load(filepath.Join(dir, "scene.txt")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(.txt) error = %v, want INVALID_CONFIG", err)
	}
}

func TestBuild(t *testing.T) {
	s, err := Decode(strings.NewReader(tomlScene), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if w, h := c.Size(); w != 40 || h != 12 {
		t.Errorf("canvas size = %dx%d, want 40x12", w, h)
	}
	if _, ok := c.Box("save-file"); !ok {
		t.Error("anchor box missing")
	}
	tips := c.Tooltips()
	if len(tips) != 2 {
		t.Fatalf("got %d tooltips, want 2", len(tips))
	}
	if tips[0].Target() == nil || tips[0].Target().ElementID() != "save-file" {
		t.Error("first tooltip should target the anchor")
	}
	if tips[0].Options().Placement != tooltip.Right {
		t.Errorf("placement = %s, want right", tips[0].Options().Placement)
	}
	if tips[1].Target() != nil {
		t.Error("second tooltip should have no target")
	}

	out := ansi.Strip(c.Render(context.Background()))
	if !strings.Contains(out, "Save File") || !strings.Contains(out, "Write to disk") || !strings.Contains(out, "Manual") {
		t.Errorf("render is missing content:\n%s", out)
	}

	// anchor: 2 + border 2 + padding 2 + "Save File" 9 = 13 wide, 3 tall at y=1
	// right placement: x = 2 + 13 + 5 = 20
	if p := tips[0].Position(); p.X != 20 {
		t.Errorf("anchored tooltip x = %v, want 20", p.X)
	}
	if p := tips[1].Position(); p != (tooltip.Point{X: 3, Y: 9}) {
		t.Errorf("manual tooltip at %v, want (3,9)", p)
	}
}

func TestAnchorStyleErrors(t *testing.T) {
	if _, err := AnchorStyle(Anchor{ID: "a", Border: "zigzag"}); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("AnchorStyle(bad border) error = %v", err)
	}
}

func TestExampleScenes(t *testing.T) {
	fromTOML, err := Load(filepath.Join("..", "..", "examples", "toolbar.toml"))
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	fromYAML, err := Load(filepath.Join("..", "..", "examples", "toolbar.yaml"))
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if !reflect.DeepEqual(fromTOML, fromYAML) {
		t.Errorf("toml and yaml examples differ:\n%+v\n%+v", fromTOML, fromYAML)
	}
	if _, err := fromTOML.Build(); err != nil {
		t.Errorf("Build() error = %v", err)
	}
}
