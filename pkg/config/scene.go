// Package config loads scene files describing anchors and tooltips.
//
// Scenes are TOML, YAML or JSON, picked by file extension:
//
//	[canvas]
//	width = 60
//	height = 20
//
//	[[anchor]]
//	label = "Save"
//	x = 4
//	y = 2
//
//	[[tooltip]]
//	target = "save"
//	content = "Write the file to disk"
//	placement = "right"
//	y = "-1"          # string: nudge up one row
//	classes = "info"
//
// Offsets keep their literal type: a number is an absolute position used
// when the tooltip has no target, a string is a delta added on top.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/textutil"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// Default canvas size when a scene does not set one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Format is a scene file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Scene is a decoded scene file.
type Scene struct {
	Canvas   Canvas    `toml:"canvas" yaml:"canvas" json:"canvas"`
	Anchors  []Anchor  `toml:"anchor" yaml:"anchors" json:"anchors"`
	Tooltips []Tooltip `toml:"tooltip" yaml:"tooltips" json:"tooltips"`
}

// Canvas sets the drawing surface size in cells.
type Canvas struct {
	Width  int `toml:"width" yaml:"width" json:"width"`
	Height int `toml:"height" yaml:"height" json:"height"`
}

// Anchor is a labelled box tooltips can target.
type Anchor struct {
	// ID defaults to the slug of Label.
	ID     string `toml:"id" yaml:"id" json:"id"`
	Label  string `toml:"label" yaml:"label" json:"label"`
	X      int    `toml:"x" yaml:"x" json:"x"`
	Y      int    `toml:"y" yaml:"y" json:"y"`
	Width  int    `toml:"width" yaml:"width" json:"width"`
	Color  string `toml:"color" yaml:"color" json:"color"`
	Border string `toml:"border" yaml:"border" json:"border"`
}

// Tooltip mirrors tooltip.Options with a target referenced by anchor id.
type Tooltip struct {
	ID        string            `toml:"id" yaml:"id" json:"id"`
	Content   string            `toml:"content" yaml:"content" json:"content"`
	Target    string            `toml:"target" yaml:"target" json:"target"`
	Placement string            `toml:"placement" yaml:"placement" json:"placement"`
	X         tooltip.Offset    `toml:"x" yaml:"x" json:"x"`
	Y         tooltip.Offset    `toml:"y" yaml:"y" json:"y"`
	Width     int               `toml:"width" yaml:"width" json:"width"`
	ZIndex    int               `toml:"z_index" yaml:"z_index" json:"z_index"`
	Classes   string            `toml:"classes" yaml:"classes" json:"classes"`
	Styles    map[string]string `toml:"styles" yaml:"styles" json:"styles"`
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported scene file %q (want .toml, .yaml or .json)", filepath.Base(path))
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "scene file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read scene file %s", path)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode parses and validates a scene.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&s)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&s)
		if err == io.EOF {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown scene format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s scene", format)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultHeight
	}
	for i := range s.Anchors {
		if s.Anchors[i].ID == "" {
			s.Anchors[i].ID = textutil.Slugify(s.Anchors[i].Label)
		}
	}
}

// Validate checks canvas size, anchor ids, target references, placements
// and offsets.
func (s *Scene) Validate() error {
	if s.Canvas.Width < 0 || s.Canvas.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size cannot be negative")
	}

	anchors := make(map[string]bool, len(s.Anchors))
	for i, a := range s.Anchors {
		if err := errors.ValidateElementID(a.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "anchor %d", i+1)
		}
		if anchors[a.ID] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate anchor id %q", a.ID)
		}
		anchors[a.ID] = true
	}

	// element ids share one namespace on the canvas
	ids := maps.Clone(anchors)
	for i, t := range s.Tooltips {
		if t.Target != "" && !anchors[t.Target] {
			return errors.New(errors.ErrCodeInvalidConfig, "tooltip %d: unknown target %q", i+1, t.Target)
		}
		if t.ID != "" {
			if ids[t.ID] {
				return errors.New(errors.ErrCodeInvalidConfig, "tooltip %d: duplicate id %q", i+1, t.ID)
			}
			ids[t.ID] = true
		}
		if err := t.options(nil).Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "tooltip %d", i+1)
		}
	}
	return nil
}

// options converts t to tooltip options with the given resolved target.
func (t Tooltip) options(target tooltip.Element) tooltip.Options {
	return tooltip.Options{
		ID:        t.ID,
		X:         t.X,
		Y:         t.Y,
		Target:    target,
		Placement: tooltip.Placement(strings.ToLower(strings.TrimSpace(t.Placement))),
		Width:     t.Width,
		ZIndex:    t.ZIndex,
		Classes:   t.Classes,
		Styles:    t.Styles,
		Content:   t.Content,
	}
}
