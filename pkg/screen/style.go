package screen

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - info
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - text
	colorDim    = lipgloss.Color("240") // Dim gray - borders
)

// =============================================================================
// Theme
// =============================================================================

// Class modifies a style. Classes are applied in the order they are listed.
type Class func(lipgloss.Style) lipgloss.Style

// Theme is the stylesheet a Canvas uses for tooltip containers.
type Theme struct {
	// Base is the starting style of every container.
	Base lipgloss.Style

	// Classes maps class names to modifiers. Unknown names are ignored.
	Classes map[string]Class
}

// DefaultTheme returns a rounded, padded container with a few status
// classes.
func DefaultTheme() Theme {
	fg := func(c lipgloss.Color) Class {
		return func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(c).Foreground(c) }
	}
	return Theme{
		Base: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Foreground(colorWhite).
			Padding(0, 1),
		Classes: map[string]Class{
			"info":    fg(colorCyan),
			"success": fg(colorGreen),
			"warning": fg(colorYellow),
			"error":   fg(colorRed),
			"bold":    func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
			"plain":   func(s lipgloss.Style) lipgloss.Style { return s.UnsetBorderStyle().UnsetPadding() },
			"compact": func(s lipgloss.Style) lipgloss.Style { return s.UnsetPadding() },
		},
	}
}

// PlainTheme returns a theme with an empty base style and no classes.
func PlainTheme() Theme {
	return Theme{Base: lipgloss.NewStyle(), Classes: map[string]Class{}}
}

// =============================================================================
// Style Properties
// =============================================================================

type property func(s lipgloss.Style, v string) (lipgloss.Style, error)

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"double":  lipgloss.DoubleBorder(),
	"thick":   lipgloss.ThickBorder(),
	"hidden":  lipgloss.HiddenBorder(),
	"block":   lipgloss.BlockBorder(),
}

var aligns = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

var properties = map[string]property{
	"foreground": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		return s.Foreground(lipgloss.Color(v)), nil
	},
	"background": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		return s.Background(lipgloss.Color(v)), nil
	},
	"border": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		if v == "none" {
			return s.UnsetBorderStyle(), nil
		}
		b, ok := borders[v]
		if !ok {
			return s, errors.New(errors.ErrCodeInvalidStyle, "unknown border %q", v)
		}
		return s.Border(b), nil
	},
	"border-foreground": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		return s.BorderForeground(lipgloss.Color(v)), nil
	},
	"padding": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		n, err := sides(v)
		if err != nil {
			return s, err
		}
		return s.Padding(n...), nil
	},
	"margin": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		n, err := sides(v)
		if err != nil {
			return s, err
		}
		return s.Margin(n...), nil
	},
	"bold":      flag(lipgloss.Style.Bold),
	"italic":    flag(lipgloss.Style.Italic),
	"underline": flag(lipgloss.Style.Underline),
	"faint":     flag(lipgloss.Style.Faint),
	"align": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		a, ok := aligns[v]
		if !ok {
			return s, errors.New(errors.ErrCodeInvalidStyle, "unknown alignment %q", v)
		}
		return s.Align(a), nil
	},
	"width": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		n, err := cells(v)
		if err != nil {
			return s, err
		}
		return s.Width(n), nil
	},
	"max-width": func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		n, err := cells(v)
		if err != nil {
			return s, err
		}
		return s.MaxWidth(n), nil
	},
}

func init() {
	properties["color"] = properties["foreground"]
	properties["border-color"] = properties["border-foreground"]
}

func flag(set func(lipgloss.Style, bool) lipgloss.Style) property {
	return func(s lipgloss.Style, v string) (lipgloss.Style, error) {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, errors.New(errors.ErrCodeInvalidStyle, "expected true or false, got %q", v)
		}
		return set(s, b), nil
	}
}

func cells(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "expected a non-negative cell count, got %q", v)
	}
	return n, nil
}

// sides parses CSS-like shorthand: one to four cell counts.
func sides(v string) ([]int, error) {
	fields := strings.Fields(v)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "expected 1 to 4 cell counts, got %q", v)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := cells(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// StyleFor builds the container style for opts: the theme base, then each
// class in order, then Width, then the style properties in key order.
func (t Theme) StyleFor(opts tooltip.Options) (lipgloss.Style, error) {
	s := t.Base
	for _, name := range opts.ClassList() {
		if cls, ok := t.Classes[name]; ok {
			s = cls(s)
		}
	}
	if opts.Width > 0 {
		s = s.Width(opts.Width)
	}
	keys := make([]string, 0, len(opts.Styles))
	for k := range opts.Styles {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		prop, ok := properties[strings.ToLower(k)]
		if !ok {
			return s, errors.New(errors.ErrCodeInvalidStyle, "unknown style property %q", k)
		}
		var err error
		if s, err = prop(s, strings.TrimSpace(opts.Styles[k])); err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style %q", k)
		}
	}
	return s, nil
}
