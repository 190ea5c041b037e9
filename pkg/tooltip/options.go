package tooltip

import (
	"maps"
	"strings"

	"github.com/matzehuels/tipkit/pkg/errors"
)

// DefaultOffset is the configured x and y when none is given.
const DefaultOffset = 5

// Options configures a Tooltip.
type Options struct {
	// ID names the container element. Generated when empty.
	ID string

	// X and Y are manual coordinate overrides. Absent values default to
	// Abs(DefaultOffset) in New.
	X, Y Offset

	// Target is the anchor element. nil means manual placement at X, Y.
	Target Element

	// Placement selects the side of Target. Empty means DefaultPlacement.
	Placement Placement

	// Width fixes the container width in cells. 0 sizes to content.
	Width int

	// ZIndex orders overlapping elements; higher draws later.
	ZIndex int

	// Classes is a space separated list of theme class names.
	Classes string

	// Styles maps style properties to values.
	Styles map[string]string

	// Content is the text shown inside the container.
	Content string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		X:         Abs(DefaultOffset),
		Y:         Abs(DefaultOffset),
		Placement: DefaultPlacement,
		Styles:    map[string]string{},
	}
}

// withDefaults fills in unset fields. It never overrides explicit values.
func (o Options) withDefaults() Options {
	if o.X.IsZero() {
		o.X = Abs(DefaultOffset)
	}
	if o.Y.IsZero() {
		o.Y = Abs(DefaultOffset)
	}
	if o.Placement == "" {
		o.Placement = DefaultPlacement
	}
	if o.Styles == nil {
		o.Styles = map[string]string{}
	} else {
		o.Styles = maps.Clone(o.Styles)
	}
	return o
}

// Validate checks the options at configuration time. An empty placement is
// accepted and means DefaultPlacement.
func (o Options) Validate() error {
	if o.Placement != "" && !o.Placement.Valid() {
		return errors.New(errors.ErrCodeUnrecognizedPlacement,
			"unrecognized placement %q (want top, bottom, left or right)", string(o.Placement))
	}
	if err := o.X.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOffset, err, "invalid x")
	}
	if err := o.Y.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOffset, err, "invalid y")
	}
	if o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width cannot be negative (got %d)", o.Width)
	}
	if o.ID != "" {
		if err := errors.ValidateElementID(o.ID); err != nil {
			return err
		}
	}
	return nil
}

// ClassList splits Classes into individual class names.
func (o Options) ClassList() []string {
	return strings.Fields(o.Classes)
}
