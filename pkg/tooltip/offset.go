package tooltip

import (
	"regexp"
	"strconv"

	"github.com/matzehuels/tipkit/pkg/errors"
)

type offsetKind uint8

const (
	offsetNone offsetKind = iota
	offsetAbs
	offsetDelta
)

// Offset is a manual coordinate override. It is either numeric, an absolute
// coordinate used when no target is set, or a string, a delta added on top
// of whatever base position was computed. The zero value is absent and acts
// like a numeric zero.
type Offset struct {
	kind  offsetKind
	abs   float64
	delta string
}

// Abs returns a numeric offset.
func Abs(v float64) Offset {
	return Offset{kind: offsetAbs, abs: v}
}

// Delta returns a string offset. s is parsed when the offset is applied.
func Delta(s string) Offset {
	return Offset{kind: offsetDelta, delta: s}
}

// IsZero reports whether o is absent.
func (o Offset) IsZero() bool { return o.kind == offsetNone }

// IsAbs reports whether o is numeric.
func (o Offset) IsAbs() bool { return o.kind == offsetAbs }

// IsDelta reports whether o is a string delta.
func (o Offset) IsDelta() bool { return o.kind == offsetDelta }

// Raw returns the unparsed text of a string offset, or "" otherwise.
func (o Offset) Raw() string { return o.delta }

// Value returns the numeric value of o. String offsets are parsed; absent
// offsets are zero.
func (o Offset) Value() (float64, error) {
	switch o.kind {
	case offsetAbs:
		return o.abs, nil
	case offsetDelta:
		return parseDelta(o.delta)
	}
	return 0, nil
}

// Validate reports whether a string offset can be parsed.
func (o Offset) Validate() error {
	_, err := o.Value()
	return err
}

func (o Offset) String() string {
	switch o.kind {
	case offsetAbs:
		return strconv.FormatFloat(o.abs, 'g', -1, 64)
	case offsetDelta:
		return strconv.Quote(o.delta)
	}
	return "none"
}

// deltaPrefix matches the leading decimal number of a string offset. Trailing
// text is ignored, so "3px" reads as 3.
var deltaPrefix = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

func parseDelta(s string) (float64, error) {
	m := deltaPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New(errors.ErrCodeInvalidOffset, "offset %q is not a number", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidOffset, err, "offset %q is not a number", s)
	}
	return v, nil
}
