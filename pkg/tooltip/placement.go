package tooltip

import (
	"strings"

	"github.com/matzehuels/tipkit/pkg/errors"
)

// Gap is the distance between container and target along the main axis.
const Gap = 5

// Placement names the side of the target the container attaches to.
type Placement string

// Recognized placements.
const (
	Top    Placement = "top"
	Bottom Placement = "bottom"
	Left   Placement = "left"
	Right  Placement = "right"
)

// DefaultPlacement is used when no placement is configured.
const DefaultPlacement = Bottom

// Placements lists every recognized placement in cycling order.
var Placements = []Placement{Bottom, Right, Top, Left}

// strategy returns the container's top-left corner for one side.
type strategy func(container, target Rect) Point

var strategies = map[Placement]strategy{
	Bottom: func(c, t Rect) Point {
		return Point{X: centerOn(t.X, t.Width, c.Width), Y: t.Y + t.Height + Gap}
	},
	Top: func(c, t Rect) Point {
		return Point{X: centerOn(t.X, t.Width, c.Width), Y: t.Y - c.Height - Gap}
	},
	Right: func(c, t Rect) Point {
		return Point{X: t.X + t.Width + Gap, Y: centerOn(t.Y, t.Height, c.Height)}
	},
	Left: func(c, t Rect) Point {
		return Point{X: t.X - c.Width - Gap, Y: centerOn(t.Y, t.Height, c.Height)}
	},
}

// centerOn returns the start coordinate that centers a span of length size
// over the span [start, start+length). A wider container shifts back by half
// the excess, a narrower one forward by half the difference.
func centerOn(start, length, size float64) float64 {
	return start + (length-size)/2
}

// ParsePlacement converts s to a Placement. Matching ignores case and
// surrounding whitespace.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.New(errors.ErrCodeUnrecognizedPlacement,
			"unrecognized placement %q (want top, bottom, left or right)", s)
	}
	return p, nil
}

// Valid reports whether p is one of the four recognized placements.
func (p Placement) Valid() bool {
	_, ok := strategies[p]
	return ok
}

func (p Placement) String() string { return string(p) }

// Next returns the placement after p in [Placements], wrapping around.
// Unrecognized placements return [DefaultPlacement].
func (p Placement) Next() Placement {
	for i, q := range Placements {
		if q == p {
			return Placements[(i+1)%len(Placements)]
		}
	}
	return DefaultPlacement
}

// Resolve returns the top-left corner for container so that it sits on
// side p of target, centered on the cross axis and Gap units away on the
// main axis. It is a pure function of its inputs.
func Resolve(p Placement, container, target Rect) (Point, error) {
	fn, ok := strategies[p]
	if !ok {
		return Point{}, errors.New(errors.ErrCodeUnrecognizedPlacement,
			"unrecognized placement %q (want top, bottom, left or right)", string(p))
	}
	return fn(container, target), nil
}
