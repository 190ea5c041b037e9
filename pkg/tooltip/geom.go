package tooltip

import (
	"fmt"

	"github.com/matzehuels/tipkit/pkg/errors"
)

// Rect is an axis-aligned bounding box in viewport coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position in viewport coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Validate reports whether r is usable geometry: finite coordinates and
// non-negative finite dimensions. Zero-size rects are valid.
func (r Rect) Validate() error {
	if err := errors.ValidateCoordinate("x", r.X); err != nil {
		return err
	}
	if err := errors.ValidateCoordinate("y", r.Y); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", r.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("height", r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@(%g,%g)", r.Width, r.Height, r.X, r.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
