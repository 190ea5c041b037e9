package tooltip

// ComputePosition returns the final top-left corner for a container.
//
// Precedence:
//  1. start at (0, 0)
//  2. numeric x and y replace the start values
//  3. if target is non-nil, the resolved position for placement replaces
//     both coordinates, discarding step 2
//  4. string x and y are parsed and added to the result
//
// placement is only consulted when target is non-nil.
func ComputePosition(x, y Offset, target *Rect, container Rect, placement Placement) (Point, error) {
	var p Point
	if x.IsAbs() {
		p.X = x.abs
	}
	if y.IsAbs() {
		p.Y = y.abs
	}

	if target != nil {
		resolved, err := Resolve(placement, container, *target)
		if err != nil {
			return Point{}, err
		}
		p = resolved
	}

	if x.IsDelta() {
		dx, err := parseDelta(x.delta)
		if err != nil {
			return Point{}, err
		}
		p.X += dx
	}
	if y.IsDelta() {
		dy, err := parseDelta(y.delta)
		if err != nil {
			return Point{}, err
		}
		p.Y += dy
	}
	return p, nil
}
