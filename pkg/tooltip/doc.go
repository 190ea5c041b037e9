// Package tooltip computes where a floating container attaches to an anchor.
//
// # Overview
//
// The package has two layers:
//
//   - [Resolve] maps a [Placement] and the current bounding boxes of the
//     container and the target to the container's top-left corner. The
//     container is centered on the target along the cross axis and pushed
//     [Gap] units away along the main axis.
//   - [ComputePosition] layers coordinate overrides on top of [Resolve].
//     Numeric offsets ([Abs]) are an absolute position used only when there
//     is no target. String offsets ([Delta]) are parsed and added to the
//     result either way.
//
// [Tooltip] wraps both into a component driven by a [Host]: once per render
// the host calls [Tooltip.Layout], which queries bounding boxes lazily,
// computes the position, asks the host to place the container, and only
// then asks the host to make it visible.
//
// # Example
//
//	target := tooltip.Rect{X: 100, Y: 50, Width: 40, Height: 20}
//	container := tooltip.Rect{Width: 80, Height: 30}
//	p, _ := tooltip.ComputePosition(tooltip.Abs(5), tooltip.Delta("2"), &target, container, tooltip.Bottom)
//	// p == tooltip.Point{X: 80, Y: 77}
//
// # Errors
//
// Errors carry codes from pkg/errors: UNRECOGNIZED_PLACEMENT, INVALID_OFFSET,
// INVALID_TARGET_KIND and MISSING_GEOMETRY. The last two are only produced
// during layout; hosts treat them as "do not draw this pass".
package tooltip
