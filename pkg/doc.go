// Package pkg provides the core libraries for tipkit tooltip placement.
//
// # Overview
//
// Tipkit decides where a tooltip container goes: next to a target element on
// one of four sides with a fixed 5 unit gap, or at manual coordinates when
// there is no target. String offsets nudge the result either way. The pkg
// directory is organized into three areas:
//
//  1. [tooltip] - Placement math and the per-tooltip layout pass
//  2. [screen], [config], [snapshot] - Terminal canvas, scene files, PNG output
//  3. [api] - HTTP service exposing the placement math
//
// # Architecture
//
// The typical data flow through tipkit:
//
//	scene file (TOML / YAML / JSON)
//	         ↓
//	    [config] package (decode + validate)
//	         ↓
//	    [screen] package (boxes, styles, canvas as layout host)
//	         ↓
//	    [tooltip] package (resolve placement, apply offsets)
//	         ↓
//	    terminal frame / PNG / JSON
//
// # Quick Start
//
// Compute a position directly:
//
//	import "github.com/matzehuels/tipkit/pkg/tooltip"
//
//	target := tooltip.Rect{X: 100, Y: 50, Width: 200, Height: 30}
//	container := tooltip.Rect{Width: 40, Height: 20}
//	p, _ := tooltip.ComputePosition(tooltip.Offset{}, tooltip.Delta("2"), &target, container, tooltip.Bottom)
//	// p == (180, 87)
//
// Draw a scene:
//
//	scene, _ := config.Load("scene.toml")
//	canvas, _ := scene.Build()
//	fmt.Println(canvas.Render(ctx))
//
// # Main Packages
//
// ## Placement
//
// [tooltip] - The Placement Resolver ([tooltip.Resolve]) and Position
// Calculator ([tooltip.ComputePosition]), plus [tooltip.Tooltip], which runs
// a layout pass against any host implementing [tooltip.Host].
//
// ## Terminal
//
// [screen] - A fixed-size cell canvas. Boxes are lipgloss-styled blocks;
// the canvas measures them for the layout pass and composes them by z-index,
// clipping at the edges.
//
// [config] - Scene files listing anchors and tooltips. Offsets keep their
// literal type across TOML, YAML and JSON.
//
// ## Output
//
// [snapshot] - PNG drawing of a single placement for debugging.
//
// [api] - chi-based HTTP service with /v1/resolve and /v1/position.
//
// ## Support
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for layout passes and HTTP requests.
//
// [ident], [textutil], [buildinfo] - Ids, display-width text helpers and
// version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                  # All tests
//	go test ./pkg/tooltip/...          # Specific package
//	go test -run Example ./pkg/...     # Examples only
//
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/tooltip
// [tooltip.Resolve]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/tooltip#Resolve
// [tooltip.ComputePosition]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/tooltip#ComputePosition
// [tooltip.Tooltip]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/tooltip#Tooltip
// [tooltip.Host]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/tooltip#Host
// [screen]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/screen
// [config]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/config
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/snapshot
// [api]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/observability
// [ident]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/ident
// [textutil]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/textutil
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tipkit/pkg/buildinfo
package pkg
