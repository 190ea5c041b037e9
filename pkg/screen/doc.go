// Package screen is a terminal host for tooltips.
//
// A [Canvas] is a fixed grid of cells holding [Box] elements. Boxes are
// styled with lipgloss and measured after rendering, so a tooltip's size is
// only known once its content has been styled, which is exactly the
// situation the placement engine is built for.
//
// Every call to [Canvas.Render] is one layout pass: each tooltip's container
// is restyled from its options, measured, positioned through
// [tooltip.Tooltip.Layout], and then all visible boxes are drawn in z-index
// order. Cells that fall outside the canvas are clipped; nothing is moved
// back on screen.
//
// # Styling
//
// Tooltip options carry a space separated class list and a map of style
// properties. Classes come from a [Theme]; properties are:
//
//	foreground, color, background, border (none|normal|rounded|double|thick|hidden|block),
//	border-foreground, border-color, padding, margin, bold, italic, underline,
//	faint, align (left|center|right), width, max-width
package screen
