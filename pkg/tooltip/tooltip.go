package tooltip

import (
	"context"
	"time"

	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/ident"
	"github.com/matzehuels/tipkit/pkg/observability"
)

// Element is a reference to a visual element owned by a host.
//
// ElementID must be safe to call on a nil receiver and return "" there; an
// element with an empty id is not a valid reference.
type Element interface {
	ElementID() string
}

// Geometry looks up the current bounding box of an element. ok is false
// when the element has no box yet, e.g. it is not attached.
type Geometry interface {
	Bounds(el Element) (r Rect, ok bool)
}

// Host owns the elements a Tooltip positions.
type Host interface {
	Geometry

	// Place moves el so that its top-left corner is at p.
	Place(el Element, p Point)

	// SetVisible shows or hides el.
	SetVisible(el Element, visible bool)
}

// Tooltip positions a container element next to a target. It is not safe
// for concurrent use; hosts drive it from their render loop.
type Tooltip struct {
	opts      Options
	container Element
	pos       Point
	visible   bool
}

// New creates a Tooltip for container. Options are validated here, so an
// unrecognized placement or unparseable string offset is reported before
// the first render.
func New(container Element, opts Options) (*Tooltip, error) {
	if !validElement(container) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "tooltip container must be a valid element")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if opts.ID == "" {
		opts.ID = ident.NewID("tip")
	}
	return &Tooltip{opts: opts, container: container}, nil
}

// ID returns the tooltip id.
func (t *Tooltip) ID() string { return t.opts.ID }

// Options returns a copy of the effective options.
func (t *Tooltip) Options() Options { return t.opts }

// Container returns the positioned element.
func (t *Tooltip) Container() Element { return t.container }

// Target returns the anchor element, or nil.
func (t *Tooltip) Target() Element { return t.opts.Target }

// Renderable reports whether the host should draw anything at all. It is
// false when a target is set but is not a valid element reference.
func (t *Tooltip) Renderable() bool {
	return t.opts.Target == nil || validElement(t.opts.Target)
}

// Visible reports whether the last successful layout pass made the
// container visible.
func (t *Tooltip) Visible() bool { return t.visible }

// Position returns the position applied by the last successful pass.
func (t *Tooltip) Position() Point { return t.pos }

// Layout runs one layout pass against h.
//
// Bounding boxes are queried fresh on every call. When the target is not a
// valid element, or a box is unavailable, the pass is skipped: nothing is
// placed, visibility is left as it was, and the returned error carries
// INVALID_TARGET_KIND or MISSING_GEOMETRY. Otherwise the container is
// placed first and made visible second.
func (t *Tooltip) Layout(ctx context.Context, h Host) (Point, error) {
	start := time.Now()
	hooks := observability.Layout()

	skip := func(err error) (Point, error) {
		hooks.OnLayoutSkipped(ctx, t.opts.ID, string(errors.GetCode(err)))
		return Point{}, err
	}

	if !t.Renderable() {
		return skip(errors.New(errors.ErrCodeInvalidTargetKind, "tooltip %s: target is not a valid element", t.opts.ID))
	}

	container, ok := h.Bounds(t.container)
	if !ok {
		return skip(errors.New(errors.ErrCodeMissingGeometry, "tooltip %s: container has no bounds", t.opts.ID))
	}

	var target *Rect
	if t.opts.Target != nil {
		r, ok := h.Bounds(t.opts.Target)
		if !ok {
			return skip(errors.New(errors.ErrCodeMissingGeometry,
				"tooltip %s: target %s has no bounds", t.opts.ID, t.opts.Target.ElementID()))
		}
		target = &r
	}

	p, err := ComputePosition(t.opts.X, t.opts.Y, target, container, t.opts.Placement)
	if err != nil {
		return skip(err)
	}

	h.Place(t.container, p)
	t.pos = p
	h.SetVisible(t.container, true)
	t.visible = true

	hooks.OnLayoutPass(ctx, t.opts.ID, string(t.opts.Placement), p.X, p.Y, time.Since(start))
	return p, nil
}

// Hide makes the container invisible until the next successful pass.
func (t *Tooltip) Hide(h Host) {
	h.SetVisible(t.container, false)
	t.visible = false
}

// SetTarget changes the anchor element.
func (t *Tooltip) SetTarget(el Element) { t.opts.Target = el }

// SetPlacement changes the placement. Unrecognized placements are rejected
// and leave the tooltip unchanged.
func (t *Tooltip) SetPlacement(p Placement) error {
	if !p.Valid() {
		return errors.New(errors.ErrCodeUnrecognizedPlacement,
			"unrecognized placement %q (want top, bottom, left or right)", string(p))
	}
	t.opts.Placement = p
	return nil
}

// SetOffsets changes the manual offsets. Unparseable string offsets are
// rejected and leave the tooltip unchanged.
func (t *Tooltip) SetOffsets(x, y Offset) error {
	if err := x.Validate(); err != nil {
		return err
	}
	if err := y.Validate(); err != nil {
		return err
	}
	t.opts.X, t.opts.Y = x, y
	return nil
}

// SetContent changes the container text.
func (t *Tooltip) SetContent(s string) { t.opts.Content = s }

func validElement(el Element) bool {
	return el != nil && el.ElementID() != ""
}
