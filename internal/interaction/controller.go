// Package interaction turns raw pointer events into drags on a widget's dot.
// Each widget owns one Controller; the controller never draws, it only moves
// the target and tells listeners that something changed.
package interaction

import (
	"math"

	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
)

// Tolerance is how close, in pixels, a pointer must be to the dot or the
// circle edge to count as a hit.
const Tolerance = 10.0

// DragState is what the controller is currently doing.
type DragState int

const (
	Idle DragState = iota
	DraggingCircleDot
	DraggingCurveDot
)

func (s DragState) String() string {
	switch s {
	case DraggingCircleDot:
		return "dragging_circle_dot"
	case DraggingCurveDot:
		return "dragging_curve_dot"
	}
	return "idle"
}

// Cursor is the pointer shape a host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorGrabbing:
		return "grabbing"
	}
	return "default"
}

// Draggable is a widget with a single draggable dot.
type Draggable interface {
	// DotPosition is the dot's current center in widget pixels.
	DotPosition() render.Point
	// SetFromPointer moves the widget's value to the one under p and
	// reports whether it changed.
	SetFromPointer(p render.Point) bool
}

// EdgeTarget is implemented by widgets that also accept a click on an edge
// (the year circle's rim) as a one-shot jump.
type EdgeTarget interface {
	NearEdge(p render.Point, tolerance float64) bool
}

// Controller is the per-widget drag state machine.
type Controller struct {
	target    Draggable
	dragAs    DragState
	state     DragState
	cursor    Cursor
	tolerance float64
	listeners []func()
}

// New returns an idle controller for target. dragAs is the state reported
// while the target's dot is being dragged.
func New(target Draggable, dragAs DragState) *Controller {
	return &Controller{target: target, dragAs: dragAs, tolerance: Tolerance}
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Cursor returns the cursor the host should display.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.state != Idle }

// OnChange registers fn to run after every change of the target's value.
func (c *Controller) OnChange(fn func()) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) emit() {
	for _, fn := range c.listeners {
		fn()
	}
}

func (c *Controller) nearDot(p render.Point) bool {
	d := c.target.DotPosition()
	return math.Hypot(p.X-d.X, p.Y-d.Y) < c.tolerance
}

func (c *Controller) nearEdge(p render.Point) bool {
	edge, ok := c.target.(EdgeTarget)
	return ok && edge.NearEdge(p, c.tolerance)
}

// PointerDown starts a drag when p is on the dot, otherwise jumps the value
// when p is on the target's edge. It reports whether the value changed.
func (c *Controller) PointerDown(p render.Point) bool {
	if c.nearDot(p) {
		c.state = c.dragAs
		c.cursor = CursorGrabbing
		return false
	}
	if c.nearEdge(p) {
		changed := c.target.SetFromPointer(p)
		if changed {
			c.emit()
		}
		c.cursor = CursorPointer
		return changed
	}
	return false
}

// PointerMove follows the pointer while dragging and only updates the
// hover cursor while idle.
func (c *Controller) PointerMove(p render.Point) bool {
	if c.state == Idle {
		c.cursor = CursorDefault
		if c.nearDot(p) || c.nearEdge(p) {
			c.cursor = CursorPointer
		}
		return false
	}
	c.cursor = CursorGrabbing
	changed := c.target.SetFromPointer(p)
	if changed {
		c.emit()
	}
	return changed
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.state = Idle
	c.cursor = CursorDefault
}

// PointerLeave ends any drag when the pointer leaves the widget.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}
