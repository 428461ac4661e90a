package scene

import (
	"github.com/tobyhogan/seasons-viewer-tool/internal/interaction"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
)

// PointerSink receives widget pointer events; *session.Session is one.
type PointerSink interface {
	Pointer(w session.Widget, kind session.PointerKind, p render.Point) (bool, interaction.Cursor, error)
}

// Router turns polled mouse state into pointer events. A press on a widget
// keeps sending moves to that widget until release, even once the pointer
// has left it.
type Router struct {
	layout  Layout
	sink    PointerSink
	active  session.Widget
	hovered session.Widget
	cursor  interaction.Cursor
}

// NewRouter routes to sink using l for hit testing.
func NewRouter(l Layout, sink PointerSink) *Router {
	return &Router{layout: l, sink: sink}
}

// Cursor is the shape reported by the last event.
func (r *Router) Cursor() interaction.Cursor { return r.cursor }

// Active is the widget holding the current press, if any.
func (r *Router) Active() (session.Widget, bool) { return r.active, r.active != "" }

func (r *Router) send(w session.Widget, kind session.PointerKind, x, y float64) bool {
	changed, cursor, err := r.sink.Pointer(w, kind, r.layout.Local(w, x, y))
	if err != nil {
		log.Warnf("pointer %s on %s: %v", kind, w, err)
		return false
	}
	r.cursor = cursor
	return changed
}

// Mouse feeds one frame of mouse state and reports whether the selection
// changed.
func (r *Router) Mouse(x, y float64, pressed, justPressed, justReleased bool) bool {
	changed := false
	under, inside := r.layout.WidgetAt(x, y)

	if r.hovered != "" && (!inside || under != r.hovered) && r.active == "" {
		r.send(r.hovered, session.PointerLeave, x, y)
		r.hovered = ""
		r.cursor = interaction.CursorDefault
	}

	switch {
	case justPressed && inside:
		r.active = under
		changed = r.send(under, session.PointerDown, x, y)
	case r.active != "" && pressed:
		changed = r.send(r.active, session.PointerMove, x, y)
	case inside && r.active == "":
		r.hovered = under
		changed = r.send(under, session.PointerMove, x, y)
	}

	if justReleased && r.active != "" {
		r.send(r.active, session.PointerUp, x, y)
		r.active = ""
		if inside {
			r.hovered = under
			r.send(under, session.PointerMove, x, y)
		} else {
			r.cursor = interaction.CursorDefault
		}
	}
	return changed
}
