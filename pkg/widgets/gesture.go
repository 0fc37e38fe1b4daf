package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/gestures"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// GestureDetector turns a pointer sequence over its child into one OnTap
// call. With a nil OnTap the detector is transparent to hit testing, which
// is how disabled controls stop being tappable.
//
//	GestureDetector{
//	    OnTap: func() { store.Counter("count").Increment() },
//	    Child: Text{Content: "Add one"},
//	}
type GestureDetector struct {
	core.RenderObjectBase
	Child core.Widget
	OnTap func()
}

func (g GestureDetector) ChildWidget() core.Widget {
	return g.Child
}

func (g GestureDetector) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	detector := &renderGestureDetector{}
	detector.SetSelf(detector)
	detector.configure(g)
	return detector
}

func (g GestureDetector) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if detector, ok := renderObject.(*renderGestureDetector); ok {
		detector.configure(g)
	}
}

type renderGestureDetector struct {
	layout.RenderBoxBase
	child layout.RenderBox
	onTap func()
	tap   gestures.TapRecognizer
}

func (r *renderGestureDetector) configure(g GestureDetector) {
	r.onTap = g.OnTap
	// The recognizer reads through r so a rebuilt callback applies to a
	// sequence already in flight.
	r.tap.OnTap = r.OnTap
}

func (r *renderGestureDetector) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = setChildFromRenderObject(child)
	setParentOnChild(r.child, r)
}

func (r *renderGestureDetector) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderGestureDetector) Child() layout.RenderObject {
	if r.child == nil {
		return nil
	}
	return r.child
}

func (r *renderGestureDetector) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true)
	r.SetSize(r.child.Size())
	layout.PlaceChild(r.child, graphics.Offset{})
}

func (r *renderGestureDetector) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderGestureDetector) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	hit := false
	if r.child != nil {
		hit = r.child.HitTest(position, result)
	}
	if r.onTap == nil {
		return hit
	}
	result.Add(r)
	return true
}

// HandlePointer feeds the tap recognizer.
func (r *renderGestureDetector) HandlePointer(event gestures.PointerEvent) {
	r.tap.HandlePointer(event)
}

// OnTap fires the current callback.
func (r *renderGestureDetector) OnTap() {
	if r.onTap != nil {
		r.onTap()
	}
}
