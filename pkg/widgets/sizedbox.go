package widgets

import (
	"math"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// SizedBox forces a fixed width and/or height. A zero dimension follows the
// child (or collapses to zero without one).
type SizedBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok && (box.width != s.Width || box.height != s.Height) {
		box.width = s.Width
		box.height = s.Height
		box.MarkNeedsLayout()
	}
}

type renderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = setChildFromRenderObject(child)
	setParentOnChild(r.child, r)
}

func (r *renderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSizedBox) Child() layout.RenderObject {
	if r.child == nil {
		return nil
	}
	return r.child
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()
	inner := constraints
	if r.width > 0 {
		w := clampDim(r.width, constraints.MinWidth, constraints.MaxWidth)
		inner.MinWidth, inner.MaxWidth = w, w
	}
	if r.height > 0 {
		h := clampDim(r.height, constraints.MinHeight, constraints.MaxHeight)
		inner.MinHeight, inner.MaxHeight = h, h
	}

	var size graphics.Size
	if r.child != nil {
		r.child.Layout(inner, true)
		size = r.child.Size()
		layout.PlaceChild(r.child, graphics.Offset{})
	}
	if r.width > 0 {
		size.Width = inner.MaxWidth
	}
	if r.height > 0 {
		size.Height = inner.MaxHeight
	}
	r.SetSize(constraints.Constrain(size))
}

func clampDim(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func (r *renderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderSizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}
