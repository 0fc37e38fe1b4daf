package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// DecoratedBox paints a background and optional border behind its child.
type DecoratedBox struct {
	core.RenderObjectBase
	// Color fills the box. Zero paints nothing.
	Color graphics.Color
	// BorderColor strokes the outline. Zero means no border.
	BorderColor graphics.Color
	Child       core.Widget
}

func (d DecoratedBox) ChildWidget() core.Widget {
	return d.Child
}

func (d DecoratedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderDecoratedBox{color: d.Color, border: d.BorderColor}
	box.SetSelf(box)
	return box
}

func (d DecoratedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderDecoratedBox); ok && (box.color != d.Color || box.border != d.BorderColor) {
		box.color = d.Color
		box.border = d.BorderColor
		box.MarkNeedsPaint()
	}
}

type renderDecoratedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	color  graphics.Color
	border graphics.Color
}

func (r *renderDecoratedBox) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = setChildFromRenderObject(child)
	setParentOnChild(r.child, r)
}

func (r *renderDecoratedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderDecoratedBox) Child() layout.RenderObject {
	if r.child == nil {
		return nil
	}
	return r.child
}

func (r *renderDecoratedBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true)
	r.SetSize(r.child.Size())
	layout.PlaceChild(r.child, graphics.Offset{})
}

func (r *renderDecoratedBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	bounds := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	if r.color != 0 {
		ctx.Canvas.DrawRect(bounds, graphics.Paint{Color: r.color})
	}
	if r.border != 0 {
		ctx.Canvas.DrawRect(bounds, graphics.Paint{Color: r.border, Stroke: true})
	}
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderDecoratedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position, result)
	}
	result.Add(r)
	return true
}
