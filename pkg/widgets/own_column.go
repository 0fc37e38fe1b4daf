package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// OwnColumn stacks children vertically with a single measuring pass: every
// child is measured against the column's own constraints and placed
// left-aligned below the previous one. See [layout.StackColumn].
//
// Unlike [Column] it does not loosen the height for its children, so a child
// that asks for more than the column may take ends up overlapping.
type OwnColumn struct {
	core.RenderObjectBase
	Children []core.Widget
}

func (o OwnColumn) ChildrenWidgets() []core.Widget { return o.Children }

func (o OwnColumn) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	col := &renderOwnColumn{}
	col.SetSelf(col)
	return col
}

func (o OwnColumn) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderOwnColumn struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *renderOwnColumn) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		setParentOnChild(child, nil)
	}
	r.children = toRenderBoxes(children)
	for _, child := range r.children {
		setParentOnChild(child, r)
	}
	r.MarkNeedsLayout()
}

func (r *renderOwnColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderOwnColumn) PerformLayout() {
	size, offsets := layout.StackColumn(r.children, r.Constraints())
	for i, child := range r.children {
		layout.PlaceChild(child, offsets[i])
	}
	r.SetSize(size)
}

func (r *renderOwnColumn) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (r *renderOwnColumn) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	layout.HitTestChildren(r.children, position, result)
	result.Add(r)
	return true
}
