package layout

import "github.com/go-drift/hoisting/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset a parent assigned to a child.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes. Embed it and call
// SetSelf with the concrete value right after construction.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	owner       *PipelineOwner
	self        RenderObject
	parent      RenderObject
	depth       int
	needsLayout bool
	needsPaint  bool
	constraints Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size, marking paint dirty on change.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// MarkNeedsLayout marks this box and every ancestor as needing layout and
// schedules the root.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint marks this box as needing paint and propagates to the root.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.needsPaint && r.parent != nil {
		return
	}
	r.needsPaint = true
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// SetSelf registers the concrete render object.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and recomputes depth.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	switch getter := parent.(type) {
	case nil:
		r.depth = 0
	case interface{ Depth() int }:
		r.depth = getter.Depth() + 1
	default:
		r.depth = 1
	}
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout skips clean boxes whose constraints did not change and otherwise
// stores the constraints and calls the concrete PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object and
// marks both parents as needing layout when it changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	setter, ok := child.(interface {
		Parent() RenderObject
		SetParent(RenderObject)
	})
	if !ok {
		return
	}
	current := setter.Parent()
	if current == parent {
		return
	}
	setter.SetParent(parent)
	if current != nil {
		current.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// ChildOffset returns the offset stored in a child's BoxParentData.
func ChildOffset(child RenderObject) graphics.Offset {
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// PlaceChild stores offset in the child's BoxParentData.
func PlaceChild(child RenderObject, offset graphics.Offset) {
	if data, ok := child.ParentData().(*BoxParentData); ok {
		data.Offset = offset
		return
	}
	child.SetParentData(&BoxParentData{Offset: offset})
}

// HitTestChildren tests children last-to-first so the topmost painted child
// wins, translating position into each child's space.
func HitTestChildren(children []RenderBox, position graphics.Offset, result *HitTestResult) bool {
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if child.HitTest(position.Sub(ChildOffset(child)), result) {
			return true
		}
	}
	return false
}
