package layout

// PipelineOwner tracks whether the render tree needs layout or paint.
// Every dirty mark propagates to the root, so the owner only needs to know
// that a frame has work to do.
type PipelineOwner struct {
	needsLayout bool
	needsPaint  bool
}

// ScheduleLayout records that the tree needs layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint records that the tree needs paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out from the root with the given constraints.
// Clean subtrees with unchanged constraints skip layout.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root == nil {
		return
	}
	root.Layout(constraints, false)
	p.needsLayout = false
}

// FlushPaint clears the paint flag and reports whether paint was pending.
func (p *PipelineOwner) FlushPaint() bool {
	pending := p.needsPaint
	p.needsPaint = false
	return pending
}
