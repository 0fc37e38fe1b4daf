package widgets

import (
	"math"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/gestures"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// ScrollController holds a vertical scroll position. The position is
// presentation state: it is not hoisted and resets on reconstruction.
type ScrollController struct {
	metrics *core.Observable[scrollMetrics]
}

// scrollMetrics is everything a listener may depend on.
type scrollMetrics struct {
	offset   float64
	viewport float64
	content  float64
}

func (m scrollMetrics) maxOffset() float64 {
	return math.Max(0, m.content-m.viewport)
}

// NewScrollController creates a controller at offset zero.
func NewScrollController() *ScrollController {
	c := &ScrollController{}
	c.init()
	return c
}

func (c *ScrollController) init() {
	if c.metrics == nil {
		c.metrics = core.NewObservableWithEquality(scrollMetrics{}, func(a, b scrollMetrics) bool {
			return a == b
		})
	}
}

func (c *ScrollController) current() scrollMetrics {
	c.init()
	return c.metrics.Value()
}

// Offset returns the current scroll offset.
func (c *ScrollController) Offset() float64 { return c.current().offset }

// ViewportExtent returns the visible extent, or zero before first layout.
func (c *ScrollController) ViewportExtent() float64 { return c.current().viewport }

// MaxOffset returns the largest valid offset.
func (c *ScrollController) MaxOffset() float64 { return c.current().maxOffset() }

// JumpTo moves to offset, clamped to the scrollable range.
func (c *ScrollController) JumpTo(offset float64) {
	m := c.current()
	m.offset = Clamp(offset, 0, m.maxOffset())
	c.metrics.Set(m)
}

// ScrollBy moves the position by delta.
func (c *ScrollController) ScrollBy(delta float64) {
	c.JumpTo(c.Offset() + delta)
}

// AddListener registers fn to run when the position or extents change.
func (c *ScrollController) AddListener(fn func()) func() {
	c.init()
	return c.metrics.AddListener(func(scrollMetrics) { fn() })
}

// setExtents is called from layout.
func (c *ScrollController) setExtents(viewport, content float64) {
	m := c.current()
	m.viewport = viewport
	m.content = content
	m.offset = Clamp(m.offset, 0, m.maxOffset())
	c.metrics.Set(m)
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// scrollViewport shows a vertical window of its child at the controller's
// offset.
type scrollViewport struct {
	core.RenderObjectBase
	Controller *ScrollController
	Child      core.Widget
}

func (s scrollViewport) ChildWidget() core.Widget { return s.Child }

func (s scrollViewport) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	vp := &renderViewport{}
	vp.SetSelf(vp)
	vp.setController(s.Controller)
	return vp
}

func (s scrollViewport) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if vp, ok := renderObject.(*renderViewport); ok {
		vp.setController(s.Controller)
	}
}

type renderViewport struct {
	layout.RenderBoxBase
	child      layout.RenderBox
	controller *ScrollController
	unsub      func()
	lastY      float64
	dragging   bool
}

func (r *renderViewport) setController(c *ScrollController) {
	if r.controller == c {
		return
	}
	if r.unsub != nil {
		r.unsub()
	}
	r.controller = c
	r.unsub = c.AddListener(r.MarkNeedsPaint)
}

// Dispose drops the controller subscription; a controller supplied by the
// caller may outlive the list.
func (r *renderViewport) Dispose() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

func (r *renderViewport) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = setChildFromRenderObject(child)
	setParentOnChild(r.child, r)
}

func (r *renderViewport) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderViewport) Child() layout.RenderObject {
	if r.child == nil {
		return nil
	}
	return r.child
}

func (r *renderViewport) PerformLayout() {
	c := r.Constraints()
	var content graphics.Size
	if r.child != nil {
		r.child.Layout(layout.Constraints{MinWidth: c.MinWidth, MaxWidth: c.MaxWidth, MaxHeight: math.Inf(1)}, true)
		content = r.child.Size()
	}
	height := content.Height
	viewport := 0.0
	if c.HasBoundedHeight() {
		height = c.MaxHeight
		viewport = c.MaxHeight
	}
	r.SetSize(c.Constrain(graphics.Size{Width: content.Width, Height: height}))
	r.controller.setExtents(viewport, content.Height)
}

// ChildPaintOffset is where the child is painted: scrolled, not placed.
func (r *renderViewport) ChildPaintOffset(child layout.RenderObject) graphics.Offset {
	return graphics.Offset{Y: -r.controller.Offset()}
}

func (r *renderViewport) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{Y: -r.controller.Offset()})
	}
}

func (r *renderViewport) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		r.child.HitTest(position.Add(graphics.Offset{Y: r.controller.Offset()}), result)
	}
	result.Add(r)
	return true
}

// HandlePointer scrolls with vertical drags.
func (r *renderViewport) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		r.dragging = true
		r.lastY = event.Position.Y
	case gestures.PointerPhaseMove:
		if !r.dragging {
			return
		}
		r.controller.ScrollBy(r.lastY - event.Position.Y)
		r.lastY = event.Position.Y
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		r.dragging = false
	}
}
