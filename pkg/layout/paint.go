package layout

import (
	"github.com/go-drift/hoisting/pkg/gestures"
	"github.com/go-drift/hoisting/pkg/graphics"
)

// HitTestResult collects hit test entries, deepest first.
type HitTestResult struct {
	Entries []RenderObject
}

// Add appends a render object to the result.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// TapTarget is a render object that responds to taps.
type TapTarget interface {
	OnTap()
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
	if clearer, ok := child.(interface{ ClearNeedsPaint() }); ok {
		clearer.ClearNeedsPaint()
	}
}
