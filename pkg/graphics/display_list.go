package graphics

import (
	"fmt"
	"strings"
)

// DisplayList is an immutable recording of drawing operations, stored in
// absolute coordinates.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// DisplayOp is one recorded drawing operation.
type DisplayOp struct {
	// Text is set for text ops; empty for rectangles.
	Text  string
	Rect  Rect
	Paint Paint
	Style TextStyle
}

// IsText reports whether the op draws text.
func (op DisplayOp) IsText() bool { return op.Text != "" }

// Ops returns the recorded operations in paint order.
func (d *DisplayList) Ops() []DisplayOp {
	if d == nil {
		return nil
	}
	return d.ops
}

// Size returns the canvas size the list was recorded at.
func (d *DisplayList) Size() Size {
	if d == nil {
		return Size{}
	}
	return d.size
}

// Texts returns every painted string in paint order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, op := range d.Ops() {
		if op.IsText() {
			out = append(out, op.Text)
		}
	}
	return out
}

// Paint replays the list onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.Ops() {
		if op.IsText() {
			canvas.DrawText(op.Text, Offset{X: op.Rect.Left, Y: op.Rect.Top}, op.Style)
			continue
		}
		canvas.DrawRect(op.Rect, op.Paint)
	}
}

// String renders one line per text op, top to bottom, which is what the
// CLI prints and what tests compare against.
func (d *DisplayList) String() string {
	var sb strings.Builder
	for _, op := range d.Ops() {
		if !op.IsText() {
			continue
		}
		fmt.Fprintf(&sb, "%s %q\n", Offset{X: op.Rect.Left, Y: op.Rect.Top}, op.Text)
	}
	return sb.String()
}

// PictureRecorder records drawing commands into a DisplayList.
type PictureRecorder struct {
	canvas *recordingCanvas
}

// BeginRecording starts a new recording and returns its canvas.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.canvas = &recordingCanvas{size: size}
	return r.canvas
}

// EndRecording finishes the recording. Calling it without BeginRecording
// returns an empty list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if r.canvas == nil {
		return &DisplayList{}
	}
	list := &DisplayList{ops: r.canvas.ops, size: r.canvas.size}
	r.canvas = nil
	return list
}

type recordingCanvas struct {
	ops    []DisplayOp
	size   Size
	origin Offset
	stack  []Offset
}

func (c *recordingCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

func (c *recordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(Offset{X: dx, Y: dy})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.ops = append(c.ops, DisplayOp{Rect: rect.Translate(c.origin), Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	if text == "" {
		return
	}
	size := MeasureText(text)
	rect := RectFromLTWH(position.X, position.Y, size.Width, size.Height).Translate(c.origin)
	c.ops = append(c.ops, DisplayOp{Text: text, Rect: rect, Style: style})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
