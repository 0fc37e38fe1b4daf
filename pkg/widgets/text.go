package widgets

import (
	"strings"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// Text displays a string in the framework's fixed face.
//
// Without Wrap the text is a single line that may overflow its constraints.
// With Wrap it breaks between words at the constraint width.
type Text struct {
	core.RenderObjectBase
	// Content is the text string to display.
	Content string
	// Style controls color and weight. A zero color paints black.
	Style graphics.TextStyle
	// Wrap enables word wrapping at the constraint width.
	Wrap bool
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{text: t.Content, style: t.Style, wrap: t.Wrap}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	text, ok := renderObject.(*renderText)
	if !ok {
		return
	}
	if text.text == t.Content && text.style == t.Style && text.wrap == t.Wrap {
		return
	}
	text.text = t.Content
	text.style = t.Style
	text.wrap = t.Wrap
	text.MarkNeedsLayout()
	text.MarkNeedsPaint()
}

type renderText struct {
	layout.RenderBoxBase
	text  string
	style graphics.TextStyle
	wrap  bool
	lines []string
}

func (r *renderText) PerformLayout() {
	constraints := r.Constraints()
	r.lines = []string{r.text}
	if r.wrap && constraints.MaxWidth > 0 {
		r.lines = wrapLines(r.text, constraints.MaxWidth)
	}
	var width float64
	for _, line := range r.lines {
		width = max(width, graphics.MeasureText(line).Width)
	}
	height := graphics.LineHeight() * float64(len(r.lines))
	r.SetSize(constraints.Constrain(graphics.Size{Width: width, Height: height}))
}

// wrapLines breaks text between words so each line fits maxWidth. A single
// word wider than maxWidth gets a line of its own.
func wrapLines(text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if graphics.MeasureText(candidate).Width <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

func (r *renderText) Paint(ctx *layout.PaintContext) {
	style := r.style
	if style.Color == 0 {
		style.Color = graphics.ColorBlack
	}
	lineHeight := graphics.LineHeight()
	for i, line := range r.lines {
		ctx.Canvas.DrawText(line, graphics.Offset{Y: float64(i) * lineHeight}, style)
	}
}

func (r *renderText) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

// Content exposes the painted string for finders.
func (r *renderText) Content() string { return r.text }
