package graphics

// Paint describes how a shape is drawn.
type Paint struct {
	Color Color
	// Stroke draws only the outline when true.
	Stroke bool
}

// Canvas receives drawing commands in local coordinates.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	DrawRect(rect Rect, paint Paint)
	DrawText(text string, position Offset, style TextStyle)
	Size() Size
}
