package layout

import (
	"math"

	"github.com/go-drift/hoisting/pkg/graphics"
)

// StackColumn is the single-pass vertical stacking algorithm behind
// widgets.OwnColumn.
//
// Every child is measured against the same constraints, independently of its
// siblings. The column is as wide as its widest child and as tall as the sum
// of its children's heights, clamped into constraints. Children are placed
// left-aligned at the running sum of the heights before them.
func StackColumn(children []RenderBox, constraints Constraints) (graphics.Size, []graphics.Offset) {
	offsets := make([]graphics.Offset, len(children))
	var width, height float64
	for i, child := range children {
		child.Layout(constraints, true)
		size := child.Size()
		offsets[i] = graphics.Offset{X: 0, Y: height}
		width = math.Max(width, size.Width)
		height += size.Height
	}
	return constraints.Constrain(graphics.Size{Width: width, Height: height}), offsets
}
