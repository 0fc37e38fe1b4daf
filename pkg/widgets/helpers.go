package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return size.Contains(position)
}

func setParentOnChild(child, parent layout.RenderObject) {
	layout.SetParentOnChild(child, parent)
}

func setChildFromRenderObject(child layout.RenderObject) layout.RenderBox {
	if child == nil {
		return nil
	}
	if box, ok := child.(layout.RenderBox); ok {
		return box
	}
	return nil
}

func toRenderBoxes(children []layout.RenderObject) []layout.RenderBox {
	boxes := make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box := setChildFromRenderObject(child); box != nil {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// Padded wraps a child with the specified padding.
func Padded(padding layout.EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, Child: child}
}

// PaddingAll wraps a child with uniform padding on all sides.
func PaddingAll(value float64, child core.Widget) Padding {
	return Padding{Padding: layout.EdgeInsetsAll(value), Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}

// Tap wraps a child with a tap handler.
func Tap(onTap func(), child core.Widget) GestureDetector {
	return GestureDetector{OnTap: onTap, Child: child}
}

// Keyed gives child a stable identity among its siblings.
func Keyed(key any, child core.Widget) KeyedSubtree {
	return KeyedSubtree{ID: key, Child: child}
}
