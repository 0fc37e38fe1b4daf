package layout

import "github.com/go-drift/hoisting/pkg/graphics"

// ChildPainter is implemented by parents that paint a child somewhere other
// than its BoxParentData offset, such as a scrolled viewport.
type ChildPainter interface {
	ChildPaintOffset(child RenderObject) graphics.Offset
}

// GlobalOffset returns where target is painted relative to root, walking the
// render tree through ChildVisitor. It reports false if target is not in the
// subtree.
func GlobalOffset(root, target RenderObject) (graphics.Offset, bool) {
	if root == nil || target == nil {
		return graphics.Offset{}, false
	}
	if root == target {
		return graphics.Offset{}, true
	}
	visitor, ok := root.(ChildVisitor)
	if !ok {
		return graphics.Offset{}, false
	}
	var (
		found  bool
		result graphics.Offset
	)
	visitor.VisitChildren(func(child RenderObject) {
		if found {
			return
		}
		offset, ok := GlobalOffset(child, target)
		if !ok {
			return
		}
		base := ChildOffset(child)
		if painter, ok := root.(ChildPainter); ok {
			base = painter.ChildPaintOffset(child)
		}
		found = true
		result = base.Add(offset)
	})
	return result, found
}

// GlobalBounds returns target's painted rectangle relative to root.
func GlobalBounds(root, target RenderObject) (graphics.Rect, bool) {
	offset, ok := GlobalOffset(root, target)
	if !ok {
		return graphics.Rect{}, false
	}
	size := target.Size()
	return graphics.RectFromLTWH(offset.X, offset.Y, size.Width, size.Height), true
}
