package layout

import (
	"math"
	"testing"

	"github.com/go-drift/hoisting/pkg/graphics"
)

type fixedBox struct {
	RenderBoxBase
	want    graphics.Size
	seen    Constraints
	layouts int
}

func newFixedBox(w, h float64) *fixedBox {
	b := &fixedBox{want: graphics.Size{Width: w, Height: h}}
	b.SetSelf(b)
	return b
}

func (b *fixedBox) PerformLayout() {
	b.layouts++
	b.seen = b.Constraints()
	b.SetSize(b.Constraints().Constrain(b.want))
}

func (b *fixedBox) Paint(ctx *PaintContext) {}

func (b *fixedBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !b.Size().Contains(position) {
		return false
	}
	result.Add(b)
	return true
}

func TestStackColumn(t *testing.T) {
	children := []RenderBox{newFixedBox(30, 10), newFixedBox(50, 20), newFixedBox(10, 5)}
	c := Loose(graphics.Size{Width: 200, Height: 200})

	size, offsets := StackColumn(children, c)

	if size != (graphics.Size{Width: 50, Height: 35}) {
		t.Errorf("size = %v, want 50x35", size)
	}
	want := []graphics.Offset{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 30}}
	for i, off := range offsets {
		if off != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, off, want[i])
		}
	}
	for i, child := range children {
		if got := child.(*fixedBox).seen; got != c {
			t.Errorf("child %d measured with %+v, want the column's own constraints", i, got)
		}
	}
}

func TestStackColumnClampsToConstraints(t *testing.T) {
	children := []RenderBox{newFixedBox(30, 80), newFixedBox(30, 80)}
	size, offsets := StackColumn(children, Loose(graphics.Size{Width: 100, Height: 100}))
	if size.Height != 100 {
		t.Errorf("height = %v, want clamped to 100", size.Height)
	}
	if offsets[1].Y != 80 {
		t.Errorf("second child at %v, want y=80 regardless of clamping", offsets[1])
	}
}

func TestStackColumnEmpty(t *testing.T) {
	size, offsets := StackColumn(nil, Constraints{MinWidth: 5, MaxWidth: 10, MinHeight: 3, MaxHeight: 10})
	if size != (graphics.Size{Width: 5, Height: 3}) || len(offsets) != 0 {
		t.Errorf("size = %v offsets = %v", size, offsets)
	}
}

func TestConstraints(t *testing.T) {
	c := Tight(graphics.Size{Width: 10, Height: 20})
	if !c.IsTight() {
		t.Error("Tight should be tight")
	}
	if c.Loosen().IsTight() {
		t.Error("Loosen should not be tight")
	}
	d := Loose(graphics.Size{Width: 100, Height: 50}).Deflate(EdgeInsetsSymmetric(10, 30))
	if d.MaxWidth != 80 || d.MaxHeight != 0 {
		t.Errorf("Deflate = %+v", d)
	}
	u := Loose(graphics.Size{Width: 100, Height: 50}).WithUnboundedHeight()
	if u.HasBoundedHeight() || !math.IsInf(u.MaxHeight, 1) {
		t.Errorf("WithUnboundedHeight = %+v", u)
	}
}

func TestLayoutSkipsCleanBox(t *testing.T) {
	b := newFixedBox(10, 10)
	c := Loose(graphics.Size{Width: 100, Height: 100})
	b.Layout(c, false)
	b.Layout(c, false)
	if b.layouts != 1 {
		t.Errorf("layouts = %d, want 1", b.layouts)
	}
	b.MarkNeedsLayout()
	b.Layout(c, false)
	if b.layouts != 2 {
		t.Errorf("layouts = %d after MarkNeedsLayout, want 2", b.layouts)
	}
}

func TestMarkNeedsLayoutPropagatesToRoot(t *testing.T) {
	owner := &PipelineOwner{}
	root := newFixedBox(100, 100)
	root.SetOwner(owner)
	child := newFixedBox(10, 10)
	SetParentOnChild(child, root)

	root.Layout(Loose(graphics.Size{Width: 100, Height: 100}), false)
	child.Layout(Loose(graphics.Size{Width: 100, Height: 100}), true)
	owner.FlushLayoutForRoot(root, Loose(graphics.Size{Width: 100, Height: 100}))
	if owner.NeedsLayout() {
		t.Fatal("owner should be clean after flush")
	}

	child.MarkNeedsLayout()
	if !root.NeedsLayout() || !owner.NeedsLayout() {
		t.Error("child layout should dirty the root and the owner")
	}
	if child.Depth() != 1 {
		t.Errorf("child depth = %d, want 1", child.Depth())
	}
}

func TestHitTestChildrenUsesOffsets(t *testing.T) {
	a := newFixedBox(10, 10)
	b := newFixedBox(10, 10)
	c := Loose(graphics.Size{Width: 100, Height: 100})
	a.Layout(c, true)
	b.Layout(c, true)
	PlaceChild(a, graphics.Offset{})
	PlaceChild(b, graphics.Offset{Y: 10})

	var result HitTestResult
	if !HitTestChildren([]RenderBox{a, b}, graphics.Offset{X: 5, Y: 15}, &result) {
		t.Fatal("expected a hit")
	}
	if len(result.Entries) != 1 || result.Entries[0] != b {
		t.Errorf("entries = %v, want [b]", result.Entries)
	}
}

type parentBox struct {
	fixedBox
	kids   []RenderBox
	scroll float64
}

func (p *parentBox) VisitChildren(visitor func(RenderObject)) {
	for _, k := range p.kids {
		visitor(k)
	}
}

type scrolledBox struct {
	parentBox
}

func (s *scrolledBox) ChildPaintOffset(child RenderObject) graphics.Offset {
	return graphics.Offset{Y: -s.scroll}
}

func TestGlobalBounds(t *testing.T) {
	leaf := newFixedBox(10, 10)
	leaf.Layout(Loose(graphics.Size{Width: 100, Height: 100}), false)
	PlaceChild(leaf, graphics.Offset{X: 5, Y: 7})

	inner := &scrolledBox{parentBox{kids: []RenderBox{leaf}, scroll: 3}}
	PlaceChild(inner, graphics.Offset{X: 20, Y: 30})
	root := &parentBox{kids: []RenderBox{newFixedBox(1, 1), inner}}

	// The scrolled parent ignores the leaf's placement in favour of its own
	// paint offset.
	got, ok := GlobalBounds(root, leaf)
	if !ok {
		t.Fatal("leaf should be found")
	}
	want := graphics.RectFromLTWH(20, 27, 10, 10)
	if got != want {
		t.Errorf("GlobalBounds = %+v, want %+v", got, want)
	}

	if _, ok := GlobalBounds(root, newFixedBox(1, 1)); ok {
		t.Error("a detached box should not be found")
	}
}
