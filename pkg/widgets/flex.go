package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// Axis represents the layout direction. AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment positions children along the main axis (horizontal for
// Row, vertical for Column).
type MainAxisAlignment int

const (
	MainAxisAlignmentStart MainAxisAlignment = iota
	MainAxisAlignmentEnd
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween puts all free space between children.
	MainAxisAlignmentSpaceBetween
)

func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment positions children along the cross axis.
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentCenter
)

func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentCenter:
		return "center"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Row lays out children horizontally. Children get unbounded width; an
// [Expanded] child shares the width left over when the row is bounded.
type Row struct {
	core.RenderObjectBase
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	// Spacing is the gap between adjacent children.
	Spacing float64
}

func (r Row) ChildrenWidgets() []core.Widget { return r.Children }

func (r Row) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{direction: AxisHorizontal}
	flex.SetSelf(flex)
	flex.configure(r.MainAxisAlignment, r.CrossAxisAlignment, r.Spacing)
	return flex
}

func (r Row) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		flex.configure(r.MainAxisAlignment, r.CrossAxisAlignment, r.Spacing)
	}
}

// Column lays out children vertically, start-aligned. Children get
// unbounded height; an [Expanded] child shares the height left over when the
// column is bounded.
type Column struct {
	core.RenderObjectBase
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	Spacing            float64
}

func (c Column) ChildrenWidgets() []core.Widget { return c.Children }

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{direction: AxisVertical}
	flex.SetSelf(flex)
	flex.configure(c.MainAxisAlignment, c.CrossAxisAlignment, c.Spacing)
	return flex
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		flex.configure(c.MainAxisAlignment, c.CrossAxisAlignment, c.Spacing)
	}
}

// Expanded makes its child fill a share of the free space in a Row or
// Column. Outside a flex it behaves like its child.
type Expanded struct {
	core.RenderObjectBase
	// Flex is the share factor. Zero means 1.
	Flex  int
	Child core.Widget
}

func (e Expanded) ChildWidget() core.Widget { return e.Child }

func (e Expanded) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderExpanded{flex: e.Flex}
	box.SetSelf(box)
	return box
}

func (e Expanded) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderExpanded); ok && box.flex != e.Flex {
		box.flex = e.Flex
		box.MarkNeedsLayout()
	}
}

type renderExpanded struct {
	renderDecoratedBox
	flex int
}

func (r *renderExpanded) flexFactor() int {
	if r.flex <= 0 {
		return 1
	}
	return r.flex
}

type renderFlex struct {
	layout.RenderBoxBase
	children  []layout.RenderBox
	direction Axis
	main      MainAxisAlignment
	cross     CrossAxisAlignment
	spacing   float64
}

func (r *renderFlex) configure(main MainAxisAlignment, cross CrossAxisAlignment, spacing float64) {
	if r.main == main && r.cross == cross && r.spacing == spacing {
		return
	}
	r.main, r.cross, r.spacing = main, cross, spacing
	r.MarkNeedsLayout()
}

func (r *renderFlex) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		setParentOnChild(child, nil)
	}
	r.children = toRenderBoxes(children)
	for _, child := range r.children {
		setParentOnChild(child, r)
	}
	r.MarkNeedsLayout()
}

func (r *renderFlex) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

// mainOf and crossOf read a size along this flex's axes.
func (r *renderFlex) mainOf(s graphics.Size) float64 {
	if r.direction == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (r *renderFlex) crossOf(s graphics.Size) float64 {
	if r.direction == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func (r *renderFlex) constraintsFor(mainMin, mainMax, crossMax float64) layout.Constraints {
	if r.direction == AxisHorizontal {
		return layout.Constraints{MinWidth: mainMin, MaxWidth: mainMax, MaxHeight: crossMax}
	}
	return layout.Constraints{MaxWidth: crossMax, MinHeight: mainMin, MaxHeight: mainMax}
}

func (r *renderFlex) PerformLayout() {
	c := r.Constraints()
	maxMain, maxCross := c.MaxHeight, c.MaxWidth
	if r.direction == AxisHorizontal {
		maxMain, maxCross = c.MaxWidth, c.MaxHeight
	}
	bounded := !math.IsInf(maxMain, 1)

	gaps := 0.0
	if len(r.children) > 1 {
		gaps = r.spacing * float64(len(r.children)-1)
	}
	allocated := gaps
	totalFlex := 0
	var crossSize float64
	for _, child := range r.children {
		if f := flexOf(child); f > 0 && bounded {
			totalFlex += f
			continue
		}
		child.Layout(r.constraintsFor(0, math.Inf(1), maxCross), true)
		allocated += r.mainOf(child.Size())
		crossSize = math.Max(crossSize, r.crossOf(child.Size()))
	}
	if totalFlex > 0 {
		free := math.Max(0, maxMain-allocated)
		for _, child := range r.children {
			f := flexOf(child)
			if f == 0 {
				continue
			}
			share := free * float64(f) / float64(totalFlex)
			child.Layout(r.constraintsFor(share, share, maxCross), true)
			allocated += share
			crossSize = math.Max(crossSize, r.crossOf(child.Size()))
		}
	}

	mainSize := allocated
	if bounded && (totalFlex > 0 || r.main != MainAxisAlignmentStart) {
		mainSize = maxMain
	}
	var size graphics.Size
	if r.direction == AxisHorizontal {
		size = c.Constrain(graphics.Size{Width: mainSize, Height: crossSize})
	} else {
		size = c.Constrain(graphics.Size{Width: crossSize, Height: mainSize})
	}
	r.SetSize(size)

	free := math.Max(0, r.mainOf(size)-allocated)
	leading, between := 0.0, r.spacing
	switch r.main {
	case MainAxisAlignmentEnd:
		leading = free
	case MainAxisAlignmentCenter:
		leading = free / 2
	case MainAxisAlignmentSpaceBetween:
		if len(r.children) > 1 {
			between += free / float64(len(r.children)-1)
		}
	}

	pos := leading
	for _, child := range r.children {
		crossPos := 0.0
		if r.cross == CrossAxisAlignmentCenter {
			crossPos = (r.crossOf(size) - r.crossOf(child.Size())) / 2
		}
		if r.direction == AxisHorizontal {
			layout.PlaceChild(child, graphics.Offset{X: pos, Y: crossPos})
		} else {
			layout.PlaceChild(child, graphics.Offset{X: crossPos, Y: pos})
		}
		pos += r.mainOf(child.Size()) + between
	}
}

func flexOf(child layout.RenderBox) int {
	if f, ok := child.(interface{ flexFactor() int }); ok {
		return f.flexFactor()
	}
	return 0
}

func (r *renderFlex) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (r *renderFlex) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	layout.HitTestChildren(r.children, position, result)
	result.Add(r)
	return true
}
