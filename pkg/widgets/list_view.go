package widgets

import (
	"math"

	"github.com/go-drift/hoisting/pkg/core"
)

// ListView builds list items on demand. Only items whose extent intersects
// the viewport (plus CacheExtent) are built; the rest are stood in for by
// spacers.
//
// Items should be keyed by a stable id so that removing one item does not
// rebind the elements of the items after it:
//
//	ListView{
//	    ItemCount:  len(tasks),
//	    ItemExtent: 40,
//	    ItemBuilder: func(ctx core.BuildContext, i int) core.Widget {
//	        return TaskRow{Task: tasks[i], ...} // TaskRow.Key() returns the id
//	    },
//	}
//
// ItemExtent must be set for laziness. Without it, or before the viewport is
// known, every item is built.
type ListView struct {
	core.StatefulBase
	ItemCount   int
	ItemBuilder func(ctx core.BuildContext, index int) core.Widget
	ItemExtent  float64
	CacheExtent float64
	// Controller is optional. One is created when nil.
	Controller *ScrollController
}

func (l ListView) CreateState() core.State {
	return &listViewState{}
}

type listViewState struct {
	core.StateBase
	controller     *ScrollController
	removeListener func()
	visibleStart   int
	visibleEnd     int
}

func (s *listViewState) InitState() {
	widget := s.widget()
	s.attach(widget.Controller)
	s.updateVisibleRange(widget)
}

func (s *listViewState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	widget := s.widget()
	if old, ok := oldWidget.(ListView); ok && old.Controller != widget.Controller {
		s.attach(widget.Controller)
	}
	s.updateVisibleRange(widget)
}

func (s *listViewState) Dispose() {
	if s.removeListener != nil {
		s.removeListener()
		s.removeListener = nil
	}
	s.StateBase.Dispose()
}

func (s *listViewState) widget() ListView {
	return s.Element().Widget().(ListView)
}

func (s *listViewState) attach(controller *ScrollController) {
	if s.removeListener != nil {
		s.removeListener()
	}
	if controller == nil {
		controller = NewScrollController()
	}
	s.controller = controller
	s.removeListener = controller.AddListener(func() {
		if s.updateVisibleRange(s.widget()) {
			s.SetState(nil)
		}
	})
}

func (s *listViewState) updateVisibleRange(widget ListView) bool {
	start, end := widget.visibleRange(s.controller)
	if start == s.visibleStart && end == s.visibleEnd {
		return false
	}
	s.visibleStart, s.visibleEnd = start, end
	return true
}

func (s *listViewState) Build(ctx core.BuildContext) core.Widget {
	widget := s.widget()
	s.updateVisibleRange(widget)
	return scrollViewport{
		Controller: s.controller,
		Child:      Column{Children: widget.buildChildren(ctx, s.visibleStart, s.visibleEnd)},
	}
}

func (l ListView) buildChildren(ctx core.BuildContext, start, end int) []core.Widget {
	if l.ItemBuilder == nil || l.ItemCount <= 0 {
		return nil
	}
	children := make([]core.Widget, 0, end-start+2)
	if start > 0 {
		children = append(children, SizedBox{Height: float64(start) * l.ItemExtent})
	}
	for i := start; i < end; i++ {
		children = append(children, l.wrapItem(l.ItemBuilder(ctx, i)))
	}
	if trailing := l.ItemCount - end; trailing > 0 && l.ItemExtent > 0 {
		children = append(children, SizedBox{Height: float64(trailing) * l.ItemExtent})
	}
	return children
}

// wrapItem fixes the item's extent while keeping its key, so keyed
// reconciliation still sees the item's identity.
func (l ListView) wrapItem(child core.Widget) core.Widget {
	if l.ItemExtent <= 0 || child == nil {
		return child
	}
	return extentBox{id: child.Key(), extent: l.ItemExtent, child: child}
}

func (l ListView) visibleRange(controller *ScrollController) (int, int) {
	if l.ItemCount <= 0 {
		return 0, 0
	}
	if l.ItemExtent <= 0 || controller == nil || controller.ViewportExtent() <= 0 {
		return 0, l.ItemCount
	}
	cache := math.Max(0, l.CacheExtent)
	offset := controller.Offset()
	startIndex := int(math.Floor((offset - cache) / l.ItemExtent))
	endIndex := int(math.Ceil((offset + controller.ViewportExtent() + cache) / l.ItemExtent))
	startIndex = max(startIndex, 0)
	endIndex = min(endIndex, l.ItemCount)
	endIndex = max(endIndex, startIndex)
	return startIndex, endIndex
}

type extentBox struct {
	id     any
	extent float64
	child  core.Widget
}

func (e extentBox) CreateElement() core.Element { return core.NewStatelessElement() }

func (e extentBox) Key() any { return e.id }

func (e extentBox) Build(ctx core.BuildContext) core.Widget {
	return SizedBox{Height: e.extent, Child: e.child}
}
