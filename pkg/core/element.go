package core

import (
	"reflect"
	"time"

	"github.com/go-drift/hoisting/pkg/errors"
	"github.com/go-drift/hoisting/pkg/layout"
)

type elementBase struct {
	widget       Widget
	parent       Element
	depth        int
	slot         any
	buildOwner   *BuildOwner
	dirty        bool
	self         Element
	mounted      bool
	renderParent *RenderObjectElement
}

func (e *elementBase) Widget() Widget { return e.widget }

func (e *elementBase) Depth() int { return e.depth }

func (e *elementBase) Owner() *BuildOwner { return e.buildOwner }

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element { return e.parent }

func (e *elementBase) setSelf(self Element) { e.self = self }

func (e *elementBase) setWidget(w Widget) { e.widget = w }

func (e *elementBase) setBuildOwner(owner *BuildOwner) { e.buildOwner = owner }

func (e *elementBase) isMounted() bool { return e.mounted }

func (e *elementBase) mountBase(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
		if e.buildOwner == nil {
			e.buildOwner = parent.Owner()
		}
	}
	e.mounted = true
}

// FindAncestor walks up the tree and returns the first element matching
// predicate, or nil.
func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		base, ok := current.(interface{ parentElement() Element })
		if !ok {
			break
		}
		current = base.parentElement()
	}
	return nil
}

// findRenderParent returns the nearest ancestor that owns a render object.
func (e *elementBase) findRenderParent() *RenderObjectElement {
	found := e.FindAncestor(func(el Element) bool {
		_, ok := el.(*RenderObjectElement)
		return ok
	})
	ro, _ := found.(*RenderObjectElement)
	return ro
}

// safeBuild runs buildFn, turning a panic into a reported BuildError and a
// fallback widget.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     widgetTypeName(e.widget),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr == nil {
		return built
	}
	errors.ReportBuildError(buildErr)
	if builder := GetErrorWidgetBuilder(); builder != nil {
		if w := builder(buildErr); w != nil {
			return w
		}
	}
	return nil
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an unmounted StatelessElement.
func NewStatelessElement() *StatelessElement {
	element := &StatelessElement{}
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.renderParent = e.findRenderParent()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget { return widget.Build(e) })
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// RenderObject returns the render object of the nearest render child.
func (e *StatelessElement) RenderObject() layout.RenderObject {
	return renderObjectOf(e.child)
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates an unmounted StatefulElement.
func NewStatefulElement() *StatefulElement {
	element := &StatefulElement{}
	element.setSelf(element)
	return element
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.renderParent = e.findRenderParent()
	e.state = e.widget.(StatefulWidget).CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget { return e.state.Build(e) })
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// State returns the element's state object.
func (e *StatefulElement) State() State { return e.state }

// RenderObject returns the render object of the nearest render child.
func (e *StatefulElement) RenderObject() layout.RenderObject {
	return renderObjectOf(e.child)
}

// RenderObjectElement hosts a RenderObject and its children.
type RenderObjectElement struct {
	elementBase
	renderObject layout.RenderObject
	children     []Element
}

// NewRenderObjectElement creates an unmounted RenderObjectElement.
func NewRenderObjectElement() *RenderObjectElement {
	element := &RenderObjectElement{}
	element.setSelf(element)
	return element
}

func (e *RenderObjectElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	widget := e.widget.(RenderObjectWidget)
	e.renderObject = widget.CreateRenderObject(e)
	if e.buildOwner != nil {
		e.renderObject.SetOwner(e.buildOwner.Pipeline())
	}
	e.renderParent = e.findRenderParent()
	if e.renderParent != nil {
		e.renderParent.insertRenderObjectChild(e.renderObject)
	}
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *RenderObjectElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *RenderObjectElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	if e.renderParent != nil {
		e.renderParent.removeRenderObjectChild(e.renderObject)
		e.renderParent = nil
	}
	if d, ok := e.renderObject.(Disposable); ok {
		d.Dispose()
	}
}

func (e *RenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(RenderObjectWidget)
	widget.UpdateRenderObject(e, e.renderObject)

	switch typed := e.widget.(type) {
	case interface{ ChildWidget() Widget }:
		var existing Element
		if len(e.children) > 0 {
			existing = e.children[0]
		}
		if child := updateChild(existing, typed.ChildWidget(), e, e.buildOwner); child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}
	case interface{ ChildrenWidgets() []Widget }:
		e.children = updateChildren(e.children, typed.ChildrenWidgets(), e, e.buildOwner)
		e.rebuildChildrenRenderList()
	}
}

func (e *RenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// RenderObject exposes the backing render object.
func (e *RenderObjectElement) RenderObject() layout.RenderObject {
	return e.renderObject
}

func (e *RenderObjectElement) insertRenderObjectChild(child layout.RenderObject) {
	if child == nil {
		return
	}
	if single, ok := e.renderObject.(interface{ SetChild(layout.RenderObject) }); ok {
		single.SetChild(child)
		return
	}
	e.scheduleRenderListRefresh()
}

func (e *RenderObjectElement) removeRenderObjectChild(child layout.RenderObject) {
	if child == nil {
		return
	}
	if single, ok := e.renderObject.(interface {
		SetChild(layout.RenderObject)
		Child() layout.RenderObject
	}); ok {
		if single.Child() == child {
			single.SetChild(nil)
		}
		return
	}
	e.scheduleRenderListRefresh()
}

// scheduleRenderListRefresh defers rebuilding the render children until the
// current build pass finishes, when every child element has settled.
func (e *RenderObjectElement) scheduleRenderListRefresh() {
	if e.buildOwner != nil && e.mounted {
		e.buildOwner.scheduleRenderListRefresh(e)
	}
}

// rebuildChildrenRenderList rebuilds render object children from element
// children, in element order.
func (e *RenderObjectElement) rebuildChildrenRenderList() {
	multi, ok := e.renderObject.(interface{ SetChildren([]layout.RenderObject) })
	if !ok {
		return
	}
	objects := make([]layout.RenderObject, 0, len(e.children))
	for _, child := range e.children {
		if ro := renderObjectOf(child); ro != nil {
			objects = append(objects, ro)
		}
	}
	multi.SetChildren(objects)
}

func renderObjectOf(element Element) layout.RenderObject {
	if element == nil {
		return nil
	}
	if provider, ok := element.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		existing.RebuildIfNeeded()
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

// updateChildren reconciles a child list. Keyed widgets reuse the old element
// with an equal key wherever it was; unkeyed widgets reuse unkeyed old
// elements in order. Old elements that are not reused are unmounted.
func updateChildren(old []Element, widgets []Widget, parent Element, owner *BuildOwner) []Element {
	keyed := make(map[any]Element)
	var unkeyed []Element
	for _, el := range old {
		if k, ok := usableKey(el.Widget()); ok {
			keyed[k] = el
		} else {
			unkeyed = append(unkeyed, el)
		}
	}

	updated := make([]Element, 0, len(widgets))
	next := 0
	for _, w := range widgets {
		if w == nil {
			continue
		}
		var existing Element
		if k, ok := usableKey(w); ok {
			if el, found := keyed[k]; found {
				existing = el
				delete(keyed, k)
			}
		} else if next < len(unkeyed) {
			existing = unkeyed[next]
			next++
		}
		if child := updateChild(existing, w, parent, owner); child != nil {
			updated = append(updated, child)
		}
	}

	for _, el := range keyed {
		el.Unmount()
	}
	for _, el := range unkeyed[next:] {
		el.Unmount()
	}
	return updated
}

func usableKey(w Widget) (any, bool) {
	if w == nil {
		return nil, false
	}
	k := w.Key()
	if k == nil || !reflect.TypeOf(k).Comparable() {
		return nil, false
	}
	return k, true
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}

// MountRoot inflates and mounts widget as the root of a new tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := inflateWidget(widget, owner)
	element.Mount(nil, nil)
	owner.flushRenderListRefresh()
	return element
}
