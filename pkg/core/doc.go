// Package core provides the widget, element and state lifecycle that the
// samples are built on.
//
// Widgets are immutable descriptions of part of the UI. Elements are the
// instantiation of a widget at a position in the tree and keep the identity
// of that position across rebuilds. A StatefulWidget's State lives on its
// element, so it survives rebuilds of its ancestors but not removal from the
// tree.
//
// # Hoisting
//
// State that several widgets read lives in the State of their lowest common
// ancestor, usually in a state.Store created with UseStore. Descendants are
// stateless and receive the current values and callbacks:
//
//	type counterState struct {
//	    core.StateBase
//	    store *state.Store
//	}
//
//	func (s *counterState) InitState() {
//	    s.store = core.UseStore(s, "water", func(st *state.Store) {
//	        st.DeclareCounter("count", 10, state.Durable)
//	    })
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    count := s.store.Counter("count")
//	    return CounterView{Count: count.Value(), OnIncrement: count.Increment}
//	}
//
// A store mutation marks the owning element dirty; BuildOwner.FlushBuild then
// rebuilds dirty elements parents-first and the rebuilt subtree re-derives
// everything from its inputs.
//
// # Keys
//
// Children of a multi-child widget are matched to existing elements by Key
// first and by position among unkeyed siblings second, so removing an item
// from a keyed list keeps the elements (and local state) of the others.
package core
