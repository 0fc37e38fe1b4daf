package core

import "github.com/go-drift/hoisting/pkg/state"

// UseController creates a controller and registers it for automatic disposal.
//
//	func (s *greetingState) InitState() {
//	    s.expand = core.UseController(s, func() *animation.Controller {
//	        return animation.NewController(300 * time.Millisecond)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is removed when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseStore creates the hoisted store for scope, lets declare register its
// values, and attaches it to the tree's restoration registry so durable
// values survive reconstruction. Every change to the store rebuilds s.
//
// Call it once in InitState. The store is detached when s is disposed.
//
//	func (s *waterState) InitState() {
//	    s.store = core.UseStore(s, "water", func(st *state.Store) {
//	        st.DeclareCounter("count", 10, state.Durable)
//	    })
//	}
func UseStore(s stateBase, scope string, declare func(*state.Store)) *state.Store {
	base := s.state()
	store := state.NewStore(scope)
	if declare != nil {
		declare(store)
	}

	var registry *state.Registry
	if el := base.Element(); el != nil && el.Owner() != nil {
		registry = el.Owner().Restoration()
	}
	if registry != nil {
		registry.Attach(store)
	}

	unsub := store.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(func() {
		unsub()
		if registry != nil {
			registry.Detach(store)
		}
	})
	return store
}
