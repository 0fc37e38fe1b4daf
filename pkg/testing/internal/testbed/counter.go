// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/state"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// Counter owns a store with a durable "count" bounded by Max and an
// ephemeral "banner" flag, and shows them with stateless children.
type Counter struct {
	core.StatefulBase
	Max int
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	store *state.Store
}

func (s *counterState) InitState() {
	max := s.Element().Widget().(Counter).Max
	s.store = core.UseStore(s, "testbed", func(st *state.Store) {
		st.DeclareCounter("count", max, state.Durable)
		st.DeclareFlag("banner", true, state.Ephemeral)
	})
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	count := s.store.Counter("count")
	banner := s.store.Flag("banner")
	children := []core.Widget{
		widgets.Text{Content: fmt.Sprintf("%d", count.Value())},
		widgets.Button{Label: "more", OnTap: count.Increment, Disabled: !count.CanIncrement()},
	}
	if banner.Value() {
		children = append(children, widgets.Button{Label: "dismiss", OnTap: func() { banner.Set(false) }})
	}
	return widgets.Column{Children: children}
}
