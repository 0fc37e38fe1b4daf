package samples

import (
	"fmt"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// Water store keys.
const (
	WaterScope = "water"
	// KeyCount is the durable glass counter.
	KeyCount = "count"
	// KeyShowTask controls the walk reminder. It is ephemeral, so a
	// dismissed reminder comes back after reconstruction.
	KeyShowTask = "showTask"
	// MaxGlasses bounds the counter.
	MaxGlasses = 10
)

// Labels used by the water counter.
const (
	LabelAddOne     = "Add one"
	LabelClearWater = "Clear water count"
	LabelWalkTask   = "Have you taken your 15 minute walk today?"
	LabelClose      = "Close"
)

// GlassesLine is the text shown for a positive count.
func GlassesLine(count int) string {
	return fmt.Sprintf("You've had %d glasses.", count)
}

// WaterCounter owns the water store.
type WaterCounter struct {
	core.StatefulBase
}

func (WaterCounter) CreateState() core.State { return &waterCounterState{} }

type waterCounterState struct {
	core.StateBase
	store *state.Store
}

func (s *waterCounterState) InitState() {
	s.store = core.UseStore(s, WaterScope, DeclareWater)
}

// DeclareWater declares the water store's values.
func DeclareWater(st *state.Store) {
	st.DeclareCounter(KeyCount, MaxGlasses, state.Durable)
	st.DeclareFlag(KeyShowTask, true, state.Ephemeral)
}

func (s *waterCounterState) Build(ctx core.BuildContext) core.Widget {
	count := s.store.Counter(KeyCount)
	showTask := s.store.Flag(KeyShowTask)
	return CounterView{
		Count:       count.Value(),
		CanAdd:      count.CanIncrement(),
		ShowTask:    showTask.Value(),
		OnAdd:       count.Increment,
		OnClear:     count.Reset,
		OnCloseTask: func() { showTask.Set(false) },
	}
}

// CounterView renders the counter. It never reads the store.
type CounterView struct {
	core.StatelessBase
	Count       int
	CanAdd      bool
	ShowTask    bool
	OnAdd       func()
	OnClear     func()
	OnCloseTask func()
}

func (v CounterView) Build(ctx core.BuildContext) core.Widget {
	var children []core.Widget
	if v.Count > 0 {
		if v.ShowTask {
			children = append(children, TaskRow{
				Task:    state.Item{ID: -1, Label: LabelWalkTask},
				OnClose: v.OnCloseTask,
				NoCheck: true,
			})
		}
		children = append(children, widgets.Text{Content: GlassesLine(v.Count)})
	}
	children = append(children, widgets.Padded(layout.EdgeInsets{Top: 8}, widgets.Row{
		Spacing: 4,
		Children: []core.Widget{
			widgets.Button{Label: LabelAddOne, OnTap: v.OnAdd, Disabled: !v.CanAdd},
			widgets.Button{Label: LabelClearWater, OnTap: v.OnClear},
		},
	}))
	return widgets.PaddingAll(16, widgets.Column{Children: children})
}
