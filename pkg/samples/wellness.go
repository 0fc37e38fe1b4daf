package samples

import (
	"fmt"

	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// Wellness store keys.
const (
	WellnessScope = "wellness"
	KeyTasks      = "tasks"
	// TaskCount is the number of tasks created when the store is declared.
	TaskCount = 30
	// TaskExtent is the fixed row height of the task list.
	TaskExtent = 40
)

// WellnessTasks returns the initial task list, "Task # 0" to "Task # 29".
func WellnessTasks() []state.Item {
	items := make([]state.Item, TaskCount)
	for i := range items {
		items[i] = state.Item{ID: i, Label: fmt.Sprintf("Task # %d", i)}
	}
	return items
}

// DeclareWellness declares the wellness store's values.
func DeclareWellness(st *state.Store) {
	st.DeclareCollection(KeyTasks, WellnessTasks(), state.Durable)
}

// WellnessScreen shows the water counter above the task list. It owns the
// task collection; the counter owns its own store.
type WellnessScreen struct {
	core.StatefulBase
}

func (WellnessScreen) CreateState() core.State { return &wellnessScreenState{} }

type wellnessScreenState struct {
	core.StateBase
	store *state.Store
}

func (s *wellnessScreenState) InitState() {
	s.store = core.UseStore(s, WellnessScope, DeclareWellness)
}

func (s *wellnessScreenState) Build(ctx core.BuildContext) core.Widget {
	store := s.store
	return widgets.Column{Children: []core.Widget{
		WaterCounter{},
		widgets.Expanded{Child: widgets.Padded(layout.EdgeInsets{Top: 16}, TaskList{
			Tasks: store.Collection(KeyTasks).Items(),
			OnCheckedChange: func(id int, checked bool) {
				store.ToggleItem(KeyTasks, id, checked)
			},
			OnClose: func(id int) {
				store.RemoveItem(KeyTasks, id)
			},
		})},
	}}
}

// TaskList is a lazy list of task rows keyed by task id.
type TaskList struct {
	core.StatelessBase
	Tasks           []state.Item
	OnCheckedChange func(id int, checked bool)
	OnClose         func(id int)
}

func (l TaskList) Build(ctx core.BuildContext) core.Widget {
	return widgets.ListView{
		ItemCount:  len(l.Tasks),
		ItemExtent: TaskExtent,
		ItemBuilder: func(ctx core.BuildContext, i int) core.Widget {
			task := l.Tasks[i]
			return TaskRow{
				Task: task,
				OnCheckedChange: func(checked bool) {
					if l.OnCheckedChange != nil {
						l.OnCheckedChange(task.ID, checked)
					}
				},
				OnClose: func() {
					if l.OnClose != nil {
						l.OnClose(task.ID)
					}
				},
			}
		},
	}
}

// TaskRow shows one task with a checkbox and a close button.
type TaskRow struct {
	core.StatelessBase
	Task            state.Item
	OnCheckedChange func(bool)
	OnClose         func()
	// NoCheck hides the checkbox, for reminders that can only be closed.
	NoCheck bool
}

// Key is the task id, so rows keep their elements when an earlier row is
// removed.
func (r TaskRow) Key() any { return r.Task.ID }

func (r TaskRow) Build(ctx core.BuildContext) core.Widget {
	children := []core.Widget{
		widgets.Expanded{Child: widgets.Padded(layout.EdgeInsets{Left: 16}, widgets.Text{Content: r.Task.Label, Wrap: true})},
	}
	if !r.NoCheck {
		children = append(children, widgets.Checkbox{Value: r.Task.Checked, OnChanged: r.OnCheckedChange})
	}
	children = append(children, widgets.ButtonOf(LabelClose, r.OnClose))
	return widgets.Row{
		CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		Spacing:            4,
		Children:           children,
	}
}
