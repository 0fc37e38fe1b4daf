// Package widgets provides the stateless building blocks the samples are
// composed from: text, buttons, checkboxes, padding, flex rows and columns,
// a custom single-pass column and a lazy keyed list.
//
// None of these widgets own hoisted data. Interactive ones take the current
// value as a field and report intent through a callback:
//
//	widgets.Checkbox{
//	    Value:     task.Checked,
//	    OnChanged: func(v bool) { store.ToggleItem("tasks", task.ID, v) },
//	}
package widgets
