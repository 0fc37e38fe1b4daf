package samples

import (
	"slices"

	"github.com/go-drift/hoisting/pkg/core"
)

// Sample is a named screen the CLI can mount.
type Sample struct {
	Name        string
	Description string
	New         func() core.Widget
}

var registry = []Sample{
	{Name: "water", Description: "bounded counter with an ephemeral reminder", New: func() core.Widget { return WaterCounter{} }},
	{Name: "wellness", Description: "water counter over a keyed, lazy task list", New: func() core.Widget { return WellnessScreen{} }},
	{Name: "basics", Description: "onboarding flag and expandable greetings", New: func() core.Widget { return BasicsApp{} }},
	{Name: "layouts", Description: "sections stacked by the single-pass column", New: func() core.Widget { return LayoutsDemo{} }},
}

// All returns every sample in display order.
func All() []Sample {
	return slices.Clone(registry)
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, bool) {
	i := slices.IndexFunc(registry, func(s Sample) bool { return s.Name == name })
	if i < 0 {
		return Sample{}, false
	}
	return registry[i], true
}

// Names returns the sample names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}
