package samples

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// Section titles and entries of the layouts demo.
var (
	AlignYourBody = []string{
		"Inversions", "Quick yoga", "Stretching", "Tabata", "HIIT", "Pre-natal yoga",
	}
	FavoriteCollections = []string{
		"Short mantras", "Nature meditations", "Stress and anxiety",
		"Self-massage", "Overwhelmed", "Nightly wind down",
	}
)

const (
	LabelAlignYourBody       = "Align your body"
	LabelFavoriteCollections = "Favorite collections"
)

// LayoutsDemo stacks its sections with OwnColumn, the single-pass column
// layout. It has no state.
type LayoutsDemo struct {
	core.StatelessBase
}

func (LayoutsDemo) Build(ctx core.BuildContext) core.Widget {
	return widgets.Column{Children: []core.Widget{
		widgets.PaddingAll(16, widgets.OwnColumn{Children: []core.Widget{
			HomeSection{Title: LabelAlignYourBody, Entries: AlignYourBody},
			widgets.VSpace(16),
			HomeSection{Title: LabelFavoriteCollections, Entries: FavoriteCollections},
			widgets.VSpace(16),
			BasicColumn{Texts: []string{"Text1", "Text2", "Text3"}},
		}}),
	}}
}

// HomeSection is a title over its entries.
type HomeSection struct {
	core.StatelessBase
	Title   string
	Entries []string
}

func (h HomeSection) Build(ctx core.BuildContext) core.Widget {
	children := []core.Widget{
		widgets.Padded(layout.EdgeInsets{Bottom: 8}, widgets.Text{
			Content: h.Title,
			Style:   graphics.TextStyle{Color: graphics.ColorPurple, Bold: true},
		}),
	}
	for _, entry := range h.Entries {
		children = append(children, widgets.Padded(layout.EdgeInsets{Left: 8, Bottom: 2}, widgets.Text{Content: entry}))
	}
	return widgets.OwnColumn{Children: children}
}

// BasicColumn is a plain OwnColumn of texts on a colored background.
type BasicColumn struct {
	core.StatelessBase
	Texts []string
}

func (b BasicColumn) Build(ctx core.BuildContext) core.Widget {
	children := make([]core.Widget, len(b.Texts))
	for i, text := range b.Texts {
		children[i] = widgets.Text{Content: text}
	}
	return widgets.DecoratedBox{Color: graphics.ColorLavender, Child: widgets.OwnColumn{Children: children}}
}
