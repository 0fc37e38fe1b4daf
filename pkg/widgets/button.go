package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// Button is a filled, tappable label.
//
//	Button{
//	    Label:    "Add one",
//	    OnTap:    onIncrement,
//	    Disabled: count >= max,
//	}
//
// A disabled button is painted gray and ignores pointers entirely.
type Button struct {
	core.StatelessBase
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is tapped.
	OnTap func()
	// Disabled disables the button when true.
	Disabled bool
	// Color is the background color. Defaults to purple.
	Color graphics.Color
	// Padding defaults to symmetric(12, 6).
	Padding layout.EdgeInsets
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithDisabled returns a copy of the button with the given disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	color := b.Color
	if color == 0 {
		color = graphics.ColorPurple
	}
	padding := b.Padding
	if padding == (layout.EdgeInsets{}) {
		padding = layout.EdgeInsetsSymmetric(12, 6)
	}

	var onTap func()
	if b.Disabled {
		color = graphics.ColorGray
	} else {
		onTap = b.OnTap
	}

	return GestureDetector{
		OnTap: onTap,
		Child: DecoratedBox{
			Color: color,
			Child: Padding{
				Padding: padding,
				Child: Text{
					Content: b.Label,
					Style:   graphics.TextStyle{Color: graphics.ColorWhite},
				},
			},
		},
	}
}
