package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// Checkbox is a controlled check control. It shows Value and reports the
// requested new value through OnChanged; it never flips itself.
type Checkbox struct {
	core.StatelessBase
	Value     bool
	OnChanged func(bool)
	Disabled  bool
}

func (c Checkbox) Build(ctx core.BuildContext) core.Widget {
	mark := "[ ]"
	if c.Value {
		mark = "[x]"
	}
	var onTap func()
	if !c.Disabled && c.OnChanged != nil {
		value, changed := c.Value, c.OnChanged
		onTap = func() { changed(!value) }
	}
	color := graphics.ColorPurple
	if c.Disabled {
		color = graphics.ColorGray
	}
	return GestureDetector{
		OnTap: onTap,
		Child: Padding{
			Padding: layout.EdgeInsetsAll(4),
			Child:   Text{Content: mark, Style: graphics.TextStyle{Color: color, Bold: c.Value}},
		},
	}
}
