package widgets

import (
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/errors"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

func init() {
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Error: err}
	})
}

// ErrorWidget is shown in place of a subtree whose build panicked.
type ErrorWidget struct {
	core.StatelessBase
	Error *errors.BuildError
}

var colorError = graphics.RGB(0xB3, 0x26, 0x1E)

func (e ErrorWidget) Build(ctx core.BuildContext) core.Widget {
	message := "Unknown error"
	if e.Error != nil {
		message = e.Error.Error()
	}
	return DecoratedBox{
		Color: colorError,
		Child: Padding{
			Padding: layout.EdgeInsetsAll(8),
			Child: Text{
				Content: message,
				Style:   graphics.TextStyle{Color: graphics.ColorWhite},
				Wrap:    true,
			},
		},
	}
}
