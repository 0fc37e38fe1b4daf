package testbed

import (
	"time"

	"github.com/go-drift/hoisting/pkg/animation"
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// AnimatedBox animates its width from From to To over Duration.
type AnimatedBox struct {
	core.StatefulBase
	Duration time.Duration
	From     float64
	To       float64
	Height   float64
}

func (a AnimatedBox) CreateState() core.State {
	return &animatedBoxState{}
}

type animatedBoxState struct {
	core.StateBase
	controller *animation.Controller
	tween      animation.Tween[float64]
}

func (s *animatedBoxState) InitState() {
	w := s.Element().Widget().(AnimatedBox)
	s.controller = core.UseController(s, func() *animation.Controller {
		return animation.NewController(w.Duration)
	})
	core.UseListenable(s, s.controller)
	s.tween = animation.TweenFloat64(w.From, w.To)
	s.controller.Forward()
}

func (s *animatedBoxState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(AnimatedBox)
	return widgets.SizedBox{Width: s.tween.Transform(s.controller), Height: w.Height}
}
