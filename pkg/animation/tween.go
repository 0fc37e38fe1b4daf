package animation

import (
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// Tween maps a controller's [0, 1] value onto a range of T.
type Tween[T any] struct {
	Begin T
	End   T
	Lerp  func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value)
}

// TweenFloat64 creates a float tween.
func TweenFloat64(begin, end float64) Tween[float64] {
	return Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenEdgeInsets creates an insets tween, used for animated padding.
func TweenEdgeInsets(begin, end layout.EdgeInsets) Tween[layout.EdgeInsets] {
	return Tween[layout.EdgeInsets]{Begin: begin, End: end, Lerp: LerpEdgeInsets}
}

// LerpFloat64 linearly interpolates between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpEdgeInsets interpolates each side independently.
func LerpEdgeInsets(a, b layout.EdgeInsets, t float64) layout.EdgeInsets {
	return layout.EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpColor interpolates each ARGB channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	channel := func(shift uint) graphics.Color {
		ca := float64((a >> shift) & 0xFF)
		cb := float64((b >> shift) & 0xFF)
		return graphics.Color(uint32(LerpFloat64(ca, cb, t)+0.5)&0xFF) << shift
	}
	return channel(24) | channel(16) | channel(8) | channel(0)
}
