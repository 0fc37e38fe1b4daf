// Package gestures turns raw pointer events into taps.
//
// This is the event bridge between the host and the widget tree: a pointer
// sequence that starts and ends on the same target, without wandering past
// TouchSlop, becomes exactly one call to that target's tap callback. There is
// no batching and no debouncing.
package gestures

import (
	"fmt"
	"math"

	"github.com/go-drift/hoisting/pkg/graphics"
)

// TouchSlop is the distance a pointer may travel before a tap is abandoned.
const TouchSlop = 18.0

// PointerPhase is the stage of a pointer sequence.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is one raw pointer event in logical coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// TapRecognizer recognizes a single tap per pointer sequence.
// The zero value is ready to use; set OnTap before events arrive.
type TapRecognizer struct {
	OnTap func()

	tracking bool
	pointer  int64
	origin   graphics.Offset
}

// HandlePointer feeds one event to the recognizer.
func (r *TapRecognizer) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		if r.tracking {
			// A second pointer cancels the pending tap.
			r.tracking = false
			return
		}
		r.tracking = true
		r.pointer = event.PointerID
		r.origin = event.Position
	case PointerPhaseMove:
		if r.tracking && event.PointerID == r.pointer && exceedsSlop(r.origin, event.Position) {
			r.tracking = false
		}
	case PointerPhaseUp:
		if !r.tracking || event.PointerID != r.pointer {
			return
		}
		r.tracking = false
		if exceedsSlop(r.origin, event.Position) {
			return
		}
		if r.OnTap != nil {
			r.OnTap()
		}
	case PointerPhaseCancel:
		if event.PointerID == r.pointer {
			r.tracking = false
		}
	}
}

// Tracking reports whether a tap is in progress.
func (r *TapRecognizer) Tracking() bool {
	return r.tracking
}

func exceedsSlop(a, b graphics.Offset) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) > TouchSlop
}
