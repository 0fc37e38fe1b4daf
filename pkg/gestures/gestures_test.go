package gestures

import (
	"testing"

	"github.com/go-drift/hoisting/pkg/graphics"
)

func TestTapRecognizer(t *testing.T) {
	origin := graphics.Offset{X: 10, Y: 10}
	tests := []struct {
		name   string
		events []PointerEvent
		taps   int
	}{
		{
			name: "down up",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: origin, Phase: PointerPhaseUp},
			},
			taps: 1,
		},
		{
			name: "small move",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: graphics.Offset{X: 15, Y: 12}, Phase: PointerPhaseMove},
				{PointerID: 1, Position: graphics.Offset{X: 15, Y: 12}, Phase: PointerPhaseUp},
			},
			taps: 1,
		},
		{
			name: "drag past slop",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: graphics.Offset{X: 60, Y: 10}, Phase: PointerPhaseMove},
				{PointerID: 1, Position: origin, Phase: PointerPhaseUp},
			},
			taps: 0,
		},
		{
			name: "up far away",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: graphics.Offset{X: 100, Y: 100}, Phase: PointerPhaseUp},
			},
			taps: 0,
		},
		{
			name: "cancel",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: origin, Phase: PointerPhaseCancel},
				{PointerID: 1, Position: origin, Phase: PointerPhaseUp},
			},
			taps: 0,
		},
		{
			name: "second pointer",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 2, Position: origin, Phase: PointerPhaseDown},
				{PointerID: 1, Position: origin, Phase: PointerPhaseUp},
			},
			taps: 0,
		},
		{
			name: "up without down",
			events: []PointerEvent{
				{PointerID: 1, Position: origin, Phase: PointerPhaseUp},
			},
			taps: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := 0
			r := &TapRecognizer{OnTap: func() { taps++ }}
			for _, ev := range tt.events {
				r.HandlePointer(ev)
			}
			if taps != tt.taps {
				t.Errorf("taps = %d, want %d", taps, tt.taps)
			}
			if r.Tracking() {
				t.Error("recognizer should be idle after the sequence")
			}
		})
	}
}

func TestPointerPhaseString(t *testing.T) {
	if PointerPhaseUp.String() != "up" || PointerPhase(9).String() != "PointerPhase(9)" {
		t.Error("unexpected phase strings")
	}
}
