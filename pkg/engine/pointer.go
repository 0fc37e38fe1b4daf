package engine

import (
	"time"

	"github.com/go-drift/hoisting/pkg/errors"
	"github.com/go-drift/hoisting/pkg/gestures"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
)

// HandlePointer routes one pointer event. A Down is hit tested and the
// resulting handlers receive the rest of that pointer's sequence. Only the
// deepest tap target takes part, so nested tappables never fire twice for
// one tap. Panics in handlers are reported, not propagated.
func (h *Host) HandlePointer(event gestures.PointerEvent) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "engine.HandlePointer",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()

	id := event.PointerID
	var handlers []layout.PointerHandler
	if event.Phase == gestures.PointerPhaseDown {
		if h.rootRender == nil {
			return
		}
		result := &layout.HitTestResult{}
		if h.rootRender.HitTest(event.Position, result) {
			handlers = collectPointerHandlers(result.Entries)
		}
		if len(handlers) > 0 {
			h.pointers[id] = handlers
		}
	} else {
		handlers = h.pointers[id]
		if last, ok := h.positions[id]; ok && event.Delta == (graphics.Offset{}) {
			event.Delta = event.Position.Sub(last)
		}
	}
	h.positions[id] = event.Position
	if event.Phase == gestures.PointerPhaseUp || event.Phase == gestures.PointerPhaseCancel {
		delete(h.pointers, id)
		delete(h.positions, id)
	}

	for _, handler := range handlers {
		handler.HandlePointer(event)
	}
}

// Tap sends a Down and an Up at position on a fresh pointer.
func (h *Host) Tap(position graphics.Offset) {
	const tapPointer = 1
	h.HandlePointer(gestures.PointerEvent{PointerID: tapPointer, Position: position, Phase: gestures.PointerPhaseDown})
	h.HandlePointer(gestures.PointerEvent{PointerID: tapPointer, Position: position, Phase: gestures.PointerPhaseUp})
}

// Drag sends a Down at from, one Move per step and an Up at to.
func (h *Host) Drag(from, to graphics.Offset, steps int) {
	const dragPointer = 2
	steps = max(steps, 1)
	h.HandlePointer(gestures.PointerEvent{PointerID: dragPointer, Position: from, Phase: gestures.PointerPhaseDown})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := graphics.Offset{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		h.HandlePointer(gestures.PointerEvent{PointerID: dragPointer, Position: pos, Phase: gestures.PointerPhaseMove})
	}
	h.HandlePointer(gestures.PointerEvent{PointerID: dragPointer, Position: to, Phase: gestures.PointerPhaseUp})
}

// collectPointerHandlers keeps hit order (deepest first), drops duplicates
// and keeps only the first tap target.
func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	tapClaimed := false
	for _, entry := range entries {
		handler, ok := entry.(layout.PointerHandler)
		if !ok {
			continue
		}
		if _, exists := seen[handler]; exists {
			continue
		}
		if _, isTap := entry.(layout.TapTarget); isTap {
			if tapClaimed {
				continue
			}
			tapClaimed = true
		}
		seen[handler] = struct{}{}
		handlers = append(handlers, handler)
	}
	return handlers
}
