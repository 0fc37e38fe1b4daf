package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/hoisting/pkg/animation"
	"github.com/go-drift/hoisting/pkg/core"
	"github.com/go-drift/hoisting/pkg/engine"
	"github.com/go-drift/hoisting/pkg/graphics"
	"github.com/go-drift/hoisting/pkg/layout"
	"github.com/go-drift/hoisting/pkg/state"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester drives a widget through an [engine.Host] with a fake clock.
type WidgetTester struct {
	host      *engine.Host
	clock     *FakeClock
	prevClock animation.Clock
}

// NewWidgetTester creates a tester with a default surface. Call Cleanup
// when done, or use NewWidgetTesterWithT.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	return &WidgetTester{
		host:      engine.NewHost(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock.
func (t *WidgetTester) Cleanup() {
	t.host.Unmount()
	animation.SetClock(t.prevClock)
}

// SetSize sets the logical surface size. Once a widget is mounted, a new
// size reconstructs the tree the way a rotation would.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.host.Resize(size)
}

// SetDurability overrides durability for "scope/key" values. Call it before
// PumpWidget; stores read overrides when they attach.
func (t *WidgetTester) SetDurability(overrides map[string]state.Durability) {
	t.host.Registry().SetOverrides(overrides)
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// Host returns the underlying host.
func (t *WidgetTester) Host() *engine.Host {
	return t.host
}

// PumpWidget mounts a widget, replacing any previous tree, and runs one
// frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) *graphics.DisplayList {
	t.host.Mount(widget)
	return t.Pump()
}

// Pump runs a single frame: tickers, build, layout and paint.
func (t *WidgetTester) Pump() *graphics.DisplayList {
	return t.host.Frame()
}

// PumpAndSettle runs frames until nothing is dirty and no animation is
// running, advancing the fake clock 16ms per frame.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < timeout; elapsed += frameDuration {
		t.Pump()
		if !t.host.NeedsFrame() {
			return nil
		}
		t.clock.Advance(frameDuration)
	}
	return ErrSettleTimeout
}

// Reconstruct tears the tree down and rebuilds it, restoring durable store
// values.
func (t *WidgetTester) Reconstruct() *graphics.DisplayList {
	return t.host.Reconstruct("test")
}

// DisplayList returns the most recent frame.
func (t *WidgetTester) DisplayList() *graphics.DisplayList {
	return t.host.LastFrame()
}

// Texts returns the strings painted in the most recent frame.
func (t *WidgetTester) Texts() []string {
	return t.host.LastFrame().Texts()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.host.Root()
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.host.RootRender()
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	return FinderResult{
		elements: finder.Evaluate(t.host.Root()),
		finder:   finder,
	}
}

// Tap taps the center of the first element matched by finder. The event
// goes through hit testing, so a covered or disabled target is not hit.
func (t *WidgetTester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	t.host.Tap(center)
	return nil
}

// TapAt taps at a logical position.
func (t *WidgetTester) TapAt(position graphics.Offset) {
	t.host.Tap(position)
}

// Drag drags from the center of the first match by delta in a few moves.
func (t *WidgetTester) Drag(finder Finder, delta graphics.Offset) error {
	start, err := t.centerOf("Drag", finder)
	if err != nil {
		return err
	}
	t.host.Drag(start, start.Add(delta), 4)
	return nil
}

func (t *WidgetTester) centerOf(op string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no elements: %s", op, finder.Description())
	}
	ro := extractRenderObject(result.First())
	if ro == nil {
		return graphics.Offset{}, fmt.Errorf("%s: element has no render object: %s", op, finder.Description())
	}
	bounds, ok := layout.GlobalBounds(t.host.RootRender(), ro)
	if !ok {
		return graphics.Offset{}, fmt.Errorf("%s: element is not laid out under the root: %s", op, finder.Description())
	}
	return bounds.Center(), nil
}
