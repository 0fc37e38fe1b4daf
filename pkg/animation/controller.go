package animation

import (
	"fmt"
	"time"
)

// Status is the state of a Controller.
type Status int

const (
	// Dismissed means the controller is stopped at its lower bound.
	Dismissed Status = iota
	// Forward means the controller is moving toward its upper bound.
	Forward
	// Reverse means the controller is moving toward its lower bound.
	Reverse
	// Completed means the controller is stopped at its upper bound.
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller produces a value in [0, 1] over Duration. It satisfies
// core.Listenable and core.Disposable.
type Controller struct {
	// Value is the current position, between 0 and 1.
	Value float64
	// Duration is the time a full 0 to 1 run takes.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve func(float64) float64

	status    Status
	ticker    *Ticker
	start     float64
	target    float64
	listeners []func()
}

// NewController creates a dismissed controller.
func NewController(duration time.Duration) *Controller {
	return &Controller{Duration: duration, Curve: Linear}
}

// Forward animates toward 1.
func (c *Controller) Forward() { c.animateTo(1, Forward) }

// Reverse animates toward 0.
func (c *Controller) Reverse() { c.animateTo(0, Reverse) }

// Toward animates forward when on is true and in reverse otherwise. It is a
// no-op if the controller is already heading there.
func (c *Controller) Toward(on bool) {
	switch {
	case on && (c.status == Forward || c.status == Completed):
	case !on && (c.status == Reverse || c.status == Dismissed):
	case on:
		c.Forward()
	default:
		c.Reverse()
	}
}

// Snap jumps to 1 when on is true and to 0 otherwise, without animating.
func (c *Controller) Snap(on bool) {
	c.Stop()
	if on {
		c.Value = 1
		c.status = Completed
	} else {
		c.Value = 0
		c.status = Dismissed
	}
	c.notify()
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.Stop()
	c.start = c.Value
	c.target = target
	c.status = direction
	if c.Duration <= 0 || c.Value == target {
		c.finish()
		return
	}
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.Duration)
	// A full run takes Duration; a partial one is proportionally shorter.
	if span := c.target - c.start; span != 0 {
		if span < 0 {
			span = -span
		}
		progress /= span
	}
	if progress >= 1 {
		c.finish()
		return
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.start + (c.target-c.start)*eased
	c.notify()
}

func (c *Controller) finish() {
	c.Stop()
	c.Value = c.target
	if c.target >= 1 {
		c.status = Completed
	} else {
		c.status = Dismissed
	}
	c.notify()
}

// Stop halts the animation at its current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *Controller) Status() Status { return c.status }

// IsAnimating reports whether a ticker is driving the controller.
func (c *Controller) IsAnimating() bool { return c.ticker != nil }

// AddListener registers fn to run on every value change and returns a
// function that removes it.
func (c *Controller) AddListener(fn func()) func() {
	id := len(c.listeners)
	c.listeners = append(c.listeners, fn)
	return func() {
		if id < len(c.listeners) {
			c.listeners[id] = nil
		}
	}
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		if fn != nil {
			fn()
		}
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
}
