// Package scenario replays scripted interactions against a mounted sample.
//
// A script is a YAML list of steps:
//
//	steps:
//	  - tap: Add one
//	    repeat: 3
//	  - tap: "[ ]"
//	    within: 5
//	  - scroll: 200
//	  - reconstruct: true
//	  - resize: 600x400
package scenario

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/hoisting/pkg/graphics"
	hoisttest "github.com/go-drift/hoisting/pkg/testing"
	"github.com/go-drift/hoisting/pkg/widgets"
)

// SettleTimeout bounds how long animations may run after each step.
const SettleTimeout = 5 * time.Second

// Step is one interaction. Exactly one action field is set.
type Step struct {
	// Tap taps the first text with this exact content.
	Tap string `yaml:"tap,omitempty"`
	// Within restricts Tap to descendants of the widget with this key.
	Within any `yaml:"within,omitempty"`
	// Repeat runs the step this many times. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
	// Reconstruct tears the tree down and restores durable state.
	Reconstruct bool `yaml:"reconstruct,omitempty"`
	// Resize changes the surface, given as WxH.
	Resize string `yaml:"resize,omitempty"`
	// Scroll drags the first list so its offset grows by this much.
	Scroll float64 `yaml:"scroll,omitempty"`
}

// Script is a parsed scenario file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

func (s Step) validate() error {
	actions := 0
	if s.Tap != "" {
		actions++
	}
	if s.Reconstruct {
		actions++
	}
	if s.Resize != "" {
		actions++
		if _, err := ParseSize(s.Resize); err != nil {
			return err
		}
	}
	if s.Scroll != 0 {
		actions++
	}
	switch {
	case actions == 0:
		return fmt.Errorf("no action")
	case actions > 1:
		return fmt.Errorf("more than one action")
	case s.Within != nil && s.Tap == "":
		return fmt.Errorf("within only applies to tap")
	case s.Repeat < 0:
		return fmt.Errorf("repeat must not be negative")
	}
	return nil
}

// Describe is a one-line summary of the step, for logs.
func (s Step) Describe() string {
	var desc string
	switch {
	case s.Tap != "" && s.Within != nil:
		desc = fmt.Sprintf("tap %q within %v", s.Tap, s.Within)
	case s.Tap != "":
		desc = fmt.Sprintf("tap %q", s.Tap)
	case s.Reconstruct:
		desc = "reconstruct"
	case s.Resize != "":
		desc = "resize " + s.Resize
	default:
		desc = "scroll " + strconv.FormatFloat(s.Scroll, 'g', -1, 64)
	}
	if s.Repeat > 1 {
		desc += fmt.Sprintf(" x%d", s.Repeat)
	}
	return desc
}

// Run applies every step in order, settling animations after each one.
// The observe callback, if set, is called after each step.
func (s *Script) Run(tester *hoisttest.WidgetTester, observe func(index int, step Step)) error {
	for i, step := range s.Steps {
		times := max(step.Repeat, 1)
		for range times {
			if err := apply(tester, step); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Describe(), err)
			}
			if err := tester.PumpAndSettle(SettleTimeout); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Describe(), err)
			}
		}
		if observe != nil {
			observe(i, step)
		}
	}
	return nil
}

func apply(tester *hoisttest.WidgetTester, step Step) error {
	switch {
	case step.Tap != "":
		var finder hoisttest.Finder = hoisttest.ByText(step.Tap)
		if step.Within != nil {
			finder = hoisttest.Descendant(hoisttest.ByKey(step.Within), finder)
		}
		return tester.Tap(finder)
	case step.Reconstruct:
		tester.Reconstruct()
	case step.Resize != "":
		size, err := ParseSize(step.Resize)
		if err != nil {
			return err
		}
		tester.SetSize(size)
	case step.Scroll != 0:
		return tester.Drag(hoisttest.ByType[widgets.ListView](), graphics.Offset{Y: -step.Scroll})
	}
	return nil
}

// ParseSize parses a "WxH" surface size.
func ParseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("size %q must have the form WxH", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return graphics.Size{}, fmt.Errorf("size %q must be positive", s)
	}
	return graphics.Size{Width: width, Height: height}, nil
}
