package state

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/go-drift/hoisting/pkg/errors"
)

func taskItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Label: fmt.Sprintf("Task # %d", i)}
	}
	return items
}

func TestCounterIncrement(t *testing.T) {
	const max = 10
	for n := 0; n < max; n++ {
		s := NewStore("water")
		c := s.DeclareCounter("count", max, Durable)
		c.Set(n)
		c.Increment()
		if c.Value() != n+1 {
			t.Errorf("increment at %d = %d, want %d", n, c.Value(), n+1)
		}
	}

	s := NewStore("water")
	c := s.DeclareCounter("count", max, Durable)
	c.Set(max)
	c.Increment()
	if c.Value() != max {
		t.Errorf("increment at max = %d, want %d", c.Value(), max)
	}
	if c.CanIncrement() {
		t.Error("CanIncrement should be false at max")
	}
}

func TestCounterReset(t *testing.T) {
	for _, start := range []int{0, 1, 7, 10} {
		s := NewStore("water")
		c := s.DeclareCounter("count", 10, Durable)
		c.Set(start)
		c.Reset()
		if c.Value() != 0 {
			t.Errorf("reset from %d = %d, want 0", start, c.Value())
		}
	}
}

func TestCounterScenario(t *testing.T) {
	s := NewStore("water")
	c := s.DeclareCounter("count", 10, Durable)
	if c.Value() != 0 {
		t.Fatalf("start = %d", c.Value())
	}
	for range 10 {
		c.Increment()
	}
	if c.Value() != 10 || c.CanIncrement() {
		t.Fatalf("after 10 increments value=%d canIncrement=%v", c.Value(), c.CanIncrement())
	}
	c.Increment()
	if c.Value() != 10 {
		t.Errorf("11th increment moved value to %d", c.Value())
	}
}

func TestSetValue(t *testing.T) {
	s := NewStore("scope")
	s.DeclareCounter("count", 5, Durable)
	s.DeclareFlag("flag", false, Durable)

	tests := []struct {
		key  string
		set  any
		want any
	}{
		{"count", 3, 3},
		{"count", 6, 3},
		{"count", -1, 3},
		{"count", "4", 3},
		{"count", 0, 0},
		{"flag", true, true},
		{"flag", 1, true},
		{"missing", 1, nil},
	}
	for _, tt := range tests {
		s.SetValue(tt.key, tt.set)
		got, _ := s.Value(tt.key)
		if got != tt.want {
			t.Errorf("after SetValue(%q, %v): got %v, want %v", tt.key, tt.set, got, tt.want)
		}
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewStore("wellness")
	c := s.DeclareCollection("tasks", taskItems(30), Durable)
	c.SetChecked(3, true)
	before := c.Items()

	s.RemoveItem("tasks", 7)

	after := c.Items()
	if len(after) != len(before)-1 {
		t.Fatalf("len = %d, want %d", len(after), len(before)-1)
	}
	if _, ok := c.Get(7); ok {
		t.Error("item 7 still present")
	}
	for _, item := range before {
		if item.ID == 7 {
			continue
		}
		got, ok := c.Get(item.ID)
		if !ok || got != item {
			t.Errorf("item %d = %+v, want %+v", item.ID, got, item)
		}
	}
	// Order is preserved and the index points at the shifted positions.
	ids := make([]int, len(after))
	for i, item := range after {
		ids[i] = item.ID
	}
	if !slices.IsSorted(ids) {
		t.Errorf("order changed: %v", ids)
	}
}

func TestToggleItem(t *testing.T) {
	s := NewStore("wellness")
	c := s.DeclareCollection("tasks", taskItems(5), Durable)
	before := c.Items()

	s.ToggleItem("tasks", 2, true)

	for _, item := range c.Items() {
		want := before[item.ID]
		if item.ID == 2 {
			want.Checked = true
		}
		if item != want {
			t.Errorf("item %d = %+v, want %+v", item.ID, item, want)
		}
	}
}

func TestMissingIDIsNoop(t *testing.T) {
	s := NewStore("wellness")
	c := s.DeclareCollection("tasks", taskItems(5), Durable)
	before := c.Items()
	notified := 0
	s.AddListener(func() { notified++ })

	s.RemoveItem("tasks", 99)
	s.ToggleItem("tasks", 99, true)
	s.RemoveItem("nope", 1)
	s.ToggleItem("nope", 1, true)

	if !reflect.DeepEqual(c.Items(), before) {
		t.Errorf("collection changed: %v", c.Items())
	}
	if notified != 0 {
		t.Errorf("notified %d times for no-op mutations", notified)
	}
}

func TestTaskScenario(t *testing.T) {
	s := NewStore("wellness")
	c := s.DeclareCollection("tasks", taskItems(30), Durable)

	s.ToggleItem("tasks", 5, true)
	s.RemoveItem("tasks", 0)

	if c.Len() != 29 {
		t.Fatalf("len = %d, want 29", c.Len())
	}
	if item, _ := c.Get(5); !item.Checked {
		t.Error("item 5 should be checked")
	}
	if _, ok := c.Get(0); ok {
		t.Error("item 0 should be gone")
	}
	for id := 1; id < 30; id++ {
		item, ok := c.Get(id)
		if !ok {
			t.Errorf("item %d missing", id)
			continue
		}
		if item.Label != fmt.Sprintf("Task # %d", id) {
			t.Errorf("item %d label = %q", id, item.Label)
		}
		if id != 5 && item.Checked {
			t.Errorf("item %d unexpectedly checked", id)
		}
	}
}

func TestValueReturnsCopies(t *testing.T) {
	s := NewStore("wellness")
	s.DeclareCollection("tasks", taskItems(2), Durable)
	v, _ := s.Value("tasks")
	items := v.([]Item)
	items[0].Label = "mutated"
	if got, _ := s.Collection("tasks").Get(0); got.Label != "Task # 0" {
		t.Error("Value must not expose internal storage")
	}
}

func TestDeclareIsIdempotent(t *testing.T) {
	s := NewStore("scope")
	a := s.DeclareCounter("count", 3, Durable)
	a.Set(2)
	b := s.DeclareCounter("count", 9, Ephemeral)
	if a != b || b.Max() != 3 || b.Value() != 2 {
		t.Error("redeclaring should return the existing counter")
	}
	if got := s.Keys(); !reflect.DeepEqual(got, []string{"count"}) {
		t.Errorf("Keys() = %v", got)
	}
}

func TestDeclareConflictingKindKeepsFirst(t *testing.T) {
	var reported []*errors.HoistError
	restore := captureErrors(func(err *errors.HoistError) { reported = append(reported, err) })
	defer restore()

	s := NewStore("scope")
	s.DeclareCounter("k", 5, Durable).Set(3)
	f := s.DeclareFlag("k", true, Durable)
	notified := false
	s.AddListener(func() { notified = true })
	f.Toggle()
	if notified {
		t.Error("a value left out of the store must not notify it")
	}

	if got := s.Keys(); !reflect.DeepEqual(got, []string{"k"}) {
		t.Errorf("Keys() = %v, want [k]", got)
	}
	if c := s.Counter("k"); c == nil || c.Value() != 3 {
		t.Errorf("counter = %v, want the original counter at 3", c)
	}
	if s.Flag("k") != nil {
		t.Error("the conflicting flag should not be stored")
	}
	if len(reported) != 1 || reported[0].Kind != errors.KindInit || reported[0].Key != "scope/k" {
		t.Errorf("reported = %v", reported)
	}
}

func TestDeclareCollectionDropsDuplicates(t *testing.T) {
	var reported *errors.HoistError
	restore := captureErrors(func(err *errors.HoistError) { reported = err })
	defer restore()

	s := NewStore("scope")
	c := s.DeclareCollection("tasks", []Item{{ID: 1, Label: "a"}, {ID: 1, Label: "b"}, {ID: 2, Label: "c"}}, Durable)
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
	if item, _ := c.Get(1); item.Label != "a" {
		t.Errorf("kept %+v, want the first occurrence", item)
	}
	if reported == nil || reported.Kind != errors.KindInit {
		t.Errorf("reported = %v", reported)
	}
}

func TestListenersAndWatchers(t *testing.T) {
	s := NewStore("scope")
	count := s.DeclareCounter("count", 10, Durable)
	flag := s.DeclareFlag("flag", false, Durable)

	var all, watched []string
	unsubAll := s.AddListener(func() { all = append(all, "change") })
	unsubWatch := s.Watch([]string{"flag"}, func(key string) { watched = append(watched, key) })

	count.Increment()
	flag.Toggle()
	flag.Set(true) // unchanged, no notification

	if len(all) != 2 {
		t.Errorf("listener calls = %d, want 2", len(all))
	}
	if !reflect.DeepEqual(watched, []string{"flag"}) {
		t.Errorf("watcher calls = %v, want [flag]", watched)
	}

	unsubAll()
	unsubWatch()
	count.Increment()
	flag.Toggle()
	if len(all) != 2 || len(watched) != 1 {
		t.Error("unsubscribed callbacks still called")
	}
}

func TestListenerMayUnsubscribeDuringNotify(t *testing.T) {
	s := NewStore("scope")
	c := s.DeclareCounter("count", 10, Durable)
	calls := 0
	var unsub func()
	unsub = s.AddListener(func() {
		calls++
		unsub()
	})
	s.AddListener(func() { calls++ })

	c.Increment()
	c.Increment()
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSnapshotSkipsEphemeral(t *testing.T) {
	s := NewStore("water")
	s.DeclareCounter("count", 10, Durable).Set(4)
	s.DeclareFlag("showTask", true, Ephemeral).Set(false)

	b := s.Snapshot()
	if _, ok := b["showTask"]; ok {
		t.Error("ephemeral value captured")
	}
	if e := b["count"]; e.Kind != KindCounter || e.Int != 4 || e.Items != nil {
		t.Errorf("count entry = %+v", b["count"])
	}
}

func TestRestoreRejectsMismatchedEntries(t *testing.T) {
	var reported []*errors.HoistError
	restore := captureErrors(func(err *errors.HoistError) { reported = append(reported, err) })
	defer restore()

	s := NewStore("water")
	count := s.DeclareCounter("count", 10, Durable)
	flag := s.DeclareFlag("flag", false, Durable)

	s.Restore(Bundle{
		"count":   {Kind: KindCounter, Int: 11},
		"flag":    {Kind: KindCounter, Int: 1},
		"unknown": {Kind: KindFlag, Bool: true},
	})

	if count.Value() != 0 || flag.Value() {
		t.Errorf("values changed: count=%d flag=%v", count.Value(), flag.Value())
	}
	if len(reported) != 2 {
		t.Fatalf("reported %d errors, want 2", len(reported))
	}
	for _, err := range reported {
		if err.Kind != errors.KindRestore || !strings.HasPrefix(err.Key, "water/") {
			t.Errorf("unexpected report %v", err)
		}
	}
	var parseErr *errors.ParseError
	if reported[1].Key != "water/flag" || !stderrors.As(reported[1].Err, &parseErr) {
		t.Fatalf("flag report = %v, want a parse error", reported[1])
	}
	if parseErr.DataType != KindFlag || parseErr.Got != 1 {
		t.Errorf("parse error = %+v", parseErr)
	}
}

func TestParseDurability(t *testing.T) {
	for _, d := range []Durability{Durable, Ephemeral} {
		got, err := ParseDurability(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDurability(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDurability("forever"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}

func captureErrors(fn func(*errors.HoistError)) func() {
	old := errors.DefaultHandler
	errors.SetHandler(&handlerFunc{fn: fn})
	return func() { errors.SetHandler(old) }
}

type handlerFunc struct {
	fn func(*errors.HoistError)
}

func (h *handlerFunc) HandleError(err *errors.HoistError)  { h.fn(err) }
func (h *handlerFunc) HandlePanic(*errors.PanicError)      {}
func (h *handlerFunc) HandleBuildError(*errors.BuildError) {}
