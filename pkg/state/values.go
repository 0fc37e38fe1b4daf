package state

import (
	"fmt"
	"slices"
)

// Durability says whether a value survives reconstruction.
type Durability int

const (
	// Durable values are restored after reconstruction.
	Durable Durability = iota
	// Ephemeral values reset to their default after reconstruction.
	Ephemeral
)

func (d Durability) String() string {
	switch d {
	case Durable:
		return "durable"
	case Ephemeral:
		return "ephemeral"
	default:
		return fmt.Sprintf("Durability(%d)", int(d))
	}
}

// ParseDurability parses "durable" or "ephemeral".
func ParseDurability(s string) (Durability, error) {
	switch s {
	case "durable":
		return Durable, nil
	case "ephemeral":
		return Ephemeral, nil
	default:
		return 0, fmt.Errorf("unknown durability %q (want durable or ephemeral)", s)
	}
}

// value is implemented by every kind of stored value.
type value interface {
	durability() Durability
	setDurability(d Durability)
	read() any
	entry() Entry
	restore(e Entry) error
	detach()
}

type base struct {
	store *Store
	key   string
	dur   Durability
}

func (b *base) durability() Durability     { return b.dur }
func (b *base) setDurability(d Durability) { b.dur = d }

// Key returns the value's key within its store.
func (b *base) Key() string { return b.key }

func (b *base) detach() { b.store = nil }

func (b *base) changed() {
	if b.store != nil {
		b.store.notify(b.key)
	}
}

// Counter is an integer bounded to [0, Max].
type Counter struct {
	base
	value int
	max   int
}

// Value returns the current count.
func (c *Counter) Value() int { return c.value }

// Max returns the upper bound.
func (c *Counter) Max() int { return c.max }

// CanIncrement reports whether Increment would change the value. Views use
// it to disable the increment affordance at the bound.
func (c *Counter) CanIncrement() bool { return c.value < c.max }

// Increment adds one, or does nothing at Max.
func (c *Counter) Increment() {
	if !c.CanIncrement() {
		return
	}
	c.value++
	c.changed()
}

// Reset sets the count to zero.
func (c *Counter) Reset() {
	c.Set(0)
}

// Set replaces the count. Values outside [0, Max] are ignored.
func (c *Counter) Set(v int) {
	if v < 0 || v > c.max || v == c.value {
		return
	}
	c.value = v
	c.changed()
}

func (c *Counter) read() any { return c.value }

func (c *Counter) entry() Entry { return Entry{Kind: KindCounter, Int: c.value} }

func (c *Counter) restore(e Entry) error {
	if e.Kind != KindCounter {
		return e.mismatch(KindCounter)
	}
	if e.Int < 0 || e.Int > c.max {
		return fmt.Errorf("count %d outside [0, %d]", e.Int, c.max)
	}
	c.value = e.Int
	return nil
}

// Flag is a boolean owned by the ancestor that switches between two views.
type Flag struct {
	base
	value bool
}

// Value returns the flag.
func (f *Flag) Value() bool { return f.value }

// Set replaces the flag.
func (f *Flag) Set(v bool) {
	if f.value == v {
		return
	}
	f.value = v
	f.changed()
}

// Toggle flips the flag.
func (f *Flag) Toggle() { f.Set(!f.value) }

func (f *Flag) read() any { return f.value }

func (f *Flag) entry() Entry { return Entry{Kind: KindFlag, Bool: f.value} }

func (f *Flag) restore(e Entry) error {
	if e.Kind != KindFlag {
		return e.mismatch(KindFlag)
	}
	f.value = e.Bool
	return nil
}

// Item is one entry of a Collection.
type Item struct {
	// ID identifies the item for its whole lifetime, independent of position.
	ID      int    `yaml:"id"`
	Label   string `yaml:"label"`
	Checked bool   `yaml:"checked,omitempty"`
}

// Collection is an ordered list of items addressed by stable id. Items live
// in an arena slice; index maps each id to its current position.
type Collection struct {
	base
	items []Item
	index map[int]int
}

func (c *Collection) load(items []Item) error {
	index := make(map[int]int, len(items))
	for i, item := range items {
		if _, dup := index[item.ID]; dup {
			return fmt.Errorf("duplicate item id %d", item.ID)
		}
		index[item.ID] = i
	}
	c.items = slices.Clone(items)
	c.index = index
	return nil
}

// Items returns a copy of the items in order.
func (c *Collection) Items() []Item { return slices.Clone(c.items) }

// Len returns the number of items.
func (c *Collection) Len() int { return len(c.items) }

// Get returns the item with the given id.
func (c *Collection) Get(id int) (Item, bool) {
	pos, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[pos], true
}

// Remove deletes the item with the given id and reports whether it existed.
func (c *Collection) Remove(id int) bool {
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = slices.Delete(c.items, pos, pos+1)
	delete(c.index, id)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].ID] = i
	}
	c.changed()
	return true
}

// SetChecked overwrites only the Checked flag of the item with the given id
// and reports whether the item exists.
func (c *Collection) SetChecked(id int, checked bool) bool {
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	if c.items[pos].Checked != checked {
		c.items[pos].Checked = checked
		c.changed()
	}
	return true
}

func (c *Collection) read() any { return c.Items() }

func (c *Collection) entry() Entry { return Entry{Kind: KindCollection, Items: c.Items()} }

func (c *Collection) restore(e Entry) error {
	if e.Kind != KindCollection {
		return e.mismatch(KindCollection)
	}
	return c.load(e.Items)
}
