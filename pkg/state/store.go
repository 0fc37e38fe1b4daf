package state

import (
	"fmt"

	"github.com/go-drift/hoisting/pkg/errors"
)

// Store is the single owner of a set of named values.
type Store struct {
	scope     string
	values    map[string]value
	order     []string
	listeners []listener
	nextID    int
}

type listener struct {
	id   int
	keys map[string]bool // nil means every key
	fn   func(key string)
}

// NewStore creates an empty store. The scope names the store in snapshots
// and must be unique among the stores attached to one Registry.
func NewStore(scope string) *Store {
	return &Store{
		scope:  scope,
		values: make(map[string]value),
	}
}

// Scope returns the store's scope.
func (s *Store) Scope() string { return s.scope }

// Keys returns the declared keys in declaration order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// declare adds v under key. A key already held by a value of another kind
// keeps that value; the conflict is reported and v stays out of the store.
func (s *Store) declare(key string, v value) {
	if prev, ok := s.values[key]; ok {
		errors.Report(&errors.HoistError{
			Op:   "state.Declare",
			Kind: errors.KindInit,
			Key:  s.scope + "/" + key,
			Err:  fmt.Errorf("key already declared as %s", prev.entry().Kind),
		})
		v.detach()
		return
	}
	s.values[key] = v
	s.order = append(s.order, key)
}

// DeclareCounter declares a counter bounded to [0, max], starting at zero.
// Declaring an existing counter key returns the existing counter. If the key
// holds another kind of value, the error is reported and the returned
// counter is not part of the store.
func (s *Store) DeclareCounter(key string, max int, d Durability) *Counter {
	if c := s.Counter(key); c != nil {
		return c
	}
	if max < 0 {
		max = 0
	}
	c := &Counter{base: base{store: s, key: key, dur: d}, max: max}
	s.declare(key, c)
	return c
}

// DeclareFlag declares a boolean with the given initial value.
func (s *Store) DeclareFlag(key string, initial bool, d Durability) *Flag {
	if f := s.Flag(key); f != nil {
		return f
	}
	f := &Flag{base: base{store: s, key: key, dur: d}, value: initial}
	s.declare(key, f)
	return f
}

// DeclareCollection declares a collection with the given items. Items with
// a duplicate id are dropped and reported, keeping the first occurrence.
func (s *Store) DeclareCollection(key string, items []Item, d Durability) *Collection {
	if c := s.Collection(key); c != nil {
		return c
	}
	c := &Collection{base: base{store: s, key: key, dur: d}}
	if err := c.load(items); err != nil {
		errors.Report(&errors.HoistError{
			Op:   "state.DeclareCollection",
			Kind: errors.KindInit,
			Key:  s.scope + "/" + key,
			Err:  err,
		})
		c.load(dedupe(items))
	}
	s.declare(key, c)
	return c
}

func dedupe(items []Item) []Item {
	seen := make(map[int]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

// Counter returns the counter declared under key, or nil.
func (s *Store) Counter(key string) *Counter {
	c, _ := s.values[key].(*Counter)
	return c
}

// Flag returns the flag declared under key, or nil.
func (s *Store) Flag(key string) *Flag {
	f, _ := s.values[key].(*Flag)
	return f
}

// Collection returns the collection declared under key, or nil.
func (s *Store) Collection(key string) *Collection {
	c, _ := s.values[key].(*Collection)
	return c
}

// Value returns the current value under key: an int for counters, a bool
// for flags and a copy of the items for collections.
func (s *Store) Value(key string) (any, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	return v.read(), true
}

// SetValue replaces a counter or flag value. Out-of-range counts, values of
// the wrong type and unknown keys are ignored.
func (s *Store) SetValue(key string, v any) {
	switch target := s.values[key].(type) {
	case *Counter:
		if n, ok := v.(int); ok {
			target.Set(n)
		}
	case *Flag:
		if b, ok := v.(bool); ok {
			target.Set(b)
		}
	}
}

// RemoveItem removes the item with id from the collection under
// collectionKey. Unknown collections and ids are ignored.
func (s *Store) RemoveItem(collectionKey string, id int) {
	if c := s.Collection(collectionKey); c != nil {
		c.Remove(id)
	}
}

// ToggleItem sets the Checked flag of one item, leaving its id and label
// untouched. Unknown collections and ids are ignored.
func (s *Store) ToggleItem(collectionKey string, id int, checked bool) {
	if c := s.Collection(collectionKey); c != nil {
		c.SetChecked(id, checked)
	}
}

// Durability returns the durability of the value under key.
func (s *Store) Durability(key string) (Durability, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	return v.durability(), true
}

// SetDurability changes the durability of an existing value.
func (s *Store) SetDurability(key string, d Durability) {
	if v, ok := s.values[key]; ok {
		v.setDurability(d)
	}
}

// AddListener registers fn to run after every change and returns a function
// that removes it.
func (s *Store) AddListener(fn func()) func() {
	return s.subscribe(nil, func(string) { fn() })
}

// Watch registers fn to run after changes to any of keys. Changes to other
// keys do not call it.
func (s *Store) Watch(keys []string, fn func(key string)) func() {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return s.subscribe(set, fn)
}

func (s *Store) subscribe(keys map[string]bool, fn func(string)) func() {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, keys: keys, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify runs listeners in registration order. The slice is copied so that
// listeners may unsubscribe while being notified.
func (s *Store) notify(key string) {
	current := make([]listener, len(s.listeners))
	copy(current, s.listeners)
	for _, l := range current {
		if l.keys != nil && !l.keys[key] {
			continue
		}
		l.fn(key)
	}
}

// Snapshot captures every durable value.
func (s *Store) Snapshot() Bundle {
	b := make(Bundle)
	for _, key := range s.order {
		v := s.values[key]
		if v.durability() != Durable {
			continue
		}
		b[key] = v.entry()
	}
	return b
}

// Restore overwrites durable values from b without notifying listeners; it
// runs before the restored store is first read. Entries for unknown keys or
// ephemeral values are skipped. Entries that do not fit the declared value
// are reported and the value keeps its default.
func (s *Store) Restore(b Bundle) {
	for _, key := range s.order {
		e, ok := b[key]
		if !ok {
			continue
		}
		v := s.values[key]
		if v.durability() != Durable {
			continue
		}
		if err := v.restore(e); err != nil {
			errors.Report(&errors.HoistError{
				Op:   "state.Restore",
				Kind: errors.KindRestore,
				Key:  s.scope + "/" + key,
				Err:  err,
			})
		}
	}
}
