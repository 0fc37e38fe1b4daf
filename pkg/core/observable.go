package core

import "sync"

// Observable holds a value and notifies listeners when it changes. It is
// not tied to a state, so several states or render objects can share it.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners map[int]func(T)
	order     []int
	nextID    int
	equal     func(a, b T) bool
}

// NewObservable creates an observable that notifies on every Set.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial, listeners: make(map[int]func(T))}
}

// NewObservableWithEquality creates an observable that skips notification
// when equal reports the new value matches the old one.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	o := NewObservable(initial)
	o.equal = equal
	return o
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set updates the value and notifies listeners in registration order.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	fns := make([]func(T), 0, len(o.order))
	for _, id := range o.order {
		fns = append(fns, o.listeners[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Update applies transform to the current value and sets the result.
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.Value()))
}

// AddListener registers fn and returns a function that removes it.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.order = append(o.order, id)
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.listeners[id]; !ok {
			return
		}
		delete(o.listeners, id)
		for i, v := range o.order {
			if v == id {
				o.order = append(o.order[:i], o.order[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}
