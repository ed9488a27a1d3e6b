// Package observable implements small reactive cells: a Value that
// notifies its subscribers whenever it is replaced, and a Derived value
// that is recomputed from one or more sources.
//
// Delivery is synchronous. Callbacks run on the goroutine that changed
// the value, after the new value has been stored, and never while the
// cell's lock is held, so a callback may freely read or modify the cell.
package observable

import (
	"sync"

	pdebug "github.com/lestrrat-go/pdebug"
)

// Readable is implemented by anything that can be read and observed.
type Readable[T any] interface {
	Get() T
	Subscribe(func(T)) (unsubscribe func())
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Value holds a single value and a list of subscribers.
type Value[T any] struct {
	mutex       sync.RWMutex
	value       T
	version     uint64
	nextID      uint64
	subscribers []subscriber[T]
	equal       func(T, T) bool
}

// Option configures a Value.
type Option[T any] func(*Value[T])

// WithEqual makes Set and Update skip notification when the new value
// is equal to the current one according to fn.
func WithEqual[T any](fn func(T, T) bool) Option[T] {
	return func(v *Value[T]) {
		v.equal = fn
	}
}

// New creates a new Value holding v.
func New[T any](v T, options ...Option[T]) *Value[T] {
	cell := &Value[T]{value: v}
	for _, option := range options {
		option(cell)
	}
	return cell
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.value
}

// Version returns a counter that is incremented every time
// subscribers are notified of a new value.
func (v *Value[T]) Version() uint64 {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.version
}

// Set replaces the current value and notifies subscribers.
func (v *Value[T]) Set(nv T) {
	v.Update(func(T) T { return nv })
}

// Update replaces the current value with the result of fn, which
// receives the current value, and notifies subscribers.
//
// fn runs without the lock held, so it may read the cell. If another
// change lands while fn runs, fn is called again with the newer value.
func (v *Value[T]) Update(fn func(T) T) {
	var old, nv T
	for {
		v.mutex.RLock()
		old = v.value
		seen := v.version
		v.mutex.RUnlock()

		nv = fn(old)

		v.mutex.Lock()
		if v.version == seen {
			break
		}
		v.mutex.Unlock()
	}

	if v.equal != nil && v.equal(old, nv) {
		v.mutex.Unlock()
		return
	}
	v.value = nv
	v.version++
	version := v.version
	subscribers := make([]subscriber[T], len(v.subscribers))
	copy(subscribers, v.subscribers)
	v.mutex.Unlock()

	if pdebug.Enabled {
		pdebug.Printf("observable.Value: notifying %d subscriber(s)", len(subscribers))
	}

	for _, sub := range subscribers {
		current, ok := v.subscribed(sub.id)
		if current != version {
			// a callback already published a newer value to everyone
			return
		}
		if !ok {
			continue
		}
		sub.fn(nv)
	}
}

// Subscribe registers fn. It is called immediately with the current
// value and then again on every change. The returned function removes
// the subscription; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mutex.Lock()
	id := v.nextID
	v.nextID++
	v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
	current := v.value
	v.mutex.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { v.unsubscribe(id) })
	}
}

// Subscribers returns the number of active subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return len(v.subscribers)
}

// subscribed reports the current version and whether id is still
// subscribed.
func (v *Value[T]) subscribed(id uint64) (uint64, bool) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	for _, sub := range v.subscribers {
		if sub.id == id {
			return v.version, true
		}
	}
	return v.version, false
}

func (v *Value[T]) unsubscribe(id uint64) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for i, sub := range v.subscribers {
		if sub.id == id {
			v.subscribers = append(v.subscribers[:i:i], v.subscribers[i+1:]...)
			return
		}
	}
}
