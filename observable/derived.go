package observable

import (
	"sync"
	"sync/atomic"
)

// Derived is a read-only value computed from one or more sources.
// It is recomputed every time any of its sources changes.
type Derived[T any] struct {
	value  *Value[T]
	ready  atomic.Bool
	mutex  sync.Mutex
	unsubs []func()
}

// Derive creates a Derived value computed by fn from a single source.
func Derive[A, T any](a Readable[A], fn func(A) T) *Derived[T] {
	return derive(func() T { return fn(a.Get()) }, subscribeTo(a))
}

// Derive2 creates a Derived value computed by fn from two sources.
func Derive2[A, B, T any](a Readable[A], b Readable[B], fn func(A, B) T) *Derived[T] {
	return derive(func() T { return fn(a.Get(), b.Get()) }, subscribeTo(a), subscribeTo(b))
}

type subscribeFunc func(func()) func()

func subscribeTo[S any](src Readable[S]) subscribeFunc {
	return func(notify func()) func() {
		return src.Subscribe(func(S) { notify() })
	}
}

func derive[T any](compute func() T, sources ...subscribeFunc) *Derived[T] {
	d := &Derived[T]{value: New(compute())}
	for _, subscribe := range sources {
		// Subscribe fires immediately; the initial value was computed
		// above, so those calls are ignored until ready is set.
		d.unsubs = append(d.unsubs, subscribe(func() {
			if !d.ready.Load() {
				return
			}
			d.value.Set(compute())
		}))
	}
	d.ready.Store(true)
	return d
}

// Get returns the most recently computed value.
func (d *Derived[T]) Get() T {
	return d.value.Get()
}

// Subscribe registers fn. It is called immediately with the current
// value and then on every recomputation.
func (d *Derived[T]) Subscribe(fn func(T)) func() {
	return d.value.Subscribe(fn)
}

// Version returns the number of times the value has been recomputed.
func (d *Derived[T]) Version() uint64 {
	return d.value.Version()
}

// Close detaches d from its sources. The last computed value remains
// readable but is no longer updated.
func (d *Derived[T]) Close() {
	d.mutex.Lock()
	unsubs := d.unsubs
	d.unsubs = nil
	d.mutex.Unlock()

	d.ready.Store(false)
	for _, unsub := range unsubs {
		unsub()
	}
}
