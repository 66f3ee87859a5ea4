// Package event provides the callback-registration contract the engine uses to
// deliver input and focus notifications to camera inputs.
//
// All dispatch is confined to the thread that runs the window message loop, so
// observables carry no locking.
package event

import "github.com/google/uuid"

// Handle identifies a single registration on an Observable.
// The zero Handle is never issued and is used to mean "not registered".
type Handle struct {
	id uuid.UUID
}

// Valid reports whether the handle refers to a registration that was issued.
//
// Returns:
//   - bool: false for the zero Handle
func (h Handle) Valid() bool {
	return h.id != uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}

type observer[T any] struct {
	handle Handle
	fn     func(T)
}

// Observable is an ordered list of callbacks notified with values of type T.
type Observable[T any] struct {
	observers []observer[T]
}

// NewObservable creates an empty Observable.
//
// Returns:
//   - *Observable[T]: the new observable
func NewObservable[T any]() *Observable[T] {
	return &Observable[T]{}
}

// Add registers fn and returns the handle needed to remove it.
// A nil fn is ignored and yields the zero Handle.
//
// Parameters:
//   - fn: the callback to invoke on Notify
//
// Returns:
//   - Handle: the registration handle
func (o *Observable[T]) Add(fn func(T)) Handle {
	if fn == nil {
		return Handle{}
	}
	h := Handle{id: uuid.New()}
	o.observers = append(o.observers, observer[T]{handle: h, fn: fn})
	return h
}

// Remove unregisters the callback for h.
//
// Parameters:
//   - h: the handle returned by Add
//
// Returns:
//   - bool: true if a registration was removed
func (o *Observable[T]) Remove(h Handle) bool {
	if !h.Valid() {
		return false
	}
	for i, ob := range o.observers {
		if ob.handle == h {
			o.observers = append(o.observers[:i:i], o.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Notify calls every registered callback in registration order.
// The callback list is snapshotted first so callbacks may add or remove registrations.
//
// Parameters:
//   - v: the value passed to each callback
func (o *Observable[T]) Notify(v T) {
	if len(o.observers) == 0 {
		return
	}
	snapshot := make([]observer[T], len(o.observers))
	copy(snapshot, o.observers)
	for _, ob := range snapshot {
		ob.fn(v)
	}
}

// Count returns the number of live registrations.
func (o *Observable[T]) Count() int {
	return len(o.observers)
}

// Clear drops every registration.
func (o *Observable[T]) Clear() {
	o.observers = nil
}
