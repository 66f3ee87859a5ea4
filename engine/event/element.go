package event

import (
	"errors"
	"fmt"
)

// ErrNotCaptured is returned when releasing a pointer the element does not hold.
var ErrNotCaptured = errors.New("pointer not captured")

// Element is the input surface that pointer events target.
type Element interface {
	// SetPointerCapture routes all further events of the pointer to this element.
	//
	// Parameters:
	//   - pointerID: the pointer to capture
	//
	// Returns:
	//   - error: error if the pointer cannot be captured
	SetPointerCapture(pointerID int) error

	// ReleasePointerCapture releases a pointer captured with SetPointerCapture.
	//
	// Parameters:
	//   - pointerID: the pointer to release
	//
	// Returns:
	//   - error: ErrNotCaptured if the pointer is not captured
	ReleasePointerCapture(pointerID int) error

	// HasPointerCapture reports whether the pointer is currently captured.
	HasPointerCapture(pointerID int) bool

	// Focus gives the element keyboard focus.
	Focus()
}

// captureElement is the default Element: it only records which pointers are captured.
// The window package wraps it to forward Focus to the platform window.
type captureElement struct {
	captured map[int]struct{}
	onFocus  func()
}

var _ Element = &captureElement{}

// NewElement creates an Element that tracks pointer capture in memory.
//
// Parameters:
//   - onFocus: called by Focus; may be nil
//
// Returns:
//   - Element: the new element
func NewElement(onFocus func()) Element {
	return &captureElement{
		captured: make(map[int]struct{}),
		onFocus:  onFocus,
	}
}

func (e *captureElement) SetPointerCapture(pointerID int) error {
	if pointerID < 0 {
		return fmt.Errorf("invalid pointer id %d", pointerID)
	}
	e.captured[pointerID] = struct{}{}
	return nil
}

func (e *captureElement) ReleasePointerCapture(pointerID int) error {
	if _, ok := e.captured[pointerID]; !ok {
		return fmt.Errorf("release pointer %d: %w", pointerID, ErrNotCaptured)
	}
	delete(e.captured, pointerID)
	return nil
}

func (e *captureElement) HasPointerCapture(pointerID int) bool {
	_, ok := e.captured[pointerID]
	return ok
}

func (e *captureElement) Focus() {
	if e.onFocus != nil {
		e.onFocus()
	}
}
