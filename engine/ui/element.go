// Package ui is a minimal element model for the viewer's on-screen controls.
// Elements carry an id and a class set and publish clicks, which is all the
// controller buttons and toggles need.
package ui

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// Class names with meaning to the toggles in this package.
const (
	ClassActive = "active"
	ClassHidden = "hidden"
	ClassOn     = "on"
)

// Element is a clickable UI element with a set of classes.
type Element interface {
	// ID returns the element id.
	ID() string

	// HasClass reports whether the element carries a class.
	HasClass(name string) bool

	// AddClass adds classes to the element.
	//
	// Parameters:
	//   - names: the classes to add
	AddClass(names ...string)

	// RemoveClass removes classes from the element.
	//
	// Parameters:
	//   - names: the classes to remove
	RemoveClass(names ...string)

	// ToggleClass flips a class.
	//
	// Parameters:
	//   - name: the class to flip
	//
	// Returns:
	//   - bool: true if the element carries the class afterwards
	ToggleClass(name string) bool

	// Classes returns the element's classes in sorted order.
	Classes() []string

	// Clicked returns the observable notified on every click.
	Clicked() *event.Observable[Element]

	// Click notifies the click observers.
	Click()

	// SetActive adds or removes the "active" class. Elements are switchboard affordances through it.
	//
	// Parameters:
	//   - active: whether the element is marked active
	SetActive(active bool)
}

// element is the implementation of Element.
type element struct {
	id      string
	classes map[string]struct{}
	clicked *event.Observable[Element]
}

var _ Element = &element{}

// NewElement creates an element.
//
// Parameters:
//   - id: the element id
//   - classes: initial classes
//
// Returns:
//   - Element: the new element
func NewElement(id string, classes ...string) Element {
	e := &element{
		id:      id,
		classes: make(map[string]struct{}, len(classes)),
		clicked: event.NewObservable[Element](),
	}
	e.AddClass(classes...)
	return e
}

func (e *element) ID() string {
	return e.id
}

func (e *element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

func (e *element) AddClass(names ...string) {
	for _, n := range names {
		if n != "" {
			e.classes[n] = struct{}{}
		}
	}
}

func (e *element) RemoveClass(names ...string) {
	for _, n := range names {
		delete(e.classes, n)
	}
}

func (e *element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *element) Clicked() *event.Observable[Element] {
	return e.clicked
}

func (e *element) Click() {
	e.clicked.Notify(e)
}

func (e *element) SetActive(active bool) {
	if active {
		e.AddClass(ClassActive)
	} else {
		e.RemoveClass(ClassActive)
	}
}
