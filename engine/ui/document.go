package ui

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
)

// Document indexes the elements of a page by id.
type Document struct {
	elements map[string]Element
	order    []string
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{elements: make(map[string]Element)}
}

// Create adds a new element. An existing element with the same id is returned unchanged.
//
// Parameters:
//   - id: the element id
//   - classes: initial classes of a new element
//
// Returns:
//   - Element: the element with that id
func (d *Document) Create(id string, classes ...string) Element {
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := NewElement(id, classes...)
	d.elements[id] = el
	d.order = append(d.order, id)
	return el
}

// ByID looks an element up.
//
// Parameters:
//   - id: the element id
//
// Returns:
//   - Element: the element, nil if missing
//   - bool: whether the element exists
func (d *Document) ByID(id string) (Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Elements returns every element in creation order.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.order))
	for i, id := range d.order {
		out[i] = d.elements[id]
	}
	return out
}

// ControllerButtonID is the id of the button selecting a controller kind.
func ControllerButtonID(kind controller.Kind) string {
	return "btn-" + kind.String()
}

// BindControllerButtons creates one button per controller kind, binds it to the switchboard as
// an affordance and makes clicking it switch controllers.
//
// Parameters:
//   - d: the document to create the buttons in
//   - sb: the switchboard to bind
//
// Returns:
//   - map[controller.Kind]Element: the buttons by kind
//   - error: error if a kind cannot be bound
func BindControllerButtons(d *Document, sb controller.Switchboard) (map[controller.Kind]Element, error) {
	buttons := make(map[controller.Kind]Element, len(controller.Kinds()))
	for _, kind := range controller.Kinds() {
		btn := d.Create(ControllerButtonID(kind), "controller-button")
		if err := sb.Bind(kind, btn); err != nil {
			return nil, fmt.Errorf("bind controller buttons: %w", err)
		}
		btn.Clicked().Add(func(Element) {
			// kind is always known to the switchboard after a successful Bind
			_ = sb.SwitchTo(kind)
		})
		buttons[kind] = btn
	}
	return buttons, nil
}
