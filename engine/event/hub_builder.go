package event

// HubBuilderOption is a functional option for configuring a Hub.
type HubBuilderOption func(h *hubImpl)

// WithElement sets the input element pointer events target.
//
// Parameters:
//   - el: the element (nil keeps the default in-memory element)
//
// Returns:
//   - HubBuilderOption: option function to apply
func WithElement(el Element) HubBuilderOption {
	return func(h *hubImpl) {
		h.element = el
	}
}

// WithPointerLocked sets the initial pointer lock state.
//
// Parameters:
//   - locked: whether the pointer starts locked
//
// Returns:
//   - HubBuilderOption: option function to apply
func WithPointerLocked(locked bool) HubBuilderOption {
	return func(h *hubImpl) {
		h.pointerLocked = locked
	}
}

// WithUnreliableMultiTouch flags the platform as leaving touch points stuck.
//
// Parameters:
//   - unreliable: whether pointer inputs should drop all points on release
//
// Returns:
//   - HubBuilderOption: option function to apply
func WithUnreliableMultiTouch(unreliable bool) HubBuilderOption {
	return func(h *hubImpl) {
		h.unreliableMultiTouch = unreliable
	}
}
