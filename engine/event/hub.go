package event

// Hub is the set of notification sources a scene exposes to camera inputs.
// It stands in for the host's keyboard, pointer, wheel and focus observables
// and the input element those events target.
type Hub interface {
	// Keyboard returns the key press/release observable.
	//
	// Returns:
	//   - *Observable[*KeyboardEvent]: the keyboard observable
	Keyboard() *Observable[*KeyboardEvent]

	// Pointer returns the pointer down/up/move observable.
	//
	// Returns:
	//   - *Observable[*PointerEvent]: the pointer observable
	Pointer() *Observable[*PointerEvent]

	// Wheel returns the scroll wheel observable.
	//
	// Returns:
	//   - *Observable[*WheelEvent]: the wheel observable
	Wheel() *Observable[*WheelEvent]

	// ContextMenu returns the observable fired when the host would open a context menu.
	// Handlers that do not call PreventDefault let the host show its menu.
	//
	// Returns:
	//   - *Observable[*PointerEvent]: the context menu observable
	ContextMenu() *Observable[*PointerEvent]

	// Blur returns the observable fired when the window or surface loses focus.
	//
	// Returns:
	//   - *Observable[FocusEvent]: the blur observable
	Blur() *Observable[FocusEvent]

	// Element returns the input element pointer events target.
	//
	// Returns:
	//   - Element: the input element (never nil)
	Element() Element

	// PointerLocked reports whether the host grants exclusive relative pointer input.
	//
	// Returns:
	//   - bool: true while the pointer is locked
	PointerLocked() bool

	// SetPointerLocked records the host pointer lock state.
	//
	// Parameters:
	//   - locked: the new lock state
	SetPointerLocked(locked bool)

	// UnreliableMultiTouch reports whether the platform is known to leave touch points
	// stuck down, in which case pointer inputs drop every tracked point on release.
	//
	// Returns:
	//   - bool: true on platforms with broken multi-touch release
	UnreliableMultiTouch() bool
}

// hubImpl is the implementation of Hub.
type hubImpl struct {
	keyboard    *Observable[*KeyboardEvent]
	pointer     *Observable[*PointerEvent]
	wheel       *Observable[*WheelEvent]
	contextMenu *Observable[*PointerEvent]
	blur        *Observable[FocusEvent]

	element              Element
	pointerLocked        bool
	unreliableMultiTouch bool
}

var _ Hub = &hubImpl{}

// NewHub creates a Hub with empty observables and an in-memory input element.
//
// Parameters:
//   - options: functional options to configure the hub
//
// Returns:
//   - Hub: the new hub
func NewHub(options ...HubBuilderOption) Hub {
	h := &hubImpl{
		keyboard:    NewObservable[*KeyboardEvent](),
		pointer:     NewObservable[*PointerEvent](),
		wheel:       NewObservable[*WheelEvent](),
		contextMenu: NewObservable[*PointerEvent](),
		blur:        NewObservable[FocusEvent](),
	}
	for _, opt := range options {
		opt(h)
	}
	if h.element == nil {
		h.element = NewElement(nil)
	}
	return h
}

func (h *hubImpl) Keyboard() *Observable[*KeyboardEvent] {
	return h.keyboard
}

func (h *hubImpl) Pointer() *Observable[*PointerEvent] {
	return h.pointer
}

func (h *hubImpl) Wheel() *Observable[*WheelEvent] {
	return h.wheel
}

func (h *hubImpl) ContextMenu() *Observable[*PointerEvent] {
	return h.contextMenu
}

func (h *hubImpl) Blur() *Observable[FocusEvent] {
	return h.blur
}

func (h *hubImpl) Element() Element {
	return h.element
}

func (h *hubImpl) PointerLocked() bool {
	return h.pointerLocked
}

func (h *hubImpl) SetPointerLocked(locked bool) {
	h.pointerLocked = locked
}

func (h *hubImpl) UnreliableMultiTouch() bool {
	return h.unreliableMultiTouch
}
