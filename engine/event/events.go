package event

// Modifiers is a bitmask of modifier keys held when an event was produced.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	// ModMeta is the OS key (Super/Cmd/Windows).
	ModMeta
)

// Has reports whether every modifier in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// preventable carries the default-action flag shared by all input events.
type preventable struct {
	defaultPrevented bool
}

// PreventDefault marks the event's default host action as cancelled.
func (p *preventable) PreventDefault() {
	p.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (p *preventable) DefaultPrevented() bool {
	return p.defaultPrevented
}

// KeyboardEventType distinguishes key presses from releases.
type KeyboardEventType int

const (
	KeyDown KeyboardEventType = iota
	KeyUp
)

func (t KeyboardEventType) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// KeyboardEvent is a single key press or release.
// Key repeats are delivered as additional KeyDown events.
type KeyboardEvent struct {
	preventable

	// Type is KeyDown or KeyUp.
	Type KeyboardEventType
	// KeyCode is the GLFW key code (see common key constants).
	KeyCode uint32
	// Mods is the modifier state at the time of the event.
	Mods Modifiers
}

// Alt reports whether Alt was held.
func (e *KeyboardEvent) Alt() bool { return e.Mods.Has(ModAlt) }

// Ctrl reports whether Control was held.
func (e *KeyboardEvent) Ctrl() bool { return e.Mods.Has(ModCtrl) }

// Shift reports whether Shift was held.
func (e *KeyboardEvent) Shift() bool { return e.Mods.Has(ModShift) }

// Meta reports whether the OS key was held.
func (e *KeyboardEvent) Meta() bool { return e.Mods.Has(ModMeta) }

// MouseButton identifies a pointer button using the browser numbering
// (0 = left/primary, 1 = middle, 2 = right).
type MouseButton int

const (
	ButtonNone   MouseButton = -1
	ButtonLeft   MouseButton = 0
	ButtonMiddle MouseButton = 1
	ButtonRight  MouseButton = 2
)

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "other"
	}
}

// PointerEventType distinguishes pointer presses, releases and moves.
type PointerEventType int

const (
	PointerDown PointerEventType = iota
	PointerUp
	PointerMove
)

func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case PointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// Pointer types reported in PointerEvent.PointerType.
const (
	PointerTypeMouse = "mouse"
	PointerTypeTouch = "touch"
	PointerTypePen   = "pen"
)

// PointerEvent is a pointer press, release or move on the render surface.
type PointerEvent struct {
	preventable

	// Type is PointerDown, PointerUp or PointerMove.
	Type PointerEventType
	// Button is the button that changed state; ButtonNone for moves.
	Button MouseButton
	// Buttons is a bitmask of the buttons currently held (bit n = MouseButton n).
	Buttons uint8
	// ClientX, ClientY are the pointer coordinates in surface pixels.
	ClientX, ClientY float32
	// MovementX, MovementY are the raw relative deltas since the last event.
	// These are the only meaningful coordinates while the pointer is locked.
	MovementX, MovementY float32
	// PointerID identifies the pointer (the mouse, or one touch point).
	PointerID int
	// PointerType is one of the PointerType* constants.
	PointerType string
	// Mods is the modifier state at the time of the event.
	Mods Modifiers
	// Target is the element that received the event; may be nil.
	Target Element
}

// WheelEvent is a scroll wheel movement. Positive DeltaY scrolls up.
type WheelEvent struct {
	preventable

	DeltaX, DeltaY float32
}

// FocusEvent is delivered when the window or its render surface loses focus.
type FocusEvent struct{}
