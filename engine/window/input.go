package window

import "github.com/Carmen-Shannon/oxy-roomview/engine/event"

// mousePointerID is the pointer id reported for the system mouse.
const mousePointerID = 1

// inputTranslator turns platform callbacks into hub events.
// It keeps the last cursor position so moves carry movement deltas and button events
// carry coordinates.
type inputTranslator struct {
	hub       event.Hub
	x, y      float32
	hasCursor bool
	buttons   uint8
	mods      event.Modifiers
}

func newInputTranslator(hub event.Hub) inputTranslator {
	return inputTranslator{hub: hub}
}

func (t *inputTranslator) key(code uint32, pressed bool, mods event.Modifiers) *event.KeyboardEvent {
	t.mods = mods
	ev := &event.KeyboardEvent{Type: event.KeyUp, KeyCode: code, Mods: mods}
	if pressed {
		ev.Type = event.KeyDown
	}
	t.hub.Keyboard().Notify(ev)
	return ev
}

func (t *inputTranslator) button(button event.MouseButton, pressed bool, mods event.Modifiers) *event.PointerEvent {
	t.mods = mods
	bit := uint8(1) << uint(button)
	typ := event.PointerUp
	if pressed {
		typ = event.PointerDown
		t.buttons |= bit
	} else {
		t.buttons &^= bit
	}

	ev := t.pointerEvent(typ, button)
	t.hub.Pointer().Notify(ev)

	if pressed && button == event.ButtonRight {
		t.hub.ContextMenu().Notify(t.pointerEvent(typ, button))
	}
	return ev
}

func (t *inputTranslator) cursor(x, y float32) *event.PointerEvent {
	var dx, dy float32
	if t.hasCursor {
		dx, dy = x-t.x, y-t.y
	}
	t.x, t.y, t.hasCursor = x, y, true

	ev := t.pointerEvent(event.PointerMove, event.ButtonNone)
	ev.MovementX, ev.MovementY = dx, dy
	t.hub.Pointer().Notify(ev)
	return ev
}

func (t *inputTranslator) scroll(dx, dy float32) *event.WheelEvent {
	ev := &event.WheelEvent{DeltaX: dx, DeltaY: dy}
	t.hub.Wheel().Notify(ev)
	return ev
}

// blur drops held buttons and modifiers; the platform will not report their release.
func (t *inputTranslator) blur() {
	t.buttons = 0
	t.mods = 0
	t.hub.Blur().Notify(event.FocusEvent{})
}

func (t *inputTranslator) pointerEvent(typ event.PointerEventType, button event.MouseButton) *event.PointerEvent {
	return &event.PointerEvent{
		Type:        typ,
		Button:      button,
		Buttons:     t.buttons,
		ClientX:     t.x,
		ClientY:     t.y,
		PointerID:   mousePointerID,
		PointerType: event.PointerTypeMouse,
		Mods:        t.mods,
		Target:      t.hub.Element(),
	}
}
