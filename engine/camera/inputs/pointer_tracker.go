package inputs

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// trackedPointer is one pointer taking part in a drag.
type trackedPointer struct {
	x, y        float32
	pointerID   int
	pointerType string
}

func newTrackedPointer(ev *event.PointerEvent) *trackedPointer {
	return &trackedPointer{x: ev.ClientX, y: ev.ClientY, pointerID: ev.PointerID, pointerType: ev.PointerType}
}

func pointerDistance(a, b *trackedPointer) float32 {
	return mgl32.Vec2{a.x - b.x, a.y - b.y}.Len()
}

// pointerHooks receives the drag events the tracker derives from raw pointer events.
type pointerHooks interface {
	onTouch(ev *event.PointerEvent, dx, dy float32)
	onMultiTouch(a, b *trackedPointer, previousDistance, distance float32)
	onButtonDown(ev *event.PointerEvent)
	onButtonUp(ev *event.PointerEvent)
	onLostFocus()
	onContextMenu(ev *event.PointerEvent)
}

// pointerTracker turns pointer down/up/move events into drag deltas for a pointer input.
// It tracks up to two pointers and at most one active button.
type pointerTracker struct {
	hooks   pointerHooks
	buttons []event.MouseButton

	hub           event.Hub
	pointerHandle event.Handle
	contextHandle event.Handle
	blurHandle    event.Handle

	activeButton   event.MouseButton
	buttonsPressed uint8
	pointA         *trackedPointer
	pointB         *trackedPointer
}

func newPointerTracker(hooks pointerHooks, buttons []event.MouseButton) pointerTracker {
	return pointerTracker{
		hooks:        hooks,
		buttons:      buttons,
		activeButton: event.ButtonNone,
	}
}

func (p *pointerTracker) attached() bool {
	return p.pointerHandle.Valid()
}

func (p *pointerTracker) attach(hub event.Hub, noPreventDefault bool) {
	if p.attached() || hub == nil {
		return
	}
	p.hub = hub
	p.reset()

	p.pointerHandle = hub.Pointer().Add(func(ev *event.PointerEvent) {
		p.handlePointer(ev, noPreventDefault)
	})
	p.contextHandle = hub.ContextMenu().Add(p.hooks.onContextMenu)
	p.blurHandle = hub.Blur().Add(func(event.FocusEvent) {
		p.reset()
		p.hooks.onLostFocus()
	})
}

func (p *pointerTracker) detach() {
	if p.hub != nil {
		p.hub.Pointer().Remove(p.pointerHandle)
		p.hub.ContextMenu().Remove(p.contextHandle)
		p.hub.Blur().Remove(p.blurHandle)
	}
	p.pointerHandle = event.Handle{}
	p.contextHandle = event.Handle{}
	p.blurHandle = event.Handle{}
	p.reset()
}

func (p *pointerTracker) reset() {
	p.pointA, p.pointB = nil, nil
	p.activeButton = event.ButtonNone
	p.buttonsPressed = 0
}

func (p *pointerTracker) tracked() int {
	n := 0
	if p.pointA != nil {
		n++
	}
	if p.pointB != nil {
		n++
	}
	return n
}

func (p *pointerTracker) handlePointer(ev *event.PointerEvent, noPreventDefault bool) {
	if ev.Type != event.PointerMove && !slices.Contains(p.buttons, ev.Button) {
		return
	}
	p.buttonsPressed = ev.Buttons

	target := ev.Target
	if target == nil {
		target = p.hub.Element()
	}

	if p.hub.PointerLocked() {
		p.hooks.onTouch(ev, ev.MovementX, ev.MovementY)
		p.pointA, p.pointB = nil, nil
		return
	}

	switch ev.Type {
	case event.PointerDown:
		p.pointerDown(ev, target, noPreventDefault)
	case event.PointerUp:
		p.pointerUp(ev, target, noPreventDefault)
	case event.PointerMove:
		p.pointerMove(ev, noPreventDefault)
	}
}

func (p *pointerTracker) pointerDown(ev *event.PointerEvent, target event.Element, noPreventDefault bool) {
	if p.activeButton != event.ButtonNone {
		// a second finger joins the drag; a second mouse button does not
		if p.pointA != nil && p.pointB == nil && p.pointA.pointerID != ev.PointerID {
			_ = target.SetPointerCapture(ev.PointerID)
			p.pointB = newTrackedPointer(ev)
		}
		return
	}

	_ = target.SetPointerCapture(ev.PointerID)
	if p.pointA == nil {
		p.pointA = newTrackedPointer(ev)
	} else if p.pointB == nil {
		p.pointB = newTrackedPointer(ev)
	}
	p.activeButton = ev.Button
	p.hooks.onButtonDown(ev)

	if !noPreventDefault {
		ev.PreventDefault()
		p.hub.Element().Focus()
	}
}

func (p *pointerTracker) pointerUp(ev *event.PointerEvent, target event.Element, noPreventDefault bool) {
	if ev.Button != p.activeButton {
		return
	}
	_ = target.ReleasePointerCapture(ev.PointerID)

	switch {
	case p.hub.UnreliableMultiTouch():
		p.pointA, p.pointB = nil, nil
	case p.pointA != nil && p.pointB != nil && p.pointA.pointerID == ev.PointerID:
		p.pointA, p.pointB = p.pointB, nil
	case p.pointA != nil && p.pointB != nil && p.pointB.pointerID == ev.PointerID:
		p.pointB = nil
	default:
		p.pointA, p.pointB = nil, nil
	}

	p.activeButton = event.ButtonNone
	p.hooks.onButtonUp(ev)

	if !noPreventDefault {
		ev.PreventDefault()
	}
}

func (p *pointerTracker) pointerMove(ev *event.PointerEvent, noPreventDefault bool) {
	if !noPreventDefault {
		ev.PreventDefault()
	}
	if p.pointA == nil {
		return
	}

	if p.pointB == nil {
		dx := ev.ClientX - p.pointA.x
		dy := ev.ClientY - p.pointA.y
		p.hooks.onTouch(ev, dx, dy)
		p.pointA.x, p.pointA.y = ev.ClientX, ev.ClientY
		return
	}

	moved := p.pointB
	if p.pointA.pointerID == ev.PointerID {
		moved = p.pointA
	} else if p.pointB.pointerID != ev.PointerID {
		return
	}
	previous := pointerDistance(p.pointA, p.pointB)
	moved.x, moved.y = ev.ClientX, ev.ClientY
	p.hooks.onMultiTouch(p.pointA, p.pointB, previous, pointerDistance(p.pointA, p.pointB))
}
