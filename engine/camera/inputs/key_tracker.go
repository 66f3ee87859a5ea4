package inputs

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// heldKey is a key currently held down and the modifiers that were held when it was pressed.
type heldKey struct {
	code uint32
	mods event.Modifiers
}

// keyTracker keeps the held-key set shared by the keyboard inputs.
//
// Modifiers are captured once per key at press time: a key pressed with Alt keeps its
// Alt behaviour until released even if Alt is let go, and key repeats do not resample.
// Events with the Meta modifier are reserved for OS shortcuts and ignored.
type keyTracker struct {
	hub            event.Hub
	keyboardHandle event.Handle
	blurHandle     event.Handle

	held []heldKey

	// relevant reports whether a key code belongs to the input's key groups.
	relevant func(code uint32) bool
}

func newKeyTracker(relevant func(code uint32) bool) keyTracker {
	return keyTracker{relevant: relevant}
}

func (k *keyTracker) attached() bool {
	return k.keyboardHandle.Valid()
}

func (k *keyTracker) attach(hub event.Hub, noPreventDefault bool) {
	if k.attached() || hub == nil {
		return
	}
	k.hub = hub

	k.blurHandle = hub.Blur().Add(func(event.FocusEvent) {
		k.held = nil
	})

	k.keyboardHandle = hub.Keyboard().Add(func(ev *event.KeyboardEvent) {
		if ev.Meta() || !k.relevant(ev.KeyCode) {
			return
		}
		switch ev.Type {
		case event.KeyDown:
			if !k.isHeld(ev.KeyCode) {
				k.held = append(k.held, heldKey{code: ev.KeyCode, mods: ev.Mods})
			}
		case event.KeyUp:
			k.release(ev.KeyCode)
		}
		if !noPreventDefault {
			ev.PreventDefault()
		}
	})
}

func (k *keyTracker) detach() {
	if k.hub != nil {
		k.hub.Keyboard().Remove(k.keyboardHandle)
		k.hub.Blur().Remove(k.blurHandle)
	}
	k.keyboardHandle = event.Handle{}
	k.blurHandle = event.Handle{}
	k.held = nil
}

func (k *keyTracker) isHeld(code uint32) bool {
	return slices.ContainsFunc(k.held, func(h heldKey) bool { return h.code == code })
}

func (k *keyTracker) release(code uint32) {
	k.held = slices.DeleteFunc(k.held, func(h heldKey) bool { return h.code == code })
}

func (k *keyTracker) codes() []uint32 {
	out := make([]uint32, len(k.held))
	for i, h := range k.held {
		out[i] = h.code
	}
	return out
}

// direction is the logical direction a key group maps to.
type direction int

const (
	directionNone direction = iota
	directionUp
	directionLeft
	directionDown
	directionRight
)

// keyGroups maps key codes to the four logical directions.
type keyGroups struct {
	up, left, down, right []uint32
}

// direction resolves a code checking up, left, down, right in that order.
func (g *keyGroups) direction(code uint32) direction {
	switch {
	case slices.Contains(g.up, code):
		return directionUp
	case slices.Contains(g.left, code):
		return directionLeft
	case slices.Contains(g.down, code):
		return directionDown
	case slices.Contains(g.right, code):
		return directionRight
	default:
		return directionNone
	}
}

func (g *keyGroups) contains(code uint32) bool {
	return g.direction(code) != directionNone
}
