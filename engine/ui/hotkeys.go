package ui

import (
	"slices"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
)

type hotkey struct {
	code   uint32
	mods   event.Modifiers
	target Element
}

// Hotkeys clicks elements when key combinations are pressed. A combination fires once per
// press; key repeats are ignored until the key is released.
type Hotkeys struct {
	bindings []hotkey
	held     []uint32

	hub    event.Hub
	handle event.Handle
	blur   event.Handle
}

// NewHotkeys creates an empty hotkey table.
func NewHotkeys() *Hotkeys {
	return &Hotkeys{}
}

// Bind maps a key code and exact modifier set to an element.
//
// Parameters:
//   - code: the key code
//   - mods: the modifiers that must be held, and no others
//   - target: the element to click
func (h *Hotkeys) Bind(code uint32, mods event.Modifiers, target Element) {
	h.bindings = append(h.bindings, hotkey{code: code, mods: mods, target: target})
}

// Attach starts listening on hub. Attaching twice is a no-op.
//
// Parameters:
//   - hub: the hub to listen on
func (h *Hotkeys) Attach(hub event.Hub) {
	if h.handle.Valid() {
		return
	}
	h.hub = hub
	h.handle = hub.Keyboard().Add(h.onKey)
	h.blur = hub.Blur().Add(func(event.FocusEvent) { h.held = nil })
}

// Detach stops listening.
func (h *Hotkeys) Detach() {
	if h.hub != nil {
		h.hub.Keyboard().Remove(h.handle)
		h.hub.Blur().Remove(h.blur)
	}
	h.handle = event.Handle{}
	h.blur = event.Handle{}
	h.held = nil
}

func (h *Hotkeys) onKey(ev *event.KeyboardEvent) {
	if ev.Type == event.KeyUp {
		h.held = slices.DeleteFunc(h.held, func(c uint32) bool { return c == ev.KeyCode })
		return
	}
	if slices.Contains(h.held, ev.KeyCode) {
		return
	}
	h.held = append(h.held, ev.KeyCode)

	for _, b := range h.bindings {
		if b.code == ev.KeyCode && b.mods == ev.Mods {
			logger.Log.Debug("hotkey", zap.String("target", b.target.ID()))
			ev.PreventDefault()
			b.target.Click()
			return
		}
	}
}
