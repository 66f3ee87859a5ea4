package inputs

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// PointerPanningInputBuilderOption is a functional option for configuring a PointerPanningInput.
type PointerPanningInputBuilderOption func(*pointerPanningInputImpl)

// WithPointerButtons sets the whitelist of buttons whose presses start a drag.
// Pointer moves are never filtered.
//
// Parameters:
//   - buttons: the accepted buttons
//
// Returns:
//   - PointerPanningInputBuilderOption: a function that applies the whitelist
func WithPointerButtons(buttons ...event.MouseButton) PointerPanningInputBuilderOption {
	return func(p *pointerPanningInputImpl) {
		p.buttons = slices.Clone(buttons)
	}
}

// WithPointerPanningSensibility sets the pixels per world unit of pan. Zero disables panning.
//
// Parameters:
//   - sensibility: the panning sensibility
//
// Returns:
//   - PointerPanningInputBuilderOption: a function that applies the sensibility
func WithPointerPanningSensibility(sensibility float32) PointerPanningInputBuilderOption {
	return func(p *pointerPanningInputImpl) {
		p.panningSensibility = sensibility
	}
}

// WithDeltaHook replaces the default drag handling. The hook receives the raw pixel delta of
// every single-pointer move (or the movement delta under pointer lock) and the default pan is skipped.
//
// Parameters:
//   - hook: the delta handler
//
// Returns:
//   - PointerPanningInputBuilderOption: a function that installs the hook
func WithDeltaHook(hook func(dx, dy float32)) PointerPanningInputBuilderOption {
	return func(p *pointerPanningInputImpl) {
		p.deltaHook = hook
	}
}

// WithContextMenuHook replaces the default context menu suppression.
//
// Parameters:
//   - hook: the context menu handler; call PreventDefault on the event to suppress the menu
//
// Returns:
//   - PointerPanningInputBuilderOption: a function that installs the hook
func WithContextMenuHook(hook func(ev *event.PointerEvent)) PointerPanningInputBuilderOption {
	return func(p *pointerPanningInputImpl) {
		p.contextMenuHook = hook
	}
}
