package inputs

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// PointerPanningInput pans a Panner while a pointer is dragged with the camera's panning button.
// Dragging with any other whitelisted button is tracked but moves nothing, and the context menu
// is suppressed while attached so the right button can pan.
type PointerPanningInput interface {
	camera.CameraInput

	// Buttons returns the pointer buttons whose presses are tracked.
	//
	// Returns:
	//   - []event.MouseButton: a copy of the button whitelist
	Buttons() []event.MouseButton

	// PanningSensibility returns the pixels per world unit of pan. Zero disables panning.
	//
	// Returns:
	//   - float32: the panning sensibility
	PanningSensibility() float32

	// ActiveButton returns the button currently driving the drag, or event.ButtonNone.
	//
	// Returns:
	//   - event.MouseButton: the active button
	ActiveButton() event.MouseButton

	// TrackedPointers returns how many pointers are currently tracked (0, 1 or 2).
	//
	// Returns:
	//   - int: the number of tracked pointers
	TrackedPointers() int

	// IsPanClick reports whether the current drag started with the panning button.
	//
	// Returns:
	//   - bool: true while a panning drag is in progress
	IsPanClick() bool
}

// pointerPanningInputImpl is the implementation of PointerPanningInput.
type pointerPanningInputImpl struct {
	camera camera.Camera
	panner Panner

	tracker            pointerTracker
	buttons            []event.MouseButton
	panningSensibility float32
	isPanClick         bool

	deltaHook       func(dx, dy float32)
	contextMenuHook func(ev *event.PointerEvent)
}

var _ PointerPanningInput = &pointerPanningInputImpl{}
var _ pointerHooks = &pointerPanningInputImpl{}

// NewPointerPanningInput creates a pointer panning input tracking the left, middle and right
// buttons with a panning sensibility of 1000.
//
// Parameters:
//   - options: functional options to configure the input
//
// Returns:
//   - PointerPanningInput: the new input
func NewPointerPanningInput(options ...PointerPanningInputBuilderOption) PointerPanningInput {
	p := &pointerPanningInputImpl{
		buttons:            []event.MouseButton{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight},
		panningSensibility: 1000,
	}
	for _, opt := range options {
		opt(p)
	}
	p.tracker = newPointerTracker(p, p.buttons)
	return p
}

func (p *pointerPanningInputImpl) ClassName() string {
	return "PointerPanningInput"
}

func (p *pointerPanningInputImpl) SimpleName() string {
	return "pointers"
}

func (p *pointerPanningInputImpl) SetCamera(cam camera.Camera) {
	p.camera = cam
	p.panner, _ = cam.(Panner)
}

func (p *pointerPanningInputImpl) AttachControl(noPreventDefault bool) {
	if p.camera == nil {
		return
	}
	p.tracker.attach(p.camera.Hub(), noPreventDefault)
}

func (p *pointerPanningInputImpl) DetachControl() {
	p.tracker.detach()
	p.isPanClick = false
}

// CheckInputs is a no-op: pointer deltas are applied as they arrive.
func (p *pointerPanningInputImpl) CheckInputs() {}

func (p *pointerPanningInputImpl) Buttons() []event.MouseButton {
	return slices.Clone(p.buttons)
}

func (p *pointerPanningInputImpl) PanningSensibility() float32 {
	return p.panningSensibility
}

func (p *pointerPanningInputImpl) ActiveButton() event.MouseButton {
	return p.tracker.activeButton
}

func (p *pointerPanningInputImpl) TrackedPointers() int {
	return p.tracker.tracked()
}

func (p *pointerPanningInputImpl) IsPanClick() bool {
	return p.isPanClick
}

func (p *pointerPanningInputImpl) onTouch(_ *event.PointerEvent, dx, dy float32) {
	if p.deltaHook != nil {
		p.deltaHook(dx, dy)
		return
	}
	if p.panner == nil || !p.isPanClick || p.panningSensibility == 0 {
		return
	}
	p.panner.AddInertialPanning(-dx/p.panningSensibility, dy/p.panningSensibility)
}

func (p *pointerPanningInputImpl) onMultiTouch(_, _ *trackedPointer, _, _ float32) {}

func (p *pointerPanningInputImpl) onButtonDown(ev *event.PointerEvent) {
	p.isPanClick = p.panner != nil && ev.Button == p.panner.PanningMouseButton()
}

func (p *pointerPanningInputImpl) onButtonUp(*event.PointerEvent) {}

func (p *pointerPanningInputImpl) onLostFocus() {
	p.isPanClick = false
}

func (p *pointerPanningInputImpl) onContextMenu(ev *event.PointerEvent) {
	if p.contextMenuHook != nil {
		p.contextMenuHook(ev)
		return
	}
	ev.PreventDefault()
}
