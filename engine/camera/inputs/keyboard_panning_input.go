package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// KeyboardPanningInput turns held direction keys into continuous pan and zoom on a Panner.
// Up and down pan vertically, or zoom when the key was pressed with Alt; left and right pan
// horizontally.
type KeyboardPanningInput interface {
	camera.CameraInput

	// HeldKeys returns the key codes currently held, in press order.
	//
	// Returns:
	//   - []uint32: a copy of the held key codes
	HeldKeys() []uint32

	// PanningSensibility returns the divisor applied to per-frame pan increments.
	//
	// Returns:
	//   - float32: the panning sensibility
	PanningSensibility() float32

	// ZoomingSensibility returns the divisor applied to per-frame zoom increments.
	//
	// Returns:
	//   - float32: the zooming sensibility
	ZoomingSensibility() float32

	// UseAltToZoom reports whether Alt turns up/down into zoom.
	//
	// Returns:
	//   - bool: true when Alt zooms
	UseAltToZoom() bool
}

// keyboardPanningInputImpl is the implementation of KeyboardPanningInput.
type keyboardPanningInputImpl struct {
	camera camera.Camera
	panner Panner

	groups keyGroups
	keys   keyTracker

	panningSensibility float32
	zoomingSensibility float32
	useAltToZoom       bool
}

var _ KeyboardPanningInput = &keyboardPanningInputImpl{}

// NewKeyboardPanningInput creates a keyboard panning input.
// Defaults: up = {Up, Z}, left = {Left, Q}, down = {Down, S}, right = {Right, D},
// panning sensibility 50, zooming sensibility 25, Alt zooms.
//
// Parameters:
//   - options: functional options to configure the input
//
// Returns:
//   - KeyboardPanningInput: the new input
func NewKeyboardPanningInput(options ...KeyboardPanningInputBuilderOption) KeyboardPanningInput {
	k := &keyboardPanningInputImpl{
		groups: keyGroups{
			up:    []uint32{common.KeyUp, common.KeyZ},
			left:  []uint32{common.KeyLeft, common.KeyQ},
			down:  []uint32{common.KeyDown, common.KeyS},
			right: []uint32{common.KeyRight, common.KeyD},
		},
		panningSensibility: 50,
		zoomingSensibility: 25,
		useAltToZoom:       true,
	}
	for _, opt := range options {
		opt(k)
	}
	k.keys = newKeyTracker(k.groups.contains)
	return k
}

func (k *keyboardPanningInputImpl) ClassName() string {
	return "KeyboardPanningInput"
}

func (k *keyboardPanningInputImpl) SimpleName() string {
	return "keyboardPanning"
}

func (k *keyboardPanningInputImpl) SetCamera(cam camera.Camera) {
	k.camera = cam
	k.panner, _ = cam.(Panner)
}

func (k *keyboardPanningInputImpl) AttachControl(noPreventDefault bool) {
	if k.camera == nil {
		return
	}
	k.keys.attach(k.camera.Hub(), noPreventDefault)
}

func (k *keyboardPanningInputImpl) DetachControl() {
	k.keys.detach()
}

func (k *keyboardPanningInputImpl) CheckInputs() {
	if !k.keys.attached() || k.panner == nil {
		return
	}
	pan := 1 / k.panningSensibility
	zoom := 1 / k.zoomingSensibility
	for _, h := range k.keys.held {
		zooming := k.useAltToZoom && h.mods.Has(event.ModAlt)
		switch k.groups.direction(h.code) {
		case directionUp:
			if zooming {
				k.panner.AddInertialRadiusOffset(zoom)
			} else {
				k.panner.AddInertialPanning(0, pan)
			}
		case directionLeft:
			k.panner.AddInertialPanning(-pan, 0)
		case directionDown:
			if zooming {
				k.panner.AddInertialRadiusOffset(-zoom)
			} else {
				k.panner.AddInertialPanning(0, -pan)
			}
		case directionRight:
			k.panner.AddInertialPanning(pan, 0)
		}
	}
}

func (k *keyboardPanningInputImpl) HeldKeys() []uint32 {
	return k.keys.codes()
}

func (k *keyboardPanningInputImpl) PanningSensibility() float32 {
	return k.panningSensibility
}

func (k *keyboardPanningInputImpl) ZoomingSensibility() float32 {
	return k.zoomingSensibility
}

func (k *keyboardPanningInputImpl) UseAltToZoom() bool {
	return k.useAltToZoom
}
