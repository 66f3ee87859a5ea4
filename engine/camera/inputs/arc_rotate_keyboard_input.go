package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// arcRotateKeyboardInput is the default keyboard input of an arc-rotate camera.
// Arrows orbit, Ctrl+arrows pan and Alt+up/down zoom.
type arcRotateKeyboardInput struct {
	camera camera.ArcRotateCamera

	groups keyGroups
	keys   keyTracker

	angularSpeed       float32
	panningSensibility float32
	zoomingSensibility float32
	useAltToZoom       bool
}

var _ camera.CameraInput = &arcRotateKeyboardInput{}

// NewArcRotateKeyboardInput creates the default arc-rotate keyboard input.
//
// Returns:
//   - camera.CameraInput: the new input
func NewArcRotateKeyboardInput() camera.CameraInput {
	a := &arcRotateKeyboardInput{
		groups: keyGroups{
			up:    []uint32{common.KeyUp},
			left:  []uint32{common.KeyLeft},
			down:  []uint32{common.KeyDown},
			right: []uint32{common.KeyRight},
		},
		angularSpeed:       0.01,
		panningSensibility: 50,
		zoomingSensibility: 25,
		useAltToZoom:       true,
	}
	a.keys = newKeyTracker(a.groups.contains)
	return a
}

func (a *arcRotateKeyboardInput) ClassName() string {
	return "ArcRotateCameraKeyboardMoveInput"
}

func (a *arcRotateKeyboardInput) SimpleName() string {
	return "keyboard"
}

func (a *arcRotateKeyboardInput) SetCamera(cam camera.Camera) {
	a.camera, _ = cam.(camera.ArcRotateCamera)
}

func (a *arcRotateKeyboardInput) AttachControl(noPreventDefault bool) {
	if a.camera == nil {
		return
	}
	a.keys.attach(a.camera.Hub(), noPreventDefault)
}

func (a *arcRotateKeyboardInput) DetachControl() {
	a.keys.detach()
}

func (a *arcRotateKeyboardInput) CheckInputs() {
	if !a.keys.attached() || a.camera == nil {
		return
	}
	pan := 1 / a.panningSensibility
	zoom := 1 / a.zoomingSensibility
	for _, h := range a.keys.held {
		ctrl := h.mods.Has(event.ModCtrl)
		zooming := a.useAltToZoom && h.mods.Has(event.ModAlt)
		switch a.groups.direction(h.code) {
		case directionUp:
			switch {
			case ctrl:
				a.camera.AddInertialPanning(0, pan)
			case zooming:
				a.camera.AddInertialRadiusOffset(zoom)
			default:
				a.camera.AddInertialBetaOffset(-a.angularSpeed)
			}
		case directionLeft:
			if ctrl {
				a.camera.AddInertialPanning(-pan, 0)
			} else {
				a.camera.AddInertialAlphaOffset(-a.angularSpeed)
			}
		case directionDown:
			switch {
			case ctrl:
				a.camera.AddInertialPanning(0, -pan)
			case zooming:
				a.camera.AddInertialRadiusOffset(-zoom)
			default:
				a.camera.AddInertialBetaOffset(a.angularSpeed)
			}
		case directionRight:
			if ctrl {
				a.camera.AddInertialPanning(pan, 0)
			} else {
				a.camera.AddInertialAlphaOffset(a.angularSpeed)
			}
		}
	}
}
