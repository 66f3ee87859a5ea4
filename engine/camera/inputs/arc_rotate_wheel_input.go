package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// arcRotateWheelInput zooms an arc-rotate camera with the scroll wheel.
type arcRotateWheelInput struct {
	camera camera.ArcRotateCamera

	hub            event.Hub
	wheelHandle    event.Handle
	wheelPrecision float32
}

var _ camera.CameraInput = &arcRotateWheelInput{}

// NewArcRotateWheelInput creates the default arc-rotate wheel input.
// One wheel notch (delta 1) changes the radius by 1/precision. Non-positive precisions use 3.
//
// Parameters:
//   - precision: wheel delta per unit of radius
//
// Returns:
//   - camera.CameraInput: the new input
func NewArcRotateWheelInput(precision float32) camera.CameraInput {
	if precision <= 0 {
		precision = 3
	}
	return &arcRotateWheelInput{wheelPrecision: precision}
}

func (a *arcRotateWheelInput) ClassName() string {
	return "ArcRotateCameraMouseWheelInput"
}

func (a *arcRotateWheelInput) SimpleName() string {
	return "mousewheel"
}

func (a *arcRotateWheelInput) SetCamera(cam camera.Camera) {
	a.camera, _ = cam.(camera.ArcRotateCamera)
}

func (a *arcRotateWheelInput) AttachControl(noPreventDefault bool) {
	if a.camera == nil || a.wheelHandle.Valid() {
		return
	}
	a.hub = a.camera.Hub()
	a.wheelHandle = a.hub.Wheel().Add(func(ev *event.WheelEvent) {
		a.camera.AddInertialRadiusOffset(ev.DeltaY / a.wheelPrecision)
		if !noPreventDefault {
			ev.PreventDefault()
		}
	})
}

func (a *arcRotateWheelInput) DetachControl() {
	if a.hub != nil {
		a.hub.Wheel().Remove(a.wheelHandle)
	}
	a.wheelHandle = event.Handle{}
}

func (a *arcRotateWheelInput) CheckInputs() {}
