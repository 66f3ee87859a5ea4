package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// freeMouseInput turns a free camera while the pointer is dragged or locked.
type freeMouseInput struct {
	camera  camera.FreeCamera
	tracker pointerTracker
}

var _ camera.CameraInput = &freeMouseInput{}

// NewFreeMouseInput creates the default free camera mouse-look input. Any button drags.
//
// Returns:
//   - camera.CameraInput: the new input
func NewFreeMouseInput() camera.CameraInput {
	f := &freeMouseInput{}
	f.tracker = newPointerTracker(f, []event.MouseButton{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight})
	return f
}

func (f *freeMouseInput) ClassName() string {
	return "FreeCameraMouseInput"
}

func (f *freeMouseInput) SimpleName() string {
	return "mouse"
}

func (f *freeMouseInput) SetCamera(cam camera.Camera) {
	f.camera, _ = cam.(camera.FreeCamera)
}

func (f *freeMouseInput) AttachControl(noPreventDefault bool) {
	if f.camera == nil {
		return
	}
	f.tracker.attach(f.camera.Hub(), noPreventDefault)
}

func (f *freeMouseInput) DetachControl() {
	f.tracker.detach()
}

func (f *freeMouseInput) CheckInputs() {}

func (f *freeMouseInput) onTouch(_ *event.PointerEvent, dx, dy float32) {
	s := f.camera.AngularSensibility()
	f.camera.AddCameraRotation(dy/s, dx/s)
}

func (f *freeMouseInput) onMultiTouch(_, _ *trackedPointer, _, _ float32) {}

func (f *freeMouseInput) onButtonDown(*event.PointerEvent) {}

func (f *freeMouseInput) onButtonUp(*event.PointerEvent) {}

func (f *freeMouseInput) onLostFocus() {}

func (f *freeMouseInput) onContextMenu(*event.PointerEvent) {}
