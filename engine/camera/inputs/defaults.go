package inputs

import "github.com/Carmen-Shannon/oxy-roomview/engine/camera"

// AddArcRotateDefaults installs the default orbit inputs (pointers, keyboard, wheel) on an
// arc-rotate camera.
//
// Parameters:
//   - cam: the camera to configure
func AddArcRotateDefaults(cam camera.ArcRotateCamera) {
	cam.Inputs().Add(NewArcRotatePointersInput())
	cam.Inputs().Add(NewArcRotateKeyboardInput())
	cam.Inputs().Add(NewArcRotateWheelInput(3))
}

// AddFreeDefaults installs the default free camera inputs (keyboard move, mouse look).
//
// Parameters:
//   - cam: the camera to configure
func AddFreeDefaults(cam camera.FreeCamera) {
	cam.Inputs().Add(NewFreeKeyboardInput())
	cam.Inputs().Add(NewFreeMouseInput())
}

// UsePanningInputs discards every input of an arc-rotate camera and installs a keyboard and
// pointer panning pair in their place.
//
// Parameters:
//   - cam: the camera to configure
//   - keyboard: the keyboard panning input
//   - pointer: the pointer panning input
func UsePanningInputs(cam camera.ArcRotateCamera, keyboard KeyboardPanningInput, pointer PointerPanningInput) {
	cam.Inputs().Clear()
	cam.Inputs().Add(keyboard)
	cam.Inputs().Add(pointer)
}
