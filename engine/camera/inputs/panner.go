package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// Panner is the part of a camera the panning inputs drive. ArcRotateCamera satisfies it.
type Panner interface {
	camera.Camera

	// AddInertialPanning adds to the pending pan along the camera's right and up axes.
	//
	// Parameters:
	//   - x: pan along the right axis
	//   - y: pan along the up axis
	AddInertialPanning(x, y float32)

	// AddInertialRadiusOffset adds to the pending zoom. Positive values move the camera in.
	//
	// Parameters:
	//   - delta: the radius offset to add
	AddInertialRadiusOffset(delta float32)

	// PanningMouseButton returns the pointer button that pans when dragged.
	//
	// Returns:
	//   - event.MouseButton: the panning button
	PanningMouseButton() event.MouseButton
}

var _ Panner = camera.ArcRotateCamera(nil)
