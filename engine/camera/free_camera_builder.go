package camera

import "github.com/go-gl/mathgl/mgl32"

// FreeCameraBuilderOption is a functional option for configuring a FreeCamera.
type FreeCameraBuilderOption func(*freeCameraImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - FreeCameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) FreeCameraBuilderOption {
	return func(c *freeCameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation.
//
// Parameters:
//   - pitch: radians, positive looks down
//   - yaw: radians, positive turns right
//
// Returns:
//   - FreeCameraBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw float32) FreeCameraBuilderOption {
	return func(c *freeCameraImpl) {
		c.pitch = pitch
		c.yaw = yaw
	}
}

// WithSpeed sets the per-frame movement speed.
//
// Parameters:
//   - speed: world units per frame per unit of local direction
//
// Returns:
//   - FreeCameraBuilderOption: functional option to set the speed
func WithSpeed(speed float32) FreeCameraBuilderOption {
	return func(c *freeCameraImpl) {
		c.speed = speed
	}
}

// WithAngularSensibility sets how many pointer pixels make one radian of rotation.
//
// Parameters:
//   - sensibility: pixels per radian (higher = slower)
//
// Returns:
//   - FreeCameraBuilderOption: functional option to set angular sensibility
func WithAngularSensibility(sensibility float32) FreeCameraBuilderOption {
	return func(c *freeCameraImpl) {
		c.angularSensibility = sensibility
	}
}

// WithFreeLens applies the shared lens and inertia settings to a free camera.
//
// Parameters:
//   - lens: the lens settings to apply
//
// Returns:
//   - FreeCameraBuilderOption: functional option to set the lens
func WithFreeLens(lens Lens) FreeCameraBuilderOption {
	return func(c *freeCameraImpl) {
		lens.apply(&c.cameraBase)
	}
}
