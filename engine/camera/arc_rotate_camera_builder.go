package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// ArcRotateCameraBuilderOption is a functional option for configuring an ArcRotateCamera.
type ArcRotateCameraBuilderOption func(*arcRotateCameraImpl)

// WithAlpha sets the initial longitudinal angle.
//
// Parameters:
//   - alpha: angle in radians around the Y axis
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set alpha
func WithAlpha(alpha float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.alpha = alpha
	}
}

// WithBeta sets the initial latitudinal angle.
//
// Parameters:
//   - beta: angle in radians from the +Y axis (0 = looking straight down)
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set beta
func WithBeta(beta float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.beta = beta
	}
}

// WithRadius sets the initial distance from the target.
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set the radius
func WithRadius(radius float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.radius = radius
	}
}

// WithTarget sets the orbit target.
//
// Parameters:
//   - x, y, z: world-space coordinates of the target
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set the target
func WithTarget(x, y, z float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.target = mgl32.Vec3{x, y, z}
	}
}

// WithRadiusLimits sets the allowed radius range.
//
// Parameters:
//   - lower: minimum distance from the target
//   - upper: maximum distance from the target
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set radius limits
func WithRadiusLimits(lower, upper float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.lowerRadiusLimit = lower
		c.upperRadiusLimit = upper
	}
}

// WithBetaLimits sets the allowed beta range. Equal bounds lock the camera's tilt.
//
// Parameters:
//   - lower: minimum beta in radians
//   - upper: maximum beta in radians
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set beta limits
func WithBetaLimits(lower, upper float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.lowerBetaLimit = lower
		c.upperBetaLimit = upper
	}
}

// WithPanningInertia sets the decay factor of the pan accumulators.
//
// Parameters:
//   - inertia: per-frame multiplier in [0, 1)
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set panning inertia
func WithPanningInertia(inertia float32) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.panningInertia = inertia
	}
}

// WithPanningMouseButton sets the button whose drags pan the camera.
//
// Parameters:
//   - button: the panning button
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set the panning button
func WithPanningMouseButton(button event.MouseButton) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		c.panningMouseButton = button
	}
}

// WithArcLens applies the shared lens and inertia settings to an arc-rotate camera.
//
// Parameters:
//   - lens: the lens settings to apply
//
// Returns:
//   - ArcRotateCameraBuilderOption: functional option to set the lens
func WithArcLens(lens Lens) ArcRotateCameraBuilderOption {
	return func(c *arcRotateCameraImpl) {
		lens.apply(&c.cameraBase)
	}
}
