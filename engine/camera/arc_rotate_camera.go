package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// ArcRotateCamera orbits a target point using spherical coordinates.
// alpha is the longitudinal angle around the Y axis, beta the angle from the +Y axis
// (0 looks straight down) and radius the distance to the target.
//
// All motion driven by inputs goes through the inertial accumulators: inputs add to
// them, and Update applies them to the pose and decays them by the camera inertia
// (panning uses its own panning inertia).
type ArcRotateCamera interface {
	Camera

	// Alpha returns the longitudinal angle in radians.
	//
	// Returns:
	//   - float32: alpha in radians
	Alpha() float32

	// SetAlpha sets the longitudinal angle and recomputes the pose.
	//
	// Parameters:
	//   - alpha: angle in radians
	SetAlpha(alpha float32)

	// Beta returns the latitudinal angle from the +Y axis in radians.
	//
	// Returns:
	//   - float32: beta in radians
	Beta() float32

	// SetBeta sets the latitudinal angle, clamped to the beta limits.
	//
	// Parameters:
	//   - beta: angle in radians
	SetBeta(beta float32)

	// Radius returns the distance from the target.
	//
	// Returns:
	//   - float32: the orbit radius
	Radius() float32

	// SetRadius sets the distance from the target, clamped to the radius limits.
	//
	// Parameters:
	//   - radius: the new orbit radius
	SetRadius(radius float32)

	// Target returns the orbit target.
	//
	// Returns:
	//   - mgl32.Vec3: the target point
	Target() mgl32.Vec3

	// SetTarget moves the orbit target and recomputes the pose.
	//
	// Parameters:
	//   - target: the new target point
	SetTarget(target mgl32.Vec3)

	// InertialAlphaOffset returns the pending alpha change.
	InertialAlphaOffset() float32

	// InertialBetaOffset returns the pending beta change.
	InertialBetaOffset() float32

	// InertialRadiusOffset returns the pending radius change. Positive values zoom in.
	InertialRadiusOffset() float32

	// InertialPanning returns the pending pan along the camera's right (x) and up (y) axes.
	InertialPanning() (x, y float32)

	// AddInertialAlphaOffset adds to the pending alpha change.
	//
	// Parameters:
	//   - delta: radians to add
	AddInertialAlphaOffset(delta float32)

	// AddInertialBetaOffset adds to the pending beta change.
	//
	// Parameters:
	//   - delta: radians to add
	AddInertialBetaOffset(delta float32)

	// AddInertialRadiusOffset adds to the pending radius change. Positive values zoom in.
	//
	// Parameters:
	//   - delta: world units to add
	AddInertialRadiusOffset(delta float32)

	// AddInertialPanning adds to the pending pan.
	//
	// Parameters:
	//   - x: world units along the camera's right axis
	//   - y: world units along the camera's up axis
	AddInertialPanning(x, y float32)

	// PanningInertia returns the decay factor applied to the pan accumulators.
	PanningInertia() float32

	// PanningMouseButton returns the button whose drags pan instead of rotate.
	//
	// Returns:
	//   - event.MouseButton: the panning button
	PanningMouseButton() event.MouseButton

	// RadiusLimits returns the allowed radius range.
	RadiusLimits() (lower, upper float32)

	// BetaLimits returns the allowed beta range.
	BetaLimits() (lower, upper float32)

	// OrthoHalfHeight returns the half height of the orthographic view volume,
	// derived from the radius so radius zoom also applies in orthographic mode.
	//
	// Returns:
	//   - float32: half height in world units
	OrthoHalfHeight() float32

	// Axes returns the camera's right, up and forward unit vectors.
	Axes() (right, up, forward mgl32.Vec3)
}

type arcRotateCameraImpl struct {
	cameraBase

	alpha  float32
	beta   float32
	radius float32
	target mgl32.Vec3

	position mgl32.Vec3

	inertialAlphaOffset  float32
	inertialBetaOffset   float32
	inertialRadiusOffset float32
	inertialPanningX     float32
	inertialPanningY     float32

	panningInertia     float32
	panningMouseButton event.MouseButton

	lowerRadiusLimit float32
	upperRadiusLimit float32
	lowerBetaLimit   float32
	upperBetaLimit   float32
}

var _ ArcRotateCamera = &arcRotateCameraImpl{}

// NewArcRotateCamera creates an arc-rotate camera with no inputs registered.
// Callers add default or custom inputs through Inputs().
//
// Parameters:
//   - name: camera name used in logs
//   - hub: the event hub the camera's inputs register on (must not be nil)
//   - options: functional options to configure the camera
//
// Returns:
//   - ArcRotateCamera: the new camera
func NewArcRotateCamera(name string, hub event.Hub, options ...ArcRotateCameraBuilderOption) ArcRotateCamera {
	if hub == nil {
		panic("camera: NewArcRotateCamera requires a non-nil event hub")
	}
	c := &arcRotateCameraImpl{
		cameraBase: newCameraBase(name, hub),

		alpha:  float32(math.Pi / 2),
		beta:   float32(math.Pi / 3),
		radius: 10,

		panningInertia:     0.9,
		panningMouseButton: event.ButtonRight,

		lowerRadiusLimit: 0.1,
		upperRadiusLimit: math.MaxFloat32,
		lowerBetaLimit:   0.01,
		upperBetaLimit:   float32(math.Pi - 0.01),
	}
	c.inputs = newInputManager(c)

	for _, opt := range options {
		opt(c)
	}

	c.checkLimits()
	c.rebuild()
	return c
}

func (c *arcRotateCameraImpl) SetMode(mode ProjectionMode) {
	c.mode = mode
	c.rebuild()
}

func (c *arcRotateCameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.rebuild()
}

func (c *arcRotateCameraImpl) Alpha() float32 {
	return c.alpha
}

func (c *arcRotateCameraImpl) SetAlpha(alpha float32) {
	c.alpha = alpha
	c.rebuild()
}

func (c *arcRotateCameraImpl) Beta() float32 {
	return c.beta
}

func (c *arcRotateCameraImpl) SetBeta(beta float32) {
	c.beta = beta
	c.checkLimits()
	c.rebuild()
}

func (c *arcRotateCameraImpl) Radius() float32 {
	return c.radius
}

func (c *arcRotateCameraImpl) SetRadius(radius float32) {
	c.radius = radius
	c.checkLimits()
	c.rebuild()
}

func (c *arcRotateCameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *arcRotateCameraImpl) SetTarget(target mgl32.Vec3) {
	c.target = target
	c.rebuild()
}

func (c *arcRotateCameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *arcRotateCameraImpl) InertialAlphaOffset() float32 {
	return c.inertialAlphaOffset
}

func (c *arcRotateCameraImpl) InertialBetaOffset() float32 {
	return c.inertialBetaOffset
}

func (c *arcRotateCameraImpl) InertialRadiusOffset() float32 {
	return c.inertialRadiusOffset
}

func (c *arcRotateCameraImpl) InertialPanning() (x, y float32) {
	return c.inertialPanningX, c.inertialPanningY
}

func (c *arcRotateCameraImpl) AddInertialAlphaOffset(delta float32) {
	c.inertialAlphaOffset += delta
}

func (c *arcRotateCameraImpl) AddInertialBetaOffset(delta float32) {
	c.inertialBetaOffset += delta
}

func (c *arcRotateCameraImpl) AddInertialRadiusOffset(delta float32) {
	c.inertialRadiusOffset += delta
}

func (c *arcRotateCameraImpl) AddInertialPanning(x, y float32) {
	c.inertialPanningX += x
	c.inertialPanningY += y
}

func (c *arcRotateCameraImpl) PanningInertia() float32 {
	return c.panningInertia
}

func (c *arcRotateCameraImpl) PanningMouseButton() event.MouseButton {
	return c.panningMouseButton
}

func (c *arcRotateCameraImpl) RadiusLimits() (lower, upper float32) {
	return c.lowerRadiusLimit, c.upperRadiusLimit
}

func (c *arcRotateCameraImpl) BetaLimits() (lower, upper float32) {
	return c.lowerBetaLimit, c.upperBetaLimit
}

func (c *arcRotateCameraImpl) OrthoHalfHeight() float32 {
	return c.radius * float32(math.Tan(float64(c.fov)/2))
}

func (c *arcRotateCameraImpl) Axes() (right, up, forward mgl32.Vec3) {
	return c.axes()
}

func (c *arcRotateCameraImpl) Update() {
	c.inputs.CheckInputs()

	if c.inertialAlphaOffset != 0 || c.inertialBetaOffset != 0 || c.inertialRadiusOffset != 0 {
		c.alpha += c.inertialAlphaOffset
		c.beta += c.inertialBetaOffset
		c.radius -= c.inertialRadiusOffset

		c.inertialAlphaOffset = common.Decay(c.inertialAlphaOffset, c.inertia)
		c.inertialBetaOffset = common.Decay(c.inertialBetaOffset, c.inertia)
		c.inertialRadiusOffset = common.Decay(c.inertialRadiusOffset, c.inertia)
	}

	if c.inertialPanningX != 0 || c.inertialPanningY != 0 {
		right, up, _ := c.axes()
		c.target = c.target.
			Add(right.Mul(c.inertialPanningX)).
			Add(up.Mul(c.inertialPanningY))

		c.inertialPanningX = common.Decay(c.inertialPanningX, c.panningInertia)
		c.inertialPanningY = common.Decay(c.inertialPanningY, c.panningInertia)
	}

	c.checkLimits()
	c.rebuild()
}

// checkLimits clamps beta and radius to their configured ranges.
func (c *arcRotateCameraImpl) checkLimits() {
	c.beta = common.Clamp(c.beta, c.lowerBetaLimit, c.upperBetaLimit)
	c.radius = common.Clamp(c.radius, c.lowerRadiusLimit, c.upperRadiusLimit)
}

// axes computes right, up and forward from alpha and beta.
// right depends on alpha only, which keeps it defined when looking straight down.
func (c *arcRotateCameraImpl) axes() (right, up, forward mgl32.Vec3) {
	sa, ca := float32(math.Sin(float64(c.alpha))), float32(math.Cos(float64(c.alpha)))
	sb, cb := float32(math.Sin(float64(c.beta))), float32(math.Cos(float64(c.beta)))

	forward = mgl32.Vec3{-ca * sb, -cb, -sa * sb}
	right = mgl32.Vec3{sa, 0, -ca}
	up = right.Cross(forward)
	return right, up, forward
}

// rebuild recomputes position, view and projection from the current pose.
func (c *arcRotateCameraImpl) rebuild() {
	_, up, forward := c.axes()
	c.position = c.target.Sub(forward.Mul(c.radius))
	c.view = mgl32.LookAtV(c.position, c.target, up)
	c.proj = c.projection(c.OrthoHalfHeight())
}
