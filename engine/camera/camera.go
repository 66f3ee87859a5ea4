package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// ProjectionMode selects how a camera projects the scene.
type ProjectionMode int

const (
	ProjectionPerspective ProjectionMode = iota
	ProjectionOrthographic
)

func (m ProjectionMode) String() string {
	if m == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera defines the behaviour shared by every camera kind.
// A camera owns its pose, its inertial accumulators and the InputManager
// holding the inputs that drive it. Update is called once per rendered frame.
type Camera interface {
	// Name returns the camera's name.
	//
	// Returns:
	//   - string: the camera name
	Name() string

	// Hub returns the event hub the camera's inputs register on.
	//
	// Returns:
	//   - event.Hub: the hub supplied at construction
	Hub() event.Hub

	// Inputs returns the camera's input manager.
	//
	// Returns:
	//   - InputManager: the input manager
	Inputs() InputManager

	// Mode returns the projection mode.
	//
	// Returns:
	//   - ProjectionMode: perspective or orthographic
	Mode() ProjectionMode

	// SetMode changes the projection mode and recomputes matrices.
	//
	// Parameters:
	//   - mode: the new projection mode
	SetMode(mode ProjectionMode)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the viewport aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Inertia returns the per-frame decay factor applied to the inertial accumulators.
	//
	// Returns:
	//   - float32: inertia in [0, 1)
	Inertia() float32

	// AttachControl attaches every registered input to the hub.
	//
	// Parameters:
	//   - noPreventDefault: when true, handled events keep their default host action
	AttachControl(noPreventDefault bool)

	// DetachControl detaches every registered input. The camera itself stays usable.
	DetachControl()

	// Update runs the inputs' per-frame step, applies and decays the inertial
	// accumulators, enforces limits and recomputes matrices.
	Update()

	// Position returns the world-space camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4
}

// cameraBase holds the state shared by all camera kinds. Kinds embed it and
// provide their own pose, Update and Position.
type cameraBase struct {
	name   string
	hub    event.Hub
	inputs *inputManagerImpl

	mode    ProjectionMode
	fov     float32
	aspect  float32
	near    float32
	far     float32
	inertia float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

func newCameraBase(name string, hub event.Hub) cameraBase {
	return cameraBase{
		name:    name,
		hub:     hub,
		mode:    ProjectionPerspective,
		fov:     float32(45.0 * math.Pi / 180.0),
		aspect:  1.0,
		near:    0.1,
		far:     1000.0,
		inertia: 0.9,
		view:    mgl32.Ident4(),
		proj:    mgl32.Ident4(),
	}
}

func (c *cameraBase) Name() string {
	return c.name
}

func (c *cameraBase) Hub() event.Hub {
	return c.hub
}

func (c *cameraBase) Inputs() InputManager {
	return c.inputs
}

func (c *cameraBase) Mode() ProjectionMode {
	return c.mode
}

func (c *cameraBase) Fov() float32 {
	return c.fov
}

func (c *cameraBase) Aspect() float32 {
	return c.aspect
}

func (c *cameraBase) Near() float32 {
	return c.near
}

func (c *cameraBase) Far() float32 {
	return c.far
}

func (c *cameraBase) Inertia() float32 {
	return c.inertia
}

func (c *cameraBase) AttachControl(noPreventDefault bool) {
	c.inputs.AttachElement(noPreventDefault)
}

func (c *cameraBase) DetachControl() {
	c.inputs.DetachElement()
}

func (c *cameraBase) ViewMatrix() mgl32.Mat4 {
	return c.view
}

func (c *cameraBase) ProjectionMatrix() mgl32.Mat4 {
	return c.proj
}

func (c *cameraBase) ViewProjectionMatrix() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}

// projection builds the projection matrix for the current mode. orthoHalfHeight is
// the half extent of the orthographic view volume in world units.
func (c *cameraBase) projection(orthoHalfHeight float32) mgl32.Mat4 {
	if c.mode == ProjectionOrthographic {
		hw := orthoHalfHeight * c.aspect
		return mgl32.Ortho(-hw, hw, -orthoHalfHeight, orthoHalfHeight, c.near, c.far)
	}
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}
