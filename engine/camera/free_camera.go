package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// maxPitch keeps the free camera from flipping over the vertical.
const maxPitch = float32(math.Pi/2 - 0.01)

// FreeCamera is a first-person camera with a position and a yaw/pitch orientation.
// Yaw 0 looks down -Z; positive yaw turns right and positive pitch looks down.
type FreeCamera interface {
	Camera

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// Pitch returns the rotation around the camera's right axis in radians.
	Pitch() float32

	// Yaw returns the rotation around the world Y axis in radians.
	Yaw() float32

	// SetRotation sets pitch and yaw directly. Pitch is clamped short of vertical.
	//
	// Parameters:
	//   - pitch: radians, positive looks down
	//   - yaw: radians, positive turns right
	SetRotation(pitch, yaw float32)

	// Speed returns the distance covered per frame by one unit of local direction.
	Speed() float32

	// AngularSensibility returns the pointer pixels per radian of rotation.
	AngularSensibility() float32

	// CameraDirection returns the pending world-space movement.
	CameraDirection() mgl32.Vec3

	// CameraRotation returns the pending rotation (x = pitch, y = yaw).
	CameraRotation() mgl32.Vec2

	// AddLocalDirection adds movement expressed in camera space (x right, y up,
	// z forward), scaled by Speed.
	//
	// Parameters:
	//   - local: the camera-space direction
	AddLocalDirection(local mgl32.Vec3)

	// AddCameraRotation adds to the pending rotation.
	//
	// Parameters:
	//   - pitch: radians around the right axis
	//   - yaw: radians around the world Y axis
	AddCameraRotation(pitch, yaw float32)

	// Axes returns the camera's right, up and forward unit vectors.
	Axes() (right, up, forward mgl32.Vec3)
}

type freeCameraImpl struct {
	cameraBase

	position mgl32.Vec3
	pitch    float32
	yaw      float32

	cameraDirection mgl32.Vec3
	cameraRotation  mgl32.Vec2

	speed              float32
	angularSensibility float32
}

var _ FreeCamera = &freeCameraImpl{}

// NewFreeCamera creates a free camera with no inputs registered.
//
// Parameters:
//   - name: camera name used in logs
//   - hub: the event hub the camera's inputs register on (must not be nil)
//   - options: functional options to configure the camera
//
// Returns:
//   - FreeCamera: the new camera
func NewFreeCamera(name string, hub event.Hub, options ...FreeCameraBuilderOption) FreeCamera {
	if hub == nil {
		panic("camera: NewFreeCamera requires a non-nil event hub")
	}
	c := &freeCameraImpl{
		cameraBase:         newCameraBase(name, hub),
		speed:              0.2,
		angularSensibility: 2000,
	}
	c.inputs = newInputManager(c)

	for _, opt := range options {
		opt(c)
	}

	c.pitch = common.Clamp(c.pitch, -maxPitch, maxPitch)
	c.rebuild()
	return c
}

func (c *freeCameraImpl) SetMode(mode ProjectionMode) {
	c.mode = mode
	c.rebuild()
}

func (c *freeCameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.rebuild()
}

func (c *freeCameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *freeCameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.rebuild()
}

func (c *freeCameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *freeCameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *freeCameraImpl) SetRotation(pitch, yaw float32) {
	c.pitch = common.Clamp(pitch, -maxPitch, maxPitch)
	c.yaw = yaw
	c.rebuild()
}

func (c *freeCameraImpl) Speed() float32 {
	return c.speed
}

func (c *freeCameraImpl) AngularSensibility() float32 {
	return c.angularSensibility
}

func (c *freeCameraImpl) CameraDirection() mgl32.Vec3 {
	return c.cameraDirection
}

func (c *freeCameraImpl) CameraRotation() mgl32.Vec2 {
	return c.cameraRotation
}

func (c *freeCameraImpl) AddLocalDirection(local mgl32.Vec3) {
	right, up, forward := c.axes()
	world := right.Mul(local.X()).
		Add(up.Mul(local.Y())).
		Add(forward.Mul(local.Z()))
	c.cameraDirection = c.cameraDirection.Add(world.Mul(c.speed))
}

func (c *freeCameraImpl) AddCameraRotation(pitch, yaw float32) {
	c.cameraRotation = c.cameraRotation.Add(mgl32.Vec2{pitch, yaw})
}

func (c *freeCameraImpl) Axes() (right, up, forward mgl32.Vec3) {
	return c.axes()
}

func (c *freeCameraImpl) Update() {
	c.inputs.CheckInputs()

	if c.cameraDirection != (mgl32.Vec3{}) {
		c.position = c.position.Add(c.cameraDirection)
		for i := range c.cameraDirection {
			c.cameraDirection[i] = common.Decay(c.cameraDirection[i], c.inertia)
		}
	}

	if c.cameraRotation != (mgl32.Vec2{}) {
		c.pitch = common.Clamp(c.pitch+c.cameraRotation.X(), -maxPitch, maxPitch)
		c.yaw += c.cameraRotation.Y()
		for i := range c.cameraRotation {
			c.cameraRotation[i] = common.Decay(c.cameraRotation[i], c.inertia)
		}
	}

	c.rebuild()
}

func (c *freeCameraImpl) axes() (right, up, forward mgl32.Vec3) {
	sp, cp := float32(math.Sin(float64(c.pitch))), float32(math.Cos(float64(c.pitch)))
	sy, cy := float32(math.Sin(float64(c.yaw))), float32(math.Cos(float64(c.yaw)))

	forward = mgl32.Vec3{cp * sy, -sp, -cp * cy}
	right = mgl32.Vec3{cy, 0, sy}
	up = right.Cross(forward)
	return right, up, forward
}

func (c *freeCameraImpl) rebuild() {
	_, up, forward := c.axes()
	c.view = mgl32.LookAtV(c.position, c.position.Add(forward), up)
	// Orthographic free cameras frame a fixed ten-unit-high view volume.
	c.proj = c.projection(5)
}
