package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
)

// Scene is a renderable view of the room: an input hub and the camera currently rendering it.
// Controllers hand their camera to the scene through SetActiveCamera.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Active reports whether the engine renders this scene.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether the engine renders this scene.
	//
	// Parameters:
	//   - active: whether the scene is active
	SetActive(active bool)

	// Hub returns the event hub camera inputs of this scene listen on.
	//
	// Returns:
	//   - event.Hub: the scene's hub
	Hub() event.Hub

	// Camera returns the active camera, nil until one is set.
	//
	// Returns:
	//   - camera.Camera: the active camera
	Camera() camera.Camera

	// SetActiveCamera makes cam the rendering camera and gives it the scene's aspect ratio.
	//
	// Parameters:
	//   - cam: the camera to render with
	SetActiveCamera(cam camera.Camera)

	// Resize updates the aspect ratio applied to the active camera and any later one.
	// Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	Resize(width, height int)

	// Aspect returns the current aspect ratio.
	//
	// Returns:
	//   - float32: width divided by height
	Aspect() float32

	// Render advances the active camera by one frame: its inputs are checked, inertia is
	// applied and its matrices recomputed.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Render(deltaTime float32)

	// Frames returns how many frames the scene has rendered.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// ViewProjection returns the view-projection matrix of the active camera,
	// or the identity when there is none.
	//
	// Returns:
	//   - mgl32.Mat4: the view-projection matrix
	ViewProjection() mgl32.Mat4

	// DetachControl detaches the active camera's inputs.
	DetachControl()

	// Dispose detaches control, forgets the camera and deactivates the scene.
	Dispose()
}

// scene is the implementation of Scene. All calls happen on the window thread.
type scene struct {
	name   string
	active bool
	hub    event.Hub
	cam    camera.Camera
	aspect float32
	frames uint64
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene listening on hub. The hub is required and NewScene panics if
// it is nil.
//
// Parameters:
//   - name: the name of the scene
//   - hub: the event hub camera inputs listen on (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, hub event.Hub, options ...SceneBuilderOption) Scene {
	if hub == nil {
		panic("scene: NewScene requires a non-nil Hub")
	}

	s := &scene{
		name:   name,
		hub:    hub,
		aspect: 1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) SetName(name string) {
	s.name = name
}

func (s *scene) Active() bool {
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.active = active
}

func (s *scene) Hub() event.Hub {
	return s.hub
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) SetActiveCamera(cam camera.Camera) {
	s.cam = cam
	if cam == nil {
		return
	}
	cam.SetAspect(s.aspect)
	logger.Log.Debug("active camera set",
		zap.String("scene", s.name),
		zap.String("camera", cam.Name()))
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
	if s.cam != nil {
		s.cam.SetAspect(s.aspect)
	}
}

func (s *scene) Aspect() float32 {
	return s.aspect
}

func (s *scene) Render(float32) {
	if s.cam != nil {
		s.cam.Update()
	}
	s.frames++
}

func (s *scene) Frames() uint64 {
	return s.frames
}

func (s *scene) ViewProjection() mgl32.Mat4 {
	if s.cam == nil {
		return mgl32.Ident4()
	}
	return s.cam.ViewProjectionMatrix()
}

func (s *scene) DetachControl() {
	if s.cam != nil {
		s.cam.DetachControl()
	}
}

func (s *scene) Dispose() {
	s.DetachControl()
	s.cam = nil
	s.active = false
	logger.Log.Debug("scene disposed", zap.String("scene", s.name))
}
