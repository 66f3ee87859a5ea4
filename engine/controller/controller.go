package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera/inputs"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
)

// RenderTarget is whatever renders with the active camera, usually a scene.Scene.
type RenderTarget interface {
	// SetActiveCamera makes cam the camera used for rendering.
	//
	// Parameters:
	//   - cam: the camera to render with
	SetActiveCamera(cam camera.Camera)
}

// Controller owns one camera of one kind together with the inputs of that kind.
type Controller interface {
	// Kind returns the controller kind.
	//
	// Returns:
	//   - Kind: the kind this controller was built for
	Kind() Kind

	// Camera returns the camera the controller owns.
	//
	// Returns:
	//   - camera.Camera: the owned camera
	Camera() camera.Camera

	// Settings returns the settings block the controller was built with.
	//
	// Returns:
	//   - Settings: the settings
	Settings() Settings

	// Active reports whether the controller is currently active.
	//
	// Returns:
	//   - bool: true between Activate and Deactivate
	Active() bool

	// Activate makes the camera the render target's active camera and attaches its inputs.
	Activate()

	// Deactivate detaches the camera's inputs. It does not touch the render target.
	// Safe to call on an inactive controller.
	Deactivate()

	// Dispose deactivates the controller and drops every input of its camera.
	Dispose()
}

// controllerImpl is the implementation of Controller.
type controllerImpl struct {
	kind     Kind
	settings Settings
	camera   camera.Camera
	target   RenderTarget
	active   bool

	noPreventDefault bool
	aspect           float32
	hasSettings      bool
}

var _ Controller = &controllerImpl{}

// NewController builds the camera and inputs for a kind:
//   - first-person: free camera, perspective, default keyboard move and mouse look
//   - top-down: arc-rotate camera looking straight down, orthographic, panning inputs
//   - two-d: arc-rotate camera facing the front, orthographic, panning inputs
//   - debug: arc-rotate orbit camera, perspective, default orbit inputs
//
// Parameters:
//   - kind: the controller kind
//   - hub: the event hub the camera inputs listen on
//   - target: the render target Activate hands the camera to
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the new controller
//   - error: error wrapping ErrNotFound for an unknown kind, or a validation error for bad settings
func NewController(kind Kind, hub event.Hub, target RenderTarget, options ...ControllerBuilderOption) (Controller, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("new controller %s: %w", kind, ErrNotFound)
	}
	if hub == nil {
		panic("controller: hub must not be nil")
	}
	if target == nil {
		panic("controller: render target must not be nil")
	}

	c := &controllerImpl{
		kind:   kind,
		target: target,
		aspect: 1,
	}
	for _, opt := range options {
		opt(c)
	}
	if !c.hasSettings {
		c.settings = DefaultSettings(kind)
	}
	if err := c.settings.Validate(kind); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}

	c.camera = c.buildCamera(hub)
	logger.Log.Debug("controller created",
		zap.Stringer("kind", kind),
		zap.Stringer("projection", c.camera.Mode()))
	return c, nil
}

func (c *controllerImpl) buildCamera(hub event.Hub) camera.Camera {
	s := c.settings
	name := c.kind.String()

	if c.kind == KindFirstPerson {
		cam := camera.NewFreeCamera(name, hub,
			camera.WithPosition(s.Position[0], s.Position[1], s.Position[2]),
			camera.WithSpeed(s.Speed),
			camera.WithAngularSensibility(s.AngularSensibility),
			camera.WithFreeLens(camera.Lens{
				Mode:    camera.ProjectionPerspective,
				Fov:     s.Fov,
				Aspect:  c.aspect,
				Inertia: s.Inertia,
			}),
		)
		inputs.AddFreeDefaults(cam)
		return cam
	}

	mode := camera.ProjectionOrthographic
	if c.kind == KindDebug {
		mode = camera.ProjectionPerspective
	}
	opts := []camera.ArcRotateCameraBuilderOption{
		camera.WithAlpha(s.Alpha),
		camera.WithBeta(s.Beta),
		camera.WithRadius(s.Radius),
		camera.WithTarget(s.Target[0], s.Target[1], s.Target[2]),
		camera.WithRadiusLimits(s.RadiusLower, s.RadiusUpper),
		camera.WithArcLens(camera.Lens{
			Mode:    mode,
			Fov:     s.Fov,
			Aspect:  c.aspect,
			Inertia: s.Inertia,
		}),
	}
	if s.LockAngles {
		opts = append(opts, camera.WithBetaLimits(s.Beta, s.Beta))
	}
	cam := camera.NewArcRotateCamera(name, hub, opts...)
	inputs.AddArcRotateDefaults(cam)
	if c.kind == KindDebug {
		return cam
	}

	// the panning kinds drop the orbit inputs so angles stay locked
	inputs.UsePanningInputs(cam,
		inputs.NewKeyboardPanningInput(
			inputs.WithKeyboardPanningSensibility(s.KeyboardPanningSensibility),
			inputs.WithZoomingSensibility(s.ZoomingSensibility),
			inputs.WithAltToZoom(s.UseAltToZoom),
		),
		inputs.NewPointerPanningInput(
			inputs.WithPointerPanningSensibility(s.PointerPanningSensibility),
		),
	)
	return cam
}

func (c *controllerImpl) Kind() Kind {
	return c.kind
}

func (c *controllerImpl) Camera() camera.Camera {
	return c.camera
}

func (c *controllerImpl) Settings() Settings {
	return c.settings
}

func (c *controllerImpl) Active() bool {
	return c.active
}

func (c *controllerImpl) Activate() {
	c.target.SetActiveCamera(c.camera)
	c.camera.AttachControl(c.noPreventDefault)
	c.active = true
}

func (c *controllerImpl) Deactivate() {
	c.camera.DetachControl()
	c.active = false
}

func (c *controllerImpl) Dispose() {
	c.Deactivate()
	c.camera.Inputs().Clear()
}
