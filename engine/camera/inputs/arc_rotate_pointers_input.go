package inputs

import (
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// ArcRotatePointersInput is the default pointer input of an arc-rotate camera: dragging orbits,
// dragging with the panning button (or with Ctrl) pans and a two-pointer pinch zooms.
type ArcRotatePointersInput interface {
	camera.CameraInput

	// AngularSensibility returns the pixels per radian of orbit on each axis.
	//
	// Returns:
	//   - x: horizontal sensibility (alpha)
	//   - y: vertical sensibility (beta)
	AngularSensibility() (x, y float32)

	// PinchPrecision returns the pixels of pinch distance per unit of radius.
	//
	// Returns:
	//   - float32: the pinch precision
	PinchPrecision() float32
}

// arcRotatePointersInputImpl is the implementation of ArcRotatePointersInput.
type arcRotatePointersInputImpl struct {
	camera camera.ArcRotateCamera

	tracker             pointerTracker
	angularSensibilityX float32
	angularSensibilityY float32
	panningSensibility  float32
	pinchPrecision      float32
	useCtrlForPanning   bool
	isPanClick          bool
}

var _ ArcRotatePointersInput = &arcRotatePointersInputImpl{}

// NewArcRotatePointersInput creates the default arc-rotate pointer input.
//
// Parameters:
//   - options: functional options to configure the input
//
// Returns:
//   - ArcRotatePointersInput: the new input
func NewArcRotatePointersInput(options ...ArcRotatePointersInputBuilderOption) ArcRotatePointersInput {
	a := &arcRotatePointersInputImpl{
		angularSensibilityX: 1000,
		angularSensibilityY: 1000,
		panningSensibility:  1000,
		pinchPrecision:      20,
		useCtrlForPanning:   true,
	}
	for _, opt := range options {
		opt(a)
	}
	a.tracker = newPointerTracker(a, []event.MouseButton{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight})
	return a
}

// ArcRotatePointersInputBuilderOption is a functional option for configuring an ArcRotatePointersInput.
type ArcRotatePointersInputBuilderOption func(*arcRotatePointersInputImpl)

// WithOrbitSensibility sets the pixels per radian of orbit. Non-positive values are ignored.
//
// Parameters:
//   - x: horizontal sensibility
//   - y: vertical sensibility
//
// Returns:
//   - ArcRotatePointersInputBuilderOption: a function that applies the sensibility
func WithOrbitSensibility(x, y float32) ArcRotatePointersInputBuilderOption {
	return func(a *arcRotatePointersInputImpl) {
		if x > 0 {
			a.angularSensibilityX = x
		}
		if y > 0 {
			a.angularSensibilityY = y
		}
	}
}

// WithPinchPrecision sets the pixels of pinch per unit of radius. Non-positive values are ignored.
//
// Parameters:
//   - precision: the pinch precision
//
// Returns:
//   - ArcRotatePointersInputBuilderOption: a function that applies the precision
func WithPinchPrecision(precision float32) ArcRotatePointersInputBuilderOption {
	return func(a *arcRotatePointersInputImpl) {
		if precision > 0 {
			a.pinchPrecision = precision
		}
	}
}

func (a *arcRotatePointersInputImpl) ClassName() string {
	return "ArcRotateCameraPointersInput"
}

func (a *arcRotatePointersInputImpl) SimpleName() string {
	return "pointers"
}

func (a *arcRotatePointersInputImpl) SetCamera(cam camera.Camera) {
	a.camera, _ = cam.(camera.ArcRotateCamera)
}

func (a *arcRotatePointersInputImpl) AttachControl(noPreventDefault bool) {
	if a.camera == nil {
		return
	}
	a.tracker.attach(a.camera.Hub(), noPreventDefault)
}

func (a *arcRotatePointersInputImpl) DetachControl() {
	a.tracker.detach()
	a.isPanClick = false
}

func (a *arcRotatePointersInputImpl) CheckInputs() {}

func (a *arcRotatePointersInputImpl) AngularSensibility() (x, y float32) {
	return a.angularSensibilityX, a.angularSensibilityY
}

func (a *arcRotatePointersInputImpl) PinchPrecision() float32 {
	return a.pinchPrecision
}

func (a *arcRotatePointersInputImpl) onTouch(ev *event.PointerEvent, dx, dy float32) {
	panning := a.isPanClick || (a.useCtrlForPanning && ev.Mods.Has(event.ModCtrl))
	if panning && a.panningSensibility != 0 {
		a.camera.AddInertialPanning(-dx/a.panningSensibility, dy/a.panningSensibility)
		return
	}
	a.camera.AddInertialAlphaOffset(-dx / a.angularSensibilityX)
	a.camera.AddInertialBetaOffset(-dy / a.angularSensibilityY)
}

func (a *arcRotatePointersInputImpl) onMultiTouch(_, _ *trackedPointer, previousDistance, distance float32) {
	a.camera.AddInertialRadiusOffset((distance - previousDistance) / a.pinchPrecision)
}

func (a *arcRotatePointersInputImpl) onButtonDown(ev *event.PointerEvent) {
	a.isPanClick = ev.Button == a.camera.PanningMouseButton()
}

func (a *arcRotatePointersInputImpl) onButtonUp(*event.PointerEvent) {}

func (a *arcRotatePointersInputImpl) onLostFocus() {
	a.isPanClick = false
}

func (a *arcRotatePointersInputImpl) onContextMenu(ev *event.PointerEvent) {
	ev.PreventDefault()
}
