package inputs

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
)

// freeKeyboardInput moves a free camera along its local axes while keys are held.
// WASD and the arrows move on the horizontal plane of the camera, Space rises and Shift sinks.
type freeKeyboardInput struct {
	camera camera.FreeCamera

	groups   keyGroups
	upward   []uint32
	downward []uint32
	keys     keyTracker
}

var _ camera.CameraInput = &freeKeyboardInput{}

// NewFreeKeyboardInput creates the default free camera keyboard input.
//
// Returns:
//   - camera.CameraInput: the new input
func NewFreeKeyboardInput() camera.CameraInput {
	f := &freeKeyboardInput{
		groups: keyGroups{
			up:    []uint32{common.KeyW, common.KeyUp},
			left:  []uint32{common.KeyA, common.KeyLeft},
			down:  []uint32{common.KeyS, common.KeyDown},
			right: []uint32{common.KeyD, common.KeyRight},
		},
		upward:   []uint32{common.KeySpace},
		downward: []uint32{common.KeyLeftShift, common.KeyRightShift},
	}
	f.keys = newKeyTracker(func(code uint32) bool {
		return f.groups.contains(code) || slices.Contains(f.upward, code) || slices.Contains(f.downward, code)
	})
	return f
}

func (f *freeKeyboardInput) ClassName() string {
	return "FreeCameraKeyboardMoveInput"
}

func (f *freeKeyboardInput) SimpleName() string {
	return "keyboard"
}

func (f *freeKeyboardInput) SetCamera(cam camera.Camera) {
	f.camera, _ = cam.(camera.FreeCamera)
}

func (f *freeKeyboardInput) AttachControl(noPreventDefault bool) {
	if f.camera == nil {
		return
	}
	f.keys.attach(f.camera.Hub(), noPreventDefault)
}

func (f *freeKeyboardInput) DetachControl() {
	f.keys.detach()
}

func (f *freeKeyboardInput) CheckInputs() {
	if !f.keys.attached() || f.camera == nil {
		return
	}
	for _, h := range f.keys.held {
		var local mgl32.Vec3
		switch f.groups.direction(h.code) {
		case directionUp:
			local = mgl32.Vec3{0, 0, 1}
		case directionLeft:
			local = mgl32.Vec3{-1, 0, 0}
		case directionDown:
			local = mgl32.Vec3{0, 0, -1}
		case directionRight:
			local = mgl32.Vec3{1, 0, 0}
		default:
			switch {
			case slices.Contains(f.upward, h.code):
				local = mgl32.Vec3{0, 1, 0}
			case slices.Contains(f.downward, h.code):
				local = mgl32.Vec3{0, -1, 0}
			default:
				continue
			}
		}
		f.camera.AddLocalDirection(local)
	}
}
