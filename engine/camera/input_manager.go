package camera

import (
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
)

// CameraInput is one source of camera control (keyboard, pointer, wheel, ...).
// Inputs are registered on a camera's InputManager, which hands them the camera
// and drives their lifecycle.
type CameraInput interface {
	// ClassName returns the type name of the input, used by RemoveByType.
	//
	// Returns:
	//   - string: the input's class name
	ClassName() string

	// SimpleName returns the short slot name of the input. A manager holds at most
	// one input per simple name.
	//
	// Returns:
	//   - string: the input's simple name
	SimpleName() string

	// SetCamera binds the input to the camera it controls.
	//
	// Parameters:
	//   - cam: the camera owning this input
	SetCamera(cam Camera)

	// AttachControl registers the input's event handlers on the camera's hub.
	// Calling it while already attached is a no-op.
	//
	// Parameters:
	//   - noPreventDefault: when true, handled events keep their default host action
	AttachControl(noPreventDefault bool)

	// DetachControl unregisters every handler and clears transient input state.
	// Safe to call when not attached.
	DetachControl()

	// CheckInputs applies the input's held state to the camera. Called once per frame.
	CheckInputs()
}

// InputManager owns the inputs of a single camera.
type InputManager interface {
	// Add registers an input. If an input with the same simple name is already present
	// the call is ignored. When the manager is attached, the new input is attached immediately.
	//
	// Parameters:
	//   - input: the input to add
	Add(input CameraInput)

	// Remove detaches and unregisters an input.
	//
	// Parameters:
	//   - input: the input to remove
	Remove(input CameraInput)

	// RemoveByType detaches and unregisters every input with the given class name.
	//
	// Parameters:
	//   - className: the class name to match
	RemoveByType(className string)

	// Clear detaches and unregisters every input.
	Clear()

	// AttachElement attaches every registered input. No-op while already attached.
	//
	// Parameters:
	//   - noPreventDefault: forwarded to each input's AttachControl
	AttachElement(noPreventDefault bool)

	// DetachElement detaches every registered input. Safe when never attached.
	DetachElement()

	// CheckInputs calls CheckInputs on every input in registration order.
	CheckInputs()

	// Attached reports whether the inputs are currently attached.
	//
	// Returns:
	//   - bool: true between AttachElement and DetachElement
	Attached() bool

	// Inputs returns the registered inputs in registration order.
	//
	// Returns:
	//   - []CameraInput: a copy of the input list
	Inputs() []CameraInput
}

type inputManagerImpl struct {
	camera           Camera
	inputs           []CameraInput
	attached         bool
	noPreventDefault bool
}

var _ InputManager = &inputManagerImpl{}

func newInputManager(cam Camera) *inputManagerImpl {
	return &inputManagerImpl{camera: cam}
}

func (m *inputManagerImpl) Add(input CameraInput) {
	if input == nil {
		return
	}
	name := input.SimpleName()
	for _, existing := range m.inputs {
		if existing.SimpleName() == name {
			logger.Log.Warn("camera input already registered",
				zap.String("camera", m.camera.Name()),
				zap.String("input", name))
			return
		}
	}

	input.SetCamera(m.camera)
	m.inputs = append(m.inputs, input)

	if m.attached {
		input.AttachControl(m.noPreventDefault)
	}
}

func (m *inputManagerImpl) Remove(input CameraInput) {
	for i, existing := range m.inputs {
		if existing == input {
			existing.DetachControl()
			m.inputs = append(m.inputs[:i:i], m.inputs[i+1:]...)
			return
		}
	}
}

func (m *inputManagerImpl) RemoveByType(className string) {
	kept := m.inputs[:0:0]
	for _, existing := range m.inputs {
		if existing.ClassName() == className {
			existing.DetachControl()
			continue
		}
		kept = append(kept, existing)
	}
	m.inputs = kept
}

func (m *inputManagerImpl) Clear() {
	m.DetachElement()
	m.inputs = nil
}

func (m *inputManagerImpl) AttachElement(noPreventDefault bool) {
	if m.attached {
		return
	}
	m.attached = true
	m.noPreventDefault = noPreventDefault
	for _, input := range m.inputs {
		input.AttachControl(noPreventDefault)
	}
	logger.Log.Debug("camera inputs attached",
		zap.String("camera", m.camera.Name()),
		zap.Int("inputs", len(m.inputs)))
}

func (m *inputManagerImpl) DetachElement() {
	for _, input := range m.inputs {
		input.DetachControl()
	}
	if m.attached {
		logger.Log.Debug("camera inputs detached", zap.String("camera", m.camera.Name()))
	}
	m.attached = false
}

func (m *inputManagerImpl) CheckInputs() {
	for _, input := range m.inputs {
		input.CheckInputs()
	}
}

func (m *inputManagerImpl) Attached() bool {
	return m.attached
}

func (m *inputManagerImpl) Inputs() []CameraInput {
	out := make([]CameraInput, len(m.inputs))
	copy(out, m.inputs)
	return out
}
