package controller

// SwitchboardBuilderOption is a functional option for configuring a Switchboard.
type SwitchboardBuilderOption func(*switchboardImpl)

// WithKindSettings overrides the default settings block of one kind.
//
// Parameters:
//   - kind: the kind to configure
//   - settings: the settings block
//
// Returns:
//   - SwitchboardBuilderOption: a function that applies the settings
func WithKindSettings(kind Kind, settings Settings) SwitchboardBuilderOption {
	return func(s *switchboardImpl) {
		s.settings[kind] = settings
	}
}

// WithController installs a prebuilt controller for its kind instead of building one.
// Controllers with an invalid kind are ignored.
//
// Parameters:
//   - c: the controller to install
//
// Returns:
//   - SwitchboardBuilderOption: a function that installs the controller
func WithController(c Controller) SwitchboardBuilderOption {
	return func(s *switchboardImpl) {
		if c != nil && c.Kind().Valid() {
			s.controllers[c.Kind()] = c
		}
	}
}

// WithInputsNoPreventDefault keeps the host's default action for events handled by every controller.
//
// Parameters:
//   - noPreventDefault: true to leave handled events unprevented
//
// Returns:
//   - SwitchboardBuilderOption: a function that applies the setting
func WithInputsNoPreventDefault(noPreventDefault bool) SwitchboardBuilderOption {
	return func(s *switchboardImpl) {
		s.noPreventDefault = noPreventDefault
	}
}

// WithInitialAspect sets the aspect ratio the controllers' cameras start with.
//
// Parameters:
//   - aspect: width divided by height
//
// Returns:
//   - SwitchboardBuilderOption: a function that applies the aspect
func WithInitialAspect(aspect float32) SwitchboardBuilderOption {
	return func(s *switchboardImpl) {
		s.aspect = aspect
	}
}
