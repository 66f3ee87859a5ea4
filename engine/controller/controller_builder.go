package controller

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithSettings replaces the kind's default settings block.
//
// Parameters:
//   - settings: the settings to build the camera and inputs from
//
// Returns:
//   - ControllerBuilderOption: a function that applies the settings
func WithSettings(settings Settings) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.settings = settings
		c.hasSettings = true
	}
}

// WithNoPreventDefault keeps the host's default action for events the inputs handle.
//
// Parameters:
//   - noPreventDefault: true to leave handled events unprevented
//
// Returns:
//   - ControllerBuilderOption: a function that applies the setting
func WithNoPreventDefault(noPreventDefault bool) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.noPreventDefault = noPreventDefault
	}
}

// WithAspect sets the initial aspect ratio of the camera. Non-positive values are ignored.
//
// Parameters:
//   - aspect: width divided by height
//
// Returns:
//   - ControllerBuilderOption: a function that applies the aspect
func WithAspect(aspect float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}
