package inputs

// KeyboardPanningInputBuilderOption is a functional option for configuring a KeyboardPanningInput.
type KeyboardPanningInputBuilderOption func(*keyboardPanningInputImpl)

// WithPanningKeys replaces the four direction key groups. A nil group keeps its default.
//
// Parameters:
//   - up: key codes that pan up (or zoom in with Alt)
//   - left: key codes that pan left
//   - down: key codes that pan down (or zoom out with Alt)
//   - right: key codes that pan right
//
// Returns:
//   - KeyboardPanningInputBuilderOption: a function that applies the key groups
func WithPanningKeys(up, left, down, right []uint32) KeyboardPanningInputBuilderOption {
	return func(k *keyboardPanningInputImpl) {
		if up != nil {
			k.groups.up = up
		}
		if left != nil {
			k.groups.left = left
		}
		if down != nil {
			k.groups.down = down
		}
		if right != nil {
			k.groups.right = right
		}
	}
}

// WithKeyboardPanningSensibility sets the panning divisor. Non-positive values are ignored.
//
// Parameters:
//   - sensibility: the panning sensibility
//
// Returns:
//   - KeyboardPanningInputBuilderOption: a function that applies the sensibility
func WithKeyboardPanningSensibility(sensibility float32) KeyboardPanningInputBuilderOption {
	return func(k *keyboardPanningInputImpl) {
		if sensibility > 0 {
			k.panningSensibility = sensibility
		}
	}
}

// WithZoomingSensibility sets the zoom divisor. Non-positive values are ignored.
//
// Parameters:
//   - sensibility: the zooming sensibility
//
// Returns:
//   - KeyboardPanningInputBuilderOption: a function that applies the sensibility
func WithZoomingSensibility(sensibility float32) KeyboardPanningInputBuilderOption {
	return func(k *keyboardPanningInputImpl) {
		if sensibility > 0 {
			k.zoomingSensibility = sensibility
		}
	}
}

// WithAltToZoom enables or disables Alt+up/down zoom.
//
// Parameters:
//   - enabled: whether Alt turns up/down into zoom
//
// Returns:
//   - KeyboardPanningInputBuilderOption: a function that applies the setting
func WithAltToZoom(enabled bool) KeyboardPanningInputBuilderOption {
	return func(k *keyboardPanningInputImpl) {
		k.useAltToZoom = enabled
	}
}
