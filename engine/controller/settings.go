package controller

import (
	"fmt"
	"math"
)

// Settings is the fixed configuration block of one controller.
// Arc-rotate kinds read the orbit, limit and panning fields; the first-person kind reads
// position, speed and angular sensibility. Fov and Inertia apply to every kind.
type Settings struct {
	Fov     float32 `toml:"fov"`
	Inertia float32 `toml:"inertia"`

	Alpha       float32    `toml:"alpha"`
	Beta        float32    `toml:"beta"`
	Radius      float32    `toml:"radius"`
	Target      [3]float32 `toml:"target"`
	LockAngles  bool       `toml:"lock_angles"`
	RadiusLower float32    `toml:"radius_lower"`
	RadiusUpper float32    `toml:"radius_upper"`

	PointerPanningSensibility  float32 `toml:"pointer_panning_sensibility"`
	KeyboardPanningSensibility float32 `toml:"keyboard_panning_sensibility"`
	ZoomingSensibility         float32 `toml:"zooming_sensibility"`
	UseAltToZoom               bool    `toml:"use_alt_to_zoom"`

	Position           [3]float32 `toml:"position"`
	Speed              float32    `toml:"speed"`
	AngularSensibility float32    `toml:"angular_sensibility"`
}

// topDownBeta keeps the top-down camera a hair off the pole so its axes stay defined.
const topDownBeta = 0.0001

// DefaultSettings returns the built-in settings block for a kind.
//
// Parameters:
//   - kind: the controller kind
//
// Returns:
//   - Settings: the default settings (zero value for an invalid kind)
func DefaultSettings(kind Kind) Settings {
	panning := Settings{
		Fov:                        float32(math.Pi / 4),
		Inertia:                    0.9,
		Alpha:                      -math.Pi / 2,
		Radius:                     40,
		Target:                     [3]float32{0, 3, 0},
		LockAngles:                 true,
		RadiusLower:                2,
		RadiusUpper:                200,
		PointerPanningSensibility:  1000,
		KeyboardPanningSensibility: 50,
		ZoomingSensibility:         25,
		UseAltToZoom:               true,
	}

	switch kind {
	case KindFirstPerson:
		return Settings{
			Fov:                float32(math.Pi / 4),
			Inertia:            0.9,
			Position:           [3]float32{0, 1.7, 8},
			Speed:              0.2,
			AngularSensibility: 2000,
		}
	case KindTopDown:
		panning.Beta = topDownBeta
		panning.Target = [3]float32{0, 0, 0}
		return panning
	case KindTwoD:
		panning.Beta = math.Pi / 2
		return panning
	case KindDebug:
		return Settings{
			Fov:                       float32(math.Pi / 4),
			Inertia:                   0.9,
			Alpha:                     -math.Pi / 2,
			Beta:                      math.Pi / 3,
			Radius:                    40,
			Target:                    [3]float32{0, 3, 0},
			RadiusLower:               1,
			RadiusUpper:               500,
			PointerPanningSensibility: 1000,
		}
	default:
		return Settings{}
	}
}

// Validate checks a settings block for values the cameras and inputs cannot use.
//
// Parameters:
//   - kind: the kind the block belongs to
//
// Returns:
//   - error: a description of the first invalid field, nil if the block is usable
func (s Settings) Validate(kind Kind) error {
	if s.Fov <= 0 || s.Fov >= math.Pi {
		return fmt.Errorf("%s: fov %v out of range (0, pi)", kind, s.Fov)
	}
	if s.Inertia < 0 || s.Inertia >= 1 {
		return fmt.Errorf("%s: inertia %v out of range [0, 1)", kind, s.Inertia)
	}

	if kind == KindFirstPerson {
		if s.Speed <= 0 {
			return fmt.Errorf("%s: speed must be positive", kind)
		}
		if s.AngularSensibility <= 0 {
			return fmt.Errorf("%s: angular_sensibility must be positive", kind)
		}
		return nil
	}

	if s.Radius <= 0 {
		return fmt.Errorf("%s: radius must be positive", kind)
	}
	if s.RadiusLower <= 0 || s.RadiusLower > s.RadiusUpper {
		return fmt.Errorf("%s: radius limits [%v, %v] are inverted or non-positive", kind, s.RadiusLower, s.RadiusUpper)
	}
	if s.PointerPanningSensibility < 0 {
		return fmt.Errorf("%s: pointer_panning_sensibility must not be negative", kind)
	}
	if kind == KindTopDown || kind == KindTwoD {
		if s.KeyboardPanningSensibility <= 0 || s.ZoomingSensibility <= 0 {
			return fmt.Errorf("%s: keyboard sensibilities must be positive", kind)
		}
	}
	return nil
}
