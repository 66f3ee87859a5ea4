// Package config loads the roomview configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
)

// DefaultFile is the config file read from the working directory when present.
const DefaultFile = "roomview.toml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds the [window] table.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Engine holds the [engine] table.
type Engine struct {
	Profiling         bool   `toml:"profiling"`
	FrameLimit        int    `toml:"frame_limit"`
	Debug             bool   `toml:"debug"`
	InitialController string `toml:"initial_controller"`
	NoPreventDefault  bool   `toml:"no_prevent_default"`
}

// Controllers holds one [controllers.<kind>] table per controller kind.
type Controllers struct {
	FirstPerson controller.Settings `toml:"first-person"`
	TopDown     controller.Settings `toml:"top-down"`
	TwoD        controller.Settings `toml:"two-d"`
	Debug       controller.Settings `toml:"debug"`
}

// Config is the full configuration of the application.
type Config struct {
	Window      Window      `toml:"window"`
	Engine      Engine      `toml:"engine"`
	Controllers Controllers `toml:"controllers"`
}

// Default returns the built-in configuration.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Room View",
			Width:  1280,
			Height: 720,
		},
		Engine: Engine{
			InitialController: controller.KindDebug.String(),
		},
		Controllers: Controllers{
			FirstPerson: controller.DefaultSettings(controller.KindFirstPerson),
			TopDown:     controller.DefaultSettings(controller.KindTopDown),
			TwoD:        controller.DefaultSettings(controller.KindTwoD),
			Debug:       controller.DefaultSettings(controller.KindDebug),
		},
	}
}

// CheckFile strictly decodes the TOML file at path and validates the result. The command
// line loader merges the same file leniently, so this is where misspelled keys surface.
// A missing file is not an error.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - error: error if the file cannot be read, decoded or validated
func CheckFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if _, err := Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Decode reads TOML from r over the defaults. Unknown keys are rejected.
//
// Parameters:
//   - r: the TOML source
//
// Returns:
//   - Config: the decoded and validated configuration
//   - error: error if decoding or validation fails
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Settings returns the settings block of a controller kind.
//
// Parameters:
//   - kind: the controller kind
//
// Returns:
//   - controller.Settings: the settings block (zero value for an invalid kind)
func (c Config) Settings(kind controller.Kind) controller.Settings {
	switch kind {
	case controller.KindFirstPerson:
		return c.Controllers.FirstPerson
	case controller.KindTopDown:
		return c.Controllers.TopDown
	case controller.KindTwoD:
		return c.Controllers.TwoD
	case controller.KindDebug:
		return c.Controllers.Debug
	default:
		return controller.Settings{}
	}
}

// InitialKind returns the parsed initial controller kind.
//
// Returns:
//   - controller.Kind: the kind to activate first
//   - error: error wrapping controller.ErrNotFound if the name is unknown
func (c Config) InitialKind() (controller.Kind, error) {
	return controller.ParseKind(c.Engine.InitialController)
}

// Validate checks the configuration for values the application cannot start with.
//
// Returns:
//   - error: error wrapping ErrInvalid describing the first problem found
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Engine.FrameLimit < 0 {
		return fmt.Errorf("%w: frame_limit must not be negative", ErrInvalid)
	}
	if _, err := c.InitialKind(); err != nil {
		return fmt.Errorf("%w: initial_controller %q is not a controller kind", ErrInvalid, c.Engine.InitialController)
	}
	for _, kind := range controller.Kinds() {
		if err := c.Settings(kind).Validate(kind); err != nil {
			return fmt.Errorf("%w: controllers.%v", ErrInvalid, err)
		}
	}
	return nil
}
