package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
)

// Affordance is a UI element that reflects whether its controller is the active one.
type Affordance interface {
	// SetActive marks the affordance as selected or not.
	//
	// Parameters:
	//   - active: true when the bound controller is active
	SetActive(active bool)
}

// Switchboard holds one controller per kind and keeps exactly one of them active.
type Switchboard interface {
	// SwitchTo deactivates the current controller and activates the one for kind, then updates
	// every bound affordance. Switching to the already active kind runs the full cycle again.
	//
	// Parameters:
	//   - kind: the kind to activate
	//
	// Returns:
	//   - error: error wrapping ErrNotFound if no controller exists for kind
	SwitchTo(kind Kind) error

	// SwitchToName parses a kind name and switches to it.
	//
	// Parameters:
	//   - name: the kind name, e.g. "debug"
	//
	// Returns:
	//   - error: error wrapping ErrNotFound if the name or kind is unknown
	SwitchToName(name string) error

	// Active returns the active controller, nil before the first successful switch.
	//
	// Returns:
	//   - Controller: the active controller
	Active() Controller

	// Controller returns the controller for kind.
	//
	// Parameters:
	//   - kind: the kind to look up
	//
	// Returns:
	//   - Controller: the controller
	//   - error: error wrapping ErrNotFound if no controller exists for kind
	Controller(kind Kind) (Controller, error)

	// Bind attaches a UI affordance to a kind. It is updated immediately and on every switch.
	//
	// Parameters:
	//   - kind: the kind the affordance selects
	//   - affordance: the UI element to update
	//
	// Returns:
	//   - error: error wrapping ErrNotFound if the kind is unknown
	Bind(kind Kind, affordance Affordance) error

	// Dispose deactivates the active controller and disposes every controller.
	Dispose()
}

type binding struct {
	kind       Kind
	affordance Affordance
}

// switchboardImpl is the implementation of Switchboard.
type switchboardImpl struct {
	controllers [kindCount]Controller
	active      Controller
	bindings    []binding

	settings         map[Kind]Settings
	noPreventDefault bool
	aspect           float32
}

var _ Switchboard = &switchboardImpl{}

// NewSwitchboard creates one controller per kind on the given hub and render target.
// No controller is active until the first SwitchTo.
//
// Parameters:
//   - hub: the event hub every controller listens on
//   - target: the render target controllers hand their camera to
//   - options: functional options to configure the switchboard
//
// Returns:
//   - Switchboard: the new switchboard
//   - error: error if a controller cannot be built from its settings
func NewSwitchboard(hub event.Hub, target RenderTarget, options ...SwitchboardBuilderOption) (Switchboard, error) {
	s := &switchboardImpl{
		settings: make(map[Kind]Settings),
		aspect:   1,
	}
	for _, opt := range options {
		opt(s)
	}

	for _, kind := range Kinds() {
		if s.controllers[kind] != nil {
			continue
		}
		opts := []ControllerBuilderOption{
			WithNoPreventDefault(s.noPreventDefault),
			WithAspect(s.aspect),
		}
		if settings, ok := s.settings[kind]; ok {
			opts = append(opts, WithSettings(settings))
		}
		c, err := NewController(kind, hub, target, opts...)
		if err != nil {
			return nil, fmt.Errorf("new switchboard: %w", err)
		}
		s.controllers[kind] = c
	}
	return s, nil
}

func (s *switchboardImpl) SwitchTo(kind Kind) error {
	next, err := s.Controller(kind)
	if err != nil {
		return fmt.Errorf("switch to %s: %w", kind, err)
	}

	previous := s.active
	if previous != nil {
		previous.Deactivate()
	}
	next.Activate()
	s.active = next

	for _, b := range s.bindings {
		b.affordance.SetActive(b.kind == kind)
	}

	fields := []zap.Field{zap.Stringer("to", kind)}
	if previous != nil {
		fields = append(fields, zap.Stringer("from", previous.Kind()))
	}
	logger.Log.Info("controller switched", fields...)
	return nil
}

func (s *switchboardImpl) SwitchToName(name string) error {
	kind, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("switch to name: %w", err)
	}
	return s.SwitchTo(kind)
}

func (s *switchboardImpl) Active() Controller {
	return s.active
}

func (s *switchboardImpl) Controller(kind Kind) (Controller, error) {
	if !kind.Valid() || s.controllers[kind] == nil {
		return nil, fmt.Errorf("controller %s: %w", kind, ErrNotFound)
	}
	return s.controllers[kind], nil
}

func (s *switchboardImpl) Bind(kind Kind, affordance Affordance) error {
	if _, err := s.Controller(kind); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	s.bindings = append(s.bindings, binding{kind: kind, affordance: affordance})
	affordance.SetActive(s.active != nil && s.active.Kind() == kind)
	return nil
}

func (s *switchboardImpl) Dispose() {
	if s.active != nil {
		s.active.Deactivate()
		s.active = nil
	}
	for i, c := range s.controllers {
		if c != nil {
			c.Dispose()
			s.controllers[i] = nil
		}
	}
	s.bindings = nil
	logger.Log.Info("switchboard disposed")
}
