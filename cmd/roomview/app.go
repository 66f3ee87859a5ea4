package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine"
	"github.com/Carmen-Shannon/oxy-roomview/engine/config"
	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
	"github.com/Carmen-Shannon/oxy-roomview/engine/scene"
	"github.com/Carmen-Shannon/oxy-roomview/engine/ui"
	"github.com/Carmen-Shannon/oxy-roomview/engine/window"
)

// sceneKey is the z-index of the room scene.
const sceneKey = 0

// Element ids of the viewer chrome.
const (
	idFullscreen      = "btn-fullscreen"
	idFullscreenOn    = "icon-fullscreen-enter"
	idFullscreenOff   = "icon-fullscreen-exit"
	idSidePanel       = "side-panel"
	idSidePanelBtn    = "btn-side-panel"
	idReset           = "btn-reset"
	idInspectorToggle = "btn-inspector"
)

// pointerLock locks the window's pointer while the controller it is bound to is active.
type pointerLock struct {
	win window.Window
}

func (p pointerLock) SetActive(active bool) {
	p.win.SetPointerLock(active)
}

// session is everything reset tears down and rebuilds.
type session struct {
	scene       scene.Scene
	switchboard controller.Switchboard
	doc         *ui.Document
	hotkeys     *ui.Hotkeys
}

type app struct {
	cfg            config.Config
	eng            engine.Engine
	session        *session
	resetRequested bool
}

func newApp(cfg config.Config, eng engine.Engine) *app {
	return &app{cfg: cfg, eng: eng}
}

func (a *app) start() error {
	s, err := a.newSession()
	if err != nil {
		return err
	}
	a.session = s
	return nil
}

func (a *app) stop() {
	if a.session != nil {
		a.session.dispose(a.eng)
		a.session = nil
	}
}

func (a *app) requestReset() {
	a.resetRequested = true
}

// serveReset rebuilds the session if a reset was requested since the last frame.
func (a *app) serveReset() error {
	if !a.resetRequested {
		return nil
	}
	a.resetRequested = false
	logger.Log.Info("resetting session")
	a.stop()
	return a.start()
}

func (a *app) newSession() (*session, error) {
	win := a.eng.Window()
	hub := win.Hub()

	sc := scene.NewScene("room", hub,
		scene.WithActive(true),
		scene.WithSize(win.Width(), win.Height()),
	)

	opts := []controller.SwitchboardBuilderOption{
		controller.WithInputsNoPreventDefault(a.cfg.Engine.NoPreventDefault),
		controller.WithInitialAspect(sc.Aspect()),
	}
	for _, kind := range controller.Kinds() {
		opts = append(opts, controller.WithKindSettings(kind, a.cfg.Settings(kind)))
	}
	sb, err := controller.NewSwitchboard(hub, sc, opts...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	// ── Chrome ──────────────────────────────────────────────────────
	doc := ui.NewDocument()
	buttons, err := ui.BindControllerButtons(doc, sb)
	if err != nil {
		sb.Dispose()
		return nil, fmt.Errorf("new session: %w", err)
	}

	if err := sb.Bind(controller.KindFirstPerson, pointerLock{win: win}); err != nil {
		sb.Dispose()
		return nil, fmt.Errorf("new session: %w", err)
	}

	fullscreen := doc.Create(idFullscreen)
	ui.NewFullscreenToggle(fullscreen, doc.Create(idFullscreenOn), doc.Create(idFullscreenOff), win.ToggleFullscreen)

	sidePanelBtn := doc.Create(idSidePanelBtn)
	ui.NewSidePanelToggle(sidePanelBtn, doc.Create(idSidePanel))

	reset := doc.Create(idReset)
	ui.NewResetButton(reset, a.requestReset)

	inspector := doc.Create(idInspectorToggle)
	inspector.Clicked().Add(func(ui.Element) { a.eng.ToggleProfiler() })

	// ── Hotkeys ─────────────────────────────────────────────────────
	hk := ui.NewHotkeys()
	digits := []uint32{common.Key1, common.Key2, common.Key3, common.Key4}
	for i, kind := range controller.Kinds() {
		hk.Bind(digits[i], 0, buttons[kind])
	}
	hk.Bind(common.KeyF11, 0, fullscreen)
	hk.Bind(common.KeyTab, 0, sidePanelBtn)
	hk.Bind(common.KeyR, event.ModCtrl, reset)
	hk.Bind(common.KeyI, event.ModShift|event.ModCtrl|event.ModAlt, inspector)
	hk.Attach(hub)

	// ── Activate ────────────────────────────────────────────────────
	initial, err := a.cfg.InitialKind()
	if err != nil {
		hk.Detach()
		sb.Dispose()
		return nil, fmt.Errorf("new session: %w", err)
	}
	if err := sb.SwitchTo(initial); err != nil {
		hk.Detach()
		sb.Dispose()
		return nil, fmt.Errorf("new session: %w", err)
	}
	a.eng.AddScene(sceneKey, sc)

	logger.Log.Info("session started", zap.Stringer("controller", initial))
	return &session{scene: sc, switchboard: sb, doc: doc, hotkeys: hk}, nil
}

func (s *session) dispose(eng engine.Engine) {
	s.hotkeys.Detach()
	s.switchboard.Dispose()
	s.scene.Dispose()
	eng.RemoveScene(sceneKey)
	eng.Window().SetPointerLock(false)
}
