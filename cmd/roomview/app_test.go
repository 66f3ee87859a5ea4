package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine"
	"github.com/Carmen-Shannon/oxy-roomview/engine/config"
	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/ui"
)

type stubWindow struct {
	hub         event.Hub
	fullscreen  bool
	closed      bool
	onUpdate    func()
	onResize    func(int, int)
	width       int
	height      int
	pointerLock bool
}

func newStubWindow() *stubWindow {
	return &stubWindow{hub: event.NewHub(), width: 800, height: 400}
}

func (w *stubWindow) SetUpdateCallback(callback func())         { w.onUpdate = callback }
func (w *stubWindow) SetResizeCallback(callback func(int, int)) { w.onResize = callback }
func (w *stubWindow) Hub() event.Hub                            { return w.hub }
func (w *stubWindow) IsRunning() bool                           { return !w.closed }
func (w *stubWindow) Close() error                              { w.closed = true; return nil }
func (w *stubWindow) ProcessMessages()                          {}
func (w *stubWindow) Width() int                                { return w.width }
func (w *stubWindow) Height() int                               { return w.height }
func (w *stubWindow) SetPointerLock(locked bool) {
	w.pointerLock = locked
	w.hub.SetPointerLocked(locked)
}

func (w *stubWindow) ToggleFullscreen() bool { w.fullscreen = !w.fullscreen; return w.fullscreen }

func newTestApp(t *testing.T) (*app, *stubWindow, engine.Engine) {
	t.Helper()
	win := newStubWindow()
	eng := engine.NewEngine(engine.WithWindow(win))
	a := newApp(config.Default(), eng)
	require.NoError(t, a.start())
	return a, win, eng
}

func pressKey(hub event.Hub, code uint32, mods event.Modifiers) {
	hub.Keyboard().Notify(&event.KeyboardEvent{Type: event.KeyDown, KeyCode: code, Mods: mods})
	hub.Keyboard().Notify(&event.KeyboardEvent{Type: event.KeyUp, KeyCode: code, Mods: mods})
}

func TestApp_StartActivatesInitialController(t *testing.T) {
	a, _, eng := newTestApp(t)

	active := a.session.switchboard.Active()
	require.NotNil(t, active)
	assert.Equal(t, controller.KindDebug, active.Kind())
	assert.Same(t, a.session.scene, eng.Scene(sceneKey))
	assert.Equal(t, float32(2), a.session.scene.Aspect())

	btn, ok := a.session.doc.ByID(ui.ControllerButtonID(controller.KindDebug))
	require.True(t, ok)
	assert.True(t, btn.HasClass(ui.ClassActive))
}

func TestApp_DigitHotkeysSwitchControllers(t *testing.T) {
	a, win, _ := newTestApp(t)

	pressKey(win.hub, common.Key2, 0)
	assert.Equal(t, controller.KindTopDown, a.session.switchboard.Active().Kind())

	pressKey(win.hub, common.Key1, 0)
	assert.Equal(t, controller.KindFirstPerson, a.session.switchboard.Active().Kind())

	// Modified digits are not bound.
	pressKey(win.hub, common.Key3, event.ModShift)
	assert.Equal(t, controller.KindFirstPerson, a.session.switchboard.Active().Kind())
}

func TestApp_FullscreenAndInspectorHotkeys(t *testing.T) {
	a, win, eng := newTestApp(t)

	pressKey(win.hub, common.KeyF11, 0)
	assert.True(t, win.fullscreen)

	before := eng.ProfilerEnabled()
	pressKey(win.hub, common.KeyI, event.ModShift|event.ModCtrl|event.ModAlt)
	assert.NotEqual(t, before, eng.ProfilerEnabled())

	panel, ok := a.session.doc.ByID(idSidePanel)
	require.True(t, ok)
	assert.False(t, panel.HasClass(ui.ClassOn))
	pressKey(win.hub, common.KeyTab, 0)
	assert.True(t, panel.HasClass(ui.ClassOn))
}

func TestApp_ResetIsServedBetweenFrames(t *testing.T) {
	a, win, eng := newTestApp(t)
	pressKey(win.hub, common.Key2, 0)
	old := a.session

	pressKey(win.hub, common.KeyR, event.ModCtrl)
	assert.Same(t, old, a.session, "reset must wait for the next frame")

	require.NoError(t, a.serveReset())
	require.NotSame(t, old, a.session)
	assert.False(t, old.scene.Active())
	assert.Equal(t, controller.KindDebug, a.session.switchboard.Active().Kind())
	assert.Same(t, a.session.scene, eng.Scene(sceneKey))

	// Nothing of the old session stays registered on the hub.
	a.stop()
	assert.Zero(t, win.hub.Keyboard().Count())
	assert.Zero(t, win.hub.Blur().Count())
}

func TestApp_ServeResetWithoutRequestIsNoop(t *testing.T) {
	a, _, _ := newTestApp(t)
	old := a.session
	require.NoError(t, a.serveReset())
	assert.Same(t, old, a.session)
}

func TestApp_StopDisposesSession(t *testing.T) {
	a, win, eng := newTestApp(t)
	a.stop()

	assert.Nil(t, a.session)
	assert.Nil(t, eng.Scene(sceneKey))
	assert.Zero(t, win.hub.Keyboard().Count())
	assert.Zero(t, win.hub.Pointer().Count())
}

func TestApp_FirstPersonLocksPointer(t *testing.T) {
	a, win, _ := newTestApp(t)
	assert.False(t, win.pointerLock)

	pressKey(win.hub, common.Key1, 0)
	assert.True(t, win.pointerLock)
	assert.True(t, win.hub.PointerLocked())

	pressKey(win.hub, common.Key2, 0)
	assert.False(t, win.pointerLock)

	pressKey(win.hub, common.Key1, 0)
	a.stop()
	assert.False(t, win.pointerLock, "tearing the session down releases the pointer")
}

func TestServe_ReleasesWindowWhenLoopEnds(t *testing.T) {
	win := newStubWindow()

	require.NoError(t, serve(config.Default(), win))
	assert.True(t, win.closed)
	assert.Zero(t, win.hub.Keyboard().Count())
	assert.Zero(t, win.hub.Pointer().Count())
}
