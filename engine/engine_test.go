package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
	"github.com/Carmen-Shannon/oxy-roomview/engine/scene"
	"github.com/Carmen-Shannon/oxy-roomview/engine/window"
)

// fakeWindow runs a fixed number of message loop iterations.
type fakeWindow struct {
	hub           event.Hub
	iterations    int
	update        func()
	resize        func(width, height int)
	closed        int
	width, height int
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(iterations int) *fakeWindow {
	return &fakeWindow{hub: event.NewHub(), iterations: iterations, width: 800, height: 400}
}

func (f *fakeWindow) SetUpdateCallback(cb func())                  { f.update = cb }
func (f *fakeWindow) SetResizeCallback(cb func(width, height int)) { f.resize = cb }
func (f *fakeWindow) Hub() event.Hub                               { return f.hub }
func (f *fakeWindow) IsRunning() bool                              { return f.closed == 0 }
func (f *fakeWindow) Close() error                                 { f.closed++; return nil }
func (f *fakeWindow) Width() int                                   { return f.width }
func (f *fakeWindow) Height() int                                  { return f.height }
func (f *fakeWindow) ToggleFullscreen() bool                       { return false }
func (f *fakeWindow) SetPointerLock(locked bool)                   { f.hub.SetPointerLocked(locked) }

func (f *fakeWindow) ProcessMessages() {
	for i := 0; i < f.iterations && f.IsRunning(); i++ {
		if f.update != nil {
			f.update()
		}
	}
}

// orderedScene records when it renders.
type orderedScene struct {
	scene.Scene
	log *[]string
}

func (o *orderedScene) Render(dt float32) {
	*o.log = append(*o.log, o.Name())
	o.Scene.Render(dt)
}

func TestNewEngineRequiresWindow(t *testing.T) {
	assert.Panics(t, func() { NewEngine() })
}

func TestRunRendersActiveScenesInOrder(t *testing.T) {
	w := newFakeWindow(2)
	var log []string
	hub := w.Hub()
	back := &orderedScene{Scene: scene.NewScene("back", hub, scene.WithActive(true)), log: &log}
	front := &orderedScene{Scene: scene.NewScene("front", hub, scene.WithActive(true)), log: &log}
	hidden := &orderedScene{Scene: scene.NewScene("hidden", hub), log: &log}

	e := NewEngine(WithWindow(w), WithScene(10, front), WithScene(-1, back))
	e.AddScene(5, hidden)

	renders := 0
	e.SetRenderCallback(func(float32) { renders++ })
	e.Run()

	assert.Equal(t, []string{"back", "front", "back", "front"}, log)
	assert.Equal(t, 2, renders)
	assert.Zero(t, hidden.Frames())
}

func TestQuitFromRenderCallback(t *testing.T) {
	w := newFakeWindow(100)
	e := NewEngine(WithWindow(w))

	frames := 0
	e.SetRenderCallback(func(float32) {
		frames++
		if frames == 3 {
			e.Quit()
		}
	})
	e.Run()

	assert.Equal(t, 3, frames)
	e.Quit()
	assert.Equal(t, 1, w.closed, "quit closes the window once")
}

func TestResizePropagatesToScenes(t *testing.T) {
	w := newFakeWindow(0)
	s := scene.NewScene("room", w.Hub())
	e := NewEngine(WithWindow(w), WithScene(0, s))
	assert.Equal(t, float32(2), s.Aspect(), "scenes start with the window aspect")

	require.NotNil(t, w.resize)
	w.resize(600, 600)
	assert.Equal(t, float32(1), s.Aspect())

	late := scene.NewScene("late", w.Hub())
	e.AddScene(1, late)
	assert.Equal(t, float32(2), late.Aspect())

	e.RemoveScene(1)
	assert.Nil(t, e.Scene(1))
	assert.Len(t, e.Scenes(), 1)
}

func TestFixedRateTicks(t *testing.T) {
	w := newFakeWindow(0)
	e := NewEngine(WithWindow(w), WithTickRate(100)).(*engine)

	var ticks []float32
	e.SetTickCallback(func(dt float32) { ticks = append(ticks, dt) })

	e.frame(25 * time.Millisecond)
	assert.Len(t, ticks, 2)
	assert.InDelta(t, 0.01, ticks[0], 1e-6)

	e.frame(5 * time.Millisecond)
	assert.Len(t, ticks, 3, "backlog carries over between frames")

	e.frame(time.Second)
	assert.Len(t, ticks, 3+maxTicksPerFrame, "stalls are capped")
	assert.Zero(t, e.tickBacklog)
}

func TestFrameLimitSleepsRemainder(t *testing.T) {
	w := newFakeWindow(0)
	e := NewEngine(WithWindow(w), WithRenderFrameLimit(100)).(*engine)

	fixed := time.Unix(0, 0)
	e.now = func() time.Time { return fixed }
	var slept []time.Duration
	e.sleep = func(d time.Duration) { slept = append(slept, d) }

	e.frame(0)
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, slept)

	e.SetRenderFrameLimit(0)
	e.frame(0)
	assert.Len(t, slept, 1)
}

func TestToggleProfiler(t *testing.T) {
	e := NewEngine(WithWindow(newFakeWindow(0)), WithProfiling(true))
	assert.True(t, e.ProfilerEnabled())
	assert.False(t, e.ToggleProfiler())
	assert.True(t, e.ToggleProfiler())
	e.DisableProfiler()
	assert.False(t, e.ProfilerEnabled())
	e.EnableProfiler()
	assert.True(t, e.ProfilerEnabled())
}
