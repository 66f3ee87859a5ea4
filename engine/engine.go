package engine

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
	"github.com/Carmen-Shannon/oxy-roomview/engine/profiler"
	"github.com/Carmen-Shannon/oxy-roomview/engine/scene"
	"github.com/Carmen-Shannon/oxy-roomview/engine/window"
)

// maxTicksPerFrame bounds catch-up ticks after a stall.
const maxTicksPerFrame = 5

// engine implements the Engine interface.
// Every frame runs on the window thread from the window's update callback.
type engine struct {
	quitOnce sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickBacklog    time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
	now              func() time.Time
	sleep            func(time.Duration)
}

// Engine is the main entry point for the engine.
// It drives the frame loop on top of the window's message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ToggleProfiler flips profiling output on or off.
	//
	// Returns:
	//   - bool: true if profiling is enabled afterwards
	ToggleProfiler() bool

	// ProfilerEnabled reports whether profiling output is enabled.
	//
	// Returns:
	//   - bool: true if profiling is enabled
	ProfilerEnabled() bool

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback runs at this fixed rate, catching up when frames are slow.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	//
	// Parameters:
	//   - callback: function receiving the fixed tick duration in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after the scenes render.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the frame loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run installs the frame callback and runs the window message loop.
	// Blocks until the window closes.
	Run()

	// Quit closes the window, which ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window is required and NewEngine panics without one.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		scenes:         make(map[int]scene.Scene),
		profiler:       profiler.NewProfiler(),
		engineTickRate: time.Second / 60,
		now:            time.Now,
		sleep:          time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: NewEngine requires a window (use WithWindow)")
	}

	resize := func(width, height int) {
		for _, s := range e.scenes {
			s.Resize(width, height)
		}
	}
	resize(e.window.Width(), e.window.Height())
	e.window.SetResizeCallback(resize)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(func() {
		now := e.now()
		dt := now.Sub(e.lastFrame)
		e.lastFrame = now
		e.frame(dt)
	})
	logger.Log.Info("engine running", zap.Int("scenes", len(e.scenes)))
	e.window.ProcessMessages()
	logger.Log.Info("engine stopped")
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			logger.Log.Warn("failed to close window", zap.Error(err))
		}
	})
}

// frame runs fixed-rate ticks, renders active scenes in ascending z-index order,
// calls the render callback, ticks the profiler and applies the frame cap.
func (e *engine) frame(dt time.Duration) {
	frameStart := e.now()

	if e.tickCallback != nil {
		e.tickBacklog += dt
		ticks := 0
		for e.tickBacklog >= e.engineTickRate && ticks < maxTicksPerFrame {
			e.tickCallback(float32(e.engineTickRate.Seconds()))
			e.tickBacklog -= e.engineTickRate
			ticks++
		}
		if ticks == maxTicksPerFrame {
			e.tickBacklog = 0
		}
	}

	seconds := float32(dt.Seconds())
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			s.Render(seconds)
		}
	}

	if e.renderCallback != nil {
		e.renderCallback(seconds)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(frameStart); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) EnableProfiler() {
	if !e.profilingEnabled && e.profiler != nil {
		e.profiler.Reset()
	}
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ToggleProfiler() bool {
	if e.profilingEnabled {
		e.DisableProfiler()
	} else {
		e.EnableProfiler()
	}
	logger.Log.Info("profiler toggled", zap.Bool("enabled", e.profilingEnabled))
	return e.profilingEnabled
}

func (e *engine) ProfilerEnabled() bool {
	return e.profilingEnabled
}

func (e *engine) SetTickRate(fps float64) {
	e.engineTickRate = tickDuration(fps)
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameLimit(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
	s.Resize(e.window.Width(), e.window.Height())
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}

func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

func frameLimit(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
