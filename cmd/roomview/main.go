// Command roomview opens a window onto the room and lets the user switch between the
// first-person, top-down, two-d and debug camera controllers.
//
// Settings come from the built-in defaults, then roomview.toml in the working directory
// (or the file named by -config), then command line flags.
package main

import (
	"cogentcore.org/core/cli"
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-roomview/engine"
	"github.com/Carmen-Shannon/oxy-roomview/engine/config"
	"github.com/Carmen-Shannon/oxy-roomview/engine/logger"
	"github.com/Carmen-Shannon/oxy-roomview/engine/window"
)

func main() {
	opts := cli.DefaultOptions("roomview", "Room View opens a window onto the room with switchable camera controllers.")
	opts.DefaultFiles = []string{config.DefaultFile}
	cfg := config.Default()
	cli.Run(opts, &cfg, run)
}

// run is the root command. It validates the assembled configuration and runs the viewer
// until the window closes.
func run(cfg *config.Config) error {
	if err := config.CheckFile(config.DefaultFile); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(cfg.Engine.Debug); err != nil {
		return err
	}
	defer logger.Sync()

	// ── Window ──────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	if err != nil {
		return err
	}
	return serve(*cfg, win)
}

// serve drives the engine on win until the window stops running, then tears the session
// down and releases the window.
func serve(cfg config.Config, win window.Window) error {
	// ── Engine ──────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithRenderFrameLimit(float64(cfg.Engine.FrameLimit)),
	)

	// ── Session ─────────────────────────────────────────────────────
	a := newApp(cfg, eng)
	if err := a.start(); err != nil {
		eng.Quit()
		return err
	}

	// Resets run here, outside any hub handler of the session being torn down.
	eng.SetRenderCallback(func(float32) {
		if err := a.serveReset(); err != nil {
			logger.Log.Error("reset failed", zap.Error(err))
			eng.Quit()
		}
	})

	eng.Run()
	a.stop()
	eng.Quit()
	logger.Log.Info("roomview stopped")
	return nil
}
