package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool

	// windowed position and size restored when leaving fullscreen
	restoreX, restoreY, restoreW, restoreH int
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// No client API: the view computes camera matrices only.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if isCloseKey(key, action) {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if key == glfw.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.input.key(uint32(key), true, translateMods(mods))
		case glfw.Release:
			w.input.key(uint32(key), false, translateMods(mods))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		w.input.button(b, action == glfw.Press, translateMods(mods))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.input.cursor(float32(xpos), float32(ypos))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.input.scroll(float32(xoff), float32(yoff))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFocusCallback
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			w.input.blur()
		}
	})

	// Framebuffer size is in pixels and differs from the window size on high-DPI displays.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// translateButton maps GLFW button numbers (left 0, right 1, middle 2) onto pointer
// event numbering (left 0, middle 1, right 2).
func translateButton(button glfw.MouseButton) (event.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return event.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return event.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return event.ButtonRight, true
	default:
		return event.ButtonNone, false
	}
}

func translateMods(mods glfw.ModifierKey) event.Modifiers {
	var m event.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= event.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= event.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= event.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= event.ModMeta
	}
	return m
}

func platformWindow(w *engineWindow) (*glfwWindow, bool) {
	gw, ok := w.internalWindow.(*glfwWindow)
	return gw, ok && gw != nil
}

// platformIsRunningCheck returns whether the GLFW window is still active.
func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := platformWindow(w)
	if !ok {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Closing an already closed window is a no-op.
// isCloseKey reports whether the key event is a press of the close key (Escape).
func isCloseKey(key glfw.Key, action glfw.Action) bool {
	return key == common.KeyEsc && action == glfw.Press
}

func platformCloseWindow(w *engineWindow) error {
	gw, ok := platformWindow(w)
	if !ok {
		return errors.New("window is not initialized")
	}
	if gw.window == nil {
		return nil
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	gw.window = nil
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}

func platformFocus(w *engineWindow) {
	if gw, ok := platformWindow(w); ok && gw.window != nil {
		gw.window.Focus()
	}
}

// platformSetPointerLock switches the cursor between normal and disabled mode. Disabled mode
// hides the cursor and reports virtual, unbounded positions.
//
// Reference: https://www.glfw.org/docs/latest/input_guide.html#cursor_mode
func platformSetPointerLock(w *engineWindow, locked bool) {
	gw, ok := platformWindow(w)
	if !ok || gw.window == nil {
		return
	}
	mode := glfw.CursorNormal
	if locked {
		mode = glfw.CursorDisabled
	}
	gw.window.SetInputMode(glfw.CursorMode, mode)
}

// platformToggleFullscreen moves the window onto the primary monitor at its current video
// mode, or back to the windowed position and size it had before.
//
// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_monitor
func platformToggleFullscreen(w *engineWindow) bool {
	gw, ok := platformWindow(w)
	if !ok || gw.window == nil {
		return false
	}

	if gw.window.GetMonitor() != nil {
		gw.window.SetMonitor(nil, gw.restoreX, gw.restoreY, gw.restoreW, gw.restoreH, 0)
		return false
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return false
	}
	mode := monitor.GetVideoMode()
	gw.restoreX, gw.restoreY = gw.window.GetPos()
	gw.restoreW, gw.restoreH = gw.window.GetSize()
	gw.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	return true
}
