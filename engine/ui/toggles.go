package ui

// FullscreenToggle is a button with two icons: one shown while windowed (enter fullscreen) and
// one shown while fullscreen (exit fullscreen).
type FullscreenToggle struct {
	button  Element
	enter   Element
	exit    Element
	toggler func() bool
}

// NewFullscreenToggle wires a fullscreen button. Clicking it calls toggler, which must return
// whether the window is fullscreen afterwards, and swaps the hidden class between the icons.
//
// Parameters:
//   - button: the clickable element
//   - enter: icon visible while windowed
//   - exit: icon visible while fullscreen
//   - toggler: switches fullscreen and reports the new state
//
// Returns:
//   - *FullscreenToggle: the toggle
func NewFullscreenToggle(button, enter, exit Element, toggler func() bool) *FullscreenToggle {
	f := &FullscreenToggle{button: button, enter: enter, exit: exit, toggler: toggler}
	f.Sync(false)
	button.Clicked().Add(func(Element) {
		f.Sync(f.toggler())
	})
	return f
}

// Sync shows the icon matching a fullscreen state.
//
// Parameters:
//   - fullscreen: whether the window is fullscreen
func (f *FullscreenToggle) Sync(fullscreen bool) {
	if fullscreen {
		f.enter.AddClass(ClassHidden)
		f.exit.RemoveClass(ClassHidden)
	} else {
		f.enter.RemoveClass(ClassHidden)
		f.exit.AddClass(ClassHidden)
	}
}

// SidePanelToggle opens and closes a side panel by toggling the "on" class on the button and
// the panel together.
type SidePanelToggle struct {
	button Element
	panel  Element
}

// NewSidePanelToggle wires a side panel button.
//
// Parameters:
//   - button: the clickable element
//   - panel: the panel shown while "on"
//
// Returns:
//   - *SidePanelToggle: the toggle
func NewSidePanelToggle(button, panel Element) *SidePanelToggle {
	s := &SidePanelToggle{button: button, panel: panel}
	button.Clicked().Add(func(Element) {
		if s.button.ToggleClass(ClassOn) {
			s.panel.AddClass(ClassOn)
		} else {
			s.panel.RemoveClass(ClassOn)
		}
	})
	return s
}

// Open reports whether the panel is shown.
func (s *SidePanelToggle) Open() bool {
	return s.panel.HasClass(ClassOn)
}

// NewResetButton makes clicking button run reset.
//
// Parameters:
//   - button: the clickable element
//   - reset: the callback to run
func NewResetButton(button Element, reset func()) {
	button.Clicked().Add(func(Element) {
		reset()
	})
}
