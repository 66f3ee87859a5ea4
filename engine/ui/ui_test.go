package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/controller"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

func TestElementClasses(t *testing.T) {
	el := NewElement("btn", "b", "a", "")
	assert.Equal(t, "btn", el.ID())
	assert.Equal(t, []string{"a", "b"}, el.Classes())

	el.SetActive(true)
	assert.True(t, el.HasClass(ClassActive))
	el.SetActive(true)
	el.SetActive(false)
	assert.False(t, el.HasClass(ClassActive))

	assert.True(t, el.ToggleClass("x"))
	assert.False(t, el.ToggleClass("x"))
	el.RemoveClass("a", "b")
	assert.Empty(t, el.Classes())
}

func TestElementClick(t *testing.T) {
	el := NewElement("btn")
	var got []Element
	h := el.Clicked().Add(func(e Element) { got = append(got, e) })
	el.Click()
	el.Clicked().Remove(h)
	el.Click()

	require.Len(t, got, 1)
	assert.Same(t, el, got[0])
}

func TestDocument(t *testing.T) {
	d := NewDocument()
	a := d.Create("a", "one")
	assert.Same(t, a, d.Create("a", "two"), "existing ids are reused")
	assert.False(t, a.HasClass("two"))
	d.Create("b")

	got, ok := d.ByID("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID())
	_, ok = d.ByID("missing")
	assert.False(t, ok)
	assert.Len(t, d.Elements(), 2)
	assert.Equal(t, "a", d.Elements()[0].ID())
}

type nopTarget struct{}

func (nopTarget) SetActiveCamera(camera.Camera) {}

func TestBindControllerButtons(t *testing.T) {
	sb, err := controller.NewSwitchboard(event.NewHub(), nopTarget{})
	require.NoError(t, err)
	require.NoError(t, sb.SwitchTo(controller.KindDebug))

	d := NewDocument()
	buttons, err := BindControllerButtons(d, sb)
	require.NoError(t, err)
	require.Len(t, buttons, 4)
	assert.True(t, buttons[controller.KindDebug].HasClass(ClassActive))

	el, ok := d.ByID(ControllerButtonID(controller.KindTopDown))
	require.True(t, ok)
	el.Click()

	assert.Equal(t, controller.KindTopDown, sb.Active().Kind())
	for kind, btn := range buttons {
		assert.Equal(t, kind == controller.KindTopDown, btn.HasClass(ClassActive), kind.String())
	}
}

func TestFullscreenToggle(t *testing.T) {
	btn, enter, exit := NewElement("fs"), NewElement("fs-on"), NewElement("fs-off")
	fullscreen := false
	NewFullscreenToggle(btn, enter, exit, func() bool {
		fullscreen = !fullscreen
		return fullscreen
	})

	assert.False(t, enter.HasClass(ClassHidden))
	assert.True(t, exit.HasClass(ClassHidden))

	btn.Click()
	assert.True(t, enter.HasClass(ClassHidden))
	assert.False(t, exit.HasClass(ClassHidden))

	btn.Click()
	assert.False(t, enter.HasClass(ClassHidden))
	assert.True(t, exit.HasClass(ClassHidden))
}

func TestSidePanelToggle(t *testing.T) {
	btn, panel := NewElement("panel-btn"), NewElement("panel")
	s := NewSidePanelToggle(btn, panel)
	assert.False(t, s.Open())

	btn.Click()
	assert.True(t, s.Open())
	assert.True(t, btn.HasClass(ClassOn))

	btn.Click()
	assert.False(t, s.Open())
	assert.False(t, btn.HasClass(ClassOn))
}

func TestResetButton(t *testing.T) {
	btn := NewElement("reset")
	resets := 0
	NewResetButton(btn, func() { resets++ })
	btn.Click()
	btn.Click()
	assert.Equal(t, 2, resets)
}

func TestHotkeys(t *testing.T) {
	hub := event.NewHub()
	one, reset := NewElement("one"), NewElement("reset")
	var clicks []string
	for _, el := range []Element{one, reset} {
		el.Clicked().Add(func(e Element) { clicks = append(clicks, e.ID()) })
	}

	h := NewHotkeys()
	h.Bind(common.Key1, 0, one)
	h.Bind(common.KeyR, event.ModCtrl, reset)
	h.Attach(hub)
	h.Attach(hub)
	assert.Equal(t, 1, hub.Keyboard().Count())

	press := func(code uint32, mods event.Modifiers) *event.KeyboardEvent {
		ev := &event.KeyboardEvent{Type: event.KeyDown, KeyCode: code, Mods: mods}
		hub.Keyboard().Notify(ev)
		return ev
	}
	up := func(code uint32) {
		hub.Keyboard().Notify(&event.KeyboardEvent{Type: event.KeyUp, KeyCode: code})
	}

	ev := press(common.Key1, 0)
	assert.True(t, ev.DefaultPrevented())
	press(common.Key1, 0)
	assert.Equal(t, []string{"one"}, clicks, "repeat does not click again")
	up(common.Key1)

	press(common.KeyR, 0)
	up(common.KeyR)
	assert.Len(t, clicks, 1, "modifiers must match exactly")

	press(common.KeyR, event.ModCtrl)
	assert.Equal(t, []string{"one", "reset"}, clicks)

	hub.Blur().Notify(event.FocusEvent{})
	press(common.KeyR, event.ModCtrl)
	assert.Len(t, clicks, 3, "blur forgets held keys")

	h.Detach()
	assert.Zero(t, hub.Keyboard().Count())
	press(common.Key1, 0)
	assert.Len(t, clicks, 3)
}
