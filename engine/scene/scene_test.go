package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/common"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/camera/inputs"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

func TestNewScenePanicsWithoutHub(t *testing.T) {
	assert.Panics(t, func() { NewScene("room", nil) })
}

func TestSceneDefaults(t *testing.T) {
	hub := event.NewHub()
	s := NewScene("room", hub, WithActive(true), WithSize(1600, 800))

	assert.Equal(t, "room", s.Name())
	assert.True(t, s.Active())
	assert.Same(t, hub, s.Hub())
	assert.Nil(t, s.Camera())
	assert.Equal(t, float32(2), s.Aspect())
	assert.Equal(t, mgl32.Ident4(), s.ViewProjection())

	s.SetName("other")
	s.SetActive(false)
	assert.Equal(t, "other", s.Name())
	assert.False(t, s.Active())

	s.Render(0.016)
	assert.Equal(t, uint64(1), s.Frames())
	s.DetachControl()
}

func TestSceneAppliesAspectToCameras(t *testing.T) {
	hub := event.NewHub()
	s := NewScene("room", hub, WithSize(800, 400))

	first := camera.NewArcRotateCamera("a", hub)
	s.SetActiveCamera(first)
	assert.Equal(t, float32(2), first.Aspect())

	s.Resize(900, 300)
	assert.Equal(t, float32(3), first.Aspect())

	s.Resize(0, 300)
	assert.Equal(t, float32(3), s.Aspect(), "minimised sizes are ignored")

	second := camera.NewFreeCamera("b", hub)
	s.SetActiveCamera(second)
	assert.Equal(t, float32(3), second.Aspect(), "later cameras pick up the current aspect")
}

func TestSceneRenderUpdatesActiveCamera(t *testing.T) {
	hub := event.NewHub()
	s := NewScene("room", hub)
	cam := camera.NewArcRotateCamera("top", hub)
	inputs.UsePanningInputs(cam, inputs.NewKeyboardPanningInput(), inputs.NewPointerPanningInput())
	s.SetActiveCamera(cam)
	cam.AttachControl(false)

	before := cam.Target()
	hub.Keyboard().Notify(&event.KeyboardEvent{Type: event.KeyDown, KeyCode: common.KeyRight})
	s.Render(0.016)

	assert.NotEqual(t, before, cam.Target())
	assert.Equal(t, cam.ViewProjectionMatrix(), s.ViewProjection())
}

func TestSceneDispose(t *testing.T) {
	hub := event.NewHub()
	s := NewScene("room", hub, WithActive(true))
	cam := camera.NewArcRotateCamera("debug", hub)
	inputs.AddArcRotateDefaults(cam)
	s.SetActiveCamera(cam)
	cam.AttachControl(false)
	require.Equal(t, 1, hub.Wheel().Count())

	s.Dispose()
	assert.Zero(t, hub.Wheel().Count())
	assert.Nil(t, s.Camera())
	assert.False(t, s.Active())
}
