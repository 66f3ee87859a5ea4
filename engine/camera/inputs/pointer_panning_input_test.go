package inputs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-roomview/engine/camera"
	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

func pointer(hub event.Hub, typ event.PointerEventType, button event.MouseButton, id int, x, y float32) *event.PointerEvent {
	ev := &event.PointerEvent{
		Type:        typ,
		Button:      button,
		ClientX:     x,
		ClientY:     y,
		PointerID:   id,
		PointerType: event.PointerTypeMouse,
	}
	hub.Pointer().Notify(ev)
	return ev
}

func attachedPointer(t *testing.T, hubOptions []event.HubBuilderOption, options ...PointerPanningInputBuilderOption) (event.Hub, camera.ArcRotateCamera, PointerPanningInput) {
	t.Helper()
	hub, cam := newPanningCamera(t, hubOptions...)
	in := NewPointerPanningInput(options...)
	cam.Inputs().Add(in)
	cam.AttachControl(false)
	return hub, cam, in
}

// failingElement rejects every capture and release.
type failingElement struct{ focused int }

func (f *failingElement) SetPointerCapture(int) error     { return errors.New("capture refused") }
func (f *failingElement) ReleasePointerCapture(int) error { return event.ErrNotCaptured }
func (f *failingElement) HasPointerCapture(int) bool      { return false }
func (f *failingElement) Focus()                          { f.focused++ }

func TestPointerPanningDefaults(t *testing.T) {
	in := NewPointerPanningInput()
	assert.Equal(t, "PointerPanningInput", in.ClassName())
	assert.Equal(t, "pointers", in.SimpleName())
	assert.Equal(t, []event.MouseButton{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight}, in.Buttons())
	assert.Equal(t, float32(1000), in.PanningSensibility())
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
}

func TestPointerPanningRightDragPans(t *testing.T) {
	hub, cam, in := attachedPointer(t, nil)

	down := pointer(hub, event.PointerDown, event.ButtonRight, 1, 100, 100)
	assert.True(t, down.DefaultPrevented())
	assert.True(t, in.IsPanClick())
	assert.Equal(t, event.ButtonRight, in.ActiveButton())
	assert.True(t, hub.Element().HasPointerCapture(1))

	move := pointer(hub, event.PointerMove, event.ButtonNone, 1, 90, 110)
	assert.True(t, move.DefaultPrevented())
	x, y := cam.InertialPanning()
	assert.InDelta(t, 0.01, x, 1e-6)
	assert.InDelta(t, 0.01, y, 1e-6)

	// deltas are measured from the last stored position
	pointer(hub, event.PointerMove, event.ButtonNone, 1, 80, 110)
	x, y = cam.InertialPanning()
	assert.InDelta(t, 0.02, x, 1e-6)
	assert.InDelta(t, 0.01, y, 1e-6)

	pointer(hub, event.PointerUp, event.ButtonRight, 1, 80, 110)
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
	assert.Zero(t, in.TrackedPointers())
	assert.False(t, hub.Element().HasPointerCapture(1))

	pointer(hub, event.PointerMove, event.ButtonNone, 1, 0, 0)
	x, _ = cam.InertialPanning()
	assert.InDelta(t, 0.02, x, 1e-6, "moves after release are ignored")
}

func TestPointerPanningLeftDragDoesNotPan(t *testing.T) {
	hub, cam, in := attachedPointer(t, nil)

	pointer(hub, event.PointerDown, event.ButtonLeft, 1, 100, 100)
	assert.False(t, in.IsPanClick())
	assert.Equal(t, 1, in.TrackedPointers())

	pointer(hub, event.PointerMove, event.ButtonNone, 1, 50, 50)
	x, y := cam.InertialPanning()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPointerPanningCustomPanningButton(t *testing.T) {
	hub := event.NewHub()
	cam := camera.NewArcRotateCamera("mid", hub, camera.WithPanningMouseButton(event.ButtonMiddle))
	in := NewPointerPanningInput()
	cam.Inputs().Add(in)
	cam.AttachControl(false)

	pointer(hub, event.PointerDown, event.ButtonMiddle, 1, 0, 0)
	assert.True(t, in.IsPanClick())
}

func TestPointerPanningButtonWhitelist(t *testing.T) {
	hub, _, in := attachedPointer(t, nil, WithPointerButtons(event.ButtonLeft))

	ev := pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	assert.False(t, ev.DefaultPrevented())
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
	assert.Zero(t, in.TrackedPointers())
}

func TestPointerPanningWhitelistIsCopied(t *testing.T) {
	buttons := []event.MouseButton{event.ButtonLeft}
	hub, _, in := attachedPointer(t, nil, WithPointerButtons(buttons...))
	buttons[0] = event.ButtonRight

	assert.Equal(t, []event.MouseButton{event.ButtonLeft}, in.Buttons())
	pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
}

func TestPointerPanningUntrackedMoveIsPrevented(t *testing.T) {
	hub, cam, in := attachedPointer(t, nil)

	move := pointer(hub, event.PointerMove, event.ButtonNone, 1, 10, 10)
	assert.True(t, move.DefaultPrevented())
	assert.Zero(t, in.TrackedPointers())
	x, y := cam.InertialPanning()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPointerPanningSingleActiveButton(t *testing.T) {
	hub, _, in := attachedPointer(t, nil)

	pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	pointer(hub, event.PointerDown, event.ButtonLeft, 1, 0, 0)
	assert.Equal(t, event.ButtonRight, in.ActiveButton())
	assert.True(t, in.IsPanClick())
	assert.Equal(t, 1, in.TrackedPointers())

	pointer(hub, event.PointerUp, event.ButtonLeft, 1, 0, 0)
	assert.Equal(t, event.ButtonRight, in.ActiveButton(), "releasing a non-active button changes nothing")
}

func TestPointerPanningSwallowsCaptureErrors(t *testing.T) {
	el := &failingElement{}
	hub, cam, in := attachedPointer(t, []event.HubBuilderOption{event.WithElement(el)})

	require.NotPanics(t, func() {
		pointer(hub, event.PointerDown, event.ButtonRight, 1, 10, 10)
		pointer(hub, event.PointerMove, event.ButtonNone, 1, 0, 10)
		pointer(hub, event.PointerUp, event.ButtonRight, 1, 0, 10)
	})
	assert.Equal(t, 1, el.focused)
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
	x, _ := cam.InertialPanning()
	assert.InDelta(t, 0.01, x, 1e-6)
}

func TestPointerPanningPointerLockFeedsMovement(t *testing.T) {
	var deltas [][2]float32
	hub, _, in := attachedPointer(t,
		[]event.HubBuilderOption{event.WithPointerLocked(true)},
		WithDeltaHook(func(dx, dy float32) { deltas = append(deltas, [2]float32{dx, dy}) }),
	)

	hub.Pointer().Notify(&event.PointerEvent{Type: event.PointerDown, Button: event.ButtonRight, PointerID: 1})
	hub.Pointer().Notify(&event.PointerEvent{Type: event.PointerMove, Button: event.ButtonNone, PointerID: 1, MovementX: 5, MovementY: -3})

	assert.Equal(t, [][2]float32{{0, 0}, {5, -3}}, deltas)
	assert.Zero(t, in.TrackedPointers())
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
}

func touch(hub event.Hub, typ event.PointerEventType, id int, x, y float32) {
	hub.Pointer().Notify(&event.PointerEvent{
		Type:        typ,
		Button:      event.ButtonLeft,
		ClientX:     x,
		ClientY:     y,
		PointerID:   id,
		PointerType: event.PointerTypeTouch,
	})
}

func TestPointerPanningSecondTouchPromotion(t *testing.T) {
	hub, _, in := attachedPointer(t, nil)

	touch(hub, event.PointerDown, 1, 0, 0)
	touch(hub, event.PointerDown, 2, 50, 50)
	assert.Equal(t, 2, in.TrackedPointers())

	touch(hub, event.PointerUp, 1, 0, 0)
	assert.Equal(t, 1, in.TrackedPointers(), "secondary point is promoted")
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
}

func TestPointerPanningUnreliableMultiTouchDropsBoth(t *testing.T) {
	hub, _, in := attachedPointer(t, []event.HubBuilderOption{event.WithUnreliableMultiTouch(true)})

	touch(hub, event.PointerDown, 1, 0, 0)
	touch(hub, event.PointerDown, 2, 50, 50)
	require.Equal(t, 2, in.TrackedPointers())

	touch(hub, event.PointerUp, 2, 50, 50)
	assert.Zero(t, in.TrackedPointers())
}

func TestPointerPanningBlurResetsDrag(t *testing.T) {
	hub, cam, in := attachedPointer(t, nil)

	pointer(hub, event.PointerDown, event.ButtonRight, 1, 100, 100)
	hub.Blur().Notify(event.FocusEvent{})

	assert.False(t, in.IsPanClick())
	assert.Zero(t, in.TrackedPointers())
	assert.Equal(t, event.ButtonNone, in.ActiveButton())

	pointer(hub, event.PointerMove, event.ButtonNone, 1, 0, 0)
	x, y := cam.InertialPanning()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPointerPanningContextMenu(t *testing.T) {
	hub, _, _ := attachedPointer(t, nil)
	ev := &event.PointerEvent{Button: event.ButtonRight}
	hub.ContextMenu().Notify(ev)
	assert.True(t, ev.DefaultPrevented())

	var seen int
	hub2, _, _ := attachedPointer(t, nil, WithContextMenuHook(func(*event.PointerEvent) { seen++ }))
	ev2 := &event.PointerEvent{Button: event.ButtonRight}
	hub2.ContextMenu().Notify(ev2)
	assert.Equal(t, 1, seen)
	assert.False(t, ev2.DefaultPrevented())
}

func TestPointerPanningNoPreventDefault(t *testing.T) {
	hub, cam := newPanningCamera(t)
	in := NewPointerPanningInput()
	cam.Inputs().Add(in)
	cam.AttachControl(true)

	down := pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	move := pointer(hub, event.PointerMove, event.ButtonNone, 1, 1, 1)
	assert.False(t, down.DefaultPrevented())
	assert.False(t, move.DefaultPrevented())
	assert.Equal(t, event.ButtonRight, in.ActiveButton())
}

func TestPointerPanningZeroSensibilityDisablesPan(t *testing.T) {
	hub, cam, _ := attachedPointer(t, nil, WithPointerPanningSensibility(0))
	pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	pointer(hub, event.PointerMove, event.ButtonNone, 1, 10, 10)
	x, y := cam.InertialPanning()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPointerPanningAttachDetachRegistrations(t *testing.T) {
	hub, _, in := attachedPointer(t, nil)
	in.AttachControl(false)
	assert.Equal(t, 1, hub.Pointer().Count())
	assert.Equal(t, 1, hub.ContextMenu().Count())
	assert.Equal(t, 1, hub.Blur().Count())

	pointer(hub, event.PointerDown, event.ButtonRight, 1, 0, 0)
	in.DetachControl()
	assert.Zero(t, hub.Pointer().Count())
	assert.Zero(t, hub.ContextMenu().Count())
	assert.Zero(t, hub.Blur().Count())
	assert.Zero(t, in.TrackedPointers())
	assert.Equal(t, event.ButtonNone, in.ActiveButton())
	assert.False(t, in.IsPanClick())

	in.DetachControl()
}
