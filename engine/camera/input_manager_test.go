package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-roomview/engine/event"
)

type recordingInput struct {
	class, simple string
	cam           Camera
	attached      int
	detached      int
	checks        int
	noPrevent     bool
}

func (r *recordingInput) ClassName() string  { return r.class }
func (r *recordingInput) SimpleName() string { return r.simple }
func (r *recordingInput) SetCamera(c Camera) { r.cam = c }
func (r *recordingInput) AttachControl(noPreventDefault bool) {
	r.attached++
	r.noPrevent = noPreventDefault
}
func (r *recordingInput) DetachControl() { r.detached++ }
func (r *recordingInput) CheckInputs()   { r.checks++ }

func TestInputManagerAddSetsCameraAndRejectsDuplicates(t *testing.T) {
	cam := NewArcRotateCamera("arc", event.NewHub())
	a := &recordingInput{class: "A", simple: "keyboard"}
	b := &recordingInput{class: "B", simple: "keyboard"}

	cam.Inputs().Add(a)
	cam.Inputs().Add(b)

	assert.Same(t, cam, a.cam)
	assert.Nil(t, b.cam)
	assert.Len(t, cam.Inputs().Inputs(), 1)
}

func TestInputManagerAttachDetachIsIdempotent(t *testing.T) {
	cam := NewArcRotateCamera("arc", event.NewHub())
	in := &recordingInput{class: "A", simple: "a"}
	cam.Inputs().Add(in)

	cam.DetachControl()
	assert.False(t, cam.Inputs().Attached())

	cam.AttachControl(true)
	cam.AttachControl(true)
	assert.Equal(t, 1, in.attached)
	assert.True(t, in.noPrevent)
	assert.True(t, cam.Inputs().Attached())

	cam.DetachControl()
	assert.False(t, cam.Inputs().Attached())
}

func TestInputManagerAddWhileAttachedAttachesImmediately(t *testing.T) {
	cam := NewFreeCamera("fp", event.NewHub())
	cam.AttachControl(false)

	in := &recordingInput{class: "A", simple: "a"}
	cam.Inputs().Add(in)
	assert.Equal(t, 1, in.attached)
}

func TestInputManagerRemoveAndClear(t *testing.T) {
	cam := NewArcRotateCamera("arc", event.NewHub())
	a := &recordingInput{class: "A", simple: "a"}
	b := &recordingInput{class: "B", simple: "b"}
	c := &recordingInput{class: "B", simple: "c"}
	cam.Inputs().Add(a)
	cam.Inputs().Add(b)
	cam.Inputs().Add(c)

	cam.Inputs().Remove(a)
	assert.Equal(t, 1, a.detached)
	assert.Len(t, cam.Inputs().Inputs(), 2)

	cam.Inputs().RemoveByType("B")
	assert.Equal(t, 1, b.detached)
	assert.Equal(t, 1, c.detached)
	assert.Empty(t, cam.Inputs().Inputs())

	cam.Inputs().Add(a)
	cam.AttachControl(false)
	cam.Inputs().Clear()
	assert.Empty(t, cam.Inputs().Inputs())
	assert.False(t, cam.Inputs().Attached())
}

func TestCameraUpdateChecksInputsEachFrame(t *testing.T) {
	cam := NewArcRotateCamera("arc", event.NewHub())
	in := &recordingInput{class: "A", simple: "a"}
	cam.Inputs().Add(in)

	cam.Update()
	cam.Update()
	assert.Equal(t, 2, in.checks)
}
