package camera

// Lens groups the projection settings shared by every camera kind.
// Zero fields keep the camera's defaults.
type Lens struct {
	// Mode selects perspective or orthographic projection.
	Mode ProjectionMode
	// Fov is the vertical field of view in radians.
	Fov float32
	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32
	// Near and Far are the clipping plane distances.
	Near, Far float32
	// Inertia is the per-frame decay of the inertial accumulators.
	Inertia float32
}

func (l Lens) apply(c *cameraBase) {
	c.mode = l.Mode
	if l.Fov > 0 {
		c.fov = l.Fov
	}
	if l.Aspect > 0 {
		c.aspect = l.Aspect
	}
	if l.Near > 0 {
		c.near = l.Near
	}
	if l.Far > 0 {
		c.far = l.Far
	}
	if l.Inertia > 0 {
		c.inertia = l.Inertia
	}
}
