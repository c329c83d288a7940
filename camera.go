package skyline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera is the perspective projector renderers use to map world space to
// the screen. The eye sits at (X, Y, 0) looking down +Z.
type Camera struct {
	// X is the lateral eye position; Y is the eye height above the ground.
	X, Y float64
	// Focal is the focal length in pixels. Larger values narrow the view.
	Focal float64
	// Horizon is the vertical position of the vanishing point as a fraction
	// of the viewport height.
	Horizon float64
	// Near is the closest depth that still projects.
	Near float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	// pan tweens X; nil when idle.
	pan *gween.Tween
}

// NewCamera creates a camera with default optics for the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Y:        60,
		Focal:    viewport.Width * 0.75,
		Horizon:  0.62,
		Near:     1,
		Viewport: viewport,
	}
}

// Resize changes the viewport and rescales the focal length to keep the same
// field of view.
func (c *Camera) Resize(width, height float64) {
	if c.Viewport.Width > 0 {
		c.Focal *= width / c.Viewport.Width
	}
	c.Viewport.Width, c.Viewport.Height = width, height
}

// PanTo animates the eye to the given lateral position over duration seconds.
func (c *Camera) PanTo(x float64, duration float32, easeFn ease.TweenFunc) {
	c.pan = gween.New(float32(c.X), float32(x), duration, easeFn)
}

// Panning reports whether a pan is in progress.
func (c *Camera) Panning() bool {
	return c.pan != nil
}

// Update advances any active pan.
func (c *Camera) Update(dt float32) {
	if c.pan == nil {
		return
	}
	val, done := c.pan.Update(dt)
	c.X = float64(val)
	if done {
		c.pan = nil
	}
}

// Project maps a world point to screen coordinates. scale is the number of
// pixels one world unit covers at that depth. ok is false for points at or
// behind the near plane.
func (c *Camera) Project(v Vec3) (sx, sy, scale float64, ok bool) {
	if v.Z < c.Near {
		return 0, 0, 0, false
	}
	scale = c.Focal / v.Z
	sx = c.Viewport.X + c.Viewport.Width/2 + (v.X-c.X)*scale
	sy = c.HorizonY() - (v.Y-c.Y)*scale
	return sx, sy, scale, true
}

// HorizonY returns the screen Y of the vanishing point.
func (c *Camera) HorizonY() float64 {
	return c.Viewport.Y + c.Viewport.Height*c.Horizon
}

// Distance returns the depth of a world point from the eye, the quantity
// LOD thresholds are expressed in.
func (c *Camera) Distance(v Vec3) float64 {
	return v.Z
}
