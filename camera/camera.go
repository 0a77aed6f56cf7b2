// Package camera provides the fixed perspective camera the snow is viewed through.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera on the +z axis looking at the origin.
type Camera struct {
	// Eye position and look-at target in world coordinates
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	// Vertical field of view in degrees
	FovY float64

	// Clip planes
	Near, Far float64

	// Viewport dimensions (screen size in pixels)
	ViewportW, ViewportH float64

	view     mgl64.Mat4
	viewProj mgl64.Mat4
}

// New creates a camera at (0, 0, distance) looking at the origin.
func New(fovY, distance, near, far, viewportW, viewportH float64) *Camera {
	c := &Camera{
		Position:  mgl64.Vec3{0, 0, distance},
		Target:    mgl64.Vec3{0, 0, 0},
		Up:        mgl64.Vec3{0, 1, 0},
		FovY:      fovY,
		Near:      near,
		Far:       far,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
	c.update()
	return c
}

// update recomputes the cached matrices.
func (c *Camera) update() {
	aspect := c.ViewportW / c.ViewportH
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.viewProj = proj.Mul4(c.view)
}

// WorldToScreen projects a world point to screen pixels (origin top-left).
// depth is the distance along the view axis. ok is false for points outside
// the near/far range.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	depth = -c.view.Mul4x1(p.Vec4(1)).Z()
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	clip := c.viewProj.Mul4x1(p.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()

	sx = (ndcX + 1) / 2 * c.ViewportW
	sy = (1 - ndcY) / 2 * c.ViewportH
	return sx, sy, depth, true
}

// PointSize returns the on-screen size in pixels of a point sprite with the
// given world size at the given view depth (size attenuation).
func (c *Camera) PointSize(worldSize, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return worldSize * (c.ViewportH / 2) / depth
}

// HalfHeightAt returns the half height of the visible area at the given depth.
func (c *Camera) HalfHeightAt(depth float64) float64 {
	return depth * math.Tan(mgl64.DegToRad(c.FovY)/2)
}
