package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	projection mgl64.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
	}
	c.UpdateProjection()
	return c
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target mgl64.Vec3) { c.Target = target }

// SetAspect changes the aspect ratio and recomputes the projection.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 {
		return
	}
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection recomputes the projection matrix from FOV/Aspect/Near/Far.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.View())
}

// Project maps a world point to normalized device coordinates.
func (c *Camera) Project(p mgl64.Vec3) mgl64.Vec3 {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip[3] == 0 {
		return mgl64.Vec3{}
	}
	return clip.Vec3().Mul(1 / clip[3])
}

// Unproject maps normalized device coordinates back to a world point.
func (c *Camera) Unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	inv := c.ViewProjection().Inv()
	v := inv.Mul4x1(ndc.Vec4(1))
	if v[3] == 0 {
		return mgl64.Vec3{}
	}
	return v.Vec3().Mul(1 / v[3])
}

// NDCToPixels converts NDC x/y to pixel coordinates with the origin top-left.
func NDCToPixels(ndcX, ndcY float64, width, height int) (x, y float64) {
	x = (ndcX*0.5 + 0.5) * float64(width)
	y = (-ndcY*0.5 + 0.5) * float64(height)
	return x, y
}

// PixelsToNDC converts pixel coordinates (origin top-left) to NDC, y up.
func PixelsToNDC(x, y float64, width, height int) (ndcX, ndcY float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	ndcX = x/float64(width)*2 - 1
	ndcY = -(y/float64(height))*2 + 1
	return ndcX, ndcY
}
