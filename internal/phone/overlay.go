package phone

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"phone3d/internal/scene"
)

// Placement positions the 2D screen layer over the phone's display face.
// X and Y are the centre in viewport pixels (Y down); the angles follow the
// rig's orientation.
type Placement struct {
	X, Y          float64
	Width, Height float64
	Pitch         float64
	Yaw           float64
	Roll          float64
	Facing        float64
	Opacity       float64
	Visible       bool
}

// Corners returns the layer's corners in viewport pixels after rotation
// about its centre: top-left, top-right, bottom-right, bottom-left. The
// rotation is applied as X(-pitch), then Y(yaw), then Z(roll), orthographically.
func (p Placement) Corners() [4]Point {
	rot := mgl64.Rotate3DX(-p.Pitch).Mul3(mgl64.Rotate3DY(p.Yaw)).Mul3(mgl64.Rotate3DZ(p.Roll))
	hw, hh := p.Width/2, p.Height/2
	local := [4]mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	var out [4]Point
	for i, c := range local {
		v := rot.Mul3x1(c)
		out[i] = Point{X: p.X + v[0], Y: p.Y + v[1]}
	}
	return out
}

// Projector computes where the screen layer goes each frame.
type Projector struct {
	// ScreenWidth and ScreenHeight are the display panel size in world units.
	ScreenWidth  float64
	ScreenHeight float64
	// Threshold hides the layer once the face turns further than this
	// fraction away from the viewer.
	Threshold float64
}

// Project places the layer for a panel node inside rig, seen through cam on
// a vw x vh viewport. face is the panel's front centre in the panel's local
// space. zoom divides the final size; pass 1 when the host has no separate
// viewport scaling.
func (pr Projector) Project(panel, rig *scene.Node, face mgl64.Vec3, cam *scene.Camera, vw, vh int, zoom float64) Placement {
	world := panel.WorldMatrix().Mul4x1(face.Vec4(1)).Vec3()
	ndc := cam.Project(world)
	x, y := scene.NDCToPixels(ndc[0], ndc[1], vw, vh)

	rot := rig.WorldRotation()
	facing := math.Abs(math.Cos(rot.Y))

	// Pixels per world unit at the panel's depth.
	clip := cam.ViewProjection().Mul4x1(world.Vec4(1))
	var sx, sy float64
	if clip[3] > 0 {
		proj := cam.Projection()
		sx = float64(vw) / 2 * proj.At(0, 0) / clip[3]
		sy = float64(vh) / 2 * proj.At(1, 1) / clip[3]
	}
	if zoom <= 0 {
		zoom = 1
	}

	p := Placement{
		X:       x,
		Y:       y,
		Width:   pr.ScreenWidth * sx * facing / zoom,
		Height:  pr.ScreenHeight * sy * facing / zoom,
		Pitch:   rot.X,
		Yaw:     rot.Y,
		Roll:    rot.Z,
		Facing:  facing,
		Opacity: facing,
	}
	if facing < pr.Threshold || clip[3] <= 0 {
		p.Opacity = 0
	}
	p.Visible = p.Opacity > 0
	return p
}
