package phone

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone3d/internal/scene"
)

func projectorFixture() (*Rig, *scene.Camera, Projector) {
	rig := BuildRig(Dimensions{Width: 220, Height: 400, Depth: 15, BodyRadius: 40, ScreenRadius: 20, ScreenDepth: 20})
	cam := scene.NewPerspectiveCamera(45, 800.0/600.0, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 650}
	cam.LookAt(mgl64.Vec3{})
	sw, sh := rig.ScreenSize()
	return rig, cam, Projector{ScreenWidth: sw, ScreenHeight: sh, Threshold: 0.2}
}

func TestProjector_Frontal(t *testing.T) {
	rig, cam, pr := projectorFixture()
	p := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 1)

	assert.InDelta(t, 400, p.X, 1e-6)
	assert.InDelta(t, 300, p.Y, 1e-6)
	assert.InDelta(t, 1, p.Facing, 1e-12)
	assert.InDelta(t, 1, p.Opacity, 1e-12)
	assert.True(t, p.Visible)

	// Pixels per unit at the face depth (650 - 16.5).
	perUnit := 300 / (math.Tan(mgl64.DegToRad(22.5)) * (650 - 16.5))
	assert.InDelta(t, 198*perUnit, p.Width, 1e-6)
	assert.InDelta(t, 340*perUnit, p.Height, 1e-6)
}

func TestProjector_ZoomShrinks(t *testing.T) {
	rig, cam, pr := projectorFixture()
	base := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 1)
	zoomed := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 2)
	assert.InDelta(t, base.Width/2, zoomed.Width, 1e-9)
	assert.InDelta(t, base.Height/2, zoomed.Height, 1e-9)
}

func TestProjector_Visibility(t *testing.T) {
	rig, cam, pr := projectorFixture()
	for yaw := -math.Pi; yaw <= math.Pi; yaw += math.Pi / 90 {
		for _, pitch := range []float64{-1.2, -0.4, 0, 0.7, 1.5} {
			rig.SetOrientation(Orientation{Pitch: pitch, Yaw: yaw})
			p := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 1)
			require.GreaterOrEqual(t, p.Facing, 0.0)
			require.LessOrEqual(t, p.Facing, 1.0+1e-12)
			if p.Facing < 0.2 {
				require.Zero(t, p.Opacity, "pitch=%v yaw=%v", pitch, yaw)
				require.False(t, p.Visible)
			} else {
				require.InDelta(t, p.Facing, p.Opacity, 1e-12)
			}
		}
	}
}

func TestProjector_EdgeOn(t *testing.T) {
	rig, cam, pr := projectorFixture()
	rig.SetOrientation(Orientation{Yaw: math.Pi / 2})
	p := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 1)
	assert.Zero(t, p.Opacity)
	assert.False(t, p.Visible)
}

func TestProjector_MirrorsOrientation(t *testing.T) {
	rig, cam, pr := projectorFixture()
	rig.SetOrientation(Orientation{Pitch: 0.3, Yaw: -0.4})
	p := pr.Project(rig.Screen, rig.Group, rig.ScreenFaceCenter(), cam, 800, 600, 1)
	assert.InDelta(t, 0.3, p.Pitch, 1e-9)
	assert.InDelta(t, -0.4, p.Yaw, 1e-9)
	assert.InDelta(t, 0, p.Roll, 1e-9)
	assert.InDelta(t, math.Cos(0.4), p.Facing, 1e-9)
}

func TestPlacement_Corners(t *testing.T) {
	p := Placement{X: 100, Y: 50, Width: 40, Height: 20}
	c := p.Corners()
	assert.Equal(t, [4]Point{{80, 40}, {120, 40}, {120, 60}, {80, 60}}, c)

	p.Roll = math.Pi / 2
	c = p.Corners()
	assert.InDelta(t, 110, c[0].X, 1e-9)
	assert.InDelta(t, 30, c[0].Y, 1e-9)

	// Yaw foreshortens horizontally.
	p.Roll = 0
	p.Yaw = math.Pi / 3
	c = p.Corners()
	assert.InDelta(t, 20, c[1].X-c[0].X, 1e-9)
}
