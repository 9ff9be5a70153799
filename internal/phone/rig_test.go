package phone

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone3d/internal/scene"
)

func testRig() *Rig {
	return BuildRig(Dimensions{Width: 220, Height: 400, Depth: 15, BodyRadius: 40, ScreenRadius: 20, ScreenDepth: 20})
}

func TestBuildRig_Layout(t *testing.T) {
	r := testRig()

	assert.Len(t, r.Group.Children(), 6)
	for _, child := range r.Group.Children() {
		assert.Same(t, r.Group, child.Parent())
	}

	assert.Equal(t, mgl64.Vec3{0, 0, 8}, r.Screen.Position)
	assert.Equal(t, mgl64.Vec3{0, 0, 57.5}, r.ScreenLight.Position)
	assert.Zero(t, r.ScreenLight.Light.Intensity)
	assert.Equal(t, scene.Palette.EmissiveOff, r.Screen.Material.Emissive)

	w, h := r.ScreenSize()
	assert.InDelta(t, 198, w, 1e-9)
	assert.InDelta(t, 340, h, 1e-9)
}

func TestBuildRig_Buttons(t *testing.T) {
	r := testRig()
	tests := []struct {
		control Control
		tag     string
		pos     mgl64.Vec3
		height  float64
	}{
		{ControlPower, "power", mgl64.Vec3{112.5, 0, 0}, 40},
		{ControlVolumeUp, "volUp", mgl64.Vec3{-112.5, 50, 0}, 30},
		{ControlVolumeDown, "volDown", mgl64.Vec3{-112.5, 0, 0}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			b := r.Button(tt.control)
			require.NotNil(t, b)
			assert.Equal(t, tt.tag, b.Node.Tag)
			assert.Equal(t, tt.tag, tt.control.String())
			assert.Equal(t, tt.pos, b.Node.Position)
			size := b.Node.Mesh.Bounds.Size()
			assert.InDelta(t, 5, size.X(), 1e-9)
			assert.InDelta(t, tt.height, size.Y(), 1e-9)
			assert.InDelta(t, 8, size.Z(), 1e-9)

			c, ok := ParseControl(tt.tag)
			assert.True(t, ok)
			assert.Equal(t, tt.control, c)
		})
	}
	assert.Len(t, r.ButtonNodes(), 3)
	_, ok := ParseControl("home")
	assert.False(t, ok)
}

func TestRig_ButtonMaterialsAreIndependent(t *testing.T) {
	r := testRig()
	r.SetButtonColor(ControlVolumeUp, scene.Palette.ButtonPressed)

	assert.Equal(t, scene.Palette.ButtonPressed, r.Button(ControlVolumeUp).Node.Material.Color)
	assert.Equal(t, scene.Palette.Button, r.Button(ControlVolumeDown).Node.Material.Color)
	assert.Equal(t, scene.Palette.Button, r.Button(ControlPower).Node.Material.Color)
}

func TestRig_OrientationMovesAllParts(t *testing.T) {
	r := testRig()
	r.SetOrientation(Orientation{Yaw: 0.5, Pitch: -0.2})
	assert.Equal(t, Orientation{Pitch: -0.2, Yaw: 0.5}, r.Orientation())

	for _, n := range append(r.ButtonNodes(), r.Screen, r.Body) {
		rot := n.WorldRotation()
		assert.InDelta(t, -0.2, rot.X, 1e-9, n.Name)
		assert.InDelta(t, 0.5, rot.Y, 1e-9, n.Name)
	}
}
