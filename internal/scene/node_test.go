package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestEulerRoundTrip(t *testing.T) {
	tests := []Euler{
		{},
		{X: 0.3, Y: -0.7, Z: 0.1},
		{X: -1.2, Y: 1.0},
		{X: math.Pi / 2 * 0.99, Y: 0.2, Z: -0.4},
	}
	for _, e := range tests {
		got := EulerFromMatrix(e.Matrix())
		assert.InDelta(t, e.X, got.X, 1e-9)
		assert.InDelta(t, e.Y, got.Y, 1e-9)
		assert.InDelta(t, e.Z, got.Z, 1e-9)
	}
}

func TestEulerFromMatrix_YawBeyondQuarterTurn(t *testing.T) {
	// |cos(yaw)| survives the decomposition even when yaw passes pi/2.
	for _, yaw := range []float64{2.0, -2.5, 3.0} {
		e := EulerFromMatrix(Euler{Y: yaw}.Matrix())
		assert.InDelta(t, math.Abs(math.Cos(yaw)), math.Abs(math.Cos(e.Y)), 1e-9)
	}
}

func TestNode_WorldMatrix(t *testing.T) {
	root := NewGroup("root")
	rig := NewGroup("rig")
	rig.Rotation = Euler{X: 0.4, Y: -0.3}
	root.Add(rig)
	screen := NewGroup("screen")
	screen.Position = mgl64.Vec3{0, 0, 8}
	rig.Add(screen)

	assert.Same(t, rig, screen.Parent())
	rot := screen.WorldRotation()
	assert.InDelta(t, 0.4, rot.X, 1e-9)
	assert.InDelta(t, -0.3, rot.Y, 1e-9)

	var names []string
	root.Walk(func(n *Node, _ mgl64.Mat4) { names = append(names, n.Name) })
	assert.Equal(t, []string{"root", "rig", "screen"}, names)
}

func TestNode_AddReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.Add(c)
	b.Add(c)
	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())
}

func TestHex(t *testing.T) {
	c := Hex(0x0088ff)
	assert.Equal(t, RGB{R: 0, G: 0x88, B: 0xff}, c)
	assert.Equal(t, uint32(0x0088ff), c.Hex())
}
