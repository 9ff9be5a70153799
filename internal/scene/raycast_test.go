package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectBox(t *testing.T) {
	box := Box3{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}
	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float64
	}{
		{"head-on", Ray{mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}}, true, 9},
		{"miss parallel", Ray{mgl64.Vec3{5, 0, 10}, mgl64.Vec3{0, 0, -1}}, false, 0},
		{"pointing away", Ray{mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}}, false, 0},
		{"inside", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}}, true, 1},
		{"grazing edge", Ray{mgl64.Vec3{1, 0, 10}, mgl64.Vec3{0, 0, -1}}, true, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectBox(tt.ray, box)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.InDelta(t, tt.wantT, got, 1e-9)
			}
		})
	}
}

func TestRaycaster_NearestFirst(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 650}
	cam.LookAt(mgl64.Vec3{})

	far := NewMeshNode("far", BuildBox(10, 10, 10), &Material{})
	near := NewMeshNode("near", BuildBox(10, 10, 10), &Material{})
	near.Position = mgl64.Vec3{0, 0, 100}
	off := NewMeshNode("off", BuildBox(10, 10, 10), &Material{})
	off.Position = mgl64.Vec3{200, 0, 0}

	rc := NewRaycaster()
	rc.SetFromCamera(0, 0, cam)
	hits := rc.IntersectObjects([]*Node{far, off, near})

	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Node)
	assert.InDelta(t, 545, hits[0].Distance, 1e-6)
	assert.Same(t, far, hits[1].Node)
	assert.InDelta(t, 645, hits[1].Distance, 1e-6)
}

func TestRaycaster_RotatedParent(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 650}
	cam.LookAt(mgl64.Vec3{})

	group := NewGroup("group")
	child := NewMeshNode("child", BuildBox(4, 4, 4), &Material{})
	child.Position = mgl64.Vec3{50, 0, 0}
	group.Add(child)

	// A quarter turn about Y swings the child from +X to -Z.
	group.Rotation.Y = math.Pi / 2
	wp := child.WorldPosition()
	assert.InDelta(t, 0, wp[0], 1e-9)
	assert.InDelta(t, -50, wp[2], 1e-9)

	rc := NewRaycaster()
	ndc := cam.Project(wp)
	rc.SetFromCamera(ndc[0], ndc[1], cam)
	hits := rc.IntersectObjects([]*Node{child})
	require.Len(t, hits, 1)
	assert.InDelta(t, 698, hits[0].Distance, 1e-6)

	child.Hidden = true
	assert.Empty(t, rc.IntersectObjects([]*Node{child}))
}
