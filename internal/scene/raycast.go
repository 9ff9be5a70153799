package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intersection is one ray hit, ordered by Distance.
type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Node     *Node
}

// Raycaster picks nodes under a screen point.
type Raycaster struct {
	Ray  Ray
	Near float64
	Far  float64
}

// NewRaycaster returns a raycaster with an unbounded range.
func NewRaycaster() *Raycaster {
	return &Raycaster{Far: math.Inf(1)}
}

// SetFromCamera aims the ray from the camera through the NDC point.
func (rc *Raycaster) SetFromCamera(ndcX, ndcY float64, cam *Camera) {
	origin := cam.Position
	target := cam.Unproject(mgl64.Vec3{ndcX, ndcY, 0.5})
	dir := target.Sub(origin)
	if dir.Len() == 0 {
		dir = cam.Target.Sub(origin)
	}
	rc.Ray = Ray{Origin: origin, Direction: dir.Normalize()}
}

// IntersectObjects tests the ray against each node's mesh bounds, taken in the
// node's local frame, and returns the hits nearest first.
func (rc *Raycaster) IntersectObjects(nodes []*Node) []Intersection {
	var hits []Intersection
	for _, n := range nodes {
		if n == nil || n.Mesh == nil || n.Hidden {
			continue
		}
		world := n.WorldMatrix()
		inv := world.Inv()
		local := Ray{
			Origin:    inv.Mul4x1(rc.Ray.Origin.Vec4(1)).Vec3(),
			Direction: inv.Mul4x1(rc.Ray.Direction.Vec4(0)).Vec3(),
		}
		t, ok := IntersectBox(local, n.Mesh.Bounds)
		if !ok {
			continue
		}
		point := world.Mul4x1(local.At(t).Vec4(1)).Vec3()
		dist := point.Sub(rc.Ray.Origin).Len()
		if dist < rc.Near || dist > rc.Far {
			continue
		}
		hits = append(hits, Intersection{Distance: dist, Point: point, Node: n})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// IntersectBox returns the ray parameter of the first point on box along ray.
// When the origin is inside the box the exit point is returned.
func IntersectBox(ray Ray, box Box3) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for i := 0; i < 3; i++ {
		o, d := ray.Origin[i], ray.Direction[i]
		if math.Abs(d) < 1e-12 {
			if o < box.Min[i] || o > box.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[i] - o) / d
		t2 := (box.Max[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
