package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Extrusion bevel settings shared by every rounded slab.
const (
	BevelSegments  = 2
	BevelSize      = 1.0
	BevelThickness = 1.0
	CurveSegments  = 12
)

// RoundedRectOutline returns the outline of a width x height rectangle centred
// on the origin with quarter-round corners of the given radius, as a
// counter-clockwise polygon. Each corner is a quadratic curve sampled with
// segments points.
func RoundedRectOutline(width, height, radius float64, segments int) []mgl64.Vec2 {
	x := -width / 2
	y := -height / 2
	if segments < 1 {
		segments = 1
	}

	pts := []mgl64.Vec2{{x, y + radius}}
	lineTo := func(px, py float64) {
		pts = append(pts, mgl64.Vec2{px, py})
	}
	quadTo := func(cx, cy, px, py float64) {
		p0 := pts[len(pts)-1]
		c := mgl64.Vec2{cx, cy}
		p1 := mgl64.Vec2{px, py}
		for i := 1; i <= segments; i++ {
			t := float64(i) / float64(segments)
			u := 1 - t
			p := p0.Mul(u * u).Add(c.Mul(2 * u * t)).Add(p1.Mul(t * t))
			pts = append(pts, p)
		}
	}

	lineTo(x, y+height-radius)
	quadTo(x, y+height, x+radius, y+height)
	lineTo(x+width-radius, y+height)
	quadTo(x+width, y+height, x+width, y+height-radius)
	lineTo(x+width, y+radius)
	quadTo(x+width, y, x+width-radius, y)
	lineTo(x+radius, y)
	quadTo(x, y, x, y+radius)

	// Drop repeated points (zero radius, closing point).
	out := make([]mgl64.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].ApproxEqualThreshold(p, 1e-9) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].ApproxEqualThreshold(out[len(out)-1], 1e-9) {
		out = out[:len(out)-1]
	}

	// The path above runs clockwise; flip it.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// outlineNormals returns the outward bevel direction at each vertex of a
// counter-clockwise polygon: the bisector of the two adjacent edge normals,
// lengthened as a miter so both edges move out by exactly one unit.
func outlineNormals(pts []mgl64.Vec2) []mgl64.Vec2 {
	n := len(pts)
	normals := make([]mgl64.Vec2, n)
	edgeNormal := func(a, b mgl64.Vec2) mgl64.Vec2 {
		d := b.Sub(a)
		l := d.Len()
		if l == 0 {
			return mgl64.Vec2{}
		}
		return mgl64.Vec2{d[1] / l, -d[0] / l}
	}
	for i := range pts {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		in := edgeNormal(prev, pts[i])
		sum := in.Add(edgeNormal(pts[i], next))
		if l := sum.Len(); l > 0 {
			sum = sum.Mul(1 / l)
		}
		if d := sum.Dot(in); d > 1e-6 {
			sum = sum.Mul(1 / d)
		}
		normals[i] = sum
	}
	return normals
}

// BuildRoundedSlab extrudes a rounded rectangle along +Z from 0 to depth and
// bevels both caps. The caller keeps radius <= min(width, height)/2.
func BuildRoundedSlab(width, height, depth, radius float64) *Mesh {
	outline := RoundedRectOutline(width, height, radius, CurveSegments)
	normals := outlineNormals(outline)

	type ring struct {
		z, grow float64
	}
	var rings []ring
	for b := 0; b < BevelSegments; b++ {
		t := float64(b) / BevelSegments
		rings = append(rings, ring{
			z:    -BevelThickness * math.Cos(t*math.Pi/2),
			grow: BevelSize * math.Sin(t*math.Pi/2),
		})
	}
	rings = append(rings, ring{z: 0, grow: BevelSize}, ring{z: depth, grow: BevelSize})
	for b := BevelSegments - 1; b >= 0; b-- {
		t := float64(b) / BevelSegments
		rings = append(rings, ring{
			z:    depth + BevelThickness*math.Cos(t*math.Pi/2),
			grow: BevelSize * math.Sin(t*math.Pi/2),
		})
	}

	n := len(outline)
	vert := func(r ring, i int) mgl64.Vec3 {
		p := outline[i].Add(normals[i].Mul(r.grow))
		return mgl64.Vec3{p[0], p[1], r.z}
	}

	m := newMesh(2*(n-2) + 2*n*(len(rings)-1))

	front, back := rings[0], rings[len(rings)-1]
	for i := 1; i < n-1; i++ {
		m.addTriangle(vert(front, 0), vert(front, i+1), vert(front, i))
		m.addTriangle(vert(back, 0), vert(back, i), vert(back, i+1))
	}

	for r := 0; r < len(rings)-1; r++ {
		lo, hi := rings[r], rings[r+1]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			m.addQuad(vert(lo, i), vert(lo, j), vert(hi, j), vert(hi, i))
		}
	}
	return m
}

// BuildBox returns a box of the given size centred on the origin.
func BuildBox(width, height, depth float64) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	c := func(sx, sy, sz float64) mgl64.Vec3 { return mgl64.Vec3{sx * hx, sy * hy, sz * hz} }

	m := newMesh(12)
	m.addQuad(c(-1, -1, 1), c(1, -1, 1), c(1, 1, 1), c(-1, 1, 1))     // +z
	m.addQuad(c(1, -1, -1), c(-1, -1, -1), c(-1, 1, -1), c(1, 1, -1)) // -z
	m.addQuad(c(1, -1, 1), c(1, -1, -1), c(1, 1, -1), c(1, 1, 1))     // +x
	m.addQuad(c(-1, -1, -1), c(-1, -1, 1), c(-1, 1, 1), c(-1, 1, -1)) // -x
	m.addQuad(c(-1, 1, 1), c(1, 1, 1), c(1, 1, -1), c(-1, 1, -1))     // +y
	m.addQuad(c(-1, -1, -1), c(1, -1, -1), c(1, -1, 1), c(-1, -1, 1)) // -y
	return m
}
