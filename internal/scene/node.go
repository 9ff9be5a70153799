package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler is an XYZ-order rotation in radians.
type Euler struct {
	X, Y, Z float64
}

// Matrix returns Rx * Ry * Rz.
func (e Euler) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(e.X).Mul4(mgl64.HomogRotate3DY(e.Y)).Mul4(mgl64.HomogRotate3DZ(e.Z))
}

// EulerFromMatrix decomposes the rotation part of m into XYZ Euler angles.
func EulerFromMatrix(m mgl64.Mat4) Euler {
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	var e Euler
	e.Y = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		e.X = math.Atan2(m32, m22)
		e.Z = 0
	}
	return e
}

// Material is a Phong surface description.
type Material struct {
	Color     RGB
	Specular  RGB
	Emissive  RGB
	Shininess float64
}

// PointLight emits from its node's world position with linear falloff to Range.
type PointLight struct {
	Color     RGB
	Intensity float64
	Range     float64
}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     RGB
	Intensity float64
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     RGB
	Intensity float64
	Position  mgl64.Vec3
}

// Node is a scene graph element: a group, a mesh, or a light holder.
type Node struct {
	Name     string
	Tag      string
	Position mgl64.Vec3
	Rotation Euler
	Mesh     *Mesh
	Material *Material
	Light    *PointLight
	Hidden   bool

	parent   *Node
	children []*Node
}

// NewGroup returns an empty node used only to carry children.
func NewGroup(name string) *Node {
	return &Node{Name: name}
}

// NewMeshNode returns a node drawing mesh with mat.
func NewMeshNode(name string, mesh *Mesh, mat *Material) *Node {
	return &Node{Name: name, Mesh: mesh, Material: mat}
}

// NewLightNode returns a node carrying a point light.
func NewLightNode(name string, light *PointLight) *Node {
	return &Node{Name: name, Light: light}
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// LocalMatrix returns T * R for this node.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2]).Mul4(n.Rotation.Matrix())
}

// WorldMatrix composes local matrices from the root down to n.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldRotation returns the node's world orientation as XYZ Euler angles.
func (n *Node) WorldRotation() Euler {
	return EulerFromMatrix(n.WorldMatrix())
}

// Walk visits n and its descendants depth-first, passing each world matrix.
func (n *Node) Walk(fn func(node *Node, world mgl64.Mat4)) {
	var visit func(node *Node, parent mgl64.Mat4)
	visit = func(node *Node, parent mgl64.Mat4) {
		world := parent.Mul4(node.LocalMatrix())
		fn(node, world)
		for _, c := range node.children {
			visit(c, world)
		}
	}
	parent := mgl64.Ident4()
	if n.parent != nil {
		parent = n.parent.WorldMatrix()
	}
	visit(n, parent)
}

// Scene is the root of everything drawn in a frame.
type Scene struct {
	Root        *Node
	Ambient     AmbientLight
	Directional []DirectionalLight
}

// NewScene returns a scene with the stock three-light setup.
func NewScene() *Scene {
	return &Scene{
		Root:    NewGroup("root"),
		Ambient: AmbientLight{Color: Palette.Ambient, Intensity: 2},
		Directional: []DirectionalLight{
			{Color: Palette.KeyLight, Intensity: 1, Position: mgl64.Vec3{1, 1, 1}},
			{Color: Palette.FillLight, Intensity: 0.5, Position: mgl64.Vec3{-1, 0.5, -1}},
		},
	}
}

// Add attaches a node to the scene root.
func (s *Scene) Add(n *Node) { s.Root.Add(n) }
