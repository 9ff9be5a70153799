package phone

import (
	"github.com/go-gl/mathgl/mgl64"

	"phone3d/internal/scene"
)

// Control identifies one of the phone's physical buttons.
type Control int

const (
	ControlPower Control = iota
	ControlVolumeUp
	ControlVolumeDown
)

var controlNames = [...]string{"power", "volUp", "volDown"}

// Controls lists every button in a stable order.
var Controls = []Control{ControlPower, ControlVolumeUp, ControlVolumeDown}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return "unknown"
	}
	return controlNames[c]
}

// ParseControl maps a button tag back to its Control.
func ParseControl(tag string) (Control, bool) {
	for i, n := range controlNames {
		if n == tag {
			return Control(i), true
		}
	}
	return 0, false
}

// ButtonControl is a clickable button mesh plus the colour it returns to
// after press feedback.
type ButtonControl struct {
	Control   Control
	Node      *scene.Node
	BaseColor scene.RGB
}

// Dimensions describe the phone body in world units.
type Dimensions struct {
	Width        float64
	Height       float64
	Depth        float64
	BodyRadius   float64
	ScreenRadius float64
	ScreenDepth  float64
}

// Orientation is the rig's pitch (about X) and yaw (about Y) in radians.
type Orientation struct {
	Pitch, Yaw float64
}

// Rig is the phone's node hierarchy. Every part hangs off Group so a single
// rotation moves the body, screen, light and buttons together.
type Rig struct {
	Group       *scene.Node
	Body        *scene.Node
	Screen      *scene.Node
	ScreenLight *scene.Node

	buttons [3]*ButtonControl
	dims    Dimensions
}

// BuildRig assembles the phone from dims.
func BuildRig(dims Dimensions) *Rig {
	r := &Rig{Group: scene.NewGroup("phone"), dims: dims}

	r.Body = scene.NewMeshNode("body",
		scene.BuildRoundedSlab(dims.Width, dims.Height, dims.Depth, dims.BodyRadius),
		&scene.Material{
			Color:     scene.Palette.Body,
			Specular:  scene.Palette.BodySpecular,
			Shininess: 100,
		})
	r.Group.Add(r.Body)

	sw, sh := r.ScreenSize()
	r.Screen = scene.NewMeshNode("screen",
		scene.BuildRoundedSlab(sw, sh, dims.ScreenDepth, dims.ScreenRadius),
		&scene.Material{
			Color:     scene.Palette.Screen,
			Specular:  scene.Palette.ScreenSpec,
			Emissive:  scene.Palette.EmissiveOff,
			Shininess: 50,
		})
	r.Screen.Position = mgl64.Vec3{0, 0, dims.Depth/2 + 0.5}
	r.Group.Add(r.Screen)

	r.ScreenLight = scene.NewLightNode("screenLight", &scene.PointLight{
		Color:     scene.Palette.ScreenGlow,
		Intensity: 0,
		Range:     500,
	})
	r.ScreenLight.Position = mgl64.Vec3{0, 0, dims.Depth/2 + 50}
	r.Group.Add(r.ScreenLight)

	side := dims.Width/2 + 2.5
	r.addButton(ControlPower, 5, 40, 8, mgl64.Vec3{side, 0, 0})
	r.addButton(ControlVolumeUp, 5, 30, 8, mgl64.Vec3{-side, 50, 0})
	r.addButton(ControlVolumeDown, 5, 30, 8, mgl64.Vec3{-side, 0, 0})
	return r
}

func (r *Rig) addButton(c Control, w, h, d float64, pos mgl64.Vec3) {
	mat := &scene.Material{
		Color:     scene.Palette.Button,
		Specular:  scene.Palette.ButtonSpec,
		Shininess: 30,
	}
	n := scene.NewMeshNode(c.String()+"Button", scene.BuildBox(w, h, d), mat)
	n.Tag = c.String()
	n.Position = pos
	r.Group.Add(n)
	r.buttons[c] = &ButtonControl{Control: c, Node: n, BaseColor: mat.Color}
}

// Dimensions returns the measurements the rig was built from.
func (r *Rig) Dimensions() Dimensions { return r.dims }

// ScreenSize is the display panel's width and height in world units.
func (r *Rig) ScreenSize() (w, h float64) {
	return r.dims.Width * 0.9, r.dims.Height * 0.85
}

// Button returns the button for c.
func (r *Rig) Button(c Control) *ButtonControl { return r.buttons[c] }

// ButtonNodes returns the pickable button meshes.
func (r *Rig) ButtonNodes() []*scene.Node {
	out := make([]*scene.Node, 0, len(r.buttons))
	for _, b := range r.buttons {
		out = append(out, b.Node)
	}
	return out
}

func (r *Rig) Orientation() Orientation {
	return Orientation{Pitch: r.Group.Rotation.X, Yaw: r.Group.Rotation.Y}
}

func (r *Rig) SetOrientation(o Orientation) {
	r.Group.Rotation.X = o.Pitch
	r.Group.Rotation.Y = o.Yaw
}

// SetButtonColor recolours one button. Each button owns its material.
func (r *Rig) SetButtonColor(c Control, col scene.RGB) {
	r.buttons[c].Node.Material.Color = col
}

// SetScreenLighting sets the panel's emissive colour and the glow light.
func (r *Rig) SetScreenLighting(emissive scene.RGB, intensity float64) {
	r.Screen.Material.Emissive = emissive
	r.ScreenLight.Light.Intensity = intensity
}

// ScreenFaceCenter is the panel's front-face centre in the screen node's
// local space.
func (r *Rig) ScreenFaceCenter() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, r.dims.Depth/2 + 1}
}
