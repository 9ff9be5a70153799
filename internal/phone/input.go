package phone

import "phone3d/internal/scene"

// Point is a pointer position in viewport pixels.
type Point struct {
	X, Y float64
}

// InputState is the gesture state shared by the router and the momentum step.
type InputState struct {
	Dragging          bool
	ButtonInteraction bool
	Last              Point
	Velocity          Velocity
}

// Picker resolves a normalized device coordinate to the button under it.
type Picker interface {
	Pick(ndcX, ndcY float64) (Control, bool)
}

// Actions receives button presses found by the router.
type Actions interface {
	Press(c Control)
}

// Router turns pointer and touch events into button presses or rotation
// drags. A gesture that starts on a button never rotates the phone.
type Router struct {
	State       InputState
	Sensitivity float64

	picker   Picker
	actions  Actions
	viewport func() (int, int)
}

// NewRouter wires a router to its collaborators. viewport reports the
// current drawable size in the same pixel space as incoming events.
func NewRouter(picker Picker, actions Actions, viewport func() (int, int), sensitivity float64) *Router {
	return &Router{
		Sensitivity: sensitivity,
		picker:      picker,
		actions:     actions,
		viewport:    viewport,
	}
}

// pressAt hit-tests p and dispatches a press. It reports whether a button
// was hit.
func (r *Router) pressAt(p Point) bool {
	if r.picker == nil {
		return false
	}
	w, h := r.viewport()
	if w <= 0 || h <= 0 {
		return false
	}
	nx, ny := scene.PixelsToNDC(p.X, p.Y, w, h)
	c, ok := r.picker.Pick(nx, ny)
	if !ok {
		return false
	}
	r.State.ButtonInteraction = true
	if r.actions != nil {
		r.actions.Press(c)
	}
	return true
}

func (r *Router) drag(p Point) {
	dx := p.X - r.State.Last.X
	dy := p.Y - r.State.Last.Y
	r.State.Velocity.Yaw += dx * r.Sensitivity
	r.State.Velocity.Pitch += dy * r.Sensitivity
	r.State.Last = p
}

// PointerDown starts a gesture. It reports whether a button consumed it.
func (r *Router) PointerDown(x, y float64) bool {
	p := Point{X: x, Y: y}
	if r.pressAt(p) {
		return true
	}
	r.State.Dragging = true
	r.State.Last = p
	return false
}

func (r *Router) PointerMove(x, y float64) {
	if r.State.ButtonInteraction || !r.State.Dragging {
		return
	}
	r.drag(Point{X: x, Y: y})
}

func (r *Router) PointerUp() {
	r.State.Dragging = false
	r.State.ButtonInteraction = false
}

// TouchStart handles a new touch list. Only the first contact is tested
// against the buttons, and only single-finger gestures drag.
func (r *Router) TouchStart(touches []Point) bool {
	if len(touches) == 0 {
		return false
	}
	if r.pressAt(touches[0]) {
		return true
	}
	if len(touches) == 1 {
		r.State.Dragging = true
		r.State.Last = touches[0]
	}
	return false
}

func (r *Router) TouchMove(touches []Point) {
	if r.State.ButtonInteraction || !r.State.Dragging || len(touches) != 1 {
		return
	}
	r.drag(touches[0])
}

func (r *Router) TouchEnd() {
	r.PointerUp()
}
