package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"phone3d/internal/phone"
)

// Input tracks key edges between frames.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ToFramebuffer converts a cursor position in window coordinates to
// framebuffer pixels, which differ on HiDPI displays.
func ToFramebuffer(cx, cy float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH)
}

// bindPointer forwards left-button and cursor events to the session's router.
func bindPointer(window *glfw.Window, router *phone.Router) {
	cursor := func() (float64, float64) {
		cx, cy := window.GetCursorPos()
		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		return ToFramebuffer(cx, cy, winW, winH, fbW, fbH)
	}
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			router.PointerDown(cursor())
		case glfw.Release:
			router.PointerUp()
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		router.PointerMove(ToFramebuffer(x, y, winW, winH, fbW, fbH))
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			router.PointerUp()
		}
	})
}

// Pending latches a one-shot request, such as a screenshot, until a drawn
// frame consumes it. Key edges arrive on every loop pass but frames do not.
type Pending struct {
	requested bool
}

func (p *Pending) Request() { p.requested = true }

// Take reports whether a request was waiting and clears it.
func (p *Pending) Take() bool {
	was := p.requested
	p.requested = false
	return was
}
