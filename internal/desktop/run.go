package desktop

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"phone3d/internal/audio"
	"phone3d/internal/config"
	"phone3d/internal/phone"
	"phone3d/internal/render"
)

// overlayScale is the content canvas resolution per world unit of screen.
const overlayScale = 2

// Run opens the window and drives the session until the window closes.
func Run(cfg *config.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	player, err := audio.New(cfg.Audio)
	if err != nil {
		slog.Warn("Audio init failed, continuing without sound", "error", err)
	}

	rend, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	sw := int(cfg.Phone.Width * 0.9 * overlayScale)
	sh := int(cfg.Phone.Height * 0.85 * overlayScale)
	layer := render.NewOverlayLayer(sw, sh)

	session := phone.NewSession(cfg, phone.SystemClock{}, layer, player)
	fbW, fbH := window.GetFramebufferSize()
	session.Resize(fbW, fbH)
	slog.Info("Session started", "session", session.ID)

	session.Events().Subscribe(phone.EventPowerChanged, func(e phone.Event) {
		slog.Info("Power changed", "state", e.State)
	})
	session.Events().Subscribe(phone.EventVolumeChanged, func(e phone.Event) {
		slog.Info("Volume changed", "volume", e.Volume, "max", e.MaxVol)
	})

	bindPointer(window, session.Input())
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		session.Resize(w, h)
	})
	window.SetContentScaleCallback(func(w *glfw.Window, _, _ float32) {
		session.Resize(w.GetFramebufferSize())
	})

	input := NewInput()
	var pending Pending
	for !window.ShouldClose() {
		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyP) {
			session.Press(phone.ControlPower)
		}
		if input.JustPressed(window, glfw.KeyUp) {
			session.Press(phone.ControlVolumeUp)
		}
		if input.JustPressed(window, glfw.KeyDown) {
			session.Press(phone.ControlVolumeDown)
		}
		if input.JustPressed(window, glfw.KeyR) {
			session.ResetOrientation()
		}
		if input.JustPressed(window, glfw.KeyF12) {
			pending.Request()
		}

		if !session.Tick() {
			time.Sleep(time.Millisecond)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.DrawScene(session.Scene, session.Camera, fbW, fbH)
		rend.DrawOverlay(layer, fbW, fbH)

		if pending.Take() {
			path, err := render.SaveWebP(cfg.Screenshot.Dir, render.Capture(fbW, fbH), time.Now())
			if err != nil {
				slog.Warn("Screenshot failed", "error", err)
			} else {
				slog.Info("Screenshot saved", "path", path)
			}
		}
		window.SwapBuffers()
	}
	return nil
}
