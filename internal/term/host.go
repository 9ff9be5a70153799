package term

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"phone3d/internal/audio"
	"phone3d/internal/config"
	"phone3d/internal/phone"
	"phone3d/internal/scene"
)

// overlay keeps the latest layer state for the next redraw.
type overlay struct {
	placement phone.Placement
	content   phone.Content
}

func (o *overlay) Place(p phone.Placement)    { o.placement = p }
func (o *overlay) SetContent(c phone.Content) { o.content = c }

// Host drives a session inside a terminal.
type Host struct {
	screen    tcell.Screen
	session   *phone.Session
	layer     *overlay
	cols      int
	rows      int
	mouseDown bool
}

// Run takes over the terminal until q or Esc is pressed.
func Run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	player, err := audio.New(cfg.Audio)
	if err != nil {
		slog.Warn("Audio init failed, continuing without sound", "error", err)
	}

	h := &Host{screen: screen, layer: &overlay{}}
	h.session = phone.NewSession(cfg, phone.SystemClock{}, h.layer, player)
	h.resize()
	slog.Info("Terminal session started", "session", h.session.ID)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(phone.NewFrameLimiter(cfg.Window.FPS).Interval() / 2)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if h.session.Tick() {
				h.draw()
			}
		}
	}
}

func (h *Host) resize() {
	h.cols, h.rows = h.screen.Size()
	h.session.Resize(Viewport(h.cols, h.rows))
	h.screen.Sync()
}

// handle applies one terminal event. It returns false to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
	case *tcell.EventKey:
		cmd := keyCommand(ev.Key(), ev.Rune())
		switch cmd.Kind {
		case CommandQuit:
			return false
		case CommandPress:
			h.session.Press(cmd.Control)
		case CommandReset:
			h.session.ResetOrientation()
		}
	case *tcell.EventMouse:
		x, y := CellToPixel(ev.Position())
		h.mouseDown = routeMouse(h.session.Input(), h.mouseDown, ev.Buttons()&tcell.Button1 != 0, x, y)
	}
	return true
}

func style(c scene.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (h *Host) draw() {
	h.screen.Clear()
	vw, vh := h.session.Viewport()

	h.session.Rig.Group.Walk(func(n *scene.Node, world mgl64.Mat4) {
		if n.Mesh == nil || n.Hidden || n.Material == nil {
			return
		}
		glyph := '.'
		st := style(n.Material.Color)
		if n.Tag != "" {
			glyph = '#'
		} else if n == h.session.Rig.Screen {
			glyph = '+'
			st = style(n.Material.Emissive)
		}
		for _, s := range WireBox(n.Mesh.Bounds, world, h.session.Camera, vw, vh) {
			x0, y0 := PixelToCell(s.A.X, s.A.Y)
			x1, y1 := PixelToCell(s.B.X, s.B.Y)
			Line(x0, y0, x1, y1, func(x, y int) {
				h.screen.SetContent(x, y, glyph, nil, st)
			})
		}
	})

	p := h.layer.placement
	if p.Visible {
		h.drawOverlay(p, h.layer.content)
	}

	status := fmt.Sprintf(" %s | vol %d/%d | p power  +/- volume  r reset  q quit ",
		h.session.PowerState(), h.session.Volume().Level, h.session.Volume().Max)
	h.text(0, h.rows-1, status, tcell.StyleDefault.Reverse(true))
	h.screen.Show()
}

func (h *Host) drawOverlay(p phone.Placement, c phone.Content) {
	st := style(scene.Palette.OverlayText)
	if p.Opacity < 0.5 {
		st = st.Dim(true)
	}
	corners := p.Corners()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		x0, y0 := PixelToCell(a.X, a.Y)
		x1, y1 := PixelToCell(b.X, b.Y)
		Line(x0, y0, x1, y1, func(x, y int) {
			h.screen.SetContent(x, y, '*', nil, st)
		})
	}

	cx, cy := PixelToCell(p.X, p.Y)
	lines := ContentLines(c, TextWidth(p))
	top := cy - len(lines)/2
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		h.text(cx-n/2, top+i, line, st)
	}
}

func (h *Host) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, st)
		x++
	}
}
