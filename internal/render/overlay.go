package render

import (
	"image"

	"phone3d/internal/phone"
)

// OverlayLayer is the desktop host's screen layer. The session places it and
// sets its content; the renderer rasterizes content lazily and draws the
// result as a textured quad over the 3D frame.
type OverlayLayer struct {
	width, height int

	placement phone.Placement
	content   phone.Content
	image     *image.RGBA
	dirty     bool
}

// NewOverlayLayer returns a layer whose content canvas is w x h pixels.
func NewOverlayLayer(w, h int) *OverlayLayer {
	return &OverlayLayer{width: w, height: h, dirty: true}
}

func (l *OverlayLayer) Place(p phone.Placement) { l.placement = p }

func (l *OverlayLayer) SetContent(c phone.Content) {
	l.content = c
	l.dirty = true
}

func (l *OverlayLayer) Placement() phone.Placement { return l.placement }
func (l *OverlayLayer) Content() phone.Content     { return l.content }

// Image returns the rasterized content and whether it changed since the
// previous call.
func (l *OverlayLayer) Image() (*image.RGBA, bool) {
	if !l.dirty && l.image != nil {
		return l.image, false
	}
	l.image = Rasterize(l.content, l.width, l.height)
	l.dirty = false
	return l.image, true
}

// QuadVertices returns two triangles covering p's corners in pixel space,
// interleaved as x, y, u, v.
func QuadVertices(p phone.Placement) []float32 {
	c := p.Corners()
	tl, tr, br, bl := c[0], c[1], c[2], c[3]
	return []float32{
		float32(tl.X), float32(tl.Y), 0, 0,
		float32(tr.X), float32(tr.Y), 1, 0,
		float32(bl.X), float32(bl.Y), 0, 1,
		float32(tr.X), float32(tr.Y), 1, 0,
		float32(br.X), float32(br.Y), 1, 1,
		float32(bl.X), float32(bl.Y), 0, 1,
	}
}
