package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// TextWidth returns the width of s in pixels when drawn at scale.
func TextWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

// TextHeight returns the line height in pixels at scale.
func TextHeight(scale int) int {
	return face.Metrics().Height.Ceil() * scale
}

// drawText draws s with its top-left corner at (x, y). Glyphs are rendered
// once at the font's native size, then magnified with nearest-neighbour
// sampling so the bitmap font stays crisp.
func drawText(dst draw.Image, s string, x, y, scale int, col color.Color) {
	if s == "" || scale < 1 {
		return
	}
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w <= 0 {
		return
	}
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	draw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w*scale, y+h*scale), glyphs, glyphs.Bounds(), draw.Over, nil)
}

// drawTextCentered draws s horizontally centred on cx.
func drawTextCentered(dst draw.Image, s string, cx, y, scale int, col color.Color) {
	drawText(dst, s, cx-TextWidth(s, scale)/2, y, scale, col)
}

// fitScale returns the largest scale up to maxScale at which s fits in width.
func fitScale(s string, width, maxScale int) int {
	for scale := maxScale; scale > 1; scale-- {
		if TextWidth(s, scale) <= width {
			return scale
		}
	}
	return 1
}
