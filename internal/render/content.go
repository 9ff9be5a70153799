package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"phone3d/internal/phone"
	"phone3d/internal/scene"
)

// appLabels stands in for the app emoji, which the bitmap font can't draw.
var appLabels = map[string]string{
	"📱": "Phone", "📧": "Mail", "🌐": "Web", "📷": "Camera",
	"🎵": "Music", "🗓️": "Calendar", "⚙️": "Settings", "🎮": "Games",
}

var appColors = []color.RGBA{
	{0x34, 0xc7, 0x59, 0xff},
	{0x00, 0x7a, 0xff, 0xff},
	{0x5a, 0xc8, 0xfa, 0xff},
	{0x8e, 0x8e, 0x93, 0xff},
	{0xff, 0x2d, 0x55, 0xff},
	{0xff, 0x95, 0x00, 0xff},
	{0x63, 0x63, 0x66, 0xff},
	{0xaf, 0x52, 0xde, 0xff},
}

var (
	black      = color.RGBA{0, 0, 0, 0xff}
	white      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	pillColor  = color.RGBA{0, 0, 0, 0xb4}
	errorColor = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
)

func rgba(c scene.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

// Rasterize draws c onto a w x h canvas. Blank content is fully transparent.
func Rasterize(c phone.Content, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	switch c.Kind {
	case phone.ContentBoot:
		drawBoot(img, c)
	case phone.ContentHome:
		drawHome(img, c)
	case phone.ContentError:
		drawError(img, c)
	}
	if c.Indicator != "" && c.Kind != phone.ContentBlank {
		drawIndicator(img, c.Indicator)
	}
	return img
}

func fill(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// ProgressBar returns the outer rectangle of the boot progress bar.
func ProgressBar(w, h int) image.Rectangle {
	bw := w * 6 / 10
	bh := h / 60
	if bh < 4 {
		bh = 4
	}
	x0 := (w - bw) / 2
	y0 := h * 55 / 100
	return image.Rect(x0, y0, x0+bw, y0+bh)
}

func drawBoot(img *image.RGBA, c phone.Content) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	fill(img, img.Bounds(), black)
	accent := rgba(scene.Palette.OverlayText)

	scale := fitScale(c.Title, w*8/10, 5)
	drawTextCentered(img, c.Title, w/2, h*40/100, scale, accent)

	bar := ProgressBar(w, h)
	fill(img, bar, color.RGBA{0x1a, 0x1a, 0x1a, 0xff})
	filled := bar
	filled.Max.X = bar.Min.X + bar.Dx()*c.Progress/100
	fill(img, filled, accent)
}

func drawHome(img *image.RGBA, c phone.Content) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if c.Background != nil {
		drawCover(img, c.Background)
	} else {
		drawGradient(img, color.RGBA{0x00, 0x22, 0x44, 0xff}, black)
	}
	drawClock(img, c)

	if len(c.Apps) > 0 {
		drawAppGrid(img, c.Apps, image.Rect(w/12, h*45/100, w-w/12, h*90/100))
	}
}

func drawError(img *image.RGBA, c phone.Content) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	fill(img, img.Bounds(), black)
	drawClock(img, c)
	drawTextCentered(img, c.Message, w/2, h*55/100, fitScale(c.Message, w*8/10, 2), errorColor)
}

func drawClock(img *image.RGBA, c phone.Content) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawTextCentered(img, c.Time, w/2, h*10/100, fitScale(c.Time, w*8/10, 6), white)
	drawTextCentered(img, c.Date, w/2, h*10/100+TextHeight(6)+h/50, fitScale(c.Date, w*9/10, 2), white)
}

// AppTiles lays out n app tiles in four columns inside area.
func AppTiles(n int, area image.Rectangle) []image.Rectangle {
	const cols = 4
	cell := area.Dx() / cols
	tile := cell * 7 / 10
	pad := (cell - tile) / 2
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		col, row := i%cols, i/cols
		x := area.Min.X + col*cell + pad
		y := area.Min.Y + row*(cell+TextHeight(1)+pad)
		out = append(out, image.Rect(x, y, x+tile, y+tile))
	}
	return out
}

func drawAppGrid(img *image.RGBA, apps []string, area image.Rectangle) {
	for i, r := range AppTiles(len(apps), area) {
		fill(img, r, appColors[i%len(appColors)])
		label, ok := appLabels[apps[i]]
		if !ok {
			label = "App"
		}
		drawTextCentered(img, label, (r.Min.X+r.Max.X)/2, r.Max.Y+2, 1, white)
	}
}

func drawIndicator(img *image.RGBA, label string) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tw, th := TextWidth(label, 2), TextHeight(2)
	pill := image.Rect(w/2-tw/2-12, h*82/100, w/2+tw/2+12, h*82/100+th+12)
	fill(img, pill, pillColor)
	drawTextCentered(img, label, w/2, pill.Min.Y+6, 2, white)
}

func drawGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(b.Dy())
		col := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		fill(img, image.Rect(b.Min.X, y, b.Max.X, y+1), col)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// CoverSource returns the centred part of src with the aspect ratio of dst,
// so scaling it fills dst without distortion.
func CoverSource(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return src
	}
	if sw*dh > sh*dw {
		cw := sh * dw / dh
		x0 := src.Min.X + (sw-cw)/2
		return image.Rect(x0, src.Min.Y, x0+cw, src.Max.Y)
	}
	ch := sw * dh / dw
	y0 := src.Min.Y + (sh-ch)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+ch)
}

func drawCover(img *image.RGBA, bg image.Image) {
	draw.CatmullRom.Scale(img, img.Bounds(), bg, CoverSource(bg.Bounds(), img.Bounds()), draw.Src, nil)
}
