package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone3d/internal/phone"
	"phone3d/internal/scene"
)

const canvasW, canvasH = 396, 680

func TestRasterize_BlankIsTransparent(t *testing.T) {
	img := Rasterize(phone.Content{Kind: phone.ContentBlank, Indicator: "Volume: 5"}, canvasW, canvasH)
	for i := 3; i < len(img.Pix); i += 4 {
		require.Zero(t, img.Pix[i])
	}
}

func TestRasterize_BootProgressBar(t *testing.T) {
	accent := rgba(scene.Palette.OverlayText)
	bar := ProgressBar(canvasW, canvasH)
	row := bar.Min.Y + bar.Dy()/2

	tests := []struct {
		progress int
		filled   int
	}{
		{0, 0},
		{50, bar.Dx() / 2},
		{100, bar.Dx()},
	}
	for _, tt := range tests {
		c := phone.BootContent("ETHENOS", float64(tt.progress))
		img := Rasterize(c, canvasW, canvasH)
		n := 0
		for x := bar.Min.X; x < bar.Max.X; x++ {
			if img.RGBAAt(x, row) == accent {
				n++
			}
		}
		assert.Equal(t, tt.filled, n, "progress %d", tt.progress)
	}
}

func TestRasterize_BootTitleUsesAccent(t *testing.T) {
	img := Rasterize(phone.BootContent("ETHENOS", 10), canvasW, canvasH)
	accent := rgba(scene.Palette.OverlayText)
	found := false
	for y := canvasH * 40 / 100; y < canvasH*40/100+TextHeight(5) && !found; y++ {
		for x := 0; x < canvasW; x++ {
			if img.RGBAAt(x, y) == accent {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestRasterize_HomeBackgroundCovers(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := range bg.Pix {
		bg.Pix[i] = 0xff
	}
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i], bg.Pix[i+1] = 0x10, 0x80 // teal-ish, opaque
	}
	c := phone.Content{Kind: phone.ContentHome, Time: "09:30", Date: "Monday, October 19", Background: bg}
	img := Rasterize(c, canvasW, canvasH)

	// Bottom-left corner carries no text and must come from the background.
	got := img.RGBAAt(2, canvasH-3)
	assert.InDelta(t, 0x10, int(got.R), 1)
	assert.InDelta(t, 0x80, int(got.G), 1)
	assert.InDelta(t, 0xff, int(got.B), 1)
	assert.Equal(t, uint8(0xff), got.A)
}

func TestRasterize_Indicator(t *testing.T) {
	c := phone.Content{Kind: phone.ContentHome, Time: "09:30", Date: "d", Apps: phone.DefaultApps}
	without := Rasterize(c, canvasW, canvasH)
	c.Indicator = "Volume: 7"
	with := Rasterize(c, canvasW, canvasH)

	// A point in the pill's left padding, below the app grid.
	x := canvasW/2 - TextWidth(c.Indicator, 2)/2 - 8
	y := canvasH*82/100 + 2
	assert.NotEqual(t, without.RGBAAt(x, y), with.RGBAAt(x, y))
	assert.Equal(t, without.RGBAAt(x, 2), with.RGBAAt(x, 2))
}

func TestAppTiles(t *testing.T) {
	area := image.Rect(0, 0, 400, 300)
	tiles := AppTiles(8, area)
	require.Len(t, tiles, 8)
	assert.Equal(t, tiles[0].Min.Y, tiles[3].Min.Y)
	assert.Greater(t, tiles[4].Min.Y, tiles[0].Max.Y)
	assert.Equal(t, tiles[0].Min.X, tiles[4].Min.X)
	for i := 1; i < 4; i++ {
		assert.Greater(t, tiles[i].Min.X, tiles[i-1].Max.X)
	}
}

func TestCoverSource(t *testing.T) {
	tests := []struct {
		name     string
		src, dst image.Rectangle
		want     image.Rectangle
	}{
		{"wide source crops sides", image.Rect(0, 0, 400, 100), image.Rect(0, 0, 100, 100), image.Rect(150, 0, 250, 100)},
		{"tall source crops top and bottom", image.Rect(0, 0, 100, 400), image.Rect(0, 0, 100, 100), image.Rect(0, 150, 100, 250)},
		{"same aspect is untouched", image.Rect(0, 0, 200, 100), image.Rect(0, 0, 40, 20), image.Rect(0, 0, 200, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoverSource(tt.src, tt.dst))
		})
	}
}

func TestTextMetrics(t *testing.T) {
	assert.Equal(t, 7*5, TextWidth("HELLO", 1))
	assert.Equal(t, 7*5*3, TextWidth("HELLO", 3))
	assert.Equal(t, 13*2, TextHeight(2))
	assert.Equal(t, 1, fitScale("a very long string that never fits", 10, 6))
	assert.Equal(t, 6, fitScale("09:30", 1000, 6))
}
