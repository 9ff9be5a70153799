package term

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"phone3d/internal/phone"
	"phone3d/internal/scene"
)

// A terminal cell is roughly twice as tall as it is wide, so the session
// works in a half-cell pixel grid: cols wide, rows*2 high.

// Viewport returns the session viewport for a cols x rows terminal.
func Viewport(cols, rows int) (int, int) {
	return cols, rows * 2
}

// CellToPixel returns the centre of a cell in viewport pixels.
func CellToPixel(cx, cy int) (float64, float64) {
	return float64(cx) + 0.5, float64(cy)*2 + 1
}

// PixelToCell returns the cell containing a viewport pixel.
func PixelToCell(x, y float64) (int, int) {
	return floor(x), floor(y / 2)
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

// boxEdges are index pairs into boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func boxCorners(b scene.Box3) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := range out {
		p := b.Min
		if i&1 != 0 {
			p[0] = b.Max[0]
		}
		if i&2 != 0 {
			p[1] = b.Max[1]
		}
		if i&4 != 0 {
			p[2] = b.Max[2]
		}
		out[i] = p
	}
	return out
}

// Segment is a line between two viewport pixels.
type Segment struct {
	A, B phone.Point
}

// WireBox projects the edges of a mesh's bounds, placed by world, onto a
// vw x vh viewport. Edges with an endpoint behind the camera are dropped.
func WireBox(b scene.Box3, world mgl64.Mat4, cam *scene.Camera, vw, vh int) []Segment {
	vp := cam.ViewProjection()
	var pts [8]phone.Point
	var ok [8]bool
	for i, c := range boxCorners(b) {
		clip := vp.Mul4x1(world.Mul4x1(c.Vec4(1)))
		if clip[3] <= 0 {
			continue
		}
		x, y := scene.NDCToPixels(clip[0]/clip[3], clip[1]/clip[3], vw, vh)
		pts[i] = phone.Point{X: x, Y: y}
		ok[i] = true
	}
	segs := make([]Segment, 0, len(boxEdges))
	for _, e := range boxEdges {
		if ok[e[0]] && ok[e[1]] {
			segs = append(segs, Segment{A: pts[e[0]], B: pts[e[1]]})
		}
	}
	return segs
}

// Line calls plot for every cell on the segment from (x0,y0) to (x1,y1).
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TextWidth is the usable text width inside the overlay box in cells. The
// placement width already includes the facing factor.
func TextWidth(p phone.Placement) int {
	return max(int(p.Width)-2, 3)
}

// ContentLines renders screen content as plain text lines for a box of the
// given inner width.
func ContentLines(c phone.Content, width int) []string {
	var lines []string
	switch c.Kind {
	case phone.ContentBoot:
		lines = append(lines, c.Title, "", ProgressBar(c.Progress, width), fmt.Sprintf("%d%%", c.Progress))
	case phone.ContentHome:
		lines = append(lines, c.Time, c.Date, "")
		if c.Background != nil {
			b := c.Background.Bounds()
			lines = append(lines, fmt.Sprintf("[wallpaper %dx%d]", b.Dx(), b.Dy()))
		} else {
			for i := 0; i < len(c.Apps); i += 4 {
				end := min(i+4, len(c.Apps))
				lines = append(lines, strings.Join(c.Apps[i:end], " "))
			}
		}
	case phone.ContentError:
		lines = append(lines, c.Time, "", c.Message)
	}
	if c.Indicator != "" && c.Kind != phone.ContentBlank {
		lines = append(lines, "", c.Indicator)
	}
	return lines
}

// ProgressBar draws percent as a [####----] bar width cells wide.
func ProgressBar(percent, width int) string {
	if width < 3 {
		return ""
	}
	inner := width - 2
	filled := inner * max(0, min(percent, 100)) / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", inner-filled) + "]"
}
