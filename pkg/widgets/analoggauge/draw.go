package analoggauge

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// drawLine plots a straight line with Bresenham's algorithm.
func drawLine(img *image.NRGBA, x1, y1, x2, y2 int, col color.NRGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		setPixel(img, x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// fillPolygon rasterizes a closed polygon with even-odd scanline filling.
// Points are relative to (cx, cy); colorAt supplies the fill color per
// pixel so gradient and solid fills share the same path.
func fillPolygon(img *image.NRGBA, pts []point, cx, cy float64, colorAt func(x, y int) color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minY = math.Min(minY, p.y+cy)
		maxY = math.Max(maxY, p.y+cy)
	}
	bounds := img.Bounds()
	yStart := max(int(math.Floor(minY)), bounds.Min.Y)
	yEnd := min(int(math.Ceil(maxY)), bounds.Max.Y-1)

	xs := make([]float64, 0, 8)
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5 - cy
		xs = xs[:0]
		j := len(pts) - 1
		for i := 0; i < len(pts); i++ {
			y1, y2 := pts[j].y, pts[i].y
			if (y1 <= fy && y2 > fy) || (y2 <= fy && y1 > fy) {
				xs = append(xs, pts[j].x+(fy-y1)/(y2-y1)*(pts[i].x-pts[j].x))
			}
			j = i
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x1 := max(int(math.Ceil(xs[k]+cx-0.5)), bounds.Min.X)
			x2 := min(int(math.Floor(xs[k+1]+cx-0.5)), bounds.Max.X-1)
			for x := x1; x <= x2; x++ {
				setPixel(img, x, y, colorAt(x, y))
			}
		}
	}
}

// fillCircle paints a filled disc centered at (cx, cy).
func fillCircle(img *image.NRGBA, cx, cy, radius float64, col color.NRGBA) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				setPixel(img, x, y, col)
			}
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	img.SetNRGBA(x, y, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
