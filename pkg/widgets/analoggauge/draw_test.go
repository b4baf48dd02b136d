package analoggauge

import (
	"image"
	"image/color"
	"testing"
)

var red = color.NRGBA{R: 255, A: 255}

func TestDrawLine(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	drawLine(img, 1, 5, 8, 5, red)
	for x := 1; x <= 8; x++ {
		if img.NRGBAAt(x, 5) != red {
			t.Errorf("horizontal line missing pixel at x=%d", x)
		}
	}
	if img.NRGBAAt(0, 5) == red || img.NRGBAAt(9, 5) == red {
		t.Error("line overshot its endpoints")
	}

	img = image.NewNRGBA(image.Rect(0, 0, 10, 10))
	drawLine(img, 2, 2, 7, 7, red)
	for i := 2; i <= 7; i++ {
		if img.NRGBAAt(i, i) != red {
			t.Errorf("diagonal line missing pixel at (%d,%d)", i, i)
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	// endpoints far outside the image must not panic
	drawLine(img, -10, 2, 20, 2, red)
	if img.NRGBAAt(2, 2) != red {
		t.Error("clipped line skipped interior pixels")
	}
}

func TestFillPolygonSquare(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	square := []point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}
	fillPolygon(img, square, 10, 10, func(int, int) color.NRGBA { return red })

	if img.NRGBAAt(10, 10) != red {
		t.Error("square interior not filled")
	}
	if img.NRGBAAt(7, 12) != red {
		t.Error("square interior corner region not filled")
	}
	if img.NRGBAAt(2, 2) == red || img.NRGBAAt(17, 10) == red {
		t.Error("fill leaked outside the square")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fillPolygon(img, []point{{0, 0}, {5, 5}}, 5, 5, func(int, int) color.NRGBA { return red })
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				t.Fatal("two-point polygon painted pixels")
			}
		}
	}
}

func TestFillPolygonPerPixelColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	square := []point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}
	blue := color.NRGBA{B: 255, A: 255}
	fillPolygon(img, square, 10, 10, func(x, _ int) color.NRGBA {
		if x < 10 {
			return red
		}
		return blue
	})
	if img.NRGBAAt(7, 10) != red {
		t.Error("left half not red")
	}
	if img.NRGBAAt(13, 10) != blue {
		t.Error("right half not blue")
	}
}

func TestFillCircle(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	fillCircle(img, 10, 10, 5, red)

	if img.NRGBAAt(10, 10) != red {
		t.Error("circle center not filled")
	}
	if img.NRGBAAt(10, 6) != red || img.NRGBAAt(6, 10) != red {
		t.Error("circle interior not filled")
	}
	// the bounding-box corners lie outside the disc
	if img.NRGBAAt(5, 5) == red || img.NRGBAAt(15, 15) == red {
		t.Error("fill leaked into bounding-box corners")
	}

	fillCircle(img, 10, 10, 0, red)
	fillCircle(img, 10, 10, -3, red)
}

func TestSetPixelTransparentSkipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, red)
	setPixel(img, 1, 1, color.NRGBA{})
	if img.NRGBAAt(1, 1) != red {
		t.Error("fully transparent write overwrote existing pixel")
	}
	setPixel(img, -1, 99, red)
}
