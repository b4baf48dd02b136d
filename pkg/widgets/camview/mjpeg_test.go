package camview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeFrame(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMJPEGSourceReadsFramesInOrder(t *testing.T) {
	stream := append(
		encodeFrame(t, 8, 6, color.White),
		encodeFrame(t, 16, 12, color.Black)...,
	)
	src := NewMJPEGSource(bytes.NewReader(stream))

	f1, err := src.Next()
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if f1.Bounds().Dx() != 8 {
		t.Errorf("first frame width: got %d, want 8", f1.Bounds().Dx())
	}

	f2, err := src.Next()
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if f2.Bounds().Dx() != 16 {
		t.Errorf("second frame width: got %d, want 16", f2.Bounds().Dx())
	}
}

func TestMJPEGSourceLoops(t *testing.T) {
	src := NewMJPEGSource(bytes.NewReader(encodeFrame(t, 8, 6, color.White)))
	for i := 0; i < 5; i++ {
		if _, err := src.Next(); err != nil {
			t.Fatalf("frame %d after wraparound: %v", i, err)
		}
	}
}

func TestMJPEGSourceEmptyStream(t *testing.T) {
	src := NewMJPEGSource(bytes.NewReader([]byte{0x00, 0x01, 0x02}))
	if _, err := src.Next(); err == nil {
		t.Fatal("expected error for stream without frames")
	}
}

func TestScaleFrame(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 1280, 720))
	scaled := scaleFrame(big, 640)
	if scaled.Bounds().Dx() != 640 || scaled.Bounds().Dy() != 360 {
		t.Errorf("scaled size: got %v, want 640x360", scaled.Bounds())
	}

	small := image.NewRGBA(image.Rect(0, 0, 320, 240))
	if scaleFrame(small, 640) != image.Image(small) {
		t.Error("small frame should pass through unscaled")
	}
}
