package windows

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/opendash/cardash/pkg/widgets/camview"
)

func TestMapPageLoadsRecording(t *testing.T) {
	p := NewMapPage("")
	defer p.Close()

	if p.cam != nil {
		t.Fatal("camera present without a video file")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatal(err)
	}
	p.setSource(camview.NewMJPEGSource(bytes.NewReader(buf.Bytes())))

	if p.cam == nil {
		t.Fatal("camera view not created from the recording")
	}
	if len(p.right.Objects) != 1 || p.right.Objects[0] != p.cam {
		t.Error("camera view not swapped into the page")
	}

	frame, err := p.cam.Source().Next()
	if err != nil {
		t.Fatalf("reading loaded recording: %v", err)
	}
	if frame.Bounds().Dx() != 8 {
		t.Errorf("frame width: got %d, want 8", frame.Bounds().Dx())
	}
}
