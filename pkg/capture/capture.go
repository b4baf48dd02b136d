// Package capture saves window screenshots.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
)

// Screenshot writes a PNG of the canvas to a timestamped file in the
// working directory and returns the filename.
func Screenshot(c fyne.Canvas) (string, error) {
	return savePNG(".", c.Capture())
}

func savePNG(dir string, img image.Image) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("capture-%s.png", time.Now().Format("2006-01-02-15-04-05")))
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", filename, err)
	}
	return filename, nil
}
