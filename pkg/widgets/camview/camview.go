// Package camview shows a live camera feed on the map tab. Frames come
// from a Source; the bundled implementation replays a raw MJPEG stream
// from disk, looping at the end, which stands in for a real webcam on
// bench setups.
package camview

import (
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"github.com/opendash/cardash/pkg/debug"
)

const (
	frameInterval = 20 * time.Millisecond
	// frames wider than this get downscaled before hitting the canvas
	maxFrameWidth = 640
)

// Source delivers camera frames. Next blocks until a frame is available
// or the stream is done.
type Source interface {
	Next() (image.Image, error)
	Close() error
}

type CamView struct {
	widget.BaseWidget

	src Source
	img *canvas.Image

	mu   sync.Mutex
	quit chan struct{}
}

func New(src Source) *CamView {
	c := &CamView{src: src}
	c.ExtendBaseWidget(c)
	c.img = &canvas.Image{}
	c.img.FillMode = canvas.ImageFillContain
	c.img.ScaleMode = canvas.ImageScaleFastest
	return c
}

// Start begins pulling frames on a background goroutine. Calling Start on
// a running view is a no-op.
func (c *CamView) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quit != nil {
		return
	}
	c.quit = make(chan struct{})
	go c.run(c.quit)
}

// Stop halts frame delivery. The source stays open so the feed can be
// resumed when the tab becomes visible again.
func (c *CamView) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quit == nil {
		return
	}
	close(c.quit)
	c.quit = nil
}

func (c *CamView) Close() error {
	c.Stop()
	return c.src.Close()
}

// Source exposes the feed the view is showing.
func (c *CamView) Source() Source { return c.src }

func (c *CamView) run(quit chan struct{}) {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-quit:
			return
		case <-t.C:
			frame, err := c.src.Next()
			if err != nil {
				log.Printf("camview: %v", err)
				debug.Log("frame source stopped: " + err.Error())
				return
			}
			frame = scaleFrame(frame, maxFrameWidth)
			fyne.Do(func() {
				c.img.Image = frame
				c.img.Refresh()
			})
		}
	}
}

// scaleFrame downscales img so its width is at most maxWidth, keeping the
// aspect ratio. Smaller frames pass through untouched.
func scaleFrame(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func (c *CamView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.img)
}
