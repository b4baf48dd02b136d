package windows

import (
	"bytes"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"

	"github.com/opendash/cardash/pkg/debug"
	"github.com/opendash/cardash/pkg/widgets"
	"github.com/opendash/cardash/pkg/widgets/camview"
	"github.com/opendash/cardash/pkg/widgets/osmmap"
)

const (
	homeLat = 24.413274773214205
	homeLon = 88.96567734902074
)

// MapPage shows an OpenStreetMap view beside the reversing camera feed.
type MapPage struct {
	osm *osmmap.Map
	cam *camview.CamView

	// right holds either the camera view or the open-recording prompt.
	right   *fyne.Container
	visible bool

	content fyne.CanvasObject
}

// NewMapPage sets up the map centered on the home position. videoFile, if
// set, is an MJPEG recording replayed instead of a live camera; without
// one a recording can be opened from the page itself.
func NewMapPage(videoFile string) *MapPage {
	p := &MapPage{}

	p.osm = osmmap.New()
	p.osm.SetCenter(homeLat, homeLon)

	if videoFile != "" {
		src, err := camview.OpenMJPEG(videoFile)
		if err != nil {
			log.Println(err)
		} else {
			p.cam = camview.New(src)
		}
	}

	p.right = container.NewStack()
	if p.cam != nil {
		p.right.Objects = []fyne.CanvasObject{p.cam}
	} else {
		p.right.Objects = []fyne.CanvasObject{
			container.NewCenter(widget.NewButton("Open recording", p.openRecording)),
		}
	}

	centerBtn := widget.NewButton("Center", func() {
		p.osm.SetCenter(homeLat, homeLon)
	})
	attribBtn := widget.NewButton("© OpenStreetMap", func() {
		if err := open.Run("https://www.openstreetmap.org/copyright"); err != nil {
			log.Println(err)
		}
	})
	buttons := container.NewVBox(centerBtn, attribBtn)

	p.content = container.NewBorder(
		nil, nil, nil, buttons,
		container.NewGridWithColumns(2, p.osm, p.right),
	)
	return p
}

// openRecording reads a chosen MJPEG file fully into memory so the replay
// can rewind and loop without holding the file open.
func (p *MapPage) openRecording() {
	widgets.SelectFile(func(r fyne.URIReadCloser) {
		defer r.Close()
		b, err := io.ReadAll(r)
		if err != nil {
			log.Println(err)
			return
		}
		p.setSource(camview.NewMJPEGSource(bytes.NewReader(b)))
	}, "MJPEG recordings", "mjpeg", "mjpg")
}

// setSource swaps the camera feed, starting it right away when the page
// is the active tab.
func (p *MapPage) setSource(src camview.Source) {
	if p.cam != nil {
		p.cam.Stop()
		if err := p.cam.Close(); err != nil {
			log.Println(err)
		}
	}
	p.cam = camview.New(src)
	p.right.Objects = []fyne.CanvasObject{p.cam}
	p.right.Refresh()
	if p.visible {
		p.cam.Start()
	}
	debug.Log("camera source replaced")
}

func (p *MapPage) Content() fyne.CanvasObject { return p.content }

func (p *MapPage) StartVideo() {
	p.visible = true
	if p.cam != nil {
		p.cam.Start()
	}
}

func (p *MapPage) StopVideo() {
	p.visible = false
	if p.cam != nil {
		p.cam.Stop()
	}
}

func (p *MapPage) Close() {
	if p.cam != nil {
		if err := p.cam.Close(); err != nil {
			log.Println(err)
		}
	}
}
