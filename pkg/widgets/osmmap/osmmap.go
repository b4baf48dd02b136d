// Package osmmap renders a slippy-tile OpenStreetMap view centered on a
// WGS84 coordinate. Tiles are fetched from the public OSM server and
// cached on disk between runs.
package osmmap

import (
	"image"
	"math"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

const (
	tileSize    = 256
	minZoom     = 0
	maxZoom     = 19
	defaultZoom = 15
)

// Map is a pannable, zoomable OSM tile widget.
type Map struct {
	widget.BaseWidget

	pixels *image.NRGBA
	w, h   int

	zoom int
	// x,y are tile indices relative to the view center, offX/offY the
	// sub-tile pixel offset of the centered coordinate.
	x, y       int
	offX, offY int

	cl *http.Client
}

func New() *Map {
	m := &Map{
		zoom: defaultZoom,
		cl:   &http.Client{Timeout: 10 * time.Second},
	}
	m.ExtendBaseWidget(m)
	return m
}

// MinSize keeps the widget usable in a grid cell well below one tile.
func (m *Map) MinSize() fyne.Size {
	return fyne.NewSize(64, 64)
}

// SetCenter moves the view so lat/lon sits in the middle at the current
// zoom level.
func (m *Map) SetCenter(lat, lon float64) {
	m.center(lat, lon)
	m.Refresh()
}

func (m *Map) center(lat, lon float64) {
	tileX, tileY, offX, offY := slippyTile(lat, lon, m.zoom)

	centerOffset := 0
	if m.zoom >= 1 {
		centerOffset = (1 << m.zoom / 2) - 1
	}
	m.x = tileX - centerOffset
	m.y = tileY - centerOffset
	m.offX = offX
	m.offY = offY
}

func (m *Map) ZoomIn() {
	if m.zoom >= maxZoom {
		return
	}
	m.zoomInStep()
	m.Refresh()
}

func (m *Map) ZoomOut() {
	if m.zoom <= minZoom {
		return
	}
	m.zoomOutStep()
	m.Refresh()
}

func (m *Map) zoomInStep() {
	m.zoom++
	m.x *= 2
	m.y *= 2
	m.offX = (m.offX * 2) & (tileSize - 1)
	m.offY = (m.offY * 2) & (tileSize - 1)
}

func (m *Map) zoomOutStep() {
	m.zoom--
	m.x /= 2
	m.y /= 2
	m.offX /= 2
	m.offY /= 2
}

func (m *Map) CreateRenderer() fyne.WidgetRenderer {
	zoomButtons := container.NewVBox(
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), m.ZoomIn),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), m.ZoomOut),
	)
	overlay := container.NewBorder(nil, nil, nil, zoomButtons)
	stack := container.NewStack(canvas.NewRaster(m.draw), container.NewPadded(overlay))
	return widget.NewSimpleRenderer(stack)
}

func (m *Map) draw(w, h int) image.Image {
	scale := 1
	tilePx := tileSize
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		if c := app.Driver().CanvasForObject(m); c != nil {
			if scale = int(c.Scale()); scale < 1 {
				scale = 1
			}
			tilePx = tileSize * scale
		}
	}

	if m.w != w || m.h != h {
		m.pixels = image.NewNRGBA(image.Rect(0, 0, w, h))
		m.w, m.h = w, h
	}

	midTileX := (w - tilePx*2) / 2
	midTileY := (h - tilePx*2) / 2
	if m.zoom == 0 {
		midTileX += tilePx / 2
		midTileY += tilePx / 2
	}
	midTileX += tilePx/2 - m.offX
	midTileY += tilePx/2 - m.offY

	count := 1 << m.zoom
	mx := m.x + int(float32(count)/2-0.5)
	my := m.y + int(float32(count)/2-0.5)
	firstTileX := mx - int(math.Ceil(float64(midTileX)/float64(tilePx)))
	firstTileY := my - int(math.Ceil(float64(midTileY)/float64(tilePx)))
	for x := firstTileX; (x-firstTileX)*tilePx <= w+tilePx; x++ {
		for y := firstTileY; (y-firstTileY)*tilePx <= h+tilePx; y++ {
			if x < 0 || y < 0 || x >= count || y >= count {
				continue
			}
			src, err := m.tile(m.zoom, x, y)
			if err != nil {
				fyne.LogError("tile fetch", err)
				continue
			}
			pos := image.Pt(midTileX+(x-mx)*tilePx, midTileY+(y-my)*tilePx)
			scaled := src
			if scale > 1 {
				scaled = resize.Resize(uint(tilePx), uint(tilePx), src, resize.Lanczos2)
			}
			draw.Copy(m.pixels, pos, scaled, image.Rect(0, 0, tilePx, tilePx), draw.Over, nil)
		}
	}
	return m.pixels
}

// slippyTile converts a WGS84 coordinate to OSM tile indices at the
// given zoom, plus the pixel offset of the point inside its tile.
func slippyTile(lat, lon float64, zoom int) (tileX, tileY, offX, offY int) {
	// Web Mercator is undefined at the poles.
	const maxLat = 85.05112878
	if lat > maxLat {
		lat = maxLat
	} else if lat < -maxLat {
		lat = -maxLat
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180

	if zoom < minZoom {
		zoom = minZoom
	}
	n := float64(uint64(1) << uint(zoom))

	x := (lon + 180) / 360 * n
	latRad := lat * math.Pi / 180
	y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n

	maxIdx := int(n) - 1
	tileX = min(max(int(math.Floor(x)), 0), maxIdx)
	tileY = min(max(int(math.Floor(y)), 0), maxIdx)

	offX = int(math.Floor(x*tileSize)) % tileSize
	offY = int(math.Floor(y*tileSize)) % tileSize
	if offX < 0 {
		offX += tileSize
	}
	if offY < 0 {
		offY += tileSize
	}
	return tileX, tileY, offX, offY
}
