package analoggauge

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/opendash/cardash/pkg/common"
	"github.com/opendash/cardash/pkg/widgets"
)

// drawScale renders the static instrument face: the colored band and the
// tick markers, in that order so ticks sit on top of the band.
func (g *AnalogGauge) drawScale(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	d := float64(min(w, h))
	cx, cy := float64(w)/2, float64(h)/2

	if g.showBand {
		g.drawBand(img, d, cx, cy)
	}
	if g.showMinorTicks {
		g.drawTicks(img, cx, cy, g.cfg.MajorTicks*g.cfg.MinorTicks, d/2, d/2-d/40, 1)
	}
	if g.showMajorTicks {
		g.drawTicks(img, cx, cy, g.cfg.MajorTicks, d/2, d/2-d/20, 2)
	}
	return img
}

// drawTicks paints count+1 radial segments from inner to outer radius,
// stepping span/count degrees from the scale start. The extra closing
// line at the end of the arc is intentional and matches the label count.
func (g *AnalogGauge) drawTicks(img *image.NRGBA, cx, cy float64, count int, outer, inner float64, width int) {
	col := widgets.ToNRGBA(g.cfg.ScaleTextColor)
	step := g.cfg.AngleSpan / float64(count)
	for i := 0; i <= count; i++ {
		a := (g.cfg.StartAngle - g.cfg.AngleOffset + step*float64(i)) * common.PiDiv180
		sin, cos := math.Sincos(a)
		x1, y1 := cx+inner*cos, cy+inner*sin
		x2, y2 := cx+outer*cos, cy+outer*sin
		drawLine(img, int(x1), int(y1), int(x2), int(y2), col)
		if width > 1 {
			// thicken by a parallel line one pixel off, perpendicular
			drawLine(img, int(x1-sin), int(y1+cos), int(x2-sin), int(y2+cos), col)
		}
	}
}

func (g *AnalogGauge) drawBand(img *image.NRGBA, d, cx, cy float64) {
	sweep := g.bandSweep()
	if sweep <= 0 {
		return
	}
	outer := d / 2 * outerRadiusFactor
	inner := d / 2 * innerRadiusFactor
	fillPolygon(img, g.scalePolygon(outer, inner, sweep), cx, cy, g.bandColorAt(cx, cy))
}

// bandColorAt returns the conical-gradient fill function for the band:
// the color stops are laid out along the configured sweep, anchored at
// the gauge center and rotated to the start angle and offset.
func (g *AnalogGauge) bandColorAt(cx, cy float64) func(x, y int) color.NRGBA {
	stops := g.cfg.ColorStops
	base := 361 + g.cfg.AngleSpan + g.cfg.StartAngle - g.cfg.AngleOffset
	return func(x, y int) color.NRGBA {
		theta := math.Atan2(float64(y)+0.5-cy, float64(x)+0.5-cx) / math.Pi * 180
		t := math.Mod(base-theta, 360)
		if t < 0 {
			t += 360
		}
		return widgets.StopsColorAt(stops, t/360)
	}
}

// drawNeedle renders the moving parts: the rotated needle polygon and the
// center hub, hub last so it covers the needle base.
func (g *AnalogGauge) drawNeedle(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	d := float64(min(w, h))
	cx, cy := float64(w)/2, float64(h)/2

	if g.showNeedle {
		rot := g.needleRotation(g.value) * common.PiDiv180
		sin, cos := math.Sincos(rot)
		poly := needlePolygon(d)
		rotated := make([]point, len(poly))
		for i, p := range poly {
			rotated[i] = point{p.x*cos - p.y*sin, p.x*sin + p.y*cos}
		}
		col := widgets.ToNRGBA(g.needleColor)
		fillPolygon(img, rotated, cx, cy, func(int, int) color.NRGBA { return col })
	}
	if g.showCenterPoint {
		fillCircle(img, cx, cy, d/6/2, widgets.ToNRGBA(g.cfg.CenterPointColor))
	}
	return img
}

// layoutText positions the scale numbers around the arc and the value
// text at the gap midpoint. Text boxes are sized from the font height so
// no font metrics are needed.
func (g *AnalogGauge) layoutText(space fyne.Size) {
	cx := space.Width * common.OneHalf
	cy := space.Height * common.OneHalf
	radius := float64(g.diameter) * common.OneHalf

	scaleRadius := radius * scaleTextRadiusFactor
	step := g.cfg.AngleSpan / float64(g.cfg.MajorTicks)
	boxH := g.scaleFontSize * 1.5
	for i, l := range g.labels {
		a := (step*float64(i) + g.cfg.StartAngle - g.cfg.AngleOffset) * common.PiDiv180
		sin, cos := math.Sincos(a)
		boxW := fyne.Max(boxH, float32(len(l.Text))*g.scaleFontSize)
		l.Move(fyne.NewPos(
			cx+float32(scaleRadius*cos)-boxW*0.5,
			cy+float32(scaleRadius*sin)-boxH*0.5,
		))
		l.Resize(fyne.NewSize(boxW, boxH))
	}

	textRadius := radius * valueTextRadiusFactor
	sin, cos := math.Sincos(g.valueTextAngle() * common.PiDiv180)
	valueBoxH := g.valueFontSize * 1.5
	g.valueText.Move(fyne.NewPos(
		cx+float32(textRadius*cos)-space.Width*0.5,
		cy+float32(textRadius*sin)-valueBoxH*0.5,
	))
	g.valueText.Resize(fyne.NewSize(space.Width, valueBoxH))

	g.titleText.Move(fyne.NewPos(0, cy-float32(radius)*0.35-boxH*0.5))
	g.titleText.Resize(fyne.NewSize(space.Width, boxH))
}

func (g *AnalogGauge) CreateRenderer() fyne.WidgetRenderer {
	return &gaugeRenderer{g: g}
}

type gaugeRenderer struct {
	g       *AnalogGauge
	objects []fyne.CanvasObject
}

func (r *gaugeRenderer) Layout(space fyne.Size) {
	if r.g.size == space {
		return
	}
	r.g.rescale(space)
	r.g.scaleRaster.Resize(space)
	r.g.needleRaster.Resize(space)
	r.g.syncText()
	r.g.layoutText(space)

	for _, o := range r.Objects() {
		canvas.Refresh(o)
	}
}

func (r *gaugeRenderer) MinSize() fyne.Size { return r.g.minsize }

func (r *gaugeRenderer) Refresh() {}

func (r *gaugeRenderer) Destroy() {
	r.g.Close()
}

func (r *gaugeRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil || r.g.objectsStale {
		objs := make([]fyne.CanvasObject, 0, len(r.g.labels)+4)
		objs = append(objs, r.g.scaleRaster)
		for _, l := range r.g.labels {
			objs = append(objs, l)
		}
		objs = append(objs, r.g.titleText, r.g.valueText, r.g.needleRaster)
		r.objects = objs
		r.g.objectsStale = false
	}
	return r.objects
}
