// Package analoggauge renders a configurable circular instrument: a
// colored arc scale, tick markers, numeric labels, a rotating needle and
// mouse-driven value dragging. The dashboard's speedometer, tachometer
// and the music-tab volume dials are all instances of this one widget.
package analoggauge

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/opendash/cardash/pkg/common"
	"github.com/opendash/cardash/pkg/widgets"
)

const (
	needleScaleFactor = 0.8
	outerRadiusFactor = 1.0
	innerRadiusFactor = 0.95

	valueTextRadiusFactor = 0.7
	scaleTextRadiusFactor = 0.8

	initialScaleFontSize = 15
	initialValueFontSize = 40
	referenceDiameter    = 400

	timerInterval = 10 * time.Millisecond
)

type AnalogGauge struct {
	widget.BaseWidget

	cfg *widgets.GaugeConfig

	value float64
	// lastValue remembers the previously committed drag value so gestures
	// crossing the min/max boundary wrap instead of jumping.
	lastValue float64

	pressed    bool
	dragActive bool

	needleColor color.Color

	showBand        bool
	showMinorTicks  bool
	showMajorTicks  bool
	showScaleText   bool
	showValueText   bool
	showNeedle      bool
	showCenterPoint bool
	barGraphStyle   bool

	size          fyne.Size
	diameter      float32
	scaleFontSize float32
	valueFontSize float32

	scaleRaster  *canvas.Raster
	needleRaster *canvas.Raster
	titleText    *canvas.Text
	valueText    *canvas.Text
	labels       []*canvas.Text
	labelsStale  bool
	objectsStale bool

	stopTimer chan struct{}

	minsize fyne.Size
}

var _ widgets.IGauge = (*AnalogGauge)(nil)

func New(cfg *widgets.GaugeConfig) *AnalogGauge {
	if cfg == nil {
		cfg = &widgets.GaugeConfig{}
	}
	if cfg.Max <= cfg.Min {
		cfg.Min = 0
		cfg.Max = 1000
	}
	if cfg.AngleSpan == 0 {
		cfg.StartAngle = 135
		cfg.AngleSpan = 270
	}
	if cfg.MajorTicks < 1 {
		cfg.MajorTicks = 10
	}
	if cfg.MinorTicks < 1 {
		cfg.MinorTicks = 5
	}
	if cfg.SnapZone == 0 {
		cfg.SnapZone = 0.05
	}
	if cfg.NeedleColor == nil {
		cfg.NeedleColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	}
	if cfg.NeedleColorDrag == nil {
		cfg.NeedleColorDrag = color.NRGBA{R: 255, A: 255}
	}
	if cfg.ScaleTextColor == nil {
		cfg.ScaleTextColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	}
	if cfg.ValueTextColor == nil {
		cfg.ValueTextColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	}
	if cfg.CenterPointColor == nil {
		cfg.CenterPointColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	}
	cfg.ColorStops = widgets.SanitizeStops(defaultStops(cfg.ColorStops))

	g := &AnalogGauge{
		cfg:             cfg,
		value:           cfg.Min,
		needleColor:     cfg.NeedleColor,
		showBand:        true,
		showMinorTicks:  true,
		showMajorTicks:  true,
		showScaleText:   true,
		showValueText:   true,
		showNeedle:      true,
		showCenterPoint: true,
		barGraphStyle:   true,
		minsize:         fyne.NewSize(100, 100),
	}
	g.ExtendBaseWidget(g)

	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		g.minsize = cfg.MinSize
	}

	g.scaleRaster = canvas.NewRaster(g.drawScale)
	g.needleRaster = canvas.NewRaster(g.drawNeedle)

	g.valueText = &canvas.Text{Color: cfg.ValueTextColor, TextSize: initialValueFontSize}
	g.valueText.TextStyle.Monospace = true
	g.valueText.Alignment = fyne.TextAlignCenter

	g.titleText = &canvas.Text{Text: cfg.Title, Color: cfg.ScaleTextColor, TextSize: initialScaleFontSize}
	g.titleText.TextStyle.Monospace = true
	g.titleText.Alignment = fyne.TextAlignCenter

	g.rebuildLabels()
	g.syncText()

	if cfg.UseTimerEvent {
		g.stopTimer = make(chan struct{})
		go g.runTimer()
	}

	return g
}

// defaultStops supplies the classic green-through-red zones when the
// caller did not define a gradient.
func defaultStops(stops []widgets.ColorStop) []widgets.ColorStop {
	if stops != nil {
		return stops
	}
	return []widgets.ColorStop{
		{Position: 0, Color: color.NRGBA{R: 255, A: 255}},
		{Position: 0.1, Color: color.NRGBA{R: 255, G: 255, A: 255}},
		{Position: 0.15, Color: color.NRGBA{G: 255, A: 255}},
		{Position: 1, Color: color.NRGBA{}},
	}
}

func (g *AnalogGauge) GetConfig() *widgets.GaugeConfig { return g.cfg }

// UpdateValue clamps v into [Min,Max], stores it and notifies observers
// with the clamped, integer-truncated value. The raw input is never
// stored verbatim.
func (g *AnalogGauge) UpdateValue(v float64) {
	g.value = common.Clamp(v, g.cfg.Min, g.cfg.Max)
	g.notify()
	g.repaint()
}

func (g *AnalogGauge) SetValue(v float64) { g.UpdateValue(v) }

func (g *AnalogGauge) Value() float64 { return g.value }

func (g *AnalogGauge) MaxValue() float64 { return g.cfg.Max }

func (g *AnalogGauge) notify() {
	if g.cfg.OnValueChanged != nil {
		g.cfg.OnValueChanged(int(g.value))
	}
}

// SetMinValue updates the lower bound. The current value is clamped to the
// new bound; a bound that would invert the range pushes itself to one unit
// below the upper bound instead.
func (g *AnalogGauge) SetMinValue(min float64) {
	if g.value < min {
		g.value = min
	}
	if min >= g.cfg.Max {
		g.cfg.Min = g.cfg.Max - 1
	} else {
		g.cfg.Min = min
	}
	g.labelsStale = true
	g.repaint()
}

// SetMaxValue updates the upper bound, mirroring SetMinValue.
func (g *AnalogGauge) SetMaxValue(max float64) {
	if g.value > max {
		g.value = max
	}
	if max <= g.cfg.Min {
		g.cfg.Max = g.cfg.Min + 1
	} else {
		g.cfg.Max = max
	}
	g.labelsStale = true
	g.repaint()
}

// SetBounds replaces both bounds at once. The pair is validated jointly,
// so a new range disjoint from the old one is accepted as given; only a
// pair that would invert the range has its upper bound pushed out.
func (g *AnalogGauge) SetBounds(min, max float64) {
	if min >= max {
		max = min + 1
	}
	g.cfg.Min = min
	g.cfg.Max = max
	g.value = common.Clamp(g.value, min, max)
	g.labelsStale = true
	g.repaint()
}

func (g *AnalogGauge) SetStartScaleAngle(deg float64) {
	g.cfg.StartAngle = deg
	g.repaint()
}

func (g *AnalogGauge) SetTotalScaleAngleSize(deg float64) {
	g.cfg.AngleSpan = deg
	g.repaint()
}

func (g *AnalogGauge) SetAngleOffset(deg float64) {
	g.cfg.AngleOffset = deg
	g.repaint()
}

// SetScaleTickCounts replaces the tick subdivision. Counts below one are
// floored to one so label spacing can never divide by zero.
func (g *AnalogGauge) SetScaleTickCounts(major, minorPerMajor int) {
	if major < 1 {
		major = 1
	}
	if minorPerMajor < 1 {
		minorPerMajor = 1
	}
	g.cfg.MajorTicks = major
	g.cfg.MinorTicks = minorPerMajor
	g.labelsStale = true
	g.repaint()
}

// SetColorStops replaces the band gradient. Invalid or empty input
// degrades to a single transparent stop.
func (g *AnalogGauge) SetColorStops(stops []widgets.ColorStop) {
	g.cfg.ColorStops = widgets.SanitizeStops(stops)
	g.repaint()
}

func (g *AnalogGauge) SetNeedleColor(c color.Color) {
	g.cfg.NeedleColor = c
	if !g.dragActive {
		g.needleColor = c
	}
	g.repaint()
}

func (g *AnalogGauge) SetNeedleColorDrag(c color.Color) {
	g.cfg.NeedleColorDrag = c
	if g.dragActive {
		g.needleColor = c
	}
	g.repaint()
}

func (g *AnalogGauge) SetScaleTextColor(c color.Color) {
	g.cfg.ScaleTextColor = c
	g.repaint()
}

func (g *AnalogGauge) SetValueTextColor(c color.Color) {
	g.cfg.ValueTextColor = c
	g.repaint()
}

func (g *AnalogGauge) SetCenterPointColor(c color.Color) {
	g.cfg.CenterPointColor = c
	g.repaint()
}

func (g *AnalogGauge) SetSnapZone(fraction float64) {
	g.cfg.SnapZone = fraction
}

func (g *AnalogGauge) SetBandVisible(show bool) {
	g.showBand = show
	g.repaint()
}

func (g *AnalogGauge) SetMinorTicksVisible(show bool) {
	g.showMinorTicks = show
	g.repaint()
}

func (g *AnalogGauge) SetMajorTicksVisible(show bool) {
	g.showMajorTicks = show
	g.repaint()
}

func (g *AnalogGauge) SetScaleTextVisible(show bool) {
	g.showScaleText = show
	g.repaint()
}

func (g *AnalogGauge) SetValueTextVisible(show bool) {
	g.showValueText = show
	g.repaint()
}

func (g *AnalogGauge) SetNeedleVisible(show bool) {
	g.showNeedle = show
	g.repaint()
}

func (g *AnalogGauge) SetCenterPointVisible(show bool) {
	g.showCenterPoint = show
	g.repaint()
}

// SetBarGraphStyle switches the band between always showing the full
// configured span (true) and sweeping proportionally to the current
// value (false).
func (g *AnalogGauge) SetBarGraphStyle(enabled bool) {
	g.barGraphStyle = enabled
	g.repaint()
}

// Close stops the periodic repaint tick, if one was configured.
func (g *AnalogGauge) Close() {
	if g.stopTimer != nil {
		close(g.stopTimer)
		g.stopTimer = nil
	}
}

func (g *AnalogGauge) runTimer() {
	t := time.NewTicker(timerInterval)
	defer t.Stop()
	for {
		select {
		case <-g.stopTimer:
			return
		case <-t.C:
			if fyne.CurrentApp() == nil {
				continue
			}
			fyne.Do(g.refreshNow)
		}
	}
}

// repaint schedules a redraw after a state change. In timer mode the
// periodic tick picks the change up instead.
func (g *AnalogGauge) repaint() {
	if g.cfg.UseTimerEvent {
		return
	}
	g.refreshNow()
}

func (g *AnalogGauge) refreshNow() {
	g.syncText()
	if g.size.Width > 0 && g.size.Height > 0 {
		g.layoutText(g.size)
	}
	canvas.Refresh(g.scaleRaster)
	canvas.Refresh(g.needleRaster)
	for _, l := range g.labels {
		canvas.Refresh(l)
	}
	canvas.Refresh(g.titleText)
	canvas.Refresh(g.valueText)
}

// rebuildLabels recreates the scale number objects after a tick or bound
// change. One label per major tick boundary, endpoints included.
func (g *AnalogGauge) rebuildLabels() {
	g.labels = make([]*canvas.Text, g.cfg.MajorTicks+1)
	for i := range g.labels {
		l := &canvas.Text{Color: g.cfg.ScaleTextColor, TextSize: initialScaleFontSize}
		l.TextStyle.Monospace = true
		l.Alignment = fyne.TextAlignCenter
		g.labels[i] = l
	}
	g.labelsStale = false
	g.objectsStale = true
}

// syncText pushes current state into the text objects.
func (g *AnalogGauge) syncText() {
	if g.labelsStale {
		g.rebuildLabels()
	}
	vals := g.labelValues()
	for i, l := range g.labels {
		l.Text = strconv.Itoa(vals[i])
		if g.scaleFontSize > 0 {
			l.TextSize = g.scaleFontSize
		}
		l.Color = g.cfg.ScaleTextColor
		if g.showScaleText {
			l.Show()
		} else {
			l.Hide()
		}
	}
	g.valueText.Text = strconv.Itoa(int(g.value))
	if g.valueFontSize > 0 {
		g.valueText.TextSize = g.valueFontSize
	}
	if g.scaleFontSize > 0 {
		g.titleText.TextSize = g.scaleFontSize
	}
	g.titleText.Color = g.cfg.ScaleTextColor
	g.valueText.Color = g.cfg.ValueTextColor
	if g.showValueText {
		g.valueText.Show()
	} else {
		g.valueText.Hide()
	}
}
