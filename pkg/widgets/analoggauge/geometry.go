package analoggauge

import (
	"math"

	"fyne.io/fyne/v2"
	"github.com/opendash/cardash/pkg/common"
)

type point struct {
	x, y float64
}

// rescale recomputes everything derived from the widget size. The whole
// instrument is expressed as fractions of the smaller dimension so it
// scales proportionally with its container.
func (g *AnalogGauge) rescale(space fyne.Size) {
	g.size = space
	g.diameter = fyne.Min(space.Width, space.Height)
	g.scaleFontSize = float32(initialScaleFontSize * int(g.diameter) / referenceDiameter)
	g.valueFontSize = float32(initialValueFontSize * int(g.diameter) / referenceDiameter)
}

// Diameter returns the current instrument diameter, the smaller of the
// widget's width and height.
func (g *AnalogGauge) Diameter() float32 { return g.diameter }

// needleRotation is the needle rotation in degrees for value v. The +90
// accounts for the needle polygon's own baseline pointing up.
func (g *AnalogGauge) needleRotation(v float64) float64 {
	return (v-g.cfg.Min)*g.cfg.AngleSpan/(g.cfg.Max-g.cfg.Min) + 90 + g.cfg.StartAngle
}

// bandSweep returns the swept band length in whole degrees. In bar-graph
// style the full span is always drawn; otherwise the sweep is
// proportional to the current value.
func (g *AnalogGauge) bandSweep() int {
	if g.barGraphStyle {
		return int(g.cfg.AngleSpan)
	}
	return int(math.Round(g.cfg.AngleSpan / (g.cfg.Max - g.cfg.Min) * (g.value - g.cfg.Min)))
}

// scalePolygon traces the closed annulus sector for the color band in
// one-degree steps: the outer arc forward, the inner arc back, then a
// closing point. Coordinates are relative to the gauge center.
func (g *AnalogGauge) scalePolygon(outer, inner float64, sweep int) []point {
	pts := make([]point, 0, 2*(sweep+1)+1)
	var x, y float64
	for i := 0; i <= sweep; i++ {
		t := (float64(i) + g.cfg.StartAngle - g.cfg.AngleOffset) * common.PiDiv180
		s, c := math.Sincos(t)
		x, y = outer*c, outer*s
		pts = append(pts, point{x, y})
	}
	for i := 0; i <= sweep; i++ {
		t := (float64(sweep-i) + g.cfg.StartAngle - g.cfg.AngleOffset) * common.PiDiv180
		s, c := math.Sincos(t)
		x, y = inner*c, inner*s
		pts = append(pts, point{x, y})
	}
	pts = append(pts, point{x, y})
	return pts
}

// needlePolygon builds the needle outline from diameter-relative
// coordinates: a base quadrilateral and a tip point, pointing up before
// rotation.
func needlePolygon(diameter float64) []point {
	tip := diameter / 2 * needleScaleFactor
	return []point{
		{4, 30},
		{-4, 30},
		{-2, -tip},
		{0, -tip - 6},
		{2, -tip},
	}
}

// labelValues returns the printed scale numbers, one per major tick
// boundary. The per-division delta is truncated to a whole number, so the
// last label can undershoot Max on ranges that do not divide evenly.
func (g *AnalogGauge) labelValues() []int {
	per := math.Trunc((g.cfg.Max - g.cfg.Min) / float64(g.cfg.MajorTicks))
	vals := make([]int, g.cfg.MajorTicks+1)
	for i := range vals {
		vals[i] = int(g.cfg.Min + per*float64(i))
	}
	return vals
}

// valueTextAngle is the angular midpoint of the unswept gap, opposite the
// scale, where the current value is printed.
func (g *AnalogGauge) valueTextAngle() float64 {
	end := g.cfg.StartAngle + g.cfg.AngleSpan - 360
	return (end-g.cfg.StartAngle)/2 + g.cfg.StartAngle
}

// valueFromPointer maps a pointer position to a raw scale value. The
// second return is false when the pointer sits exactly on the vertical
// center line, where the angle is undefined for this mapping.
func (g *AnalogGauge) valueFromPointer(pos fyne.Position) (float64, bool) {
	dx := float64(pos.X - g.size.Width/2)
	dy := float64(pos.Y - g.size.Height/2)
	if dx == 0 {
		return 0, false
	}
	angle := math.Atan2(dy, dx) / math.Pi * 180
	valueRange := g.cfg.Max - g.cfg.Min
	return math.Mod(angle-g.cfg.StartAngle+720, 360)/(g.cfg.AngleSpan/valueRange) + g.cfg.Min, true
}

// applyDrag runs the snap-zone and wraparound policy for a raw drag
// value. It reports the value to commit and whether the gesture grabbed
// the needle at all.
func (g *AnalogGauge) applyDrag(raw float64) (float64, bool) {
	valueRange := g.cfg.Max - g.cfg.Min
	if raw < g.value-valueRange*g.cfg.SnapZone || raw > g.value+valueRange*g.cfg.SnapZone {
		return 0, false
	}
	switch {
	case raw >= g.cfg.Max && g.lastValue < valueRange/2:
		// gesture wrapped backward past zero
		g.lastValue = g.cfg.Min
		return g.cfg.Min, true
	case raw >= g.cfg.Max && g.lastValue >= g.cfg.Max:
		g.lastValue = g.cfg.Max
		return g.cfg.Max, true
	default:
		g.lastValue = raw
		return raw, true
	}
}
