package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// ColorStop is one point of the scale band gradient: a fraction along the
// configured sweep and the color at that fraction.
type ColorStop struct {
	Position float64
	Color    color.Color
}

// GaugeConfig holds the construction-time settings for a gauge instance.
// Zero values get sensible defaults applied by the widget constructors.
type GaugeConfig struct {
	Title string

	Min, Max float64

	// StartAngle is the scale start in degrees measured from the positive
	// x-axis, clockwise in screen coordinates. AngleSpan is the total sweep.
	StartAngle  float64
	AngleSpan   float64
	AngleOffset float64

	MajorTicks int // primary scale subdivisions, floored to 1
	MinorTicks int // subdivisions between major ticks, floored to 1

	// SnapZone is the fraction of the value range around the needle within
	// which a drag gesture grabs it.
	SnapZone float64

	ColorStops []ColorStop

	NeedleColor      color.Color
	NeedleColorDrag  color.Color
	ScaleTextColor   color.Color
	ValueTextColor   color.Color
	CenterPointColor color.Color

	MinSize fyne.Size

	// UseTimerEvent selects a fixed 10ms repaint tick instead of repainting
	// on every accepted change. Decided once at construction.
	UseTimerEvent bool

	// OnValueChanged is fired on every accepted value change with the
	// integer-truncated current value.
	OnValueChanged func(int)
}
