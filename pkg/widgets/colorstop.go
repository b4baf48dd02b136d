package widgets

import (
	"image/color"
	"math"

	"github.com/opendash/cardash/pkg/common"
)

// Transparent is the degenerate single-stop gradient used when a caller
// hands us an unusable stop list. It renders no visible band.
var Transparent = []ColorStop{{Position: 0, Color: color.NRGBA{}}}

// SanitizeStops validates a gradient definition. Stops must be in [0,1]
// with non-decreasing positions; anything else degrades to a single fully
// transparent stop instead of failing.
func SanitizeStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return Transparent
	}
	last := 0.0
	for _, s := range stops {
		if s.Position < 0 || s.Position > 1 || s.Position < last || s.Color == nil {
			return Transparent
		}
		last = s.Position
	}
	return stops
}

// StopsColorAt returns the gradient color at fraction t, interpolating
// linearly between the surrounding stops. t outside [0,1] is clamped.
func StopsColorAt(stops []ColorStop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	t = common.Clamp(t, 0, 1)
	if t <= stops[0].Position {
		return ToNRGBA(stops[0].Color)
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Position {
			prev, next := stops[i-1], stops[i]
			span := next.Position - prev.Position
			if span == 0 {
				return ToNRGBA(next.Color)
			}
			return lerpColor(ToNRGBA(prev.Color), ToNRGBA(next.Color), (t-prev.Position)/span)
		}
	}
	return ToNRGBA(stops[len(stops)-1].Color)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(common.Lerp(float64(a.R), float64(b.R), t))),
		G: uint8(math.Round(common.Lerp(float64(a.G), float64(b.G), t))),
		B: uint8(math.Round(common.Lerp(float64(a.B), float64(b.B), t))),
		A: uint8(math.Round(common.Lerp(float64(a.A), float64(b.A), t))),
	}
}

func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
