// Package colors supplies color-vision friendly palettes for the gauge
// warning band.
package colors

import (
	"image/color"
	"strings"

	"github.com/opendash/cardash/pkg/widgets"
)

type VisionMode int

var SupportedVisionModes = [...]string{
	Normal,
	Universal,
	Protanopia,
	Tritanopia,
	Deuteranomaly,
}

const (
	Normal        = "Normal"
	Universal     = "Universal"
	Protanopia    = "Protanopia"
	Tritanopia    = "Tritanopia"
	Deuteranomaly = "Deuteranomaly"
	Unknown       = "Unknown"
)

const (
	ModeNormal        VisionMode = iota // Green → Yellow → Red
	ModeUniversal                       // Blue → Gray → Orange
	ModeProtanopia                      // Blue → White → Brown
	ModeTritanopia                      // Teal → Gray → Red
	ModeDeuteranomaly                   // Blue → Beige → Brown
)

func (m VisionMode) String() string {
	switch m {
	case ModeNormal:
		return Normal
	case ModeUniversal:
		return Universal
	case ModeProtanopia:
		return Protanopia
	case ModeTritanopia:
		return Tritanopia
	case ModeDeuteranomaly:
		return Deuteranomaly
	default:
		return Unknown
	}
}

func StringToVisionMode(s string) VisionMode {
	switch strings.Title(s) {
	case Normal:
		return ModeNormal
	case Universal:
		return ModeUniversal
	case Protanopia:
		return ModeProtanopia
	case Tritanopia:
		return ModeTritanopia
	case Deuteranomaly:
		return ModeDeuteranomaly
	default:
		return ModeNormal
	}
}

// low is the safe zone, high the warning zone.
func palette(mode VisionMode) (low, mid, high color.NRGBA) {
	switch mode {
	case ModeUniversal:
		low = color.NRGBA{33, 102, 172, 255}  // #2166AC
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{255, 165, 0, 255}  // #FFA500
	case ModeProtanopia:
		low = color.NRGBA{5, 113, 176, 255}   // #0571B0
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{150, 75, 0, 255}   // #964B00
	case ModeTritanopia:
		low = color.NRGBA{0, 128, 128, 255}   // #008080
		mid = color.NRGBA{247, 247, 247, 255} // #F7F7F7
		high = color.NRGBA{215, 48, 39, 255}  // #D73027
	case ModeDeuteranomaly:
		low = color.NRGBA{0x4A, 0x90, 0xE2, 255}  // #4A90E2
		mid = color.NRGBA{0xF5, 0xE6, 0xB3, 255}  // #F5E6B3
		high = color.NRGBA{0x8B, 0x45, 0x13, 255} // #8B4513
	default:
		low = color.NRGBA{0, 255, 0, 255}
		mid = color.NRGBA{255, 255, 0, 255}
		high = color.NRGBA{255, 0, 0, 255}
	}
	return low, mid, high
}

// BandStops builds a gauge band gradient for the given vision mode. Stop
// position zero sits at the top of the scale, so the warning color covers
// the last tenth of the arc.
func BandStops(mode VisionMode) []widgets.ColorStop {
	low, mid, high := palette(mode)
	return []widgets.ColorStop{
		{Position: 0, Color: high},
		{Position: 0.1, Color: mid},
		{Position: 0.15, Color: low},
		{Position: 1, Color: color.NRGBA{}},
	}
}
