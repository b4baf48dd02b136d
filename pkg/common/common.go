package common

import "math"

const (
	PiDiv180 = math.Pi / 180

	OneHalf    = 1.0 / 2.0  // 0.5
	OneThird   = 1.0 / 3.0  // 0.3333333333333333
	OneFourth  = 1.0 / 4.0  // 0.25
	OneFifth   = 1.0 / 5.0  // 0.2
	OneSixth   = 1.0 / 6.0  // 0.16666666666666666
	OneEight   = 1.0 / 8.0  // 0.125
	OneTenth   = 1.0 / 10.0 // 0.1
	OneTwelfth = 1.0 / 12.0 // 0.08333333333333333
)

// Clamp limits v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v <= min {
		return min
	}
	if v >= max {
		return max
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
