package render

import "image/color"

// Base tones for settled cells. Fresh births fade in from green and fresh
// deaths fade out through red, keyed on the animation phase.
var (
	settled    = rgb(0.9, 0.9, 0.9)
	birthGreen = rgb(0.0, 0.8, 0.0)
	deathRed   = rgb(0.8, 0.0, 0.0)
)

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}

// CellColor returns the quad color for a cell. Alive cells open green and
// settle toward white as the phase completes; dying cells redden on a steeper
// ramp so the tint lands before the shrink finishes.
func CellColor(alive bool, phase float64) color.RGBA {
	if alive {
		return mix(birthGreen, settled, phase)
	}
	return mix(settled, deathRed, phase*2.5)
}
