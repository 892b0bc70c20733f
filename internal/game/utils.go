package game

import (
	"fmt"
	"math"
	"math/rand"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// randomColor picks a saturated flash color with a random hue.
func randomColor(rng *rand.Rand) Color {
	r, g, b := hsvToRgb(rng.Float64()*360, 0.8, 0.9)
	return RGB565(r, g, b)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatHundredths formats elapsed time as SS.hh
func formatHundredths(h int) string {
	return fmt.Sprintf("%02d.%02d", h/100, h%100)
}

// FormatTime is formatHundredths for frontends.
func FormatTime(h int) string { return formatHundredths(h) }
