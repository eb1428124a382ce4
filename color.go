package colr

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Red         = RGBA{R: 1, G: 0, B: 0, A: 1}
	Green       = RGBA{R: 0, G: 1, B: 0, A: 1}
	Blue        = RGBA{R: 0, G: 0, B: 1, A: 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns alpha-premultiplied components.
	fa := float64(a) / 65535
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: fa,
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
// The RGB components are preserved.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// Lerp performs linear interpolation between two colors in linear sRGB
// space, which produces perceptually correct blending.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	r1, g1, b1 := srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)
	r2, g2, b2 := srgbToLinear(other.R), srgbToLinear(other.G), srgbToLinear(other.B)
	return RGBA{
		R: linearToSRGB(r1 + t*(r2-r1)),
		G: linearToSRGB(g1 + t*(g2-g1)),
		B: linearToSRGB(b1 + t*(b2-b1)),
		A: c.A + t*(other.A-c.A),
	}
}

// srgbToLinear converts an sRGB component to linear light.
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear-light component to sRGB.
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
