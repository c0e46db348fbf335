package colormodel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV represents a color in HSV (Hue, Saturation, Value) color space.
type HSV struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent
}

// Lab represents a color in CIE L*a*b* space (D65 white point), rounded to
// two decimals.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Description contains a color value in every representation the picker
// shows.
//
// All fields are derived from Hex; a Description is a view, never a source
// of truth.
type Description struct {
	Hex       string    `json:"hex"`       // Canonical "#RRGGBB"
	RGB       RGB       `json:"rgb"`       // 8-bit components
	HSL       HSL       `json:"hsl"`       // Rounded HSL
	CMYK      CMYK      `json:"cmyk"`      // Rounded CMYK percentages
	HSV       HSV       `json:"hsv"`       // Rounded HSV
	Lab       Lab       `json:"lab"`       // CIE L*a*b*
	Harmonies [3]string `json:"harmonies"` // Complement, split left, split right
	Contrast  Contrast  `json:"contrast"`  // Readable text color on this swatch
}

// Describe computes every encoding of hex.
//
// Malformed input is described as black, mirroring the fallback the picker
// applies before rendering.
func Describe(hex string) Description {
	rgb, ok := HexToRGB(hex)
	if !ok {
		rgb = RGB{}
	}
	canonical := RGBToHex(rgb)

	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	h, s, v := c.Hsv()
	l, a, b := c.Lab()

	return Description{
		Hex:  canonical,
		RGB:  rgb,
		HSL:  RGBToHSL(rgb.R, rgb.G, rgb.B),
		CMYK: RGBToCMYK(rgb.R, rgb.G, rgb.B),
		HSV: HSV{
			H: round(h) % 360,
			S: round(s * 100),
			V: round(v * 100),
		},
		Lab: Lab{
			L: round2(l * 100),
			A: round2(a * 100),
			B: round2(b * 100),
		},
		Harmonies: Harmonies(canonical),
		Contrast:  ContrastColor(canonical),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
