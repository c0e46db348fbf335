package colormodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Black is the fallback color substituted for malformed input.
const Black = "#000000"

// White is the picker's initial color.
const White = "#FFFFFF"

// RGB represents a color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// CMYK represents a color in the subtractive CMYK model, each component a
// percentage from 0 to 100.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// HexToRGB parses a color written as exactly six hex digits with an optional
// leading '#'. Case is ignored.
//
// Returns ok=false for anything else (wrong length, non-hex digits, short
// "#FFF" forms). Callers treat that as "use a default", never as a fault.
func HexToRGB(hex string) (rgb RGB, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// RGBToHex formats a color in canonical "#RRGGBB" uppercase form.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Normalize returns the canonical form of a hex color, or ok=false when the
// input does not parse.
func Normalize(hex string) (string, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return RGBToHex(rgb), true
}

// NormalizeOr returns the canonical form of hex, or fallback when hex does
// not parse.
func NormalizeOr(hex, fallback string) string {
	if n, ok := Normalize(hex); ok {
		return n
	}
	return fallback
}

// RGBToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Achromatic input (r == g == b) yields H=0 and S=0. The final values are
// rounded to the nearest integer; a hue that rounds up to 360 wraps to 0.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/d
	default:
		h = 4.0 + (rf-gf)/d
	}
	h *= 60

	return HSL{
		H: round(h) % 360,
		S: round(s * 100),
		L: round(l * 100),
	}
}

// RGBToCMYK converts 8-bit RGB values to CMYK percentages.
//
// K is 1 minus the brightest normalized channel. Pure black (K = 1) reports
// C = M = Y = 0 instead of dividing by zero.
func RGBToCMYK(r, g, b uint8) CMYK {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		return CMYK{K: 100}
	}

	return CMYK{
		C: round((1 - rf - k) / (1 - k) * 100),
		M: round((1 - gf - k) / (1 - k) * 100),
		Y: round((1 - bf - k) / (1 - k) * 100),
		K: round(k * 100),
	}
}

// HSLToHex converts integer HSL values back to a canonical hex string.
//
// Hue is taken modulo 360; saturation and lightness are percentages. Each
// channel is rounded to the nearest 8-bit value.
func HSLToHex(h, s, l int) string {
	hf := math.Mod(float64(h), 360)
	if hf < 0 {
		hf += 360
	}
	lf := float64(l) / 100
	a := float64(s) * math.Min(lf, 1-lf) / 100

	f := func(n float64) uint8 {
		k := math.Mod(n+hf/30, 12)
		v := lf - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return clamp8(math.Round(255 * v))
	}

	return RGBToHex(RGB{R: f(0), G: f(8), B: f(4)})
}

// String formats the components the way the picker displays them: "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// String formats the components as "h°, s%, l%".
func (c HSL) String() string {
	return fmt.Sprintf("%d°, %d%%, %d%%", c.H, c.S, c.L)
}

// String formats the components as "c%, m%, y%, k%".
func (c CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp8(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
