package colormodel

// Harmony hue rotations, in degrees.
const (
	complementShift      = 180
	splitComplementLeft  = 150
	splitComplementRight = 210
)

// Contrast names the text color that stays readable on top of a swatch.
type Contrast string

const (
	ContrastBlack Contrast = "black"
	ContrastWhite Contrast = "white"
)

// contrastThreshold is the YIQ luminance at or above which black text is used.
const contrastThreshold = 128

// Harmonies returns the complement and the two split complements of hex, in
// that order.
//
// The base color is converted to HSL, its hue is rotated by 180°, 150° and
// 210° (mod 360), and each result is converted back to hex at the original
// saturation and lightness. Malformed input yields three black colors.
func Harmonies(hex string) [3]string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return [3]string{Black, Black, Black}
	}

	hsl := RGBToHSL(rgb.R, rgb.G, rgb.B)
	shift := func(deg int) int {
		return (hsl.H + deg + 360) % 360
	}

	return [3]string{
		HSLToHex(shift(complementShift), hsl.S, hsl.L),
		HSLToHex(shift(splitComplementLeft), hsl.S, hsl.L),
		HSLToHex(shift(splitComplementRight), hsl.S, hsl.L),
	}
}

// ContrastColor picks black or white text for a background of hex.
//
// Luminance is the YIQ weighted sum 0.299r + 0.587g + 0.114b; values of 128
// and above select black. Malformed input selects black.
func ContrastColor(hex string) Contrast {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return ContrastBlack
	}
	// Scaled by 1000 to stay in integers.
	yiq := int(rgb.R)*299 + int(rgb.G)*587 + int(rgb.B)*114
	if yiq >= contrastThreshold*1000 {
		return ContrastBlack
	}
	return ContrastWhite
}
