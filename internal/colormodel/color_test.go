package colormodel

import (
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		want   RGB
		wantOK bool
	}{
		{"uppercase with hash", "#FF8040", RGB{255, 128, 64}, true},
		{"lowercase with hash", "#ff8040", RGB{255, 128, 64}, true},
		{"no hash", "3498db", RGB{52, 152, 219}, true},
		{"black", "#000000", RGB{0, 0, 0}, true},
		{"short form rejected", "#FFF", RGB{}, false},
		{"too long", "#FF804000", RGB{}, false},
		{"non hex digit", "#GG0000", RGB{}, false},
		{"sign rejected", "#+FFFFF", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"double hash", "##FF0000", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToRGB(tt.hex)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q): got %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip_AllChannels(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 3 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				out, ok := HexToRGB(RGBToHex(in))
				if !ok || out != in {
					t.Fatalf("round trip of %+v: got %+v (ok=%v)", in, out, ok)
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize("ab12cd")
	if !ok || got != "#AB12CD" {
		t.Errorf("Normalize: got %q (ok=%v), want #AB12CD", got, ok)
	}

	if _, ok := Normalize("nope"); ok {
		t.Error("Normalize should reject malformed input")
	}

	if got := NormalizeOr("nope", "#FFFFFF"); got != "#FFFFFF" {
		t.Errorf("NormalizeOr fallback: got %q", got)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{"pure red", RGB{255, 0, 0}, HSL{0, 100, 50}},
		{"pure green", RGB{0, 255, 0}, HSL{120, 100, 50}},
		{"pure blue", RGB{0, 0, 255}, HSL{240, 100, 50}},
		{"magenta", RGB{255, 0, 255}, HSL{300, 100, 50}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 100}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 50}},
		{"orange", RGB{255, 128, 64}, HSL{20, 100, 63}},
		{"flat blue", RGB{52, 152, 219}, HSL{204, 70, 53}},
		{"navy", RGB{0x12, 0x34, 0x56}, HSL{210, 65, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb.R, tt.rgb.G, tt.rgb.B)
			if got != tt.want {
				t.Errorf("RGBToHSL(%v): got %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL_Ranges(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hsl := RGBToHSL(uint8(r), uint8(g), uint8(b))
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("hue out of range for (%d,%d,%d): %d", r, g, b, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("s/l out of range for (%d,%d,%d): %+v", r, g, b, hsl)
				}
			}
		}
	}
}

func TestRGBToCMYK(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want CMYK
	}{
		{"black avoids division by zero", RGB{0, 0, 0}, CMYK{0, 0, 0, 100}},
		{"white", RGB{255, 255, 255}, CMYK{0, 0, 0, 0}},
		{"red", RGB{255, 0, 0}, CMYK{0, 100, 100, 0}},
		{"gray", RGB{128, 128, 128}, CMYK{0, 0, 0, 50}},
		{"flat blue", RGB{52, 152, 219}, CMYK{76, 31, 0, 14}},
		{"navy", RGB{0x12, 0x34, 0x56}, CMYK{79, 40, 0, 66}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToCMYK(tt.rgb.R, tt.rgb.G, tt.rgb.B)
			if got != tt.want {
				t.Errorf("RGBToCMYK(%v): got %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

// channelDrift returns the largest per-channel difference between two colors.
func channelDrift(a, b RGB) int {
	d := 0
	for _, pair := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		diff := int(pair[0]) - int(pair[1])
		if diff < 0 {
			diff = -diff
		}
		if diff > d {
			d = diff
		}
	}
	return d
}

func TestHSLToHex_RecoversGraysAndPrimaries(t *testing.T) {
	var samples []RGB
	for v := 0; v < 256; v++ {
		samples = append(samples, RGB{uint8(v), uint8(v), uint8(v)})
	}
	samples = append(samples,
		RGB{255, 0, 0}, RGB{0, 255, 0}, RGB{0, 0, 255},
		RGB{255, 255, 0}, RGB{0, 255, 255}, RGB{255, 0, 255},
	)

	for _, in := range samples {
		hsl := RGBToHSL(in.R, in.G, in.B)
		out, _ := HexToRGB(HSLToHex(hsl.H, hsl.S, hsl.L))
		if d := channelDrift(in, out); d > 1 {
			t.Errorf("%s -> %+v -> %s drifted by %d", RGBToHex(in), hsl, RGBToHex(out), d)
		}
	}
}

func TestHSLToHex_BoundedDrift(t *testing.T) {
	// Integer HSL loses precision; over a coarse grid the drift stays small.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				hsl := RGBToHSL(in.R, in.G, in.B)
				out, _ := HexToRGB(HSLToHex(hsl.H, hsl.S, hsl.L))
				if d := channelDrift(in, out); d > 3 {
					t.Fatalf("%s drifted by %d", RGBToHex(in), d)
				}
			}
		}
	}
}

func TestDisplayStrings(t *testing.T) {
	if got := (RGB{255, 0, 0}).String(); got != "255, 0, 0" {
		t.Errorf("RGB.String: got %q", got)
	}
	if got := (HSL{0, 100, 50}).String(); got != "0°, 100%, 50%" {
		t.Errorf("HSL.String: got %q", got)
	}
	if got := (CMYK{0, 100, 100, 0}).String(); got != "0%, 100%, 100%, 0%" {
		t.Errorf("CMYK.String: got %q", got)
	}
}

func TestDescribe(t *testing.T) {
	d := Describe("#ff0000")

	if d.Hex != "#FF0000" {
		t.Errorf("Hex: got %s, want #FF0000", d.Hex)
	}
	if d.HSV != (HSV{0, 100, 100}) {
		t.Errorf("HSV: got %+v, want {0 100 100}", d.HSV)
	}
	if d.Harmonies != [3]string{"#00FFFF", "#00FF80", "#0080FF"} {
		t.Errorf("Harmonies: got %v", d.Harmonies)
	}
	if d.Contrast != ContrastWhite {
		t.Errorf("Contrast: got %s, want white", d.Contrast)
	}

	white := Describe("#FFFFFF")
	if math.Abs(white.Lab.L-100) > 0.01 {
		t.Errorf("white Lab.L: got %v, want 100", white.Lab.L)
	}
}

func TestDescribe_MalformedFallsBackToBlack(t *testing.T) {
	d := Describe("not-a-color")
	if d.Hex != Black {
		t.Errorf("Hex: got %s, want %s", d.Hex, Black)
	}
	if d.CMYK != (CMYK{K: 100}) {
		t.Errorf("CMYK: got %+v", d.CMYK)
	}
}
