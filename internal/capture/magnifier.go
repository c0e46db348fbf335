package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// MagnifierOptions controls the loupe drawn around the cursor.
type MagnifierOptions struct {
	// Size is the requested loupe width and height in output pixels.
	Size int `json:"size" yaml:"size"`

	// Zoom is the integer magnification factor.
	Zoom int `json:"zoom" yaml:"zoom"`
}

// DefaultMagnifier is a 128px loupe at 3x.
var DefaultMagnifier = MagnifierOptions{Size: 128, Zoom: 3}

// Magnification is a zoomed crop of the frame centered on the cursor.
type Magnification struct {
	Center      image.Point `json:"center"`
	Hex         string      `json:"hex"` // Color under the cursor
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	ImageBase64 string      `json:"image_base64"`
	MimeType    string      `json:"mime_type"`
}

// span returns the number of source pixels shown across the loupe. It is
// always odd so the cursor pixel sits in the middle.
func (o MagnifierOptions) span() int {
	n := o.Size / o.Zoom
	if n < 1 {
		n = 1
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Magnify renders the loupe image for a cursor at center.
//
// The source square is span x span pixels around center, where span is
// Size/Zoom rounded up to an odd number. Parts of the square that fall off
// the frame are transparent. The square is scaled by Zoom with
// nearest-neighbor sampling so individual pixels stay crisp.
func (f *Frame) Magnify(center image.Point, opts MagnifierOptions) (*image.NRGBA, error) {
	if opts.Size <= 0 || opts.Zoom <= 0 {
		return nil, fmt.Errorf("invalid magnifier options: size=%d zoom=%d", opts.Size, opts.Zoom)
	}
	if !center.In(f.img.Rect) {
		return nil, fmt.Errorf("magnifier center (%d,%d) outside frame bounds", center.X, center.Y)
	}

	span := opts.span()
	half := span / 2
	want := image.Rect(center.X-half, center.Y-half, center.X-half+span, center.Y-half+span)
	visible := want.Intersect(f.img.Rect)

	canvas := imaging.New(span, span, color.NRGBA{})
	canvas = imaging.Paste(canvas, imaging.Crop(f.img, visible), visible.Min.Sub(want.Min))

	return imaging.Resize(canvas, span*opts.Zoom, span*opts.Zoom, imaging.NearestNeighbor), nil
}

// MagnifyEncoded renders the loupe and encodes it as base64 PNG.
func (f *Frame) MagnifyEncoded(center image.Point, opts MagnifierOptions) (*Magnification, error) {
	loupe, err := f.Magnify(center, opts)
	if err != nil {
		return nil, err
	}
	hex, err := f.SampleHex(center.X, center.Y)
	if err != nil {
		return nil, err
	}
	data, err := EncodePNG(loupe)
	if err != nil {
		return nil, err
	}

	return &Magnification{
		Center:      center,
		Hex:         hex,
		Width:       loupe.Bounds().Dx(),
		Height:      loupe.Bounds().Dy(),
		ImageBase64: data,
		MimeType:    "image/png",
	}, nil
}

// EncodePNG encodes img as a base64 PNG string.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
