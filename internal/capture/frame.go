package capture

import (
	"fmt"
	"image"
	"time"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/colorpick/internal/colormodel"
)

// Frame is the static raster a capture session samples from.
//
// A Frame owns a private RGBA copy of the captured image and is never
// mutated after construction, so it can be read from any goroutine.
type Frame struct {
	img      *image.RGBA
	acquired time.Time
}

// NewFrame copies img into an RGBA raster.
//
// The copy decouples the frame from the grabber's buffer and gives Sample a
// constant-time pixel read regardless of the source color model.
func NewFrame(img image.Image) *Frame {
	return &Frame{
		img:      clone.AsRGBA(img),
		acquired: time.Now(),
	}
}

// Bounds returns the frame's pixel rectangle.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Bounds()
}

// Acquired returns when the frame was captured.
func (f *Frame) Acquired() time.Time {
	return f.acquired
}

// Image returns the frame raster. Callers must not modify it.
func (f *Frame) Image() image.Image {
	return f.img
}

// Sample returns the color of the pixel at (x, y).
//
// Returns an error if the coordinates fall outside the frame. Alpha is
// ignored; screenshots are opaque.
func (f *Frame) Sample(x, y int) (colormodel.RGB, error) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return colormodel.RGB{}, fmt.Errorf("coordinates (%d,%d) outside frame bounds", x, y)
	}

	c := f.img.RGBAAt(x, y)
	return colormodel.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// SampleHex is Sample formatted as a canonical hex string.
func (f *Frame) SampleHex(x, y int) (string, error) {
	rgb, err := f.Sample(x, y)
	if err != nil {
		return "", err
	}
	return colormodel.RGBToHex(rgb), nil
}
