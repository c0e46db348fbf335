package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/kbinani/screenshot"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// Grabber acquires the raster a capture session samples from.
type Grabber interface {
	Grab(ctx context.Context) (image.Image, error)
}

// GrabberFunc adapts a function to the Grabber interface.
type GrabberFunc func(ctx context.Context) (image.Image, error)

// Grab calls f(ctx).
func (f GrabberFunc) Grab(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// ScreenGrabber captures one physical display.
//
// Display is the 0-based display index; 0 is the primary display. Capture
// fails when the OS denies screen access or the display is not active.
type ScreenGrabber struct {
	Display int
}

// Grab captures the configured display.
func (g ScreenGrabber) Grab(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays")
	}
	if g.Display < 0 || g.Display >= n {
		return nil, fmt.Errorf("display %d not available (%d active)", g.Display, n)
	}

	img, err := screenshot.CaptureDisplay(g.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to capture display %d: %w", g.Display, err)
	}
	return img, nil
}

// FileGrabber reads a screenshot that another tool already wrote to disk.
//
// Without a Cache the file is decoded on every Grab. With one, it is decoded
// again only after it changes, so a restarted session still sees the
// current contents. Supported formats are PNG, JPEG, GIF, and BMP.
type FileGrabber struct {
	Path  string
	Cache *ImageCache
}

// Grab returns the file's image.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, GIF, or BMP image
func (g FileGrabber) Grab(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Cache != nil {
		return g.Cache.Load(g.Path)
	}
	return decodeFile(g.Path)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
