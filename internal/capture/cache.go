package capture

import (
	"fmt"
	"image"
	"os"
	"sync"
	"time"
)

// ImageCache keeps decoded screenshot files in memory between sessions.
//
// A file is decoded again only when its modification time or size changes,
// so a screenshot rewritten in place by another tool is picked up on the
// next Load while an unchanged one is not re-decoded for every session.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := capture.NewImageCache()
//	grabber := capture.FileGrabber{Path: "/tmp/screen.png", Cache: cache}
//	img, err := grabber.Grab(ctx)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

type cachedImage struct {
	img     image.Image
	modTime time.Time
	size    int64
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load returns the decoded image at path, reading the file only when it is
// not cached or has changed on disk.
//
// The image is cached under the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) are separate entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, GIF, or BMP image
func (c *ImageCache) Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = cachedImage{img: img, modTime: info.ModTime(), size: info.Size()}
	c.mu.Unlock()

	return img, nil
}

// Evict removes path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
