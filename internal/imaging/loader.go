package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of loaded images to avoid
// redundant disk reads when the same file is processed more than once
// (for example by both the palette and find paths of the CLI).
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(). ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached. PNG, JPEG, GIF, TIFF, and BMP inputs are supported; JPEG EXIF
// orientation is applied during decode.
//
// The image is cached using the exact path string provided. Different
// paths to the same file (e.g., relative vs absolute) result in separate
// cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Downsample scales img down so that neither dimension exceeds maxDim,
// preserving the aspect ratio. Images already within the limit, and any
// maxDim below 1, are returned unchanged.
//
// Clustering cost is linear in the pixel count, so downsampling large
// inputs before extraction trades a little palette accuracy for a large
// speedup.
func Downsample(img image.Image, maxDim int) image.Image {
	if maxDim < 1 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
