package respimg

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/respimg/gallery"
	"github.com/eringen/respimg/picture"
)

// GalleryCache holds the compiled gallery and reloads it from disk when the
// TTL has passed. With no path it serves the built-in gallery forever.
type GalleryCache struct {
	mu       sync.RWMutex
	gallery  *gallery.Gallery
	fetched  time.Time
	ttl      time.Duration
	path     string
	resolver *picture.Resolver
	logger   *zap.Logger
}

// NewGalleryCache creates a GalleryCache compiling against res.
func NewGalleryCache(res *picture.Resolver, path string, ttl time.Duration, logger *zap.Logger) *GalleryCache {
	return &GalleryCache{resolver: res, path: path, ttl: ttl, logger: logger}
}

func (c *GalleryCache) valid() bool {
	if c.gallery == nil {
		return false
	}
	return c.path == "" || time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *GalleryCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *GalleryCache) load() error {
	if c.valid() {
		return nil
	}
	f, err := c.source()
	if err != nil {
		return err
	}
	g, err := f.Compile(c.resolver)
	if err != nil {
		return err
	}
	c.gallery = g
	c.fetched = time.Now()
	c.logger.Debug("gallery loaded", zap.String("path", c.path), zap.Int("sections", len(g.Items)))
	return nil
}

func (c *GalleryCache) source() (*gallery.File, error) {
	if c.path == "" {
		return gallery.Default(), nil
	}
	return gallery.Load(c.path)
}

// Get returns the compiled gallery, reloading it if stale. A failed reload
// keeps serving the previous gallery; the error only surfaces when there is
// nothing to fall back to.
func (c *GalleryCache) Get() (*gallery.Gallery, error) {
	c.mu.RLock()
	if c.valid() {
		g := c.gallery
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		if c.gallery == nil {
			return nil, err
		}
		c.logger.Warn("gallery reload failed, serving previous", zap.String("path", c.path), zap.Error(err))
		c.fetched = time.Now()
	}
	return c.gallery, nil
}
