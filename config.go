package respimg

import (
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a respimg site.
type SiteConfig struct {
	Name string // Site name (default "Responsive Images")
	URL  string // Canonical URL (default "http://localhost:3000")
	Addr string // Listen address (default ":3000")

	ImgixDomain       string // imgix source domain (default "saatva-imgix-poc.imgix.net")
	ImgixInsecure     bool   // Build http:// URLs instead of https://
	ImgixLibraryParam bool   // Append ixlib to generated URLs

	BreakpointSmall int // mobile/tablet boundary in px (default 768)
	BreakpointLarge int // tablet/desktop boundary in px (default 1024)

	GalleryPath string        // YAML gallery file; empty uses the built-in gallery
	GalleryTTL  time.Duration // Reload interval for GalleryPath (default 1min)

	LogLevel string // debug, info, warn, error (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Responsive Images"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ImgixDomain == "" {
		c.ImgixDomain = "saatva-imgix-poc.imgix.net"
	}
	if c.BreakpointSmall == 0 {
		c.BreakpointSmall = 768
	}
	if c.BreakpointLarge == 0 {
		c.BreakpointLarge = 1024
	}
	if c.GalleryTTL == 0 {
		c.GalleryTTL = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads a SiteConfig from the environment. A .env file in the
// working directory is loaded first if present.
func LoadConfig() SiteConfig {
	_ = godotenv.Load()

	cfg := SiteConfig{
		Name:              EnvOr("RESPIMG_SITE_NAME", ""),
		URL:               EnvOr("RESPIMG_SITE_URL", ""),
		Addr:              EnvOr("RESPIMG_ADDR", ""),
		ImgixDomain:       EnvOr("RESPIMG_IMGIX_DOMAIN", ""),
		ImgixInsecure:     EnvBool("RESPIMG_IMGIX_INSECURE", false),
		ImgixLibraryParam: EnvBool("RESPIMG_IMGIX_LIBRARY_PARAM", false),
		BreakpointSmall:   EnvInt("RESPIMG_BREAKPOINT_SM", 0),
		BreakpointLarge:   EnvInt("RESPIMG_BREAKPOINT_LG", 0),
		GalleryPath:       EnvOr("RESPIMG_GALLERY", ""),
		GalleryTTL:        EnvDuration("RESPIMG_GALLERY_TTL", 0),
		LogLevel:          EnvOr("RESPIMG_LOG_LEVEL", ""),
	}
	cfg.setDefaults()
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the structured logger (default no-op).
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithViews replaces the page templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
