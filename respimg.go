// Package respimg serves responsive image demos built with Go, Echo, and templ.
// It resolves gallery entries into <picture> markup pointed at an imgix
// source and serves them as full pages or htmx fragments.
//
// Users may replace any page template through the ViewFuncs struct;
// respimg handles the routing, middleware, and picture resolution.
package respimg

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/respimg/gallery"
	"github.com/eringen/respimg/imgix"
	"github.com/eringen/respimg/picture"
	"github.com/eringen/respimg/views"
)

// ViewFuncs holds the templ components the server renders pages with.
type ViewFuncs struct {
	Home        func(site views.SiteConfig, g *gallery.Gallery) templ.Component
	Picture     func(item gallery.Item, state picture.HoverState) templ.Component
	PicturePage func(site views.SiteConfig, item gallery.Item, state picture.HoverState) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns the built-in page templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Picture:     views.PictureSection,
		PicturePage: views.PicturePage,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v ViewFuncs) withDefaults() ViewFuncs {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.Picture == nil {
		v.Picture = d.Picture
	}
	if v.PicturePage == nil {
		v.PicturePage = d.PicturePage
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	return v
}

// App is the central respimg application. It wires together the imgix
// client, the picture resolver, the gallery, handlers, and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Logger   *zap.Logger
	Resolver *picture.Resolver
	Gallery  *GalleryCache
	Views    ViewFuncs

	customRoutes []func(*App)
}

// New creates an App from cfg. The imgix client and resolver are built
// here so invalid domains or breakpoints fail before the server starts.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: zap.NewNop(),
		Views:  DefaultViews(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Views = a.Views.withDefaults()

	res, err := NewResolver(cfg)
	if err != nil {
		return nil, err
	}
	a.Resolver = res

	a.Gallery = NewGalleryCache(a.Resolver, cfg.GalleryPath, cfg.GalleryTTL, a.Logger)
	if _, err := a.Gallery.Get(); err != nil {
		return nil, fmt.Errorf("respimg: load gallery: %w", err)
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// NewResolver builds the imgix client and picture resolver described by cfg.
// The client is created once and shared by every render.
func NewResolver(cfg SiteConfig) (*picture.Resolver, error) {
	cfg.setDefaults()
	client, err := imgix.NewClient(cfg.ImgixDomain,
		imgix.WithHTTPS(!cfg.ImgixInsecure),
		imgix.WithLibraryParam(cfg.ImgixLibraryParam),
	)
	if err != nil {
		return nil, fmt.Errorf("respimg: %w", err)
	}
	res, err := picture.NewResolver(client, picture.Breakpoints{
		Small: cfg.BreakpointSmall,
		Large: cfg.BreakpointLarge,
	})
	if err != nil {
		return nil, fmt.Errorf("respimg: %w", err)
	}
	return res, nil
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.Logger.Info("starting server",
		zap.String("addr", a.Config.Addr),
		zap.String("imgix_domain", a.Config.ImgixDomain))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/respimg.js", a.handleScript)
	e.GET("/robots.txt", handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome)
	e.GET("/pictures/:slug/", a.handlePicture)
	e.GET("/pictures/:slug/code/", a.handlePictureCode)
}
