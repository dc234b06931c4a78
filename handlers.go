package respimg

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/respimg/gallery"
	"github.com/eringen/respimg/picture"
	"github.com/eringen/respimg/views"
)

// siteView returns the site settings for a page at the given path below
// the configured base URL.
func (a *App) siteView(pathSegments ...string) views.SiteConfig {
	return views.SiteConfig{Name: a.Config.Name, URL: BuildURL(a.Config.URL, pathSegments...)}
}

func (a *App) handleHome(c echo.Context) error {
	g, err := a.Gallery.Get()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.siteView(), g))
}

// handlePicture renders one gallery section. ?hover=1 renders the hovering
// state; htmx requests get the fragment, everything else a full page with
// just that section in the same state.
func (a *App) handlePicture(c echo.Context) error {
	item, err := a.lookupItem(c)
	if err != nil {
		return err
	}
	state := hoverState(c.QueryParam("hover"))
	if c.Request().Header.Get("HX-Request") == "true" {
		return Render(c, a.Views.Picture(item, state))
	}
	return Render(c, a.Views.PicturePage(a.siteView("pictures", item.Slug), item, state))
}

// handlePictureCode returns the generated markup as plain text.
func (a *App) handlePictureCode(c echo.Context) error {
	item, err := a.lookupItem(c)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, item.Picture.Markup(hoverState(c.QueryParam("hover"))))
}

func (a *App) lookupItem(c echo.Context) (gallery.Item, error) {
	g, err := a.Gallery.Get()
	if err != nil {
		return gallery.Item{}, err
	}
	item, ok := g.Lookup(c.Param("slug"))
	if !ok {
		return gallery.Item{}, echo.NewHTTPError(http.StatusNotFound)
	}
	return item, nil
}

func hoverState(v string) picture.HoverState {
	var h picture.HoverState
	if on, err := strconv.ParseBool(v); err == nil && on {
		h.Enter()
	}
	return h
}

func (a *App) handleScript(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/respimg.js")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", data)
}

func handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
