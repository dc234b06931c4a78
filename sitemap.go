package respimg

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// handleSitemap lists the home page and one page per gallery section.
func (a *App) handleSitemap(c echo.Context) error {
	g, err := a.Gallery.Get()
	if err != nil {
		return err
	}
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base)}}
	for _, slug := range g.Slugs() {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "pictures", slug)})
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
