// Package views holds the default page templates as templ components.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/respimg/gallery"
	"github.com/eringen/respimg/picture"
)

// Layout wraps body in the HTML document shell.
func Layout(meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := &textWriter{w: w}
		t.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		t.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		t.raw("<title>")
		t.text(meta.Title)
		t.raw("</title>")
		if meta.Description != "" {
			t.raw(`<meta name="description" content="`)
			t.text(meta.Description)
			t.raw(`"/>`)
		}
		if meta.URL != "" {
			t.raw(`<link rel="canonical" href="`)
			t.text(meta.URL)
			t.raw(`"/>`)
		}
		t.raw(`<script src="/public/respimg.js" defer></script></head><body><div class="App">`)
		if t.err != nil {
			return t.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		t.raw(`</div></body></html>`)
		return t.err
	})
}

// Home renders the gallery page.
func Home(site SiteConfig, g *gallery.Gallery) templ.Component {
	meta := PageMeta{
		Title:       pageTitle(g.Title, site.Name),
		Description: "Responsive images resolved per device tier",
		URL:         site.URL,
	}
	return Layout(meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := &textWriter{w: w}
		t.raw(`<header class="App-header">`)
		t.element("h1", "", g.Title)
		t.raw(`</header><div class="main">`)
		if t.err != nil {
			return t.err
		}
		for _, item := range g.Items {
			t.raw("<hr/>")
			if t.err != nil {
				return t.err
			}
			if err := PictureSection(item, picture.Resting).Render(ctx, w); err != nil {
				return err
			}
		}
		t.raw(`<div class="spacer"></div></div>`)
		return t.err
	}))
}

// PictureSection renders one gallery item in the given hover state.
func PictureSection(item gallery.Item, state picture.HoverState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := &textWriter{w: w}
		t.raw(`<section class="gallery-section" id="`)
		t.text(item.Slug)
		t.raw(`">`)
		t.element("h2", "", item.Heading)
		t.element("h3", "", item.Subheading)
		if t.err != nil {
			return t.err
		}
		if err := item.Picture.Component(state).Render(ctx, w); err != nil {
			return err
		}
		t.raw(`<p class="gallery-links"><a href="`)
		t.text(PictureURL(item.Slug))
		t.raw(`">Permalink</a> · <a href="`)
		t.text(CodeURL(item.Slug))
		t.raw(`">Markup</a></p></section>`)
		return t.err
	})
}

// PicturePage renders a single gallery item as a full document.
func PicturePage(site SiteConfig, item gallery.Item, state picture.HoverState) templ.Component {
	meta := PageMeta{
		Title:       pageTitle(item.Heading, site.Name),
		Description: item.Subheading,
		URL:         site.URL,
	}
	return Layout(meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := &textWriter{w: w}
		t.raw(`<div class="main">`)
		if t.err != nil {
			return t.err
		}
		if err := PictureSection(item, state).Render(ctx, w); err != nil {
			return err
		}
		t.raw(`<p><a href="/">Back to the gallery</a></p></div>`)
		return t.err
	}))
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return errorPage("Not found", "The page you asked for does not exist.")
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return errorPage("Server error", "Something went wrong rendering this page.")
}

func errorPage(title, message string) templ.Component {
	return Layout(PageMeta{Title: title}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := &textWriter{w: w}
		t.raw(`<div class="main error">`)
		t.element("h1", "", title)
		t.element("p", "", message)
		t.raw(`<p><a href="/">Back to the gallery</a></p></div>`)
		return t.err
	}))
}
