package views

import (
	"html"
	"io"
	"net/url"
)

// PictureURL returns the site-relative URL of a gallery section.
func PictureURL(slug string) string {
	return "/pictures/" + url.PathEscape(slug) + "/"
}

// CodeURL returns the site-relative URL of a section's generated markup.
func CodeURL(slug string) string {
	return PictureURL(slug) + "code/"
}

// pageTitle formats a <title>, dropping the separator when either side is empty.
func pageTitle(title, site string) string {
	switch {
	case title == "":
		return site
	case site == "" || title == site:
		return title
	}
	return title + " | " + site
}

// textWriter writes escaped text and raw markup, remembering the first error
// so templates can write straight through and check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) raw(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}

func (t *textWriter) text(s string) {
	t.raw(html.EscapeString(s))
}

// element writes <tag class="class">text</tag>, skipping it when text is empty.
func (t *textWriter) element(tag, class, text string) {
	if text == "" {
		return
	}
	t.raw("<" + tag)
	if class != "" {
		t.raw(` class="` + html.EscapeString(class) + `"`)
	}
	t.raw(">")
	t.text(text)
	t.raw("</" + tag + ">")
}
