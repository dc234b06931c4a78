package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eringen/respimg/gallery"
	"github.com/eringen/respimg/imgix"
	"github.com/eringen/respimg/picture"
)

func compileDefault(t *testing.T) *gallery.Gallery {
	t.Helper()
	client, err := imgix.NewClient("demo.imgix.net")
	if err != nil {
		t.Fatal(err)
	}
	res, err := picture.NewResolver(client, picture.DefaultBreakpoints)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gallery.Default().Compile(res)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestHomeRendersEverySection(t *testing.T) {
	g := compileDefault(t)
	var buf bytes.Buffer
	if err := Home(SiteConfig{Name: "Demo", URL: "https://img.example.com"}, g).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := buf.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.HasSuffix(body, "</html>") {
		t.Error("expected a full document")
	}
	if !strings.Contains(body, "<title>Imgix Proof of Concept | Demo</title>") {
		t.Error("missing title")
	}
	if !strings.Contains(body, `<link rel="canonical" href="https://img.example.com"/>`) {
		t.Error("missing canonical link")
	}
	for _, slug := range g.Slugs() {
		if !strings.Contains(body, `id="`+slug+`"`) {
			t.Errorf("missing section %s", slug)
		}
	}
	if got := strings.Count(body, "<hr/>"); got != len(g.Items) {
		t.Errorf("found %d separators, want %d", got, len(g.Items))
	}
}

func TestPictureSectionEscapesText(t *testing.T) {
	g := compileDefault(t)
	item := g.Items[0]
	item.Heading = "<b>bold</b>"
	item.Subheading = ""

	var buf bytes.Buffer
	if err := PictureSection(item, picture.Resting).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := buf.String()
	if !strings.Contains(body, "<h2>&lt;b&gt;bold&lt;/b&gt;</h2>") {
		t.Errorf("heading not escaped: %s", body)
	}
	if strings.Contains(body, "<h3>") {
		t.Error("empty subheading should be skipped")
	}
	if !strings.Contains(body, `href="/pictures/single-image/code/"`) {
		t.Errorf("missing code link: %s", body)
	}
}

func TestErrorPages(t *testing.T) {
	var buf bytes.Buffer
	if err := NotFound().Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<title>Not found</title>") {
		t.Errorf("unexpected 404 page: %s", buf.String())
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct{ title, site, want string }{
		{"", "Site", "Site"},
		{"Page", "", "Page"},
		{"Same", "Same", "Same"},
		{"Page", "Site", "Page | Site"},
	}
	for _, tt := range tests {
		if got := pageTitle(tt.title, tt.site); got != tt.want {
			t.Errorf("pageTitle(%q, %q) = %q, want %q", tt.title, tt.site, got, tt.want)
		}
	}
}

func TestPicturePageRendersState(t *testing.T) {
	g := compileDefault(t)
	item, ok := g.Lookup("hover-images")
	if !ok {
		t.Fatal("missing hover-images section")
	}
	site := SiteConfig{Name: "Demo", URL: "https://img.example.com/pictures/hover-images/"}

	var buf bytes.Buffer
	if err := PicturePage(site, item, picture.Hovering).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<link rel="canonical" href="https://img.example.com/pictures/hover-images/"/>`,
		`data-hover-picture="hovering"`,
		`id="hover-images"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("picture page missing %s", want)
		}
	}
}
