// Package gallery loads the demo page's sections from YAML and compiles
// each section's picture up-front, so bad configuration fails at startup
// rather than mid-render.
package gallery

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/eringen/respimg/imgix"
	"github.com/eringen/respimg/picture"
)

//go:embed default.yaml
var defaultYAML []byte

// File is the on-disk gallery document.
type File struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section is one demo block: an optional heading and a picture.
type Section struct {
	Slug       string `yaml:"slug"`
	Heading    string `yaml:"heading"`
	Subheading string `yaml:"subheading"`
	Image      Entry  `yaml:"picture"`
}

// Entry mirrors picture.Options in YAML form.
type Entry struct {
	Name                string            `yaml:"name"`
	Folder              string            `yaml:"folder"`
	Extension           string            `yaml:"extension"`
	Alt                 string            `yaml:"alt"`
	ContainerClass      string            `yaml:"containerClass"`
	ImageClass          string            `yaml:"imageClass"`
	Params              map[string]any    `yaml:"params"`
	Devices             []string          `yaml:"devices"`
	Lazy                bool              `yaml:"lazy"`
	Hover               bool              `yaml:"hover"`
	PerBreakpointImages bool              `yaml:"perBreakpointImages"`
	ShowCode            bool              `yaml:"showCode"`
	Attrs               map[string]string `yaml:"attrs"`
}

// Options converts the entry to picture options.
func (e Entry) Options() picture.Options {
	opts := picture.Options{
		Name:                e.Name,
		Folder:              e.Folder,
		Extension:           e.Extension,
		Alt:                 e.Alt,
		ContainerClass:      e.ContainerClass,
		ImageClass:          e.ImageClass,
		Devices:             e.Devices,
		Lazy:                e.Lazy,
		Hover:               e.Hover,
		PerBreakpointImages: e.PerBreakpointImages,
		ShowCode:            e.ShowCode,
	}
	if len(e.Params) > 0 {
		opts.Params = imgix.Params(e.Params)
	}
	if len(e.Attrs) > 0 {
		opts.Attrs = templ.Attributes{}
		for k, v := range e.Attrs {
			opts.Attrs[k] = v
		}
	}
	return opts
}

// Parse decodes a gallery document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gallery: parse: %w", err)
	}
	if len(f.Sections) == 0 {
		return nil, fmt.Errorf("gallery: no sections")
	}
	return &f, nil
}

// Load reads and decodes the gallery file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gallery: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in demo gallery.
func Default() *File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return f
}

// Item is a compiled section.
type Item struct {
	Section
	Picture *picture.Picture
}

// Gallery is a compiled, render-ready gallery.
type Gallery struct {
	Title string
	Items []Item

	bySlug map[string]int
}

// Compile validates every section against res. Sections without a slug
// get one derived from the subheading, heading or image name, in that order.
func (f *File) Compile(res *picture.Resolver) (*Gallery, error) {
	g := &Gallery{
		Title:  f.Title,
		Items:  make([]Item, 0, len(f.Sections)),
		bySlug: make(map[string]int, len(f.Sections)),
	}
	for i, s := range f.Sections {
		if s.Slug == "" {
			s.Slug = Slugify(firstNonEmpty(s.Subheading, s.Heading, s.Image.Name))
		}
		if s.Slug == "" {
			return nil, fmt.Errorf("gallery: section %d: cannot derive slug", i+1)
		}
		if _, dup := g.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("gallery: section %d: duplicate slug %q", i+1, s.Slug)
		}
		p, err := res.Compile(s.Image.Options())
		if err != nil {
			return nil, fmt.Errorf("gallery: section %q: %w", s.Slug, err)
		}
		g.bySlug[s.Slug] = len(g.Items)
		g.Items = append(g.Items, Item{Section: s, Picture: p})
	}
	return g, nil
}

// Lookup returns the item with slug.
func (g *Gallery) Lookup(slug string) (Item, bool) {
	i, ok := g.bySlug[slug]
	if !ok {
		return Item{}, false
	}
	return g.Items[i], true
}

// Slugs returns every slug in page order.
func (g *Gallery) Slugs() []string {
	out := make([]string, len(g.Items))
	for i, it := range g.Items {
		out[i] = it.Slug
	}
	return out
}

// Slugify converts a heading to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
