package picture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eringen/respimg/imgix"
)

var (
	// ErrMissingName is returned when an image has no base name.
	ErrMissingName = errors.New("picture: image name is required")
	// ErrMissingExtension is returned when an image has no file extension.
	ErrMissingExtension = errors.New("picture: file extension is required")
	// ErrInvalidAttribute is returned when a pass-through attribute name
	// could not be written as a single HTML attribute.
	ErrInvalidAttribute = errors.New("picture: invalid attribute name")
)

// Hover file suffixes. These follow the asset pipeline's naming: the image
// shown at rest is exported as "-02" and the one shown on hover as "-01".
const (
	RestSuffix  = "-02"
	HoverSuffix = "-01"
)

// URLBuilder turns an image path and transform parameters into CDN URLs.
// *imgix.Client satisfies it.
type URLBuilder interface {
	BuildURL(path string, params imgix.Params) string
	BuildSrcSet(path string, params imgix.Params) string
}

// Request describes one responsive image.
type Request struct {
	Name      string
	Folder    string
	Extension string
	Params    imgix.Params
	Devices   DeviceSet
	Hover     bool
}

// Validate checks the fields the path builder relies on.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(r.Extension) == "" {
		return ErrMissingExtension
	}
	return nil
}

// Path returns the CDN path of the image for tier. When the request has a
// hover variant, hovering selects the hover file, otherwise the rest file.
func (r Request) Path(t Tier, hovering bool) string {
	suffix := ""
	if r.Hover {
		suffix = RestSuffix
		if hovering {
			suffix = HoverSuffix
		}
	}
	return fmt.Sprintf("%s/%s%s%s.%s", r.Folder, t.prefix(), r.Name, suffix, r.Extension)
}

// SourceEntry holds the URLs generated for one tier.
type SourceEntry struct {
	URL         string
	SrcSet      string
	HoverURL    string
	HoverSrcSet string
}

// HasHover reports whether hover URLs were generated.
func (e SourceEntry) HasHover() bool {
	return e.HoverURL != "" || e.HoverSrcSet != ""
}

// Sources maps each generated tier to its entry.
type Sources map[Tier]SourceEntry

// Build generates the URLs for the universal tier and every targeted tier.
// It is a pure function of r and the builder.
func (res *Resolver) Build(r Request) Sources {
	out := make(Sources, 4)
	out[Universal] = res.entry(r, Universal)
	for _, t := range r.Devices.Tiers() {
		out[t] = res.entry(r, t)
	}
	return out
}

func (res *Resolver) entry(r Request, t Tier) SourceEntry {
	rest := r.Path(t, false)
	e := SourceEntry{
		URL:    res.urls.BuildURL(rest, r.Params),
		SrcSet: res.urls.BuildSrcSet(rest, r.Params),
	}
	if r.Hover {
		hover := r.Path(t, true)
		e.HoverURL = res.urls.BuildURL(hover, r.Params)
		e.HoverSrcSet = res.urls.BuildSrcSet(hover, r.Params)
	}
	return e
}
