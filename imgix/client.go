// Package imgix adapts the imgix-go URL builder to the responsive picture
// resolver.
//
// A Client is bound to one source domain for its whole lifetime. Both
// BuildURL and BuildSrcSet are pure functions of that domain, the path and
// the parameter map, so the same input always yields the same string.
package imgix

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	ix "github.com/imgix/imgix-go/v2"
)

// ErrInvalidDomain is returned when the source domain is empty or is not a bare host.
var ErrInvalidDomain = errors.New("imgix: invalid domain")

const (
	defaultWidthTolerance = 0.08
	defaultMinWidth       = 100
	defaultMaxWidth       = 8192
)

// Params are transform parameters appended to an image URL as query values.
// Values are scalars and are formatted with fmt.Sprint.
type Params map[string]any

// Client builds URLs for a single imgix source.
type Client struct {
	domain  string
	builder ix.URLBuilder
	srcset  []ix.SrcsetOption

	https          bool
	libraryParam   bool
	widthTolerance float64
	minWidth       int
	maxWidth       int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPS selects the URL scheme (default true).
func WithHTTPS(on bool) Option {
	return func(c *Client) { c.https = on }
}

// WithLibraryParam appends the ixlib parameter to every URL (default false).
func WithLibraryParam(on bool) Option {
	return func(c *Client) { c.libraryParam = on }
}

// WithWidthTolerance sets the growth tolerance between srcset widths (default 0.08).
func WithWidthTolerance(t float64) Option {
	return func(c *Client) { c.widthTolerance = t }
}

// WithWidthRange bounds the generated srcset widths (default 100..8192).
func WithWidthRange(min, max int) Option {
	return func(c *Client) {
		c.minWidth = min
		c.maxWidth = max
	}
}

// NewClient returns a Client for domain, e.g. "example.imgix.net".
func NewClient(domain string, opts ...Option) (*Client, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" || strings.Contains(domain, "://") || strings.ContainsAny(domain, "/?# ") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	c := &Client{
		domain:         domain,
		https:          true,
		widthTolerance: defaultWidthTolerance,
		minWidth:       defaultMinWidth,
		maxWidth:       defaultMaxWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.widthTolerance <= 0 {
		return nil, fmt.Errorf("imgix: width tolerance must be positive, got %v", c.widthTolerance)
	}
	if c.minWidth <= 0 || c.maxWidth < c.minWidth {
		return nil, fmt.Errorf("imgix: invalid width range %d..%d", c.minWidth, c.maxWidth)
	}
	c.builder = ix.NewURLBuilder(domain,
		ix.WithHTTPS(c.https),
		ix.WithLibParam(c.libraryParam),
	)
	c.srcset = []ix.SrcsetOption{
		ix.WithMinWidth(c.minWidth),
		ix.WithMaxWidth(c.maxWidth),
		ix.WithTolerance(c.widthTolerance),
	}
	return c, nil
}

// Domain returns the source domain the client was built with.
func (c *Client) Domain() string {
	return c.domain
}

// BuildURL returns the absolute URL for path with params as the query string.
func (c *Client) BuildURL(path string, params Params) string {
	return c.builder.CreateURL(path, ixParams(params)...)
}

// BuildSrcSet returns a srcset for path. A fixed width, or a height with an
// aspect ratio, yields 1x..5x density descriptors; anything else yields
// width descriptors across the configured range.
func (c *Client) BuildSrcSet(path string, params Params) string {
	return c.builder.CreateSrcset(path, ixParams(params), c.srcset...)
}

// ixParams converts params in key order so the builder sees a stable sequence.
func ixParams(params Params) []ix.IxParam {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ix.IxParam, 0, len(keys))
	for _, k := range keys {
		out = append(out, ix.Param(k, fmt.Sprint(params[k])))
	}
	return out
}
