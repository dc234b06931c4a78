// Package picture resolves responsive images into <picture> markup.
//
// A Resolver builds per-tier CDN URLs for an image (universal, mobile,
// tablet, desktop, each optionally with a hover variant) and selects which
// <source> and <img> elements to emit, with their visibility classes and
// media queries, for the set of targeted devices.
package picture

import "fmt"

// Breakpoints are the pixel widths separating layout tiers.
type Breakpoints struct {
	Small int // mobile/tablet boundary
	Large int // tablet/desktop boundary
}

// DefaultBreakpoints match the site's stylesheet.
var DefaultBreakpoints = Breakpoints{Small: 768, Large: 1024}

// Validate checks that both widths are positive and ordered.
func (b Breakpoints) Validate() error {
	if b.Small <= 0 || b.Large <= 0 {
		return fmt.Errorf("picture: breakpoints must be positive, got %d/%d", b.Small, b.Large)
	}
	if b.Small >= b.Large {
		return fmt.Errorf("picture: small breakpoint %d must be below large %d", b.Small, b.Large)
	}
	return nil
}

// Resolver builds sources and render plans against one URL builder.
type Resolver struct {
	urls        URLBuilder
	breakpoints Breakpoints
}

// NewResolver returns a Resolver using urls for every generated URL.
func NewResolver(urls URLBuilder, bp Breakpoints) (*Resolver, error) {
	if urls == nil {
		return nil, fmt.Errorf("picture: nil URL builder")
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{urls: urls, breakpoints: bp}, nil
}

// Breakpoints returns the widths the resolver selects media queries with.
func (res *Resolver) Breakpoints() Breakpoints {
	return res.breakpoints
}
