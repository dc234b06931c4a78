package picture

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/respimg/imgix"
)

// LazyOffset is how close, in pixels, a deferred picture must come to the
// viewport before its markup is materialised.
const LazyOffset = 200

// Options configure a rendered picture.
type Options struct {
	Name           string       // image base name, also the default alt and title
	Folder         string       // optional CDN folder, e.g. "/beds"
	Extension      string       // file extension without the dot
	Alt            string       // defaults to Name
	ContainerClass string       // classes on <picture>
	ImageClass     string       // classes on every <img>
	Params         imgix.Params // transform parameters, passed through as-is
	// Devices lists targeted devices. nil targets all three; an empty
	// slice renders one device-agnostic image.
	Devices             []string
	Lazy                bool // defer rendering until near the viewport
	Hover               bool // image has -02 (rest) and -01 (hover) files
	PerBreakpointImages bool // informational only
	ShowCode            bool // append the generated markup as a code block
	Attrs               templ.Attributes
}

// Picture is a validated, ready-to-render picture.
type Picture struct {
	opts     Options
	request  Request
	resolver *Resolver
}

// Compile validates opts and binds them to the resolver.
func (res *Resolver) Compile(opts Options) (*Picture, error) {
	devices, err := ParseDevices(opts.Devices)
	if err != nil {
		return nil, err
	}
	req := Request{
		Name:      strings.TrimSpace(opts.Name),
		Folder:    strings.TrimRight(strings.TrimSpace(opts.Folder), "/"),
		Extension: strings.TrimPrefix(strings.TrimSpace(opts.Extension), "."),
		Params:    opts.Params,
		Devices:   devices,
		Hover:     opts.Hover,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	for name := range opts.Attrs {
		if !validAttrName(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttribute, name)
		}
	}
	if opts.Alt == "" {
		opts.Alt = req.Name
	}
	return &Picture{opts: opts, request: req, resolver: res}, nil
}

// Request returns the resolved image request.
func (p *Picture) Request() Request {
	return p.request
}

// Options returns the options the picture was compiled from, with defaults applied.
func (p *Picture) Options() Options {
	return p.opts
}

// Plan returns the render plan for state.
func (p *Picture) Plan(state HoverState) RenderPlan {
	return p.resolver.Plan(p.request, state, p.opts.ImageClass)
}

// Component renders the picture for state as a templ component.
func (p *Picture) Component(state HoverState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, p.HTML(state))
		return err
	})
}

// HTML returns the full markup: the (possibly deferred) picture followed by
// the code block when ShowCode is set.
func (p *Picture) HTML(state HoverState) string {
	markup := p.Markup(state)
	var b strings.Builder
	if p.opts.Lazy {
		writeLazy(&b, markup)
	} else {
		b.WriteString(markup)
	}
	if p.opts.ShowCode {
		b.WriteString(`<pre class="picture-code"><code>`)
		b.WriteString(html.EscapeString(markup))
		b.WriteString(`</code></pre>`)
	}
	return b.String()
}

// Markup returns the bare <picture> element for state.
func (p *Picture) Markup(state HoverState) string {
	plan := p.Plan(state)
	var b strings.Builder

	b.WriteString("<picture")
	writeAttrs(&b, p.rootAttrs(plan))
	b.WriteString(">")

	for _, e := range plan.Entries {
		b.WriteString("<source")
		writeAttr(&b, "srcset", e.SrcSet)
		if e.Media != "" {
			writeAttr(&b, "media", e.Media)
		}
		writeAttr(&b, "type", e.Type)
		if plan.HasHover {
			writeAttr(&b, "data-srcset-alt", e.AltSrcSet)
		}
		b.WriteString("/>")
	}

	// Fallback images for browsers without <picture> support.
	for _, e := range plan.Entries {
		b.WriteString("<img")
		if e.Class != "" {
			writeAttr(&b, "class", e.Class)
		}
		writeAttr(&b, "src", e.URL)
		writeAttr(&b, "srcset", e.SrcSet)
		writeAttr(&b, "alt", p.opts.Alt)
		writeAttr(&b, "title", p.request.Name)
		if plan.HasHover {
			writeAttr(&b, "data-src-alt", e.AltURL)
			writeAttr(&b, "data-srcset-alt", e.AltSrcSet)
		}
		b.WriteString("/>")
	}

	b.WriteString("</picture>")
	return b.String()
}

func (p *Picture) rootAttrs(plan RenderPlan) templ.Attributes {
	attrs := templ.Attributes{}
	for k, v := range p.opts.Attrs {
		attrs[k] = v
	}
	class := p.opts.ContainerClass
	if extra, ok := attrs["class"].(string); ok {
		class = joinClasses(class, extra)
	}
	delete(attrs, "class")
	if class != "" {
		attrs["class"] = class
	}
	if plan.HasHover {
		attrs["data-hover-picture"] = plan.State.String()
	}
	return attrs
}

func writeLazy(b *strings.Builder, markup string) {
	fmt.Fprintf(b, `<div class="lazy-picture" data-lazy-picture data-lazy-offset="%d"><template>`, LazyOffset)
	b.WriteString(markup)
	b.WriteString(`</template><noscript>`)
	b.WriteString(markup)
	b.WriteString(`</noscript></div>`)
}

// writeAttrs writes attrs in key order. true renders a bare attribute,
// false and nil are skipped.
func writeAttrs(b *strings.Builder, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
		case bool:
			if v {
				b.WriteString(" ")
				b.WriteString(html.EscapeString(k))
			}
		case string:
			writeAttr(b, k, v)
		default:
			writeAttr(b, k, fmt.Sprint(v))
		}
	}
}

// validAttrName accepts names matching [A-Za-z_:][-A-Za-z0-9_:.]*.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(html.EscapeString(name))
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}
