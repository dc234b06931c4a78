package main

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eringen/respimg"
	"github.com/eringen/respimg/picture"
)

// runRender prints one gallery section's <picture> markup without starting
// the server.
func runRender(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	hover := fs.Bool("hover", false, "render the hovering state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: respimg render [-hover] <slug>")
	}
	slug := fs.Arg(0)

	cfg := respimg.LoadConfig()
	res, err := respimg.NewResolver(cfg)
	if err != nil {
		return err
	}
	g, err := respimg.NewGalleryCache(res, cfg.GalleryPath, cfg.GalleryTTL, zap.NewNop()).Get()
	if err != nil {
		return err
	}
	item, ok := g.Lookup(slug)
	if !ok {
		return fmt.Errorf("no gallery section %q (have %v)", slug, g.Slugs())
	}

	var state picture.HoverState
	if *hover {
		state.Enter()
	}
	_, err = fmt.Fprintln(out, item.Picture.Markup(state))
	return err
}
