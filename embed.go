package respimg

import "embed"

// EmbeddedAssets holds the browser script that flips hover variants and
// materialises deferred pictures.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
