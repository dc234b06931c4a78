package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "render":
		err = runRender(os.Args[2:], os.Stdout)
	case "version":
		fmt.Printf("respimg %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`respimg - responsive <picture> markup for imgix sources

Usage:
  respimg <command> [arguments]

Commands:
  serve                  Start the demo gallery server
  render [-hover] <slug> Print the generated markup for a gallery section
  version                Print the respimg version
  help                   Show this help message

Configuration is read from RESPIMG_* environment variables or a .env file.

Examples:
  respimg serve
  RESPIMG_GALLERY=gallery.yaml respimg render -hover hover-images`)
}
