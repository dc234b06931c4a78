package views

// SiteConfig holds the site-wide settings every page template reads.
type SiteConfig struct {
	Name string // page title suffix
	URL  string // canonical URL of the page being rendered
}

// PageMeta carries per-page metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical
}
