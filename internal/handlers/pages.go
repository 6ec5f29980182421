package handlers

import (
	"html/template"
	"strings"

	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/motion"
	"trenchsniffer.io/web/internal/nav"
	"trenchsniffer.io/web/internal/seo"
)

// Options carries request-independent settings every page needs.
type Options struct {
	SiteURL   string
	Analytics Analytics
	// ClientBundle enables the WASM client loader in the layout.
	ClientBundle bool
	// Dev marks the page so the client logs at debug level.
	Dev bool
}

// Layout holds the fields the shared base template reads.
type Layout struct {
	Title     string
	Lang      string
	Path      string
	SEO       seo.Meta
	Analytics Analytics
	Client    bool
	Dev       bool

	Brand     content.Brand
	Links     content.Links
	Nav       []nav.RenderedItem
	NavCTA    string
	LogoStyle template.CSS
	Footer    FooterData
}

// PageData is a generic view model for simple pages using the shared layout.
type PageData struct {
	Layout
	Heading string
	Message string
}

// NavItems converts the configured entries for nav.Build.
func NavItems(entries []content.NavEntry) []nav.Item {
	items := make([]nav.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, nav.Item{Label: e.Label, Anchor: e.Anchor, Icon: e.Icon})
	}
	return items
}

func buildLayout(site *content.Site, opts Options, path, title, description string) Layout {
	canonical := seo.Absolute(opts.SiteURL, path)
	logo := seo.Absolute(opts.SiteURL, site.Brand.Logo)
	return Layout{
		Title:     title,
		Lang:      "en",
		Path:      path,
		Analytics: opts.Analytics,
		Client:    opts.ClientBundle,
		Dev:       opts.Dev,
		SEO: seo.Meta{
			Title:       title,
			Description: description,
			Canonical:   canonical,
			Robots:      "index,follow",
			OG: seo.OpenGraph{
				Title:       title,
				Description: description,
				Image:       logo,
				Type:        "website",
				URL:         canonical,
				SiteName:    site.Brand.Name,
			},
			Twitter: seo.Twitter{
				Card:  "summary",
				Site:  seo.TwitterHandle(site.Links.Twitter),
				Image: logo,
			},
		},
		Brand:     site.Brand,
		Links:     site.Links,
		Nav:       nav.Build(NavItems(site.Nav)),
		NavCTA:    site.Hero.NavCTA,
		LogoStyle: css(motion.Style(motion.LogoSpin)),
		Footer:    BuildFooter(site),
	}
}

// BuildNotFoundData renders the 404 page through the same layout.
func BuildNotFoundData(site *content.Site, opts Options, path string) PageData {
	l := buildLayout(site, opts, path, "Page not found | "+site.Brand.Name, site.Brand.Tagline)
	l.SEO.Robots = "noindex"
	l.SEO.Canonical = ""
	l.Nav = nav.OffPage(l.Nav, "/")
	return PageData{
		Layout:  l,
		Heading: "404",
		Message: "This page drifted off the chain.",
	}
}

// plain collapses markdown source into a single line for meta descriptions.
func plain(markdown string) string {
	r := strings.NewReplacer("*", "", "_", "", "`", "", "#", "")
	return strings.Join(strings.Fields(r.Replace(markdown)), " ")
}
