package handlers

import (
	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/seo"
)

// HomeData is the view model for the home page.
type HomeData struct {
	Layout
	Hero     HeroData
	Features FeaturesData
	Roadmap  RoadmapData
}

// BuildHomeData constructs the landing page view model.
func BuildHomeData(site *content.Site, decor Decor, opts Options) HomeData {
	title := site.Brand.Name + " – " + site.Brand.Tagline
	description := plain(site.Hero.Body)
	l := buildLayout(site, opts, "/", title, description)
	l.SEO.JSONLD = []string{
		seo.JSON(seo.Organization(site.Brand.Name, opts.SiteURL, l.SEO.OG.Image, site.Links.Twitter, site.Links.Discord)),
		seo.JSON(seo.WebSite(site.Brand.Name, opts.SiteURL, description)),
		seo.JSON(seo.SoftwareApplication(site.Brand.Name+" Bot", site.Links.Bot, site.Brand.Tagline)),
	}
	return HomeData{
		Layout:   l,
		Hero:     BuildHero(site, decor),
		Features: BuildFeatures(site.Features),
		Roadmap:  BuildRoadmap(site.Roadmap),
	}
}
