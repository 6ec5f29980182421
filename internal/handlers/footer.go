package handlers

import (
	"html/template"

	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/motion"
)

// SocialLink is an outbound icon link in the footer.
type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

type FooterData struct {
	Brand     string
	Logo      string
	LogoAlt   string
	LogoStyle template.CSS
	Social    []SocialLink
	Copyright string
}

func BuildFooter(site *content.Site) FooterData {
	return FooterData{
		Brand:     site.Brand.Name,
		Logo:      site.Brand.Logo,
		LogoAlt:   site.Brand.LogoAlt,
		LogoStyle: css(motion.Style(motion.LogoSpin)),
		Social: []SocialLink{
			{Label: "Twitter", Href: site.Links.Twitter, Icon: "twitter"},
			{Label: "Discord", Href: site.Links.Discord, Icon: "discord"},
		},
		Copyright: site.Footer.Copyright,
	}
}
