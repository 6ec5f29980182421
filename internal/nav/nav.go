package nav

import "strings"

// Item represents a navigation entry: an in-page anchor with a label and icon.
type Item struct {
	Label  string
	Anchor string // e.g. "#features"
	Icon   string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href  string
	Label string
	Icon  string
	// Target is the id of the section the link scrolls to.
	Target string
}

// Build renders navigation items in configured order. Desktop links and the
// mobile overlay are both rendered from the same list.
func Build(items []Item) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:   it.Anchor,
			Label:  it.Label,
			Icon:   it.Icon,
			Target: strings.TrimPrefix(it.Anchor, "#"),
		})
	}
	return out
}

// OffPage rewrites items for a page that does not contain the target
// sections. Links point at the anchors on home and carry no Target, so the
// client leaves them to the browser.
func OffPage(items []RenderedItem, home string) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it.Href, "#") {
			it.Href = strings.TrimSuffix(home, "/") + "/" + it.Href
		}
		it.Target = ""
		out = append(out, it)
	}
	return out
}
