// Package anchors checks a rendered page for in-page links whose target is missing.
//
// The client scrolls to link targets without a lookup guard, so every
// "#section" href the page renders must resolve to an element id.
package anchors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Report lists the ids present in a page and the in-page hrefs that point at them.
type Report struct {
	IDs   map[string]bool
	Links []string
}

// Missing returns each linked id that has no matching element, sorted and de-duplicated.
func (r Report) Missing() []string {
	seen := map[string]bool{}
	var out []string
	for _, href := range r.Links {
		id := strings.TrimPrefix(href, "#")
		if r.IDs[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Err is non-nil when Missing is non-empty.
func (r Report) Err() error {
	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("anchors: no element for #%s", strings.Join(missing, ", #"))
}

// Audit parses an HTML document and collects its ids and fragment-only links.
// A bare "#" href is ignored.
func Audit(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("anchors: parse: %w", err)
	}
	rep := Report{IDs: map[string]bool{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				switch {
				case a.Key == "id" && a.Val != "":
					rep.IDs[a.Val] = true
				case a.Key == "href" && n.Data == "a" && strings.HasPrefix(a.Val, "#") && len(a.Val) > 1:
					rep.Links = append(rep.Links, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rep, nil
}
