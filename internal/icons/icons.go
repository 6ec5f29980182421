// Package icons renders the inline SVG icon set used across the page.
package icons

import (
	"bytes"
	"html/template"
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// shape is one drawable child of an icon's <svg> element.
type shape func() g.Node

func path(d string) shape {
	return func() g.Node { return g.El("path", g.Attr("d", d)) }
}

func circle(cx, cy, r string) shape {
	return func() g.Node { return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r)) }
}

func rect(x, y, w, h, rx string) shape {
	return func() g.Node {
		return g.El("rect", g.Attr("x", x), g.Attr("y", y), g.Attr("width", w), g.Attr("height", h), g.Attr("rx", rx))
	}
}

type glyph struct {
	filled bool
	shapes []shape
}

// 24x24 viewBox, stroked unless filled.
var set = map[string]glyph{
	"cube": {shapes: []shape{
		path("M12 2 3 7v10l9 5 9-5V7z"),
		path("M3 7l9 5 9-5"),
		path("M12 12v10"),
	}},
	"road": {shapes: []shape{
		path("M4 22 9 2"),
		path("M20 22 15 2"),
		path("M12 4v3"),
		path("M12 10v3"),
		path("M12 16v3"),
	}},
	"robot": {shapes: []shape{
		rect("3", "8", "18", "12", "2"),
		path("M12 8V4"),
		circle("12", "3", "1"),
		circle("8.5", "14", "1.5"),
		circle("15.5", "14", "1.5"),
	}},
	"bars": {shapes: []shape{
		path("M3 6h18"),
		path("M3 12h18"),
		path("M3 18h18"),
	}},
	"times": {shapes: []shape{
		path("M6 6l12 12"),
		path("M18 6 6 18"),
	}},
	"wallet": {shapes: []shape{
		path("M3 7h15a3 3 0 0 1 3 3v7a3 3 0 0 1-3 3H3z"),
		path("M3 7V5a2 2 0 0 1 2-2h11"),
		circle("16.5", "13.5", "1"),
	}},
	"brain": {shapes: []shape{
		path("M9 3a3 3 0 0 0-3 3 3 3 0 0 0-2 5 3 3 0 0 0 2 5 3 3 0 0 0 3 3V3z"),
		path("M15 3a3 3 0 0 1 3 3 3 3 0 0 1 2 5 3 3 0 0 1-2 5 3 3 0 0 1-3 3V3z"),
	}},
	"chart-line": {shapes: []shape{
		path("M3 3v18h18"),
		path("M7 15l4-4 3 3 5-6"),
	}},
	"twitter": {filled: true, shapes: []shape{
		path("M22 5.9c-.7.3-1.5.5-2.3.6.8-.5 1.5-1.3 1.8-2.2-.8.5-1.7.8-2.6 1a4.1 4.1 0 0 0-7 3.7A11.6 11.6 0 0 1 3.4 4.7a4.1 4.1 0 0 0 1.3 5.5c-.7 0-1.3-.2-1.9-.5 0 2 1.4 3.7 3.3 4.1-.6.2-1.2.2-1.9.1.5 1.6 2 2.8 3.8 2.9A8.3 8.3 0 0 1 2 18.5a11.7 11.7 0 0 0 6.3 1.8c7.5 0 11.7-6.3 11.7-11.7v-.5c.8-.6 1.5-1.3 2-2.2z"),
	}},
	"discord": {shapes: []shape{
		path("M8 7c-1.5.3-3 .9-4 1.6C2.5 12 2 15 2.3 18c1.6 1.2 3.3 1.9 5 2.2l1-1.7"),
		path("M16 7c1.5.3 3 .9 4 1.6 1.5 3.4 2 6.4 1.7 9.4-1.6 1.2-3.3 1.9-5 2.2l-1-1.7"),
		path("M7 17c3.2 1.3 6.8 1.3 10 0"),
		circle("9", "13", "1.2"),
		circle("15", "13", "1.2"),
	}},
	"info-circle": {shapes: []shape{
		circle("12", "12", "10"),
		path("M12 16v-4"),
		path("M12 8h.01"),
	}},
}

// Has reports whether name is part of the icon set.
func Has(name string) bool {
	_, ok := set[name]
	return ok
}

// Names returns the icon names in sorted order.
func Names() []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Icon builds the <svg> node for name. Unknown names render an empty node.
func Icon(name, class string) g.Node {
	gl, ok := set[name]
	if !ok {
		return g.Group(nil)
	}
	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.Attr("focusable", "false"),
		g.Attr("data-icon", name),
		g.If(class != "", h.Class(class)),
	}
	if gl.filled {
		children = append(children, g.Attr("fill", "currentColor"), g.Attr("stroke", "none"))
	} else {
		children = append(children,
			g.Attr("fill", "none"),
			g.Attr("stroke", "currentColor"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		)
	}
	for _, s := range gl.shapes {
		children = append(children, s())
	}
	return g.El("svg", children...)
}

// HTML renders the icon for use from html/template.
func HTML(name, class string) template.HTML {
	var buf bytes.Buffer
	if err := Icon(name, class).Render(&buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
