package nav

import "trenchsniffer.io/web/internal/dom"

// HeaderHeight is the fixed navigation bar height in CSS pixels. Scrolling to a
// section stops this far above it so the heading is not hidden under the bar.
const HeaderHeight = 80

// ScrollOffset computes the scroll position that brings the element matching
// href just below the navigation bar.
//
// Precondition: href must match an element in doc. The page renders every
// anchor it links to, so there is no lookup guard; a missing target panics
// with a nil dereference.
func ScrollOffset(doc dom.Document, win dom.Window, href string) float64 {
	el := doc.QuerySelector(href)
	top := el.BoundingClientRect().Top
	return top + win.PageYOffset() - HeaderHeight
}

// Link is a desktop navigation link.
type Link struct {
	Href string
}

// Activate smooth-scrolls to the link target.
func (l Link) Activate(doc dom.Document, win dom.Window) {
	win.ScrollTo(ScrollOffset(doc, win, l.Href), dom.ScrollSmooth)
}

// MobileLink is a link inside the mobile overlay. OnClose runs after the scroll
// has been requested.
type MobileLink struct {
	Href    string
	OnClose func()
}

// Activate smooth-scrolls to the link target and then closes the overlay.
func (l MobileLink) Activate(doc dom.Document, win dom.Window) {
	win.ScrollTo(ScrollOffset(doc, win, l.Href), dom.ScrollSmooth)
	if l.OnClose != nil {
		l.OnClose()
	}
}
