// Package dom defines the small slice of the browser DOM the client relies on.
//
// The interfaces carry no build tags so the client logic compiles and is
// tested natively. The syscall/js implementation lives in dom/browser and an
// in-memory one in dom/domtest.
package dom

// Release detaches a listener or observation. Calling it more than once is a no-op.
type Release func()

// Rect mirrors the fields of DOMRect the client reads.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Event is the subset of a DOM event handed to Go listeners.
type Event struct {
	ClientX float64
	ClientY float64
	// Persisted is set on pagehide and pageshow when the page goes into or
	// comes back from the back/forward cache.
	Persisted bool

	preventDefault func()
}

// NewEvent builds an event whose PreventDefault calls prevent (which may be nil).
func NewEvent(clientX, clientY float64, prevent func()) Event {
	return Event{ClientX: clientX, ClientY: clientY, preventDefault: prevent}
}

// PreventDefault cancels the browser's default action for the event.
func (e Event) PreventDefault() {
	if e.preventDefault != nil {
		e.preventDefault()
	}
}

// Element is a rendered node.
type Element interface {
	BoundingClientRect() Rect
	Attr(name string) string
	SetAttr(name, value string)
	SetClass(name string, on bool)
	HasClass(name string) bool
	SetStyle(property, value string)
	SetHTML(markup string)
	Listen(event string, fn func(Event)) Release
}

// Document looks up elements. QuerySelector returns nil when nothing matches.
type Document interface {
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
}

// ScrollBehavior selects between instant and animated scrolling.
type ScrollBehavior string

const (
	ScrollAuto   ScrollBehavior = "auto"
	ScrollSmooth ScrollBehavior = "smooth"
)

// Window exposes viewport metrics, scrolling and window-level events.
type Window interface {
	PageYOffset() float64
	InnerHeight() float64
	// ScrollHeight is the full height of the document element.
	ScrollHeight() float64
	ScrollTo(top float64, behavior ScrollBehavior)
	Listen(event string, fn func(Event)) Release
}

// Observer wraps IntersectionObserver. fn receives whether the element intersects the viewport.
type Observer interface {
	Observe(el Element, fn func(intersecting bool)) Release
}
