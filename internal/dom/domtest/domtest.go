// Package domtest is an in-memory DOM for exercising client code in native tests.
package domtest

import (
	"strings"

	"trenchsniffer.io/web/internal/dom"
)

type listener struct {
	fn     func(dom.Event)
	active bool
}

type listeners map[string][]*listener

func (l listeners) add(event string, fn func(dom.Event)) dom.Release {
	ls := &listener{fn: fn, active: true}
	l[event] = append(l[event], ls)
	return func() { ls.active = false }
}

func (l listeners) count(event string) int {
	n := 0
	for _, ls := range l[event] {
		if ls.active {
			n++
		}
	}
	return n
}

// dispatch runs active listeners and reports whether any called PreventDefault.
func (l listeners) dispatch(event string, clientX, clientY float64) bool {
	prevented := false
	l.fire(event, dom.NewEvent(clientX, clientY, func() { prevented = true }))
	return prevented
}

func (l listeners) fire(event string, ev dom.Event) {
	for _, ls := range append([]*listener(nil), l[event]...) {
		if ls.active {
			ls.fn(ev)
		}
	}
}

// Element is a fake dom.Element.
type Element struct {
	ID    string
	Rect  dom.Rect
	HTML  string
	attrs map[string]string
	class map[string]bool
	style map[string]string
	ls    listeners
}

var _ dom.Element = (*Element)(nil)

// NewElement creates an element with the given id and attributes (name, value pairs).
func NewElement(id string, attrs ...string) *Element {
	el := &Element{
		ID:    id,
		attrs: map[string]string{},
		class: map[string]bool{},
		style: map[string]string{},
		ls:    listeners{},
	}
	if id != "" {
		el.attrs["id"] = id
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.attrs[attrs[i]] = attrs[i+1]
	}
	return el
}

func (e *Element) BoundingClientRect() dom.Rect { return e.Rect }
func (e *Element) Attr(name string) string     { return e.attrs[name] }
func (e *Element) SetAttr(name, value string)  { e.attrs[name] = value }
func (e *Element) SetClass(name string, on bool) {
	if on {
		e.class[name] = true
		return
	}
	delete(e.class, name)
}
func (e *Element) HasClass(name string) bool { return e.class[name] }
func (e *Element) SetStyle(property, value string) {
	e.style[property] = value
}
func (e *Element) SetHTML(markup string) { e.HTML = markup }

// Style returns the inline style property value.
func (e *Element) Style(property string) string { return e.style[property] }

func (e *Element) Listen(event string, fn func(dom.Event)) dom.Release {
	return e.ls.add(event, fn)
}

// Listeners counts active listeners for event.
func (e *Element) Listeners(event string) int { return e.ls.count(event) }

// Click dispatches a click and reports whether the default action was prevented.
func (e *Element) Click() bool { return e.ls.dispatch("click", 0, 0) }

func (e *Element) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return e.ID != "" && e.ID == selector[1:]
	case strings.HasPrefix(selector, "[") && strings.HasSuffix(selector, "]"):
		inner := selector[1 : len(selector)-1]
		if name, value, ok := strings.Cut(inner, "="); ok {
			v, has := e.attrs[name]
			return has && v == strings.Trim(value, `"'`)
		}
		_, has := e.attrs[inner]
		return has
	case strings.HasPrefix(selector, "."):
		return e.class[selector[1:]]
	default:
		return false
	}
}

// Document is a fake dom.Document over a flat list of elements in document order.
type Document struct {
	elements []*Element
}

var _ dom.Document = (*Document)(nil)

func NewDocument(els ...*Element) *Document {
	return &Document{elements: els}
}

// Add appends elements in document order.
func (d *Document) Add(els ...*Element) { d.elements = append(d.elements, els...) }

func (d *Document) QuerySelector(selector string) dom.Element {
	for _, el := range d.elements {
		if el.matches(selector) {
			return el
		}
	}
	// untyped nil, so callers see a nil interface
	return nil
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	var out []dom.Element
	for _, el := range d.elements {
		if el.matches(selector) {
			out = append(out, el)
		}
	}
	return out
}

// Scroll records one ScrollTo call.
type Scroll struct {
	Top      float64
	Behavior dom.ScrollBehavior
}

// Window is a fake dom.Window.
type Window struct {
	YOffset      float64
	Height       float64
	DocHeight    float64
	Scrolls      []Scroll
	OnScrollCall func(Scroll)
	ls           listeners
}

var _ dom.Window = (*Window)(nil)

func NewWindow() *Window {
	return &Window{Height: 800, DocHeight: 4000, ls: listeners{}}
}

func (w *Window) PageYOffset() float64  { return w.YOffset }
func (w *Window) InnerHeight() float64  { return w.Height }
func (w *Window) ScrollHeight() float64 { return w.DocHeight }
func (w *Window) ScrollTo(top float64, behavior dom.ScrollBehavior) {
	s := Scroll{Top: top, Behavior: behavior}
	w.Scrolls = append(w.Scrolls, s)
	if w.OnScrollCall != nil {
		w.OnScrollCall(s)
	}
}
func (w *Window) Listen(event string, fn func(dom.Event)) dom.Release {
	return w.ls.add(event, fn)
}

// Listeners counts active listeners for event.
func (w *Window) Listeners(event string) int { return w.ls.count(event) }

// MouseMove dispatches a mousemove at the given client coordinates.
func (w *Window) MouseMove(clientX, clientY float64) { w.ls.dispatch("mousemove", clientX, clientY) }

// PageHide dispatches pagehide. persisted marks a page entering the back/forward cache.
func (w *Window) PageHide(persisted bool) { w.firePage("pagehide", persisted) }

// PageShow dispatches pageshow. persisted marks a page restored from the back/forward cache.
func (w *Window) PageShow(persisted bool) { w.firePage("pageshow", persisted) }

func (w *Window) firePage(event string, persisted bool) {
	ev := dom.NewEvent(0, 0, nil)
	ev.Persisted = persisted
	w.ls.fire(event, ev)
}

// ScrollBy moves the fake viewport and dispatches a scroll event.
func (w *Window) ScrollBy(dy float64) {
	w.YOffset += dy
	w.ls.dispatch("scroll", 0, 0)
}

type observation struct {
	el     dom.Element
	fn     func(bool)
	active bool
}

// Observer is a fake dom.Observer driven by Intersect.
type Observer struct {
	// Immediate reports every element as intersecting from inside Observe,
	// before it returns.
	Immediate bool

	obs []*observation
}

var _ dom.Observer = (*Observer)(nil)

func NewObserver() *Observer { return &Observer{} }

func (o *Observer) Observe(el dom.Element, fn func(bool)) dom.Release {
	ob := &observation{el: el, fn: fn, active: true}
	o.obs = append(o.obs, ob)
	if o.Immediate {
		fn(true)
	}
	return func() { ob.active = false }
}

// Intersect reports a viewport intersection change for el to its active observers.
func (o *Observer) Intersect(el dom.Element, intersecting bool) {
	for _, ob := range append([]*observation(nil), o.obs...) {
		if ob.active && ob.el == el {
			ob.fn(intersecting)
		}
	}
}

// Active counts observations that have not been released.
func (o *Observer) Active() int {
	n := 0
	for _, ob := range o.obs {
		if ob.active {
			n++
		}
	}
	return n
}
