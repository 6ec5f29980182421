//go:build js && wasm

// Package browser implements the dom interfaces on top of syscall/js.
package browser

import (
	"strconv"
	"sync"
	"syscall/js"

	"trenchsniffer.io/web/internal/dom"
)

// Element wraps a DOM node.
type Element struct {
	v js.Value
}

var _ dom.Element = Element{}

func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return Element{v: v}
}

func (e Element) BoundingClientRect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Top:    r.Get("top").Float(),
		Left:   r.Get("left").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e Element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e Element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e Element) SetHTML(markup string) { e.v.Set("innerHTML", markup) }

func (e Element) Listen(event string, fn func(dom.Event)) dom.Release {
	return listen(e.v, event, fn)
}

// Document wraps window.document.
type Document struct {
	v js.Value
}

var _ dom.Document = Document{}

func NewDocument() Document { return Document{v: js.Global().Get("document")} }

func (d Document) QuerySelector(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d Document) QuerySelectorAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Element{v: list.Call("item", i)})
	}
	return out
}

// Window wraps the global window.
type Window struct {
	v js.Value
}

var _ dom.Window = Window{}

func NewWindow() Window { return Window{v: js.Global()} }

func (w Window) PageYOffset() float64 { return w.v.Get("pageYOffset").Float() }
func (w Window) InnerHeight() float64 { return w.v.Get("innerHeight").Float() }

func (w Window) ScrollHeight() float64 {
	return w.v.Get("document").Get("documentElement").Get("scrollHeight").Float()
}

func (w Window) ScrollTo(top float64, behavior dom.ScrollBehavior) {
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", string(behavior))
	w.v.Call("scrollTo", opts)
}

func (w Window) Listen(event string, fn func(dom.Event)) dom.Release {
	return listen(w.v, event, fn)
}

// keyAttr is the dataset entry linking an observed node to its handler.
// DOMStringMap stores it as a string.
const keyAttr = "revealKey"

// Observer shares one IntersectionObserver between every observed element.
type Observer struct {
	mu       sync.Mutex
	io       js.Value
	cb       js.Func
	handlers map[string]func(bool)
	next     int
}

var _ dom.Observer = (*Observer)(nil)

// NewObserver creates an IntersectionObserver with the given threshold.
func NewObserver(threshold float64) *Observer {
	o := &Observer{handlers: map[string]func(bool){}}
	o.cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			id := entry.Get("target").Get("dataset").Get(keyAttr)
			if id.Type() != js.TypeString {
				continue
			}
			o.mu.Lock()
			fn := o.handlers[id.String()]
			o.mu.Unlock()
			if fn != nil {
				fn(entry.Get("isIntersecting").Bool())
			}
		}
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("threshold", threshold)
	o.io = js.Global().Get("IntersectionObserver").New(o.cb, opts)
	return o
}

func (o *Observer) Observe(el dom.Element, fn func(bool)) dom.Release {
	node := el.(Element).v
	o.mu.Lock()
	key := strconv.Itoa(o.next)
	o.next++
	o.handlers[key] = fn
	o.mu.Unlock()

	node.Get("dataset").Set(keyAttr, key)
	o.io.Call("observe", node)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.io.Call("unobserve", node)
			o.mu.Lock()
			delete(o.handlers, key)
			o.mu.Unlock()
		})
	}
}

// Close disconnects the observer and frees its callback.
func (o *Observer) Close() {
	o.io.Call("disconnect")
	o.cb.Release()
}

func listen(target js.Value, event string, fn func(dom.Event)) dom.Release {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(toEvent(ev))
		return nil
	})
	target.Call("addEventListener", event, cb)
	var once sync.Once
	return func() {
		once.Do(func() {
			target.Call("removeEventListener", event, cb)
			cb.Release()
		})
	}
}

func toEvent(ev js.Value) dom.Event {
	if ev.IsUndefined() || ev.IsNull() {
		return dom.Event{}
	}
	var x, y float64
	if cx := ev.Get("clientX"); cx.Type() == js.TypeNumber {
		x = cx.Float()
	}
	if cy := ev.Get("clientY"); cy.Type() == js.TypeNumber {
		y = cy.Float()
	}
	e := dom.NewEvent(x, y, func() {
		if ev.Get("preventDefault").Type() == js.TypeFunction {
			ev.Call("preventDefault")
		}
	})
	e.Persisted = ev.Get("persisted").Truthy()
	return e
}
