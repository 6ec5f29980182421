// Package reveal plays fire-once entrance animations as elements scroll into view.
package reveal

import (
	"strconv"

	"trenchsniffer.io/web/internal/dom"
)

// Markup contract shared with the templates.
const (
	AttrKind     = "data-reveal"
	AttrDelay    = "data-reveal-delay"
	AttrID       = "data-reveal-id"
	ClassVisible = "is-revealed"
	Selector     = "[" + AttrKind + "]"
)

// Controller observes every element carrying data-reveal and reveals each one
// the first time it intersects the viewport.
type Controller struct {
	obs      dom.Observer
	pending  map[string]dom.Release
	revealed map[string]bool
}

func NewController(obs dom.Observer) *Controller {
	return &Controller{
		obs:      obs,
		pending:  map[string]dom.Release{},
		revealed: map[string]bool{},
	}
}

// Watch starts observing every reveal target in doc and returns how many were found.
func (c *Controller) Watch(doc dom.Document) int {
	targets := doc.QuerySelectorAll(Selector)
	for i, el := range targets {
		id := el.Attr(AttrID)
		if id == "" {
			id = el.Attr("id")
		}
		if id == "" {
			id = "reveal-" + strconv.Itoa(i)
		}
		if c.revealed[id] || c.pending[id] != nil {
			continue
		}
		c.watch(id, el)
	}
	return len(targets)
}

func (c *Controller) watch(id string, el dom.Element) {
	release := c.obs.Observe(el, func(intersecting bool) {
		if !intersecting || c.revealed[id] {
			return
		}
		c.revealed[id] = true
		if delay := el.Attr(AttrDelay); delay != "" {
			el.SetStyle("transition-delay", delay)
		}
		el.SetClass(ClassVisible, true)
		if release := c.pending[id]; release != nil {
			delete(c.pending, id)
			release()
		}
	})
	// An observer may report from inside Observe, before the release is known.
	if c.revealed[id] {
		release()
		return
	}
	c.pending[id] = release
}

// Revealed reports whether the element with id has played its entrance.
func (c *Controller) Revealed(id string) bool { return c.revealed[id] }

// Pending is the number of elements still waiting for their first intersection.
func (c *Controller) Pending() int { return len(c.pending) }

// Close stops every outstanding observation.
func (c *Controller) Close() {
	for id, release := range c.pending {
		release()
		delete(c.pending, id)
	}
}
