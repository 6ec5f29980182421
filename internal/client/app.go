// Package client is the browser half of the site: it wires the mobile menu,
// in-page navigation, hero parallax and reveal-on-scroll onto the server
// rendered page.
package client

import (
	"sync"

	"go.uber.org/zap"

	"trenchsniffer.io/web/internal/dom"
	"trenchsniffer.io/web/internal/nav"
	"trenchsniffer.io/web/internal/parallax"
	"trenchsniffer.io/web/internal/reveal"
)

// Selectors shared with the templates.
const (
	SelectorApp            = "[data-app]"
	SelectorMenuToggle     = "[data-menu-toggle]"
	SelectorMobileMenu     = "[data-mobile-menu]"
	SelectorNavLink        = "[data-nav-link]"
	SelectorMobileNavLink  = "[data-mobile-nav-link]"
	SelectorParallaxRoot   = "[data-parallax-root]"
	SelectorParallaxGrid   = "[data-parallax-grid]"
	SelectorScrollParallax = "[data-scroll-parallax]"

	ClassHasClient = "has-client"
	ClassOpen      = "is-open"
)

// App owns every listener the client installs. It is confined to the
// browser's event loop; only the parallax consumer runs on its own goroutine.
type App struct {
	doc    dom.Document
	win    dom.Window
	logger *zap.Logger

	menu     nav.Menu
	tracker  *parallax.Tracker
	reveals  *reveal.Controller
	releases []dom.Release
	mounted  bool
}

func New(doc dom.Document, win dom.Window, obs dom.Observer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		doc:     doc,
		win:     win,
		logger:  logger,
		tracker: parallax.NewTracker(doc, win, SelectorParallaxRoot, SelectorParallaxGrid),
		reveals: reveal.NewController(obs),
	}
}

// Mount attaches the client to the page. Calling it again while mounted is a no-op.
func (a *App) Mount() {
	if a.mounted {
		return
	}
	a.mounted = true

	if root := a.doc.QuerySelector(SelectorApp); root != nil {
		root.SetClass(ClassHasClient, true)
	}

	a.bindMenu()
	links := a.bindLinks()
	a.tracker.Mount()
	a.releases = append(a.releases, parallax.BindScroll(a.doc, a.win, SelectorScrollParallax))
	reveals := a.reveals.Watch(a.doc)

	a.logger.Debug("client mounted",
		zap.Int("nav_links", links),
		zap.Int("reveal_targets", reveals),
	)
}

// Unmount releases every subscription Mount acquired and closes the menu.
func (a *App) Unmount() {
	if !a.mounted {
		return
	}
	a.mounted = false
	for _, release := range a.releases {
		release()
	}
	a.releases = nil
	a.tracker.Unmount()
	a.reveals.Close()
	a.setMenu(false)
	if root := a.doc.QuerySelector(SelectorApp); root != nil {
		root.SetClass(ClassHasClient, false)
	}
	a.logger.Debug("client unmounted")
}

// Attach mounts the app and follows the page lifecycle. A page entering the
// back/forward cache is unmounted on pagehide and mounted again on pageshow.
// done closes once the page is unloaded for good.
func (a *App) Attach() (done <-chan struct{}, detach dom.Release) {
	a.Mount()

	unloaded := make(chan struct{})
	var once sync.Once
	hide := a.win.Listen("pagehide", func(ev dom.Event) {
		a.Unmount()
		if !ev.Persisted {
			once.Do(func() { close(unloaded) })
		}
	})
	show := a.win.Listen("pageshow", func(ev dom.Event) {
		if ev.Persisted {
			a.logger.Debug("page restored from cache")
			a.Mount()
		}
	})
	return unloaded, func() {
		hide()
		show()
	}
}

// MenuOpen reports whether the mobile overlay is shown.
func (a *App) MenuOpen() bool { return a.menu.Open() }

func (a *App) bindMenu() {
	toggle := a.doc.QuerySelector(SelectorMenuToggle)
	if toggle == nil {
		return
	}
	a.render()
	a.releases = append(a.releases, toggle.Listen("click", func(ev dom.Event) {
		ev.PreventDefault()
		a.menu.Toggle()
		a.render()
	}))
}

func (a *App) bindLinks() int {
	n := 0
	for _, el := range a.doc.QuerySelectorAll(SelectorNavLink) {
		link := nav.Link{Href: el.Attr("href")}
		a.releases = append(a.releases, el.Listen("click", func(ev dom.Event) {
			ev.PreventDefault()
			link.Activate(a.doc, a.win)
		}))
		n++
	}
	for _, el := range a.doc.QuerySelectorAll(SelectorMobileNavLink) {
		link := nav.MobileLink{Href: el.Attr("href"), OnClose: func() { a.setMenu(false) }}
		a.releases = append(a.releases, el.Listen("click", func(ev dom.Event) {
			ev.PreventDefault()
			link.Activate(a.doc, a.win)
		}))
		n++
	}
	return n
}

func (a *App) setMenu(open bool) {
	if a.menu.Open() == open {
		return
	}
	a.menu.Toggle()
	a.render()
}

// render projects the menu flag onto the toggle and overlay.
func (a *App) render() {
	open := a.menu.Open()
	if toggle := a.doc.QuerySelector(SelectorMenuToggle); toggle != nil {
		toggle.SetAttr("aria-expanded", boolAttr(open))
		toggle.SetAttr("data-icon", a.menu.ToggleIcon())
	}
	if overlay := a.doc.QuerySelector(SelectorMobileMenu); overlay != nil {
		overlay.SetClass(ClassOpen, open)
		overlay.SetAttr("aria-hidden", boolAttr(!open))
	}
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
