package parallax

import (
	"strconv"
	"sync"

	"trenchsniffer.io/web/internal/dom"
)

// Tracker subscribes to window pointer moves and streams normalised samples to
// a consumer goroutine that writes them onto the hero container and grid.
//
// The subscription is acquired by Mount and released by Unmount.
type Tracker struct {
	doc          dom.Document
	win          dom.Window
	rootSelector string
	gridSelector string

	mu      sync.Mutex
	mounted bool
	release dom.Release
	samples chan Sample
	stop    chan struct{}
	done    chan struct{}
}

// NewTracker builds a tracker for the container matching rootSelector. The grid
// element matching gridSelector receives the scale transform; it may be absent.
func NewTracker(doc dom.Document, win dom.Window, rootSelector, gridSelector string) *Tracker {
	return &Tracker{
		doc:          doc,
		win:          win,
		rootSelector: rootSelector,
		gridSelector: gridSelector,
	}
}

// Mount attaches the pointer listener and starts the consumer. Mounting twice is a no-op.
func (t *Tracker) Mount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mounted {
		return
	}
	t.mounted = true
	t.samples = make(chan Sample, 1)
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	t.release = t.win.Listen("mousemove", t.handleMove)
	go t.consume(t.samples, t.stop, t.done)
}

// Unmount detaches the listener, applies any pending sample and waits for the
// consumer to exit. It is safe to call when not mounted.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	if !t.mounted {
		t.mu.Unlock()
		return
	}
	t.mounted = false
	release, stop, done := t.release, t.stop, t.done
	t.release = nil
	t.mu.Unlock()

	release()
	close(stop)
	<-done
}

func (t *Tracker) handleMove(ev dom.Event) {
	root := t.doc.QuerySelector(t.rootSelector)
	if root == nil {
		return
	}
	r := root.BoundingClientRect()
	t.publish(Normalize(ev.ClientX, ev.ClientY, r.Width, r.Height))
}

// publish keeps only the newest sample when the consumer falls behind.
func (t *Tracker) publish(s Sample) {
	t.mu.Lock()
	samples := t.samples
	mounted := t.mounted
	t.mu.Unlock()
	if !mounted {
		return
	}
	select {
	case samples <- s:
		return
	default:
	}
	select {
	case <-samples:
	default:
	}
	select {
	case samples <- s:
	default:
	}
}

func (t *Tracker) consume(samples <-chan Sample, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case s := <-samples:
			t.apply(s)
		case <-stop:
			for {
				select {
				case s := <-samples:
					t.apply(s)
				default:
					return
				}
			}
		}
	}
}

func (t *Tracker) apply(s Sample) {
	root := t.doc.QuerySelector(t.rootSelector)
	if root == nil {
		return
	}
	root.SetStyle(PropMouseX, strconv.FormatFloat(s.X, 'f', -1, 64))
	root.SetStyle(PropMouseY, strconv.FormatFloat(s.Y, 'f', -1, 64))
	if t.gridSelector == "" {
		return
	}
	if grid := t.doc.QuerySelector(t.gridSelector); grid != nil {
		grid.SetStyle("transform", GridTransform(s.Y))
	}
}

// BindScroll keeps every element matching selector shifted by the page's scroll
// progress. It applies the current position immediately.
func BindScroll(doc dom.Document, win dom.Window, selector string) dom.Release {
	update := func(dom.Event) {
		p := ScrollProgress(win.PageYOffset(), win.ScrollHeight(), win.InnerHeight())
		for _, el := range doc.QuerySelectorAll(selector) {
			el.SetStyle("transform", ScrollTransform(p))
		}
	}
	update(dom.Event{})
	return win.Listen("scroll", update)
}
