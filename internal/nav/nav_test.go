package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trenchsniffer.io/web/internal/dom"
	"trenchsniffer.io/web/internal/dom/domtest"
)

func TestBuildPreservesOrder(t *testing.T) {
	t.Parallel()

	items := Build([]Item{
		{Label: "Features", Anchor: "#features", Icon: "cube"},
		{Label: "Roadmap", Anchor: "#roadmap", Icon: "road"},
	})
	require.Equal(t, []RenderedItem{
		{Href: "#features", Label: "Features", Icon: "cube", Target: "features"},
		{Href: "#roadmap", Label: "Roadmap", Icon: "road", Target: "roadmap"},
	}, items)
}

func TestMenuToggleEvenTimesRestoresState(t *testing.T) {
	t.Parallel()

	for _, start := range []bool{false, true} {
		for n := 0; n <= 8; n += 2 {
			m := &Menu{open: start}
			for i := 0; i < n; i++ {
				m.Toggle()
			}
			require.Equal(t, start, m.Open(), "start=%v toggles=%d", start, n)
		}
	}
}

func TestMenuToggleIcon(t *testing.T) {
	t.Parallel()

	var m Menu
	require.Equal(t, "bars", m.ToggleIcon())
	require.True(t, m.Toggle())
	require.Equal(t, "times", m.ToggleIcon())
	m.Close()
	require.False(t, m.Open())
}

func newPage() (*domtest.Document, *domtest.Window) {
	features := domtest.NewElement("features")
	features.Rect = dom.Rect{Top: 640}
	roadmap := domtest.NewElement("roadmap")
	roadmap.Rect = dom.Rect{Top: 1900}
	win := domtest.NewWindow()
	win.YOffset = 300
	return domtest.NewDocument(features, roadmap), win
}

func TestScrollOffsetSubtractsHeader(t *testing.T) {
	t.Parallel()

	doc, win := newPage()
	// getBoundingClientRect().top + pageYOffset - 80
	require.Equal(t, 640.0+300-80, ScrollOffset(doc, win, "#features"))
	require.Equal(t, 1900.0+300-80, ScrollOffset(doc, win, "#roadmap"))
}

func TestLinkActivateSmoothScrolls(t *testing.T) {
	t.Parallel()

	doc, win := newPage()
	Link{Href: "#features"}.Activate(doc, win)
	require.Equal(t, []domtest.Scroll{{Top: 860, Behavior: dom.ScrollSmooth}}, win.Scrolls)
}

func TestMobileLinkClosesMenuAfterScroll(t *testing.T) {
	t.Parallel()

	doc, win := newPage()
	var m Menu
	m.Toggle()

	var order []string
	win.OnScrollCall = func(domtest.Scroll) {
		order = append(order, "scroll")
		require.True(t, m.Open(), "menu must still be open while scrolling")
	}
	MobileLink{Href: "#roadmap", OnClose: func() {
		order = append(order, "close")
		m.Close()
	}}.Activate(doc, win)

	require.Equal(t, []string{"scroll", "close"}, order)
	require.False(t, m.Open())
	require.Equal(t, 1900.0+300-80, win.Scrolls[0].Top)
}

func TestScrollOffsetMissingAnchorIsPreconditionViolation(t *testing.T) {
	t.Parallel()

	doc, win := newPage()
	require.Panics(t, func() { ScrollOffset(doc, win, "#team") })
}

func TestOffPageLinksToHome(t *testing.T) {
	t.Parallel()

	items := OffPage(Build([]Item{
		{Label: "Features", Anchor: "#features", Icon: "cube"},
		{Label: "Roadmap", Anchor: "#roadmap", Icon: "road"},
	}), "/")
	require.Equal(t, []RenderedItem{
		{Href: "/#features", Label: "Features", Icon: "cube"},
		{Href: "/#roadmap", Label: "Roadmap", Icon: "road"},
	}, items)
}
