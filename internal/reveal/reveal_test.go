package reveal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"trenchsniffer.io/web/internal/dom/domtest"
)

func TestRevealFiresOnce(t *testing.T) {
	t.Parallel()

	card := domtest.NewElement("card-1", AttrKind, "fade-up", AttrDelay, "0.4s")
	doc := domtest.NewDocument(card)
	obs := domtest.NewObserver()

	c := NewController(obs)
	require.Equal(t, 1, c.Watch(doc))
	require.Equal(t, 1, c.Pending())

	obs.Intersect(card, false)
	require.False(t, card.HasClass(ClassVisible))

	obs.Intersect(card, true)
	require.True(t, card.HasClass(ClassVisible))
	require.Equal(t, "0.4s", card.Style("transition-delay"))
	require.True(t, c.Revealed("card-1"))
	require.Zero(t, c.Pending())
	require.Zero(t, obs.Active(), "observation is released after the first reveal")

	card.SetClass(ClassVisible, false)
	obs.Intersect(card, true)
	require.False(t, card.HasClass(ClassVisible), "leaving and re-entering must not replay")
}

func TestWatchSkipsKnownTargets(t *testing.T) {
	t.Parallel()

	a := domtest.NewElement("", AttrKind, "from-left", AttrID, "milestone-0")
	b := domtest.NewElement("", AttrKind, "from-right")
	doc := domtest.NewDocument(a, b)
	obs := domtest.NewObserver()

	c := NewController(obs)
	c.Watch(doc)
	c.Watch(doc)
	require.Equal(t, 2, obs.Active())

	obs.Intersect(b, true)
	require.True(t, c.Revealed("reveal-1"))
	require.Empty(t, b.Style("transition-delay"))
}

func TestCloseReleasesPending(t *testing.T) {
	t.Parallel()

	doc := domtest.NewDocument(
		domtest.NewElement("a", AttrKind, "fade-up"),
		domtest.NewElement("b", AttrKind, "fade-up"),
	)
	obs := domtest.NewObserver()
	c := NewController(obs)
	c.Watch(doc)
	c.Close()
	require.Zero(t, obs.Active())
	require.Zero(t, c.Pending())
}

func TestRevealDuringObserveReleases(t *testing.T) {
	t.Parallel()

	card := domtest.NewElement("card-0", AttrKind, "fade-up")
	obs := domtest.NewObserver()
	obs.Immediate = true

	c := NewController(obs)
	require.Equal(t, 1, c.Watch(domtest.NewDocument(card)))
	require.True(t, card.HasClass(ClassVisible))
	require.True(t, c.Revealed("card-0"))
	require.Zero(t, c.Pending())
	require.Zero(t, obs.Active())
}
