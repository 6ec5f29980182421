package icons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLRendersStrokedIcon(t *testing.T) {
	t.Parallel()

	out := string(HTML("cube", "icon icon--accent"))
	require.True(t, strings.HasPrefix(out, "<svg"), "expected svg root, got %s", out)
	require.Contains(t, out, `data-icon="cube"`)
	require.Contains(t, out, `class="icon icon--accent"`)
	require.Contains(t, out, `stroke="currentColor"`)
	require.Equal(t, 3, strings.Count(out, "<path"))
}

func TestHTMLRendersFilledIcon(t *testing.T) {
	t.Parallel()

	out := string(HTML("twitter", ""))
	require.Contains(t, out, `fill="currentColor"`)
	require.NotContains(t, out, "class=")
}

func TestUnknownIconRendersNothing(t *testing.T) {
	t.Parallel()

	require.False(t, Has("unicorn"))
	require.Empty(t, string(HTML("unicorn", "icon")))
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Contains(t, names, "road")
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}
