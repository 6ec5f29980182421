package motion

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTransitionCSS(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ts-spin 20s linear 0s infinite", LogoSpin.CSS())
	require.Equal(t, "ts-nudge 1.5s ease-in-out 0s infinite", ArrowNudge.CSS())

	once := Transition{Keyframes: Pulse, Duration: 2 * time.Second}
	require.Equal(t, "ts-pulse 2s ease-in-out 0s 1", once.CSS())

	scan := ScanLine.WithDuration(Seconds(8 + 3)).WithDelay(Seconds(1.5 * 3))
	require.Equal(t, "ts-scan 11s linear 4.5s infinite", scan.CSS())
}

func TestStyleComposesTransitions(t *testing.T) {
	t.Parallel()

	require.Empty(t, Style())
	require.Equal(t,
		"animation: ts-breathe 2s ease-in-out 0s infinite, ts-spin 20s linear 0s infinite;",
		Style(LogoBreathe, LogoSpin))
}

func TestKeyframesCSS(t *testing.T) {
	t.Parallel()

	css := Pulse.CSS()
	require.True(t, strings.HasPrefix(css, "@keyframes ts-pulse {"))
	require.Contains(t, css, "50% { opacity: 0.6; }")
}

func TestStylesheetHasEveryPreset(t *testing.T) {
	t.Parallel()

	css := Stylesheet()
	for _, k := range Presets {
		require.Contains(t, css, "@keyframes "+k.Name+" {")
	}
	require.Contains(t, css, `[data-reveal="from-left"]`)
	require.Contains(t, css, ".is-revealed")
}

func TestStaggeredEntrance(t *testing.T) {
	t.Parallel()

	e := Staggered(FromRight, 3)
	require.Equal(t, FromRight, e.Kind)
	require.Equal(t, 600*time.Millisecond, e.Delay)
	require.Equal(t, "0.6s", e.DelayCSS())
	require.Equal(t, "0s", Staggered(FadeUp, 0).DelayCSS())
}
