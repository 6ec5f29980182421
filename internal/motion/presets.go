package motion

import (
	"strings"
	"time"
)

func frames(stops ...Frame) []Frame { return stops }

func at(pct float64, decls ...Decl) Frame { return Frame{At: pct, Decls: decls} }

func d(prop, value string) Decl { return Decl{Property: prop, Value: value} }

// Keyframe presets. Per-element variation comes through CSS custom properties
// (--start, --x-from, --x-to) set inline by the templates.
var (
	Spin = Keyframes{Name: "ts-spin", Frames: frames(
		at(0, d("transform", "rotate(var(--start, 0deg))")),
		at(100, d("transform", "rotate(calc(var(--start, 0deg) + 360deg))")),
	)}
	SpinReverse = Keyframes{Name: "ts-spin-reverse", Frames: frames(
		at(0, d("transform", "rotate(360deg)")),
		at(100, d("transform", "rotate(0deg)")),
	)}
	Pulse = Keyframes{Name: "ts-pulse", Frames: frames(
		at(0, d("opacity", "0.3")),
		at(50, d("opacity", "0.6")),
		at(100, d("opacity", "0.3")),
	)}
	Glow = Keyframes{Name: "ts-glow", Frames: frames(
		at(0, d("box-shadow", "0 0 20px rgba(134, 229, 255, 0.2)")),
		at(50, d("box-shadow", "0 0 40px rgba(134, 229, 255, 0.4)")),
		at(100, d("box-shadow", "0 0 20px rgba(134, 229, 255, 0.2)")),
	)}
	GlowStrong = Keyframes{Name: "ts-glow-strong", Frames: frames(
		at(0, d("box-shadow", "0 0 20px rgba(134, 229, 255, 0.3)")),
		at(50, d("box-shadow", "0 0 40px rgba(134, 229, 255, 0.5)")),
		at(100, d("box-shadow", "0 0 20px rgba(134, 229, 255, 0.3)")),
	)}
	GradientShift = Keyframes{Name: "ts-gradient-shift", Frames: frames(
		at(0, d("background-position", "0% center")),
		at(100, d("background-position", "200% center")),
	)}
	Nudge = Keyframes{Name: "ts-nudge", Frames: frames(
		at(0, d("transform", "translateX(0)")),
		at(50, d("transform", "translateX(5px)")),
		at(100, d("transform", "translateX(0)")),
	)}
	Scan = Keyframes{Name: "ts-scan", Frames: frames(
		at(0, d("transform", "translateY(100vh)"), d("opacity", "0")),
		at(50, d("opacity", "1")),
		at(100, d("transform", "translateY(-100vh)"), d("opacity", "0")),
	)}
	Drift = Keyframes{Name: "ts-drift", Frames: frames(
		at(0, d("transform", "translate(var(--x-from, 0px), -20px)"), d("opacity", "0")),
		at(50, d("opacity", "1")),
		at(100, d("transform", "translate(var(--x-to, 0vw), calc(100vh + 20px))"), d("opacity", "0")),
	)}
	Float = Keyframes{Name: "ts-float", Frames: frames(
		at(0, d("transform", "translateY(0)"), d("opacity", "0")),
		at(50, d("transform", "translateY(-20px)"), d("opacity", "1")),
		at(100, d("transform", "translateY(0)"), d("opacity", "0")),
	)}
	Breathe = Keyframes{Name: "ts-breathe", Frames: frames(
		at(0, d("transform", "scale(1)")),
		at(50, d("transform", "scale(1.1)")),
		at(100, d("transform", "scale(1)")),
	)}
	Twinkle = Keyframes{Name: "ts-twinkle", Frames: frames(
		at(0, d("transform", "scale(1)"), d("opacity", "0.5")),
		at(50, d("transform", "scale(1.5)"), d("opacity", "1")),
		at(100, d("transform", "scale(1)"), d("opacity", "0.5")),
	)}
	Beat = Keyframes{Name: "ts-beat", Frames: frames(
		at(0, d("transform", "scale(1)")),
		at(50, d("transform", "scale(1.2)")),
		at(100, d("transform", "scale(1)")),
	)}
)

// Presets lists every keyframe block, in stylesheet order.
var Presets = []Keyframes{
	Spin, SpinReverse, Pulse, Glow, GlowStrong, GradientShift, Nudge,
	Scan, Drift, Float, Breathe, Twinkle, Beat,
}

// Named transitions used by the layout and home sections.
var (
	LogoSpin       = Transition{Keyframes: Spin, Duration: 20 * time.Second, Easing: Linear, Repeat: Forever}
	SphereSpin     = Transition{Keyframes: Spin, Duration: 60 * time.Second, Easing: Linear, Repeat: Forever}
	SphereSpinBack = Transition{Keyframes: SpinReverse, Duration: 60 * time.Second, Easing: Linear, Repeat: Forever}
	HeadlineShift  = Transition{Keyframes: GradientShift, Duration: 10 * time.Second, Easing: Linear, Repeat: Forever}
	HeadlineGlow   = Transition{Keyframes: Pulse, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	ArrowNudge     = Transition{Keyframes: Nudge, Duration: 1500 * time.Millisecond, Easing: EaseInOut, Repeat: Forever}
	SphereGlow     = Transition{Keyframes: Glow, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	LogoGlow       = Transition{Keyframes: GlowStrong, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	LogoBreathe    = Transition{Keyframes: Breathe, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	ScanLine       = Transition{Keyframes: Scan, Easing: Linear, Repeat: Forever}
	DataDrift      = Transition{Keyframes: Drift, Easing: Linear, Repeat: Forever}
	RingSpin       = Transition{Keyframes: Spin, Easing: Linear, Repeat: Forever}
	Orbit          = Transition{Keyframes: Spin, Duration: 8 * time.Second, Easing: Linear, Repeat: Forever}
	ParticleGlint  = Transition{Keyframes: Twinkle, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	NumberFloat    = Transition{Keyframes: Float, Duration: 3 * time.Second, Easing: EaseInOut, Repeat: Forever}
	IndicatorGlow  = Transition{Keyframes: Glow, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
	BulletBeat     = Transition{Keyframes: Beat, Duration: 2 * time.Second, Easing: EaseInOut, Repeat: Forever}
)

// EntranceKind selects the reveal direction.
type EntranceKind string

const (
	FadeUp    EntranceKind = "fade-up"
	FromLeft  EntranceKind = "from-left"
	FromRight EntranceKind = "from-right"
)

// Entrance is a fire-once reveal played the first time an element scrolls into view.
type Entrance struct {
	Kind  EntranceKind
	Delay time.Duration
}

// DelayCSS renders the delay as a CSS time value.
func (e Entrance) DelayCSS() string { return seconds(e.Delay) }

// Stagger is the delay step between consecutive cards.
const Stagger = 200 * time.Millisecond

// Staggered returns an entrance delayed by index steps.
func Staggered(kind EntranceKind, index int) Entrance {
	return Entrance{Kind: kind, Delay: time.Duration(index) * Stagger}
}

const entranceCSS = `[data-reveal] { opacity: 0; transition: opacity 0.6s ease-out, transform 0.6s ease-out; }
[data-reveal="fade-up"] { transform: translateY(20px); }
[data-reveal="from-left"] { transform: translateX(-50px); }
[data-reveal="from-right"] { transform: translateX(50px); }
[data-reveal].is-revealed { opacity: 1; transform: none; }
body:not(.has-client) [data-reveal] { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  *, *::before, *::after { animation: none !important; transition: none !important; }
  [data-reveal] { opacity: 1; transform: none; }
}
`

// Stylesheet renders every preset and the entrance rules.
func Stylesheet() string {
	var b strings.Builder
	for _, k := range Presets {
		b.WriteString(k.CSS())
	}
	b.WriteString(entranceCSS)
	return b.String()
}
