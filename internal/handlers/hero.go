package handlers

import (
	"fmt"
	"html/template"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/motion"
	"trenchsniffer.io/web/internal/parallax"
)

// Hero decoration counts.
const (
	ScanLineCount   = 8
	DataPointCount  = 15
	RingCount       = 3
	ParticleCount   = 12
	NumberCount     = 8
	orbitRadiusPx   = 120
	numberRadiusPct = 80
)

// Decor draws the randomised parts of the hero backdrop. A fixed seed gives a
// reproducible page.
type Decor struct {
	rng *rand.Rand
}

// NewDecor uses rng for every random draw. A nil rng seeds from the runtime.
func NewDecor(rng *rand.Rand) Decor {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return Decor{rng: rng}
}

// SeededDecor returns a Decor whose output depends only on seed.
func SeededDecor(seed uint64) Decor {
	return NewDecor(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// hex returns n random lowercase hexadecimal characters.
func (d Decor) hex(n int) string {
	var b strings.Builder
	for b.Len() < n {
		fmt.Fprintf(&b, "%016x", d.rng.Uint64())
	}
	return b.String()[:n]
}

// DecorItem is one decorative element: an optional text label and its inline style.
type DecorItem struct {
	Label string
	Style template.CSS
}

// HeroData is the view model for the hero section.
type HeroData struct {
	Accent   string
	Headline string
	Body     template.HTML
	CTA      string
	CTAHref  string
	Logo     string
	LogoAlt  string

	AccentStyle      template.CSS
	GlowStyle        template.CSS
	ArrowStyle       template.CSS
	SphereStyle      template.CSS
	SphereBackStyle  template.CSS
	GridStyle        template.CSS
	TechGlowStyle    template.CSS
	LogoBreatheStyle template.CSS
	LogoSpinStyle    template.CSS
	LogoGlowStyle    template.CSS
	ParticleStyle    template.CSS

	ScanLines  []DecorItem
	DataPoints []DecorItem
	Rings      []DecorItem
	Particles  []DecorItem
	Numbers    []DecorItem
}

// BuildHero assembles the hero view model from content and the decor source.
func BuildHero(site *content.Site, decor Decor) HeroData {
	return HeroData{
		Accent:   site.Hero.Accent,
		Headline: site.Hero.Headline,
		Body:     site.Hero.BodyHTML(),
		CTA:      site.Hero.CTA,
		CTAHref:  site.Links.Community,
		Logo:     site.Brand.Logo,
		LogoAlt:  site.Brand.LogoAlt,

		AccentStyle:      css(motion.Style(motion.HeadlineShift)),
		GlowStyle:        css(motion.Style(motion.HeadlineGlow)),
		ArrowStyle:       css(motion.Style(motion.ArrowNudge)),
		SphereStyle:      css(motion.Style(motion.SphereSpin)),
		SphereBackStyle:  css(motion.Style(motion.SphereSpinBack)),
		GridStyle:        css("transform: " + parallax.GridTransform(0) + "; transform-origin: 50% 0%; opacity: 0.25;"),
		TechGlowStyle:    css(motion.Style(motion.SphereGlow)),
		LogoBreatheStyle: css(motion.Style(motion.LogoBreathe)),
		LogoSpinStyle:    css(motion.Style(motion.LogoSpin)),
		LogoGlowStyle:    css(motion.Style(motion.LogoGlow)),
		ParticleStyle:    css(motion.Style(motion.ParticleGlint)),

		ScanLines:  ScanLines(),
		DataPoints: decor.DataPoints(),
		Rings:      Rings(),
		Particles:  Particles(),
		Numbers:    decor.Numbers(),
	}
}

// ScanLines: line i runs for 8+i seconds after a 1.5*i second delay, at opacity 0.1+0.02*i.
func ScanLines() []DecorItem {
	out := make([]DecorItem, 0, ScanLineCount)
	for i := 0; i < ScanLineCount; i++ {
		t := motion.ScanLine.
			WithDuration(motion.Seconds(float64(8 + i))).
			WithDelay(motion.Seconds(1.5 * float64(i)))
		opacity := round2(0.1 + 0.02*float64(i))
		out = append(out, DecorItem{Style: css(fmt.Sprintf(
			"background: linear-gradient(90deg, transparent 0%%, rgba(134, 229, 255, %s) 50%%, transparent 100%%); %s",
			num(opacity), motion.Style(t)))})
	}
	return out
}

// DataPoints are drifting 8-character hex labels with random timing and path.
func (d Decor) DataPoints() []DecorItem {
	out := make([]DecorItem, 0, DataPointCount)
	for i := 0; i < DataPointCount; i++ {
		t := motion.DataDrift.
			WithDuration(motion.Seconds(round2(15 + d.rng.Float64()*10))).
			WithDelay(motion.Seconds(round2(d.rng.Float64() * 5)))
		from := round2(d.rng.Float64() * 100)
		to := round2(d.rng.Float64() * 100)
		out = append(out, DecorItem{
			Label: d.hex(8),
			Style: css(fmt.Sprintf("--x-from: %svw; --x-to: %svw; %s", num(from), num(to), motion.Style(t))),
		})
	}
	return out
}

// Rings: ring i starts at 30*i degrees and turns once every 20+5*i seconds.
func Rings() []DecorItem {
	out := make([]DecorItem, 0, RingCount)
	for i := 0; i < RingCount; i++ {
		t := motion.RingSpin.WithDuration(motion.Seconds(float64(20 + 5*i)))
		out = append(out, DecorItem{Style: css(fmt.Sprintf("--start: %ddeg; %s", 30*i, motion.Style(t)))})
	}
	return out
}

// Particles: particle i sits at 30*i degrees on the orbit and trails by i*8/12 seconds.
func Particles() []DecorItem {
	out := make([]DecorItem, 0, ParticleCount)
	period := motion.Orbit.Duration.Seconds()
	for i := 0; i < ParticleCount; i++ {
		t := motion.Orbit.WithDelay(motion.Seconds(float64(i) * period / ParticleCount))
		out = append(out, DecorItem{Style: css(fmt.Sprintf(
			"--start: %ddeg; --orbit: %dpx; %s", 30*i, orbitRadiusPx, motion.Style(t)))})
	}
	return out
}

// Numbers are 6-character hex labels spaced evenly on a circle around the sphere.
func (d Decor) Numbers() []DecorItem {
	out := make([]DecorItem, 0, NumberCount)
	for i := 0; i < NumberCount; i++ {
		angle := float64(i) * math.Pi / 4
		left := round2(50 + math.Cos(angle)*numberRadiusPct)
		top := round2(50 + math.Sin(angle)*numberRadiusPct)
		t := motion.NumberFloat.WithDelay(motion.Seconds(0.5 * float64(i)))
		out = append(out, DecorItem{
			Label: d.hex(6),
			Style: css(fmt.Sprintf("left: %s%%; top: %s%%; %s", num(left), num(top), motion.Style(t))),
		})
	}
	return out
}

// css marks generated declarations as safe. Inputs are numbers and fixed strings only.
func css(s string) template.CSS { return template.CSS(s) }

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
