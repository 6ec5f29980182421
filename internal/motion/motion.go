// Package motion describes the page's decorative animations as data.
//
// A Transition names a Keyframes block and says how it plays (duration,
// easing, repeat, delay). Rendering produces plain CSS, so the browser's paint
// loop does the scheduling.
package motion

import (
	"strconv"
	"strings"
	"time"
)

// Easing is a CSS timing function.
type Easing string

const (
	Linear    Easing = "linear"
	EaseInOut Easing = "ease-in-out"
	EaseOut   Easing = "ease-out"
)

// Forever repeats a transition indefinitely.
const Forever = -1

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Frame is one keyframe stop. At is a percentage in [0, 100].
type Frame struct {
	At    float64
	Decls []Decl
}

// Keyframes is a named @keyframes block.
type Keyframes struct {
	Name   string
	Frames []Frame
}

// CSS renders the @keyframes rule.
func (k Keyframes) CSS() string {
	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(k.Name)
	b.WriteString(" {\n")
	for _, f := range k.Frames {
		b.WriteString("  ")
		b.WriteString(formatFloat(f.At))
		b.WriteString("% { ")
		for _, d := range f.Decls {
			b.WriteString(d.Property)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString("; ")
		}
		b.WriteString("}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Transition plays a Keyframes block.
type Transition struct {
	Keyframes Keyframes
	Duration  time.Duration
	Delay     time.Duration
	Easing    Easing
	// Repeat is the number of extra iterations, or Forever. Zero plays once.
	Repeat int
}

// CSS renders the animation shorthand, e.g. "ts-spin 20s linear 0s infinite".
func (t Transition) CSS() string {
	easing := t.Easing
	if easing == "" {
		easing = EaseInOut
	}
	parts := []string{
		t.Keyframes.Name,
		seconds(t.Duration),
		string(easing),
		seconds(t.Delay),
		iterations(t.Repeat),
	}
	return strings.Join(parts, " ")
}

// WithDelay returns a copy of t starting after d.
func (t Transition) WithDelay(d time.Duration) Transition {
	t.Delay = d
	return t
}

// WithDuration returns a copy of t lasting d per iteration.
func (t Transition) WithDuration(d time.Duration) Transition {
	t.Duration = d
	return t
}

// Style renders an inline style declaration running every transition at once.
func Style(ts ...Transition) string {
	if len(ts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(ts))
	for _, t := range ts {
		rendered = append(rendered, t.CSS())
	}
	return "animation: " + strings.Join(rendered, ", ") + ";"
}

func iterations(repeat int) string {
	if repeat < 0 {
		return "infinite"
	}
	return strconv.Itoa(repeat + 1)
}

func seconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Seconds converts fractional seconds to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
