// Package parallax turns pointer and scroll input into the hero's depth effects.
package parallax

import (
	"fmt"
	"strconv"
)

// Sample is a pointer position normalised against the hero container, roughly
// in [-1, 1] on each axis while the pointer is over it.
type Sample struct {
	X float64
	Y float64
}

// Normalize maps client coordinates to a Sample: (client/extent - 0.5) * 2.
func Normalize(clientX, clientY, width, height float64) Sample {
	return Sample{
		X: (clientX/width - 0.5) * 2,
		Y: (clientY/height - 0.5) * 2,
	}
}

// Custom property names written on the container.
const (
	PropMouseX = "--mouse-x"
	PropMouseY = "--mouse-y"
)

// GridScale is the background grid scale for a vertical pointer offset.
func GridScale(mouseY float64) float64 {
	return 2 + mouseY*0.1
}

// GridTransform is the full CSS transform of the perspective grid.
func GridTransform(mouseY float64) string {
	return fmt.Sprintf("perspective(1000px) rotateX(60deg) translateZ(0) translateY(-100px) scale(%s)",
		strconv.FormatFloat(GridScale(mouseY), 'f', -1, 64))
}

// ScrollProgress is how far the page has been scrolled, in [0, 1].
func ScrollProgress(pageYOffset, scrollHeight, innerHeight float64) float64 {
	span := scrollHeight - innerHeight
	if span <= 0 {
		return 0
	}
	return clamp(pageYOffset/span, 0, 1)
}

// ScrollShift maps scroll progress linearly onto a 0%..50% vertical shift.
func ScrollShift(progress float64) float64 {
	return clamp(progress, 0, 1) * 50
}

// ScrollTransform is the CSS transform applied to the scroll-linked layer.
func ScrollTransform(progress float64) string {
	return "translateY(" + strconv.FormatFloat(ScrollShift(progress), 'f', -1, 64) + "%)"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
