// Package scroll computes how far the reader has scrolled through the main
// content region and tracks it across visibility and scroll events.
package scroll

import "math"

// Measurement is a snapshot of the layout at one scroll position.
type Measurement struct {
	MainTop       float64 // distance of the main region's top from the viewport top
	MainHeight    float64
	CommentHeight float64 // trailing comment widget, excluded from the readable height
	WindowHeight  float64
}

// Compute maps a measurement to a percentage in [0, 100]. It is 0 until the
// main region's top reaches the viewport top. Content that fits inside the
// window counts as fully read once that happens.
func Compute(m Measurement) float64 {
	if m.MainTop > 0 {
		return 0
	}
	height := m.MainHeight - m.CommentHeight
	total := height - m.WindowHeight
	if total <= 0 {
		return 100
	}
	return clamp(-m.MainTop/total*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
