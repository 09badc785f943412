package ui

import (
	"math"
	"time"
)

// frameInterval is the redraw cadence while an opacity transition runs.
const frameInterval = 33 * time.Millisecond

// OpacityFade eases the displayed opacity toward the logical one. Only the
// drawn value moves; the logical opacity jumps straight to its target.
type OpacityFade struct {
	from     float64
	to       float64
	progress float64
}

func NewOpacityFade(initial float64) OpacityFade {
	return OpacityFade{from: initial, to: initial, progress: 1}
}

// Retarget starts a transition from the current displayed value.
func (f *OpacityFade) Retarget(to float64) {
	if to == f.to {
		return
	}
	f.from = f.Value()
	f.to = to
	f.progress = 0
}

// Snap ends any transition at target.
func (f *OpacityFade) Snap(target float64) {
	f.from = target
	f.to = target
	f.progress = 1
}

// Step advances the transition by one frame of a duration long animation.
func (f *OpacityFade) Step(duration time.Duration) {
	if f.progress >= 1 {
		return
	}
	if duration <= 0 {
		f.progress = 1
		return
	}

	f.progress += float64(frameInterval) / float64(duration)
	if f.progress > 1 {
		f.progress = 1
	}
}

func (f *OpacityFade) Value() float64 {
	if f.progress >= 1 {
		return f.to
	}
	return lerp(f.from, f.to, easeOutCubic(f.progress))
}

func (f *OpacityFade) Target() float64 { return f.to }

func (f *OpacityFade) Done() bool { return f.progress >= 1 }

func easeOutCubic(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return 1 - math.Pow(1-t, 3)
}

func lerp(a float64, b float64, t float64) float64 {
	return a + (b-a)*t
}

func clamp(val float64, min float64, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
