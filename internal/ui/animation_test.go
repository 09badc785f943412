package ui

import (
	"testing"
	"time"
)

func TestOpacityFadeReachesTarget(t *testing.T) {
	f := NewOpacityFade(1)
	f.Retarget(0)

	if f.Value() != 1 {
		t.Errorf("fade should start from the displayed value, got %v", f.Value())
	}
	if f.Target() != 0 {
		t.Errorf("target should jump immediately, got %v", f.Target())
	}

	prev := f.Value()
	for i := 0; i < 20 && !f.Done(); i++ {
		f.Step(300 * time.Millisecond)
		if f.Value() > prev {
			t.Fatalf("fade out should not rise: %v after %v", f.Value(), prev)
		}
		prev = f.Value()
	}

	if !f.Done() || f.Value() != 0 {
		t.Errorf("expected the fade to finish at 0, got %v (done=%v)", f.Value(), f.Done())
	}
}

func TestOpacityFadeRetargetMidway(t *testing.T) {
	f := NewOpacityFade(0)
	f.Retarget(1)
	f.Step(300 * time.Millisecond)
	f.Step(300 * time.Millisecond)
	mid := f.Value()

	f.Retarget(0.2)
	if f.Value() != mid {
		t.Errorf("retarget should continue from %v, got %v", mid, f.Value())
	}
}

func TestOpacityFadeZeroDuration(t *testing.T) {
	f := NewOpacityFade(1)
	f.Retarget(0.2)
	f.Step(0)
	if !f.Done() || f.Value() != 0.2 {
		t.Errorf("zero duration should jump, got %v", f.Value())
	}
}

func TestOpacityFadeLandsExactlyOnTarget(t *testing.T) {
	f := NewOpacityFade(1)
	f.Retarget(0.2)
	for i := 0; i < 100 && !f.Done(); i++ {
		f.Step(300 * time.Millisecond)
	}
	if !f.Done() {
		t.Fatal("fade never finished")
	}
	if f.Value() != 0.2 {
		t.Errorf("finished fade should sit on its target, got %v", f.Value())
	}
}

func TestOpacityFadeSameTargetIsNoop(t *testing.T) {
	f := NewOpacityFade(0.5)
	f.Retarget(0.5)
	if !f.Done() {
		t.Error("retargeting to the current value should not start a transition")
	}
}

func TestEaseOutCubic(t *testing.T) {
	if easeOutCubic(-1) != 0 || easeOutCubic(0) != 0 || easeOutCubic(1) != 1 || easeOutCubic(2) != 1 {
		t.Error("easing should clamp to [0, 1]")
	}
	if easeOutCubic(0.5) <= 0.5 {
		t.Error("ease-out should run ahead of linear")
	}
}
