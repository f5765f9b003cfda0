package flight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTrackerTargetFacesTangent(t *testing.T) {
	tr := NewTracker(DefaultForward, DefaultTurnRate)

	dirs := []mgl64.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{-3, 4, 12},
		{0, 0, 5},
		{0, 0, -2},
	}
	for _, d := range dirs {
		q, ok := tr.Target(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}.Add(d))
		if !ok {
			t.Fatalf("Target(%v) reported degenerate", d)
		}
		got := q.Rotate(DefaultForward)
		if !near(got, d.Normalize(), 1e-9) {
			t.Errorf("forward rotated by Target(%v) = %v, want %v", d, got, d.Normalize())
		}
	}
}

func TestTrackerZeroDirectionLeavesOrientation(t *testing.T) {
	tr := NewTracker(DefaultForward, DefaultTurnRate)
	p := mgl64.Vec3{-150, 0, 0}
	start := mgl64.QuatRotate(0.7, mgl64.Vec3{0, 1, 0})

	if _, ok := tr.Target(p, p); ok {
		t.Error("Target on repeated point should report !ok")
	}
	if got := tr.Step(start, p, p); got != start {
		t.Errorf("Step on repeated point = %v, want %v", got, start)
	}
	if got := tr.Snap(start, p, p); got != start {
		t.Errorf("Snap on repeated point = %v, want %v", got, start)
	}
}

func TestTrackerStepInterpolates(t *testing.T) {
	tr := NewTracker(DefaultForward, 0.025)
	start := mgl64.QuatIdent()
	cur, next := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}
	target, _ := tr.Target(cur, next)

	q := tr.Step(start, cur, next)
	full := angleBetween(start, target)
	moved := angleBetween(start, q)
	if math.Abs(moved-0.025*full) > 1e-6 {
		t.Errorf("first step turned %v rad, want %v", moved, 0.025*full)
	}

	for i := 0; i < 2000; i++ {
		q = tr.Step(q, cur, next)
	}
	if angleBetween(q, target) > 1e-6 {
		t.Errorf("orientation did not converge: %v away", angleBetween(q, target))
	}
}

func TestTrackerDefaults(t *testing.T) {
	tr := NewTracker(mgl64.Vec3{}, 0)
	if tr.Forward != DefaultForward {
		t.Errorf("Forward = %v, want %v", tr.Forward, DefaultForward)
	}
	if tr.Rate != DefaultTurnRate {
		t.Errorf("Rate = %v, want %v", tr.Rate, DefaultTurnRate)
	}
}

func angleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}
