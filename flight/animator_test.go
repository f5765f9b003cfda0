package flight

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestAnimator(t *testing.T) *Animator {
	t.Helper()
	p, err := BuildRoute(referenceRoute())
	if err != nil {
		t.Fatal(err)
	}
	return NewAnimator(p, Options{})
}

func TestAnimatorZeroElapsedNeverAdvances(t *testing.T) {
	a := newTestAnimator(t)
	s := a.Start(1.0)

	now := 10 * time.Second
	for i := 0; i < 100; i++ {
		s = a.Tick(s, now)
	}
	if s.Index != 0 {
		t.Errorf("index = %d after zero-elapsed ticks, want 0", s.Index)
	}
}

func TestAnimatorThresholdGate(t *testing.T) {
	a := newTestAnimator(t)
	s := a.Start(1.0)
	s = a.Tick(s, 0) // arm

	if th := a.Threshold(s); th != 50*time.Millisecond {
		t.Fatalf("approach threshold = %v, want 50ms", th)
	}

	s = a.Tick(s, 49*time.Millisecond)
	if s.Index != 0 {
		t.Fatalf("advanced before threshold: index %d", s.Index)
	}

	s = a.Tick(s, 50*time.Millisecond)
	if s.Index != 1 {
		t.Fatalf("index = %d at threshold, want 1", s.Index)
	}
	if s.LastTick != 50*time.Millisecond {
		t.Errorf("clock not re-armed: LastTick = %v", s.LastTick)
	}
	if s.Position != a.Path().Points[0] {
		t.Errorf("position = %v, want first point %v", s.Position, a.Path().Points[0])
	}

	// elapsed is measured from the last advance, not from the arm time
	s = a.Tick(s, 90*time.Millisecond)
	if s.Index != 1 {
		t.Errorf("advanced after 40ms: index %d", s.Index)
	}
}

func TestAnimatorThresholdFollowsSegment(t *testing.T) {
	a := newTestAnimator(t)
	landing := 0.6

	tests := []struct {
		index int
		speed float64
		want  time.Duration
	}{
		{0, 1.0, 50 * time.Millisecond},
		{0, 2.0, 25 * time.Millisecond},
		{0, 0.5, 100 * time.Millisecond},
		{54, 1.0, time.Duration(float64(50*time.Millisecond) / landing)},
	}
	for _, tt := range tests {
		s := ActorState{Index: tt.index, Speed: tt.speed}
		if got := a.Threshold(s); got != tt.want {
			t.Errorf("Threshold(index %d, speed %v) = %v, want %v", tt.index, tt.speed, got, tt.want)
		}
	}
}

func TestAnimatorRunsToEnd(t *testing.T) {
	a := newTestAnimator(t)
	s := a.Start(2.0)
	last := a.Path().Last()

	now := time.Duration(0)
	prev := s.Index
	for i := 0; i < 10*a.Path().Len() && !a.Finished(s); i++ {
		s = a.Tick(s, now)
		if s.Index < prev {
			t.Fatalf("index went backwards: %d -> %d", prev, s.Index)
		}
		prev = s.Index
		now += 200 * time.Millisecond
	}

	if s.Index != last {
		t.Fatalf("index = %d, want last index %d", s.Index, last)
	}
	if !a.Finished(s) {
		t.Fatal("animator not finished at last index")
	}

	frozen := s
	for i := 0; i < 10; i++ {
		now += time.Second
		s = a.Tick(s, now)
	}
	if s != frozen {
		t.Errorf("finished actor changed: %+v -> %+v", frozen, s)
	}
}

func TestAnimatorDegeneratePath(t *testing.T) {
	paths := []*Path{
		nil,
		{},
		{Points: []mgl64.Vec3{{1, 2, 3}}, Segments: []Segment{{Kind: Approach, End: 1}}},
	}

	for i, p := range paths {
		a := NewAnimator(p, Options{})
		s := a.Start(1.0)
		if !a.Finished(s) {
			t.Errorf("path %d: not finished immediately", i)
		}
		before := s
		s = a.Tick(s, time.Hour)
		if s != before {
			t.Errorf("path %d: tick changed state %+v -> %+v", i, before, s)
		}
		if s.Position != (mgl64.Vec3{}) {
			t.Errorf("path %d: position moved to %v", i, s.Position)
		}
	}
}

func TestAnimatorStartFacesFirstTangent(t *testing.T) {
	p := &Path{
		Points:   []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}, {10, 0, 0}},
		Segments: []Segment{{Kind: Approach, End: 3}},
	}
	a := NewAnimator(p, Options{})
	s := a.Start(1.0)

	if s.Position != p.Points[0] {
		t.Errorf("start position = %v", s.Position)
	}
	nose := s.Orientation.Rotate(DefaultForward)
	if !near(nose, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("start heading = %v, want +X", nose)
	}
}

func TestAnimatorSpeedChangeMidFlight(t *testing.T) {
	a := newTestAnimator(t)
	s := a.Start(1.0)
	s = a.Tick(s, 0)

	s = s.Apply(Decrease).Apply(Decrease).Apply(Decrease).Apply(Decrease).Apply(Decrease)
	if s.Speed != MinSpeedFactor {
		t.Fatalf("speed = %v, want %v", s.Speed, MinSpeedFactor)
	}
	s = a.Tick(s, 60*time.Millisecond)
	if s.Index != 0 {
		t.Errorf("advanced at 60ms with halved speed")
	}
	s = a.Tick(s, 100*time.Millisecond)
	if s.Index != 1 {
		t.Errorf("index = %d at 100ms with halved speed, want 1", s.Index)
	}
}
