package flight

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ActorState is everything that changes while the ship flies.
// Index never decreases and stays within [0, len(path)-1].
type ActorState struct {
	Index       int
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Speed       float64 // global factor in [MinSpeedFactor, MaxSpeedFactor]

	LastTick time.Duration // timestamp of the last advance
	armed    bool
}

// Apply runs a speed command against the state's factor.
func (s ActorState) Apply(cmd SpeedCommand) ActorState {
	s.Speed = ApplySpeed(s.Speed, cmd)
	return s
}

// Options tunes an Animator. Zero values select the defaults.
type Options struct {
	BaseInterval time.Duration
	Forward      mgl64.Vec3
	TurnRate     float64
	Multipliers  map[SegmentKind]float64
}

// Animator walks an actor along a Path on a frame clock. It holds no
// per-run state; callers own the ActorState and thread it through Tick.
type Animator struct {
	path       *Path
	classifier *Classifier
	tracker    Tracker
	base       time.Duration
}

func NewAnimator(p *Path, opts Options) *Animator {
	if p == nil {
		p = &Path{}
	}
	base := opts.BaseInterval
	if base <= 0 {
		base = DefaultBaseInterval
	}
	return &Animator{
		path:       p,
		classifier: NewClassifier(p, opts.Multipliers),
		tracker:    NewTracker(opts.Forward, opts.TurnRate),
		base:       base,
	}
}

// Path returns the path being animated.
func (a *Animator) Path() *Path { return a.path }

// Classifier returns the segment classifier for the path.
func (a *Animator) Classifier() *Classifier { return a.classifier }

// Start places the actor on the first point facing the first tangent.
// A path with fewer than two points yields an already finished actor
// that is never moved.
func (a *Animator) Start(speed float64) ActorState {
	s := ActorState{
		Orientation: mgl64.QuatIdent(),
		Speed:       ClampSpeed(speed),
	}
	if a.path.Len() < 2 {
		return s
	}
	s.Position = a.path.Points[0]
	s.Orientation = a.tracker.Snap(s.Orientation, a.path.Points[0], a.path.Points[1])
	return s
}

// Finished reports whether s sits on the last point. A degenerate path is
// always finished.
func (a *Animator) Finished(s ActorState) bool {
	return a.path.Len() < 2 || s.Index >= a.path.Last()
}

// Threshold is the time that must pass at s.Index before the next advance.
func (a *Animator) Threshold(s ActorState) time.Duration {
	m := a.classifier.Multiplier(s.Index, s.Speed)
	if m <= 0 {
		m = MinSpeedFactor
	}
	return time.Duration(float64(a.base) / m)
}

// Tick advances s by at most one index at timestamp now. The first tick only
// arms the clock. Ticks on a finished actor return it unchanged.
func (a *Animator) Tick(s ActorState, now time.Duration) ActorState {
	if a.Finished(s) {
		return s
	}
	if !s.armed {
		s.armed = true
		s.LastTick = now
		return s
	}

	elapsed := now - s.LastTick
	if elapsed < a.Threshold(s) {
		return s
	}

	s.LastTick = now
	pts := a.path.Points
	s.Position = pts[s.Index]
	if s.Index < len(pts)-1 {
		s.Orientation = a.tracker.Step(s.Orientation, pts[s.Index], pts[s.Index+1])
		s.Index++
	}
	return s
}
