package flight

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Circle describes the holding pattern shared by hold, descent and landing.
type Circle struct {
	Center     mgl64.Vec3
	Radius     float64
	StartAngle float64 // radians, measured in the XZ plane
}

// point returns the circle point at angle, lifted by dy.
func (c Circle) point(angle, radius, dy float64) mgl64.Vec3 {
	return mgl64.Vec3{
		c.Center[0] + radius*math.Cos(angle),
		c.Center[1] + dy,
		c.Center[2] + radius*math.Sin(angle),
	}
}

// Route is the complete authored description of a path.
type Route struct {
	Curves     []Cubic
	Resolution int

	Circle      Circle
	HoldSamples int

	DescentSteps       int
	DescentDrop        float64
	DescentRevolutions float64

	LandingSteps int
}

// Builder concatenates independently authored pieces into one Path.
// Continuity between pieces is the caller's contract and is not checked.
type Builder struct {
	points   []mgl64.Vec3
	segments []Segment
	approach int
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) push(kind SegmentKind, ordinal int, pts []mgl64.Vec3) {
	start := len(b.points)
	b.points = append(b.points, pts...)
	b.segments = append(b.segments, Segment{
		Kind:    kind,
		Ordinal: ordinal,
		Start:   start,
		End:     len(b.points),
	})
}

// AddCurves samples every curve at resolution and appends each as its own
// approach segment of resolution+1 points.
func (b *Builder) AddCurves(curves []Cubic, resolution int) error {
	if len(curves) == 0 {
		return ErrNoCurves
	}
	if resolution <= 0 {
		return fmt.Errorf("%w: %d", ErrBadResolution, resolution)
	}

	for i, c := range curves {
		pts, err := c.Sample(resolution)
		if err != nil {
			return fmt.Errorf("curve %d: %w", i, err)
		}
		b.push(Approach, b.approach, pts)
		b.approach++
	}
	return nil
}

// AddHold appends one full revolution at constant height: samples+1 points.
func (b *Builder) AddHold(c Circle, samples int) error {
	if err := checkCircle(c, samples); err != nil {
		return fmt.Errorf("hold: %w", err)
	}

	pts := make([]mgl64.Vec3, samples+1)
	for i := 0; i <= samples; i++ {
		angle := c.StartAngle + float64(i)/float64(samples)*2*math.Pi
		pts[i] = c.point(angle, c.Radius, 0)
	}
	b.push(Hold, 0, pts)
	return nil
}

// AddDescent keeps circling while dropping linearly by drop over steps+1
// points; the angle advances revolutions full turns.
func (b *Builder) AddDescent(c Circle, steps int, drop, revolutions float64) error {
	if err := checkCircle(c, steps); err != nil {
		return fmt.Errorf("descent: %w", err)
	}

	pts := make([]mgl64.Vec3, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := c.StartAngle + 2*math.Pi*t*revolutions
		pts[i] = c.point(angle, c.Radius, -t*drop)
	}
	b.push(Descent, 0, pts)
	return nil
}

// AddLanding glides from the rim to the center at the given height over
// steps+1 points.
func (b *Builder) AddLanding(c Circle, steps int, height float64) error {
	if err := checkCircle(c, steps); err != nil {
		return fmt.Errorf("landing: %w", err)
	}

	dy := height - c.Center[1]
	pts := make([]mgl64.Vec3, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts[i] = c.point(c.StartAngle, (1-t)*c.Radius, dy)
	}
	b.push(Landing, 0, pts)
	return nil
}

// Build hands over the accumulated path. The builder must not be reused.
func (b *Builder) Build() *Path {
	return &Path{Points: b.points, Segments: b.segments}
}

func checkCircle(c Circle, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSamples, samples)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: %g", ErrBadRadius, c.Radius)
	}
	return nil
}

// BuildRoute assembles approach curves, hold, descent and landing in order.
// Pieces with a zero sample count are skipped so a curve-only route is valid.
func BuildRoute(r Route) (*Path, error) {
	b := NewBuilder()

	resolution := r.Resolution
	if resolution == 0 {
		resolution = DefaultResolution
	}
	if err := b.AddCurves(r.Curves, resolution); err != nil {
		return nil, fmt.Errorf("approach: %w", err)
	}

	if r.HoldSamples > 0 {
		if err := b.AddHold(r.Circle, r.HoldSamples); err != nil {
			return nil, err
		}
	}

	if r.DescentSteps > 0 {
		revs := r.DescentRevolutions
		if revs == 0 {
			revs = DefaultRevolutions
		}
		if err := b.AddDescent(r.Circle, r.DescentSteps, r.DescentDrop, revs); err != nil {
			return nil, err
		}
	}

	if r.LandingSteps > 0 {
		height := r.Circle.Center[1] - r.DescentDrop
		if err := b.AddLanding(r.Circle, r.LandingSteps, height); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
