package flight

import "sort"

// DefaultMultipliers slows the actor progressively toward the destination.
var DefaultMultipliers = map[SegmentKind]float64{
	Approach: 1.0,
	Hold:     0.9,
	Descent:  0.7,
	Landing:  0.6,
}

// Classifier maps a path index to its effective speed multiplier.
type Classifier struct {
	segments    []Segment
	multipliers map[SegmentKind]float64
}

// NewClassifier uses DefaultMultipliers when multipliers is nil. Kinds
// missing from the table run at 1.0.
func NewClassifier(p *Path, multipliers map[SegmentKind]float64) *Classifier {
	if multipliers == nil {
		multipliers = DefaultMultipliers
	}
	var segs []Segment
	if p != nil {
		segs = p.Segments
	}
	return &Classifier{segments: segs, multipliers: multipliers}
}

// SegmentAt returns the segment holding index. Indices past either end
// resolve to the first or last segment.
func (c *Classifier) SegmentAt(index int) (Segment, bool) {
	n := len(c.segments)
	if n == 0 {
		return Segment{}, false
	}
	i := sort.Search(n, func(i int) bool { return c.segments[i].End > index })
	if i == n {
		i = n - 1
	}
	return c.segments[i], true
}

// Multiplier returns speed * the per-segment factor for index.
func (c *Classifier) Multiplier(index int, speed float64) float64 {
	seg, ok := c.SegmentAt(index)
	if !ok {
		return speed
	}
	m, ok := c.multipliers[seg.Kind]
	if !ok {
		m = 1.0
	}
	return speed * m
}
