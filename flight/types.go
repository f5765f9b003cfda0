// =======================
// flight/types.go
// =======================

package flight

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultResolution   = 100
	DefaultBaseInterval = 50 * time.Millisecond
	DefaultTurnRate     = 0.025
	DefaultRevolutions  = 2.0

	MinSpeedFactor     = 0.5
	MaxSpeedFactor     = 2.0
	DefaultSpeedFactor = 1.0
	SpeedStep          = 0.1
)

var (
	ErrNoCurves      = errors.New("flight: no curves supplied")
	ErrBadResolution = errors.New("flight: resolution must be positive")
	ErrBadSamples    = errors.New("flight: sample count must be positive")
	ErrBadRadius     = errors.New("flight: radius must be positive")
	ErrBadPath       = errors.New("flight: segments do not partition the path")
)

// DefaultForward is the model axis that points out of the ship's nose.
var DefaultForward = mgl64.Vec3{0, 0, -1}

// SegmentKind tags a logical stretch of the path.
type SegmentKind int

const (
	Approach SegmentKind = iota
	Hold
	Descent
	Landing
)

func (k SegmentKind) String() string {
	switch k {
	case Approach:
		return "approach"
	case Hold:
		return "hold"
	case Descent:
		return "descent"
	case Landing:
		return "landing"
	}
	return fmt.Sprintf("segment(%d)", int(k))
}

func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SegmentKind) UnmarshalText(b []byte) error {
	for _, c := range []SegmentKind{Approach, Hold, Descent, Landing} {
		if string(b) == c.String() {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown segment kind %q", b)
}

// Segment covers the half-open index range [Start, End) of a Path.
type Segment struct {
	Kind    SegmentKind `json:"kind"`
	Ordinal int         `json:"ordinal"` // approach[i]; zero for the other kinds
	Start   int         `json:"start"`
	End     int         `json:"end"`
}

// Len returns the number of path points in the segment.
func (s Segment) Len() int { return s.End - s.Start }

// Contains reports whether index falls in the segment.
func (s Segment) Contains(index int) bool { return index >= s.Start && index < s.End }

// Tag renders the segment as approach[i], hold, descent or landing.
func (s Segment) Tag() string {
	if s.Kind == Approach {
		return fmt.Sprintf("approach[%d]", s.Ordinal)
	}
	return s.Kind.String()
}

// Path is the full ordered point sequence the actor traverses.
// Segments partition [0, len(Points)) in order with no gaps.
type Path struct {
	Points   []mgl64.Vec3
	Segments []Segment
}

// Len returns the number of points.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Points)
}

// Last returns the index of the final point, or -1 for an empty path.
func (p *Path) Last() int { return p.Len() - 1 }
