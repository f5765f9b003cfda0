package flight

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Cubic is one cubic Bezier segment: start, two controls, end.
type Cubic struct {
	P0, P1, P2, P3 mgl64.Vec3
}

// At evaluates B(t) = (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3.
// At(0) and At(1) return P0 and P3 exactly.
func (c Cubic) At(t float64) mgl64.Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t

	return mgl64.Vec3{
		b0*c.P0[0] + b1*c.P1[0] + b2*c.P2[0] + b3*c.P3[0],
		b0*c.P0[1] + b1*c.P1[1] + b2*c.P2[1] + b3*c.P3[1],
		b0*c.P0[2] + b1*c.P1[2] + b2*c.P2[2] + b3*c.P3[2],
	}
}

// Sample returns resolution+1 points at uniform steps of t over [0,1].
func (c Cubic) Sample(resolution int) ([]mgl64.Vec3, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadResolution, resolution)
	}

	points := make([]mgl64.Vec3, resolution+1)
	for i := 0; i <= resolution; i++ {
		points[i] = c.At(float64(i) / float64(resolution))
	}
	return points, nil
}
