package debris

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRotationAxes(t *testing.T) {
	q := math.Pi / 2
	tests := []struct {
		name string
		m    mgl64.Mat4
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"x turns y to z", RotationX(q), mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"y turns z to x", RotationY(q), mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"z turns x to y", RotationZ(q), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"x leaves x", RotationX(1.3), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.m, tt.in)
			if !near(got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationMatchesLibrary(t *testing.T) {
	for _, a := range []float64{0, 0.3, -1.1, 2.5} {
		pairs := []struct {
			name      string
			hand, lib mgl64.Mat4
		}{
			{"x", RotationX(a), mgl64.HomogRotate3DX(a)},
			{"y", RotationY(a), mgl64.HomogRotate3DY(a)},
			{"z", RotationZ(a), mgl64.HomogRotate3DZ(a)},
		}
		for _, p := range pairs {
			if !nearMat(p.hand, p.lib, 1e-12) {
				t.Errorf("R%s(%v) = %v, want %v", p.name, a, p.hand, p.lib)
			}
		}
	}
}

func TestRotationOrder(t *testing.T) {
	angles := mgl64.Vec3{0.4, 1.2, -0.7}
	want := RotationY(angles[1]).Mul4(RotationX(angles[0])).Mul4(RotationZ(angles[2]))
	if got := Rotation(angles); !nearMat(got, want, 1e-12) {
		t.Errorf("Rotation = %v, want Ry*Rx*Rz %v", got, want)
	}
	if Rotation(mgl64.Vec3{}) != mgl64.Ident4() {
		t.Error("zero angles are not identity")
	}
}

func TestComposeOrder(t *testing.T) {
	pos := mgl64.Vec3{10, 0, 0}
	world := Compose(Translation(pos), RotationZ(math.Pi/2), Scaling(mgl64.Vec3{2, 2, 2}))

	// scale, then rotate about the local origin, then move
	got := Transform(world, mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{10, 2, 0}
	if !near(got, want, 1e-12) {
		t.Errorf("T*R*S applied to +X = %v, want %v", got, want)
	}

	// translating before rotating swings the object around the world origin
	wrong := Scaling(mgl64.Vec3{2, 2, 2}).Mul4(RotationZ(math.Pi / 2)).Mul4(Translation(pos))
	if near(Transform(wrong, mgl64.Vec3{1, 0, 0}), want, 1e-6) {
		t.Error("reversed order produced the same point")
	}
}

func TestTranslationAndScaling(t *testing.T) {
	tr := Translation(mgl64.Vec3{1, 2, 3})
	if got := Transform(tr, mgl64.Vec3{1, 1, 1}); got != (mgl64.Vec3{2, 3, 4}) {
		t.Errorf("translation = %v", got)
	}
	sc := Scaling(mgl64.Vec3{2, 3, 4})
	if got := Transform(sc, mgl64.Vec3{1, 1, 1}); got != (mgl64.Vec3{2, 3, 4}) {
		t.Errorf("scaling = %v", got)
	}
	if !nearMat(tr, mgl64.Translate3D(1, 2, 3), 1e-12) {
		t.Errorf("translation layout differs from mgl64: %v", tr)
	}
}

// near compares by distance. mgl64 compares relatively, which rejects
// round-off against an exact zero.
func near(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func nearMat(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}
