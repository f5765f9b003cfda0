// =======================
// debris/compose.go
// =======================

package debris

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rows lays out a matrix written row by row into mgl64's column-major order.
func rows(
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23,
	a30, a31, a32, a33 float64,
) mgl64.Mat4 {
	return mgl64.Mat4{
		a00, a10, a20, a30,
		a01, a11, a21, a31,
		a02, a12, a22, a32,
		a03, a13, a23, a33,
	}
}

// RotationX rotates by angle radians about the X axis.
func RotationX(angle float64) mgl64.Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return rows(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY rotates by angle radians about the Y axis.
func RotationY(angle float64) mgl64.Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return rows(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ rotates by angle radians about the Z axis.
func RotationZ(angle float64) mgl64.Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return rows(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Rotation composes per-axis angles as Ry * Rx * Rz.
func Rotation(angles mgl64.Vec3) mgl64.Mat4 {
	return RotationY(angles[1]).Mul4(RotationX(angles[0])).Mul4(RotationZ(angles[2]))
}

// Translation moves by v.
func Translation(v mgl64.Vec3) mgl64.Mat4 {
	return rows(
		1, 0, 0, v[0],
		0, 1, 0, v[1],
		0, 0, 1, v[2],
		0, 0, 0, 1,
	)
}

// Scaling scales each axis by the matching component of v.
func Scaling(v mgl64.Vec3) mgl64.Mat4 {
	return rows(
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	)
}

// Compose returns translation * rotation * scale: scale is applied first,
// translation last. Reordering moves the apparent rotation pivot.
func Compose(translation, rotation, scale mgl64.Mat4) mgl64.Mat4 {
	return translation.Mul4(rotation).Mul4(scale)
}

// Transform applies a world matrix to a model-space point.
func Transform(world mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return world.Mul4x1(p.Vec4(1)).Vec3()
}
