// models.go
package main

import (
	"math"

	"approach/v2/debris"

	"github.com/go-gl/mathgl/mgl64"
)

// pointModel is a model-space point cloud drawn with one glyph per vertex.
type pointModel struct {
	verts  []mgl64.Vec3
	glyphs []rune
}

func (m *pointModel) Duplicate() debris.Model {
	return &pointModel{
		verts:  append([]mgl64.Vec3(nil), m.verts...),
		glyphs: append([]rune(nil), m.glyphs...),
	}
}

func (m *pointModel) glyph(i int) rune {
	if len(m.glyphs) == 0 {
		return '*'
	}
	return m.glyphs[i%len(m.glyphs)]
}

// newRockModel returns an icosahedron hull with unit circumradius.
func newRockModel() *pointModel {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []mgl64.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	verts := make([]mgl64.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize()
	}
	return &pointModel{verts: verts, glyphs: []rune{'o', '.'}}
}

// newRingModel returns a flat ring in XZ plus a core point. Alternating
// glyphs make a spin about Y visible.
func newRingModel(glyph rune, segments int) *pointModel {
	m := &pointModel{
		verts:  []mgl64.Vec3{{0, 0, 0}},
		glyphs: []rune{glyph},
	}
	for i := 0; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		m.verts = append(m.verts, mgl64.Vec3{math.Cos(a), 0, math.Sin(a)})
		if i%3 == 0 {
			m.glyphs = append(m.glyphs, glyph)
		} else {
			m.glyphs = append(m.glyphs, '-')
		}
	}
	return m
}
