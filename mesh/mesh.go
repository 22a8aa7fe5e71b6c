// Package mesh provides the opaque mesh handle the paint surface textures.
//
// The package holds already-parsed geometry only: positions, texture
// coordinates, and triangle indices. File format parsing (OBJ and
// friends) is a caller concern.
package mesh

import (
	"errors"
	"fmt"
)

// Validation errors returned by New.
var (
	ErrNoVertices      = errors.New("mesh: no vertices")
	ErrUVCountMismatch = errors.New("mesh: UV count does not match vertex count")
	ErrPartialTriangle = errors.New("mesh: index count is not a multiple of 3")
)

// Mesh is triangle geometry with per-vertex texture coordinates.
// UVs are in [0,1] texture space, V increasing downward to match the
// image-space origin of the canvas it is textured with.
type Mesh struct {
	Positions [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// New validates and wraps mesh data. The slices are retained, not copied.
func New(positions [][3]float32, uvs [][2]float32, indices []uint32) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoVertices
	}
	if len(uvs) != len(positions) {
		return nil, ErrUVCountMismatch
	}
	if len(indices)%3 != 0 {
		return nil, ErrPartialTriangle
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)",
				idx, i, len(positions))
		}
	}
	return &Mesh{Positions: positions, UVs: uvs, Indices: indices}, nil
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
func (m *Mesh) Bounds() (min, max [3]float32) {
	min = m.Positions[0]
	max = m.Positions[0]
	for _, p := range m.Positions[1:] {
		for a := 0; a < 3; a++ {
			if p[a] < min[a] {
				min[a] = p[a]
			}
			if p[a] > max[a] {
				max[a] = p[a]
			}
		}
	}
	return min, max
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() [3]float32 {
	min, max := m.Bounds()
	return [3]float32{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
}

// Quad returns a unit quad in the XY plane, centered at the origin, with
// the full texture mapped across it. Used as the default paintable mesh
// and in tests.
func Quad() *Mesh {
	m, err := New(
		[][3]float32{
			{-0.5, -0.5, 0},
			{0.5, -0.5, 0},
			{0.5, 0.5, 0},
			{-0.5, 0.5, 0},
		},
		[][2]float32{
			{0, 1},
			{1, 1},
			{1, 0},
			{0, 0},
		},
		[]uint32{0, 1, 2, 0, 2, 3},
	)
	if err != nil {
		panic(err) // static data; cannot fail
	}
	return m
}
