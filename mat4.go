package easel

import "github.com/chewxy/math32"

// Mat4 represents a 4x4 transformation matrix in row-major order:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// A point (x, y) transforms as a homogeneous vector (x, y, 0, 1).
// The engine only ever composes translations and positive axis-aligned
// scales into its view matrices, but Inverse handles the general case so
// externally supplied projection matrices work too.
//
// Mat4 is a value type; methods return new matrices and never mutate the
// receiver. Fixed-size arrays keep per-event transform math off the heap.
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation3 returns a translation matrix.
func Translation3(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scaling3 returns a scaling matrix.
func Scaling3(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// MulVec4 applies the transformation to a homogeneous 4-vector.
func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	return [4]float32{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// TransformPoint applies the transformation to a 2D point, treating it as
// the homogeneous vector (x, y, 0, 1) and dividing by the resulting w.
func (m Mat4) TransformPoint(p Point) Point {
	v := m.MulVec4([4]float32{p.X, p.Y, 0, 1})
	if v[3] != 0 && v[3] != 1 {
		return Point{X: v[0] / v[3], Y: v[1] / v[3]}
	}
	return Point{X: v[0], Y: v[1]}
}

// Translate returns the matrix pre-multiplied by a translation, shifting
// everything the matrix produces by (x, y, z) in target space.
func (m Mat4) Translate(x, y, z float32) Mat4 {
	return Translation3(x, y, z).Mul(m)
}

// TranslateLocal returns the matrix post-multiplied by a translation,
// shifting the matrix's source space by (x, y, z) before transforming.
func (m Mat4) TranslateLocal(x, y, z float32) Mat4 {
	return m.Mul(Translation3(x, y, z))
}

// ZoomAround returns the matrix scaled by s around the given pivot in
// target space: translate(+pivot) * scale(s) * translate(-pivot) * m.
// Points that map onto the pivot keep mapping onto it.
func (m Mat4) ZoomAround(pivot Point, s float32) Mat4 {
	z := Translation3(pivot.X, pivot.Y, 0).
		Mul(Scaling3(s, s, 1)).
		Mul(Translation3(-pivot.X, -pivot.Y, 0))
	return z.Mul(m)
}

// ScaleX returns the X-axis scale component. Valid for the matrices the
// engine composes itself (translations and axis-aligned scales only).
func (m Mat4) ScaleX() float32 {
	return m[0]
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}

// Inverse returns the inverse matrix and true, or the identity and false
// if the matrix is singular. Computed by cofactor expansion on every
// call; view matrices change between calls, so there is nothing worth
// caching.
func (m Mat4) Inverse() (Mat4, bool) {
	var inv Mat4

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] -
		m[9]*m[6]*m[15] + m[9]*m[7]*m[14] +
		m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] +
		m[8]*m[6]*m[15] - m[8]*m[7]*m[14] -
		m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] -
		m[8]*m[5]*m[15] + m[8]*m[7]*m[13] +
		m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] +
		m[8]*m[5]*m[14] - m[8]*m[6]*m[13] -
		m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] +
		m[9]*m[2]*m[15] - m[9]*m[3]*m[14] -
		m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] -
		m[8]*m[2]*m[15] + m[8]*m[3]*m[14] +
		m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] +
		m[8]*m[1]*m[15] - m[8]*m[3]*m[13] -
		m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] -
		m[8]*m[1]*m[14] + m[8]*m[2]*m[13] +
		m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] -
		m[5]*m[2]*m[15] + m[5]*m[3]*m[14] +
		m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] +
		m[4]*m[2]*m[15] - m[4]*m[3]*m[14] -
		m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] -
		m[4]*m[1]*m[15] + m[4]*m[3]*m[13] +
		m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] +
		m[4]*m[1]*m[14] - m[4]*m[2]*m[13] -
		m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] +
		m[5]*m[2]*m[11] - m[5]*m[3]*m[10] -
		m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] -
		m[4]*m[2]*m[11] + m[4]*m[3]*m[10] +
		m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] +
		m[4]*m[1]*m[11] - m[4]*m[3]*m[9] -
		m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] -
		m[4]*m[1]*m[10] + m[4]*m[2]*m[9] +
		m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if math32.Abs(det) < 1e-12 {
		return Identity4(), false
	}

	invDet := 1 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return inv, true
}
