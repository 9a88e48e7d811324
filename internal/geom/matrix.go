// Package geom provides the small amount of 2D affine geometry the card
// stack needs: composable translate, rotate and scale transforms in a form a
// rendering surface can consume directly.
package geom

import "math"

// Matrix is a 2D affine transform in 2x3 row-major form:
//
//	| A  B  C |
//	| D  E  F |
//
// applied as x' = A·x + B·y + C, y' = D·x + E·y + F.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the do-nothing transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation returns a transform moving points by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Rotation returns a transform rotating points by angle radians about the
// origin.
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Scaling returns a uniform scale about the origin.
func Scaling(s float64) Matrix {
	return Matrix{A: s, E: s}
}

// Mul composes transforms: m.Mul(n) applies n first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}
