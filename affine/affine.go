// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package affine implements 2D affine transforms as 3x3 homogeneous matrices
// whose bottom row is fixed to [0 0 1].
package affine

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// singularEps is the smallest determinant magnitude Inverse accepts.
	singularEps = 1e-12
)

// ErrSingularTransform is returned by Inverse when the transform has no inverse.
var ErrSingularTransform = errors.New("affine: singular transform")

// Transform is a 2D affine transform in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// It maps (x, y) to (A*x + B*y + C, D*x + E*y + F).
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Multiply returns the product a*b, i.e. b is applied first, then a.
func Multiply(a, b Transform) Transform {
	return Transform{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// Inverse returns the inverse of m.
// It returns an error wrapping ErrSingularTransform if |det(m)| < 1e-12.
func Inverse(m Transform) (Transform, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEps {
		return Transform{}, fmt.Errorf("Inverse: det = %g: %w", det, ErrSingularTransform)
	}
	invDet := 1 / det
	return Transform{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// Translation returns a transform mapping (x, y) to (x+tx, y+ty).
func Translation(tx, ty float64) Transform {
	return Transform{
		A: 1, B: 0, C: tx,
		D: 0, E: 1, F: ty,
	}
}

// Rotation returns a counter-clockwise rotation about the origin.
func Rotation(angle s1.Angle) Transform {
	sin, cos := math.Sincos(angle.Radians())
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotationAround returns a counter-clockwise rotation about (cx, cy),
// built as translate(-c), rotate, translate(+c).
func RotationAround(cx, cy float64, angle s1.Angle) Transform {
	return Multiply(Multiply(Translation(cx, cy), Rotation(angle)), Translation(-cx, -cy))
}

// ReflectX returns the reflection in the x axis (y -> -y).
func ReflectX() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: -1, F: 0,
	}
}

// ReflectY returns the reflection in the y axis (x -> -x).
func ReflectY() Transform {
	return Transform{
		A: -1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Scale returns a transform mapping (x, y) to (sx*x, sy*y).
func Scale(sx, sy float64) Transform {
	return Transform{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Apply returns m applied to p.
func Apply(m Transform, p r2.Point) r2.Point {
	return r2.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyAll returns a new slice holding m applied to every point of ps.
func ApplyAll(m Transform, ps []r2.Point) []r2.Point {
	out := make([]r2.Point, len(ps))
	for i, p := range ps {
		out[i] = Apply(m, p)
	}
	return out
}

// Determinant returns the determinant of the linear part of m.
func (m Transform) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsTranslation reports whether m is a pure translation.
func (m Transform) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ApproxEqual reports whether every coefficient of m is within eps of o's.
func (m Transform) ApproxEqual(o Transform, eps float64) bool {
	return scalar.EqualWithinAbs(m.A, o.A, eps) &&
		scalar.EqualWithinAbs(m.B, o.B, eps) &&
		scalar.EqualWithinAbs(m.C, o.C, eps) &&
		scalar.EqualWithinAbs(m.D, o.D, eps) &&
		scalar.EqualWithinAbs(m.E, o.E, eps) &&
		scalar.EqualWithinAbs(m.F, o.F, eps)
}

// SVG returns m as an SVG transform attribute value.
func (m Transform) SVG() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A, m.D, m.B, m.E, m.C, m.F)
}

// Aff3 returns m in the layout used by golang.org/x/image/draw.
func (m Transform) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

func FromAff3(a f64.Aff3) Transform {
	return Transform{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}

func (m Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; 0 0 1]", m.A, m.B, m.C, m.D, m.E, m.F)
}
