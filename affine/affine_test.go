// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package affine

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f64"
)

const testEps = 1e-9

var approx = cmpopts.EquateApprox(0, testEps)

func TestMultiply_Identity(t *testing.T) {
	m := Transform{A: 2, B: 3, C: 4, D: 5, E: 6, F: 7}
	if diff := cmp.Diff(m, Multiply(Identity(), m)); diff != "" {
		t.Errorf("Multiply(Identity(), m) mismatch (-want +got):\n%v", diff)
	}
	if diff := cmp.Diff(m, Multiply(m, Identity())); diff != "" {
		t.Errorf("Multiply(m, Identity()) mismatch (-want +got):\n%v", diff)
	}
}

func TestMultiply_Order(t *testing.T) {
	// Translate first, then rotate by 90°: (1, 0) -> (2, 0) -> (0, 2).
	m := Multiply(Rotation(90*s1.Degree), Translation(1, 0))
	got := Apply(m, r2.Point{X: 1, Y: 0})
	want := r2.Point{X: 0, Y: 2}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Apply(R*T, (1,0)) mismatch (-want +got):\n%v", diff)
	}
}

func TestMultiply_Associative(t *testing.T) {
	a := RotationAround(3, 4, 30*s1.Degree)
	b := Multiply(Translation(5, -2), ReflectX())
	c := Scale(2, 0.5)
	left := Multiply(Multiply(a, b), c)
	right := Multiply(a, Multiply(b, c))
	if !left.ApproxEqual(right, testEps) {
		t.Errorf("(a*b)*c = %v, a*(b*c) = %v", left, right)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Transform
	}{
		{"identity", Identity()},
		{"translation", Translation(12, -7)},
		{"rotation", Rotation(73 * s1.Degree)},
		{"rotation around", RotationAround(40, 40, 120*s1.Degree)},
		{"reflect x", ReflectX()},
		{"reflect y", ReflectY()},
		{"scale", Scale(3, 0.25)},
		{"glide", Multiply(Translation(100, 100), ReflectX())},
		{"general", Transform{A: 2, B: 1, C: 3, D: -1, E: 4, F: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Inverse(tt.m)
			if err != nil {
				t.Fatalf("Inverse(%v) error = %v, want nil", tt.m, err)
			}
			if got := Multiply(tt.m, inv); !got.ApproxEqual(Identity(), testEps) {
				t.Errorf("Multiply(m, Inverse(m)) = %v, want identity", got)
			}
			if got := Multiply(inv, tt.m); !got.ApproxEqual(Identity(), testEps) {
				t.Errorf("Multiply(Inverse(m), m) = %v, want identity", got)
			}
		})
	}
}

func TestInverse_Singular(t *testing.T) {
	tests := []struct {
		name string
		m    Transform
	}{
		{"zero", Transform{}},
		{"zero scale", Scale(0, 1)},
		{"collinear rows", Transform{A: 1, B: 2, C: 3, D: 2, E: 4, F: 5}},
		{"tiny det", Scale(1e-7, 1e-7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inverse(tt.m)
			if !errors.Is(err, ErrSingularTransform) {
				t.Errorf("Inverse(%v) error = %v, want %v", tt.m, err, ErrSingularTransform)
			}
		})
	}
}

func TestRotationAround_FixesCenter(t *testing.T) {
	center := r2.Point{X: 40, Y: 25}
	for deg := 0; deg < 360; deg += 15 {
		m := RotationAround(center.X, center.Y, s1.Angle(deg)*s1.Degree)
		got := Apply(m, center)
		if diff := cmp.Diff(center, got, approx); diff != "" {
			t.Errorf("RotationAround(..., %d°) moved center (-want +got):\n%v", deg, diff)
		}
	}
}

func TestRotationAround_Composition(t *testing.T) {
	const cx, cy = 50.0, 50.0
	angle := 60 * s1.Degree
	want := Multiply(Translation(cx, cy), Multiply(Rotation(angle), Translation(-cx, -cy)))
	if got := RotationAround(cx, cy, angle); !got.ApproxEqual(want, testEps) {
		t.Errorf("RotationAround(%v, %v, %v) = %v, want %v", cx, cy, angle, got, want)
	}
}

func TestApply_Primitives(t *testing.T) {
	p := r2.Point{X: 3, Y: 4}
	tests := []struct {
		name string
		m    Transform
		want r2.Point
	}{
		{"identity", Identity(), r2.Point{X: 3, Y: 4}},
		{"translation", Translation(1, -1), r2.Point{X: 4, Y: 3}},
		{"rotation 90", Rotation(90 * s1.Degree), r2.Point{X: -4, Y: 3}},
		{"rotation 180", Rotation(180 * s1.Degree), r2.Point{X: -3, Y: -4}},
		{"reflect x", ReflectX(), r2.Point{X: 3, Y: -4}},
		{"reflect y", ReflectY(), r2.Point{X: -3, Y: 4}},
		{"scale", Scale(2, 3), r2.Point{X: 6, Y: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.m, p)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Apply(%v, %v) mismatch (-want +got):\n%v", tt.m, p, diff)
			}
		})
	}
}

func TestApplyAll(t *testing.T) {
	ps := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}
	got := ApplyAll(Translation(10, 20), ps)
	want := []r2.Point{{X: 10, Y: 20}, {X: 11, Y: 22}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyAll(...) mismatch (-want +got):\n%v", diff)
	}
	if ps[1] != (r2.Point{X: 1, Y: 2}) {
		t.Errorf("ApplyAll(...) mutated input: %v", ps)
	}
}

func TestTransform_IsTranslation(t *testing.T) {
	if !Translation(3, 4).IsTranslation() {
		t.Errorf("Translation(3, 4).IsTranslation() = false, want true")
	}
	if ReflectX().IsTranslation() {
		t.Errorf("ReflectX().IsTranslation() = true, want false")
	}
}

func TestTransform_Aff3(t *testing.T) {
	m := Multiply(Translation(3, -2), RotationAround(40, 40, 90*s1.Degree))
	a := m.Aff3()
	p := r2.Point{X: 7, Y: 11}
	// x/image/draw maps (x, y) to (a0*x + a1*y + a2, a3*x + a4*y + a5).
	got := r2.Point{X: a[0]*p.X + a[1]*p.Y + a[2], Y: a[3]*p.X + a[4]*p.Y + a[5]}
	if diff := cmp.Diff(Apply(m, p), got, approx); diff != "" {
		t.Errorf("Aff3() mapping mismatch (-want +got):\n%v", diff)
	}
	if diff := cmp.Diff(m, FromAff3(a)); diff != "" {
		t.Errorf("FromAff3(m.Aff3()) mismatch (-want +got):\n%v", diff)
	}
	if got := FromAff3(f64.Aff3{1, 0, 0, 0, 1, 0}); got != Identity() {
		t.Errorf("FromAff3(identity) = %v, want %v", got, Identity())
	}
}

func TestTransform_SVG(t *testing.T) {
	m := Transform{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := "matrix(1 4 2 5 3 6)"
	if got := m.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

// Benchmarks

var sink Transform

func BenchmarkMultiply(b *testing.B) {
	r := RotationAround(40, 40, s1.Angle(math.Pi/3))
	tr := Translation(80, 0)
	b.ResetTimer()
	for bn := 0; bn < b.N; bn++ {
		sink = Multiply(tr, Multiply(r, ReflectX()))
	}
}
