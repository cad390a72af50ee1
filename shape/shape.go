// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package shape provides editing primitives for the fundamental-domain polygon.
// A shape is a closed polygon stored as a []r2.Point without a closing duplicate.
// No function here modifies its input slice: edits return a new slice, and
// invalid edits return the input unchanged.
package shape

import (
	"math"

	"github.com/golang/geo/r2"
)

// DefaultHitTolerance is the default maximum distance for HitTestEdge.
const DefaultHitTolerance = 15

// UpdatePointAt returns a copy of points with the point at index replaced by p.
// An out-of-range index returns points itself.
func UpdatePointAt(points []r2.Point, index int, p r2.Point) []r2.Point {
	if index < 0 || index >= len(points) {
		return points
	}
	next := make([]r2.Point, len(points))
	copy(next, points)
	next[index] = p
	return next
}

// InsertPointAt returns a copy of points with p inserted after afterIndex.
// It requires at least two points and a valid index, otherwise it returns points itself.
func InsertPointAt(points []r2.Point, afterIndex int, p r2.Point) []r2.Point {
	if len(points) < 2 || afterIndex < 0 || afterIndex >= len(points) {
		return points
	}
	next := make([]r2.Point, 0, len(points)+1)
	next = append(next, points[:afterIndex+1]...)
	next = append(next, p)
	next = append(next, points[afterIndex+1:]...)
	return next
}

// ClampToTile clamps both coordinates of p into [0, tileSize].
func ClampToTile(p r2.Point, tileSize float64) r2.Point {
	return r2.Point{
		X: math.Max(0, math.Min(tileSize, p.X)),
		Y: math.Max(0, math.Min(tileSize, p.Y)),
	}
}

// EdgeHit is the result of a successful HitTestEdge.
type EdgeHit struct {
	// Index is the edge from points[Index] to points[(Index+1)%len(points)].
	Index int
	// Point is the closest point on the edge to the query.
	Point r2.Point
	// Distance is the distance from the query to Point.
	Distance float64
}

// HitTestEdge finds the polygon edge closest to (x, y). It reports false if points
// has fewer than three vertices or no edge lies within tolerance.
// On equal distances the lower edge index wins.
func HitTestEdge(points []r2.Point, x, y, tolerance float64) (EdgeHit, bool) {
	n := len(points)
	if n < 3 {
		return EdgeHit{}, false
	}
	q := r2.Point{X: x, Y: y}
	best := EdgeHit{Index: -1, Distance: math.Inf(1)}
	for i := 0; i < n; i++ {
		proj := ClosestPointOnSegment(q, points[i], points[(i+1)%n])
		if d := q.Sub(proj).Norm(); d < best.Distance {
			best = EdgeHit{Index: i, Point: proj, Distance: d}
		}
	}
	if best.Index < 0 || best.Distance > tolerance {
		return EdgeHit{}, false
	}
	return best, true
}

// ClosestPointOnSegment returns the point of segment ab closest to p.
func ClosestPointOnSegment(p, a, b r2.Point) r2.Point {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return a.Add(ab.Mul(t))
}

// SubdivideEdges replaces every edge with segmentsPerEdge equally spaced points: the edge
// start followed by the interior subdivisions. It requires at least three points and
// segmentsPerEdge >= 2, otherwise it returns points itself.
func SubdivideEdges(points []r2.Point, segmentsPerEdge int) []r2.Point {
	n := len(points)
	if n < 3 || segmentsPerEdge < 2 {
		return points
	}
	out := make([]r2.Point, 0, n*segmentsPerEdge)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		for k := 0; k < segmentsPerEdge; k++ {
			t := float64(k) / float64(segmentsPerEdge)
			out = append(out, a.Add(b.Sub(a).Mul(t)))
		}
	}
	return out
}

// ScaleAround returns points scaled by s around center.
func ScaleAround(points []r2.Point, center r2.Point, s float64) []r2.Point {
	out := make([]r2.Point, len(points))
	for i, p := range points {
		out[i] = center.Add(p.Sub(center).Mul(s))
	}
	return out
}

// Equal reports whether a and b hold the same coordinates.
func Equal(a, b []r2.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of points.
func Clone(points []r2.Point) []r2.Point {
	if points == nil {
		return nil
	}
	out := make([]r2.Point, len(points))
	copy(out, points)
	return out
}
