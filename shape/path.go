// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package shape

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// PathBuilder receives the outline produced by Trace.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	Close()
}

// Trace emits the closed outline of points into b. If smooth is false the outline is the
// polygon itself. Otherwise it passes through every edge midpoint with a quadratic curve
// whose control point lies between the midpoint (tension 0) and the vertex (tension 1).
// Tension is clamped to [0, 1]. Trace reports false and emits nothing for fewer than three points.
func Trace(b PathBuilder, points []r2.Point, smooth bool, tension float64) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	t := math.Max(0, math.Min(1, tension))

	if !smooth {
		b.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			b.LineTo(p.X, p.Y)
		}
		b.Close()
		return true
	}

	mid := make([]r2.Point, n)
	for i := 0; i < n; i++ {
		mid[i] = lerp(points[i], points[(i+1)%n], 0.5)
	}
	b.MoveTo(mid[0].X, mid[0].Y)
	for i := 0; i < n; i++ {
		vertex := points[(i+1)%n]
		next := mid[(i+1)%n]
		cp := lerp(mid[i], vertex, t)
		b.QuadTo(cp.X, cp.Y, next.X, next.Y)
	}
	b.Close()
	return true
}

func lerp(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// Verb is a path command.
type Verb byte

const (
	MoveTo Verb = 'M'
	LineTo Verb = 'L'
	QuadTo Verb = 'Q'
	Close  Verb = 'Z'
)

// Segment is one recorded path command. Points holds the control point (for QuadTo)
// followed by the end point.
type Segment struct {
	Verb   Verb
	Points []r2.Point
}

// Path records the commands it receives. It implements PathBuilder.
type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{MoveTo, []r2.Point{{X: x, Y: y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{LineTo, []r2.Point{{X: x, Y: y}}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Segments = append(p.Segments, Segment{QuadTo, []r2.Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Verb: Close})
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(s.Verb))
		for j, pt := range s.Points {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
	}
	return sb.String()
}
