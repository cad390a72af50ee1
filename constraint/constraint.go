// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package constraint keeps the boundary of a hand-edited fundamental domain consistent
// with a wallpaper group, so that adjacent tiles interlock after every vertex drag.
//
// A quadrilateral cell has four corners. Edges between corners are paired: the points
// of one edge must be the image of the other edge's points under a symmetry transform.
// Hexagonal-lattice groups have no edge constraints.
package constraint

import (
	"errors"
	"fmt"

	"github.com/2dChan/wallpaper"
	"github.com/2dChan/wallpaper/affine"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Corner is a canonical corner position of a rectangular cell.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// DefaultCorners maps every corner to the first four points of a shape.
var DefaultCorners = [4]int{0, 1, 2, 3}

// EdgeConstraint asserts that Transform maps the points of EdgeA onto the points of EdgeB,
// with EdgeA[k] going to EdgeB[k].
type EdgeConstraint struct {
	EdgeA     [2]Corner
	EdgeB     [2]Corner
	Transform affine.Transform
}

var (
	left    = [2]Corner{TopLeft, BottomLeft}
	top     = [2]Corner{TopLeft, TopRight}
	right   = [2]Corner{TopRight, BottomRight}
	rightR  = [2]Corner{BottomRight, TopRight}
	bottom  = [2]Corner{BottomLeft, BottomRight}
	bottomR = [2]Corner{BottomRight, BottomLeft}
)

// Supported reports whether id has edge constraints.
// Hexagonal-lattice groups are not supported.
func Supported(id wallpaper.GroupID) bool {
	g, err := wallpaper.LookupGroup(id)
	return err == nil && g.Lattice != wallpaper.Hexagonal
}

// EdgeConstraints returns the left/right and top/bottom constraints of group id
// for a square cell of side tileSize. Hexagonal-lattice groups return nil.
func EdgeConstraints(id wallpaper.GroupID, tileSize float64) ([]EdgeConstraint, error) {
	g, err := wallpaper.LookupGroup(id)
	if err != nil {
		return nil, fmt.Errorf("EdgeConstraints: %w", err)
	}
	T := tileSize
	c := T / 2
	halfTurn := affine.RotationAround(c, c, 180*s1.Degree)
	mirrorV := affine.Multiply(affine.Translation(T, 0), affine.ReflectY())
	mirrorH := affine.Multiply(affine.Translation(0, T), affine.ReflectX())
	// (x, y) -> (x+T, T-y) and (x, y) -> (T-x, y+T).
	glideH := affine.Multiply(affine.Translation(T, T), affine.ReflectX())
	glideV := affine.Multiply(affine.Translation(T, T), affine.ReflectY())

	switch g.ID {
	case wallpaper.P1:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: right, Transform: affine.Translation(T, 0)},
			{EdgeA: top, EdgeB: bottom, Transform: affine.Translation(0, T)},
		}, nil
	case wallpaper.P2, wallpaper.P4, wallpaper.P4M, wallpaper.P4G, wallpaper.PGG:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: rightR, Transform: halfTurn},
			{EdgeA: top, EdgeB: bottomR, Transform: halfTurn},
		}, nil
	case wallpaper.PM, wallpaper.PMM, wallpaper.CMM:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: right, Transform: mirrorV},
			{EdgeA: top, EdgeB: bottom, Transform: mirrorH},
		}, nil
	case wallpaper.PG:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: rightR, Transform: glideH},
			{EdgeA: top, EdgeB: bottomR, Transform: glideV},
		}, nil
	case wallpaper.PMG:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: right, Transform: mirrorV},
			{EdgeA: top, EdgeB: bottomR, Transform: glideV},
		}, nil
	case wallpaper.CM:
		return []EdgeConstraint{
			{EdgeA: left, EdgeB: rightR, Transform: glideH},
			{EdgeA: top, EdgeB: bottom, Transform: affine.Translation(0, T)},
		}, nil
	}
	// Hexagonal lattices are unsupported.
	return nil, nil
}

// Options configures constraint propagation.
type Options struct {
	// Corners holds the point indices of TopLeft, TopRight, BottomRight and BottomLeft.
	Corners [4]int
}

type Option func(*Options) error

// WithCorners sets an explicit corner index map, used when extra edge points
// come before the corners in the point order.
func WithCorners(corners [4]int) Option {
	return func(o *Options) error {
		for i := range corners {
			if corners[i] < 0 {
				return fmt.Errorf("WithCorners: negative index %d", corners[i])
			}
			for j := i + 1; j < len(corners); j++ {
				if corners[i] == corners[j] {
					return errors.New("WithCorners: corner indices must be distinct")
				}
			}
		}
		o.Corners = corners
		return nil
	}
}

// Apply moves point index to pos and, when the point lies on a constrained edge,
// overwrites its mirror on the paired edge so both edges stay images of one another.
// Corners are never propagated. An out-of-range index returns points unchanged.
// The input slice is never modified.
func Apply(points []r2.Point, index int, pos r2.Point, id wallpaper.GroupID, tileSize float64, setters ...Option) ([]r2.Point, error) {
	opts := Options{Corners: DefaultCorners}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	constraints, err := EdgeConstraints(id, tileSize)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}
	if index < 0 || index >= len(points) {
		return points, nil
	}

	next := make([]r2.Point, len(points))
	copy(next, points)
	next[index] = pos

	n := len(points)
	for _, ci := range opts.Corners {
		if ci >= n {
			wallpaper.Logger().Debug("constraint: corners outside shape, skipping propagation",
				"corners", opts.Corners, "points", n)
			return next, nil
		}
		if ci == index {
			return next, nil
		}
	}

	for _, ec := range constraints {
		runA := edgeRun(opts.Corners, ec.EdgeA, n)
		runB := edgeRun(opts.Corners, ec.EdgeB, n)
		if runA == nil || runB == nil || len(runA) != len(runB) {
			wallpaper.Logger().Debug("constraint: edge runs do not pair, skipping",
				"edgeA", ec.EdgeA, "edgeB", ec.EdgeB, "lenA", len(runA), "lenB", len(runB))
			continue
		}
		if k := indexOf(runA, index); k >= 0 {
			next[runB[k]] = affine.Apply(ec.Transform, pos)
			continue
		}
		if k := indexOf(runB, index); k >= 0 {
			inv, err := affine.Inverse(ec.Transform)
			if err != nil {
				return nil, fmt.Errorf("Apply: %w", err)
			}
			next[runA[k]] = affine.Apply(inv, pos)
		}
	}
	return next, nil
}

// edgeRun returns the point indices strictly between the two corners of edge, ordered
// from edge[0] to edge[1] along the cyclic path that meets no other corner.
// It returns nil if there is no such path.
func edgeRun(corners [4]int, edge [2]Corner, n int) []int {
	from, to := corners[edge[0]], corners[edge[1]]
	isCorner := func(i int) bool {
		for _, c := range corners {
			if c == i {
				return true
			}
		}
		return false
	}
	for _, step := range []int{1, n - 1} {
		run := []int{}
		for i := (from + step) % n; ; i = (i + step) % n {
			if i == to {
				return run
			}
			if isCorner(i) {
				break
			}
			run = append(run, i)
		}
	}
	return nil
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
