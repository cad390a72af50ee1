// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// BaseShape selects the primitive a shape is seeded from.
type BaseShape string

const (
	Square   BaseShape = "square"
	Triangle BaseShape = "triangle"
	Hexagon  BaseShape = "hexagon"
)

var ErrUnknownBaseShape = errors.New("shape: unknown base shape")

// ParseBaseShape validates s as a base shape.
func ParseBaseShape(s string) (BaseShape, error) {
	switch b := BaseShape(s); b {
	case Square, Triangle, Hexagon:
		return b, nil
	}
	return "", fmt.Errorf("ParseBaseShape: %q: %w", s, ErrUnknownBaseShape)
}

// Default returns the seed polygon for base inside [0,tileSize]^2.
// Unknown values fall back to Square.
func Default(base BaseShape, tileSize float64) []r2.Point {
	c := tileSize / 2
	switch base {
	case Triangle:
		return []r2.Point{
			{X: c, Y: 0},
			{X: tileSize, Y: tileSize},
			{X: 0, Y: tileSize},
		}
	case Hexagon:
		points := make([]r2.Point, 6)
		for i := range points {
			a := math.Pi/3*float64(i) - math.Pi/6
			points[i] = r2.Point{X: c + c*math.Cos(a), Y: c + c*math.Sin(a)}
		}
		return points
	default:
		// Corners plus edge midpoints, so the default handles sit on edges.
		return []r2.Point{
			{X: 0, Y: 0},
			{X: c, Y: 0},
			{X: tileSize, Y: 0},
			{X: tileSize, Y: c},
			{X: tileSize, Y: tileSize},
			{X: c, Y: tileSize},
			{X: 0, Y: tileSize},
			{X: 0, Y: c},
		}
	}
}

// DefaultCorners returns the indices of the top-left, top-right, bottom-right and
// bottom-left corners of Default(base, ...).
// Shapes other than Square use their first four points.
func DefaultCorners(base BaseShape) [4]int {
	switch base {
	case Triangle, Hexagon:
		return [4]int{0, 1, 2, 3}
	default:
		return [4]int{0, 2, 4, 6}
	}
}
