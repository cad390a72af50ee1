// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random fixtures for tiles, shapes and viewports.

package utils

import (
	"math"
	"math/rand"
	"sort"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt random points inside the tile [0,tileSize]^2.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64, tileSize float64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = r2.Point{
			X: random.Float64() * tileSize,
			Y: random.Float64() * tileSize,
		}
	}

	return points
}

// GenerateRandomPolygon generates a simple (star-shaped) polygon of cnt vertices inside
// the tile [0,tileSize]^2, ordered by angle around the tile center.
func GenerateRandomPolygon(cnt int, seed int64, tileSize float64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	angles := make([]float64, cnt)
	for i := 0; i < cnt; i++ {
		angles[i] = random.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	c := tileSize / 2
	points := make([]r2.Point, cnt)
	for i, a := range angles {
		r := c * (0.2 + 0.8*random.Float64())
		points[i] = r2.Point{X: c + r*math.Cos(a), Y: c + r*math.Sin(a)}
	}

	return points
}
