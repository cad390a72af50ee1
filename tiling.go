// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package wallpaper

import (
	"fmt"

	"github.com/2dChan/wallpaper/affine"
)

// TileInstance is one drawable copy of the prototype shape.
type TileInstance struct {
	// RoleIndex is the index of the cell transform that produced this copy.
	// It is an opaque label for coloring.
	RoleIndex int
	// Transform maps prototype coordinates in [0,tileSize]^2 to world coordinates.
	Transform affine.Transform
}

// GenerateTileInstances returns every tile instance of group id covering the viewport.
// The result holds |translations| * Order() instances, grouped per translation.
func GenerateTileInstances(id GroupID, tileSize float64, vp Viewport, setters ...Option) ([]TileInstance, error) {
	g, err := LookupGroup(id)
	if err != nil {
		return nil, fmt.Errorf("GenerateTileInstances: %w", err)
	}
	translations, err := Translations(g.Lattice, tileSize, vp, setters...)
	if err != nil {
		return nil, fmt.Errorf("GenerateTileInstances: %w", err)
	}
	return Instances(translations, g.CellTransforms(tileSize)), nil
}

// Instances combines lattice translations with cell transforms: T * G_r for every pair.
func Instances(translations, cell []affine.Transform) []TileInstance {
	out := make([]TileInstance, 0, len(translations)*len(cell))
	for _, t := range translations {
		for r, g := range cell {
			out = append(out, TileInstance{RoleIndex: r, Transform: affine.Multiply(t, g)})
		}
	}
	return out
}
