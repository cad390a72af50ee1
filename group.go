// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package wallpaper

import (
	"fmt"

	"github.com/2dChan/wallpaper/affine"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Group describes a wallpaper group: its lattice and the symmetry transforms
// applied within one translational cell.
type Group struct {
	ID          GroupID
	Lattice     LatticeType
	BaseVectors [2]r2.Point

	order int
	build func(tileSize float64) []affine.Transform
}

// CellTransforms returns the transforms mapping the prototype in [0,tileSize]^2 to each
// symmetry copy within one cell. Every transform fixes the cell center (tileSize/2, tileSize/2).
func (g Group) CellTransforms(tileSize float64) []affine.Transform {
	return g.build(tileSize)
}

// Order returns the number of cell transforms, i.e. copies drawn per cell.
func (g Group) Order() int {
	return g.order
}

// LookupGroup returns the definition of the group id.
func LookupGroup(id GroupID) (Group, error) {
	e, ok := catalog[id]
	if !ok {
		return Group{}, fmt.Errorf("LookupGroup: %q: %w", id, ErrUnknownGroup)
	}
	u, v := e.lattice.BaseVectors()
	return Group{
		ID:          id,
		Lattice:     e.lattice,
		BaseVectors: [2]r2.Point{u, v},
		order:       e.order,
		build:       e.build,
	}, nil
}

type catalogEntry struct {
	lattice LatticeType
	order   int
	build   func(tileSize float64) []affine.Transform
}

var catalog = map[GroupID]catalogEntry{
	P1:   {Oblique, 1, p1},
	P2:   {Oblique, 2, p2},
	PM:   {Rectangular, 2, pm},
	PG:   {Rectangular, 2, pg},
	CM:   {Rhombic, 2, cm},
	PMM:  {Rectangular, 4, pmm},
	PMG:  {Rectangular, 4, pmg},
	PGG:  {Rectangular, 4, pgg},
	CMM:  {Rectangular, 4, pmm},
	P4:   {Square, 4, p4},
	P4M:  {Square, 8, p4m},
	P4G:  {Square, 8, p4g},
	P3:   {Hexagonal, 3, p3},
	P3M1: {Hexagonal, 6, p3m1},
	P31M: {Hexagonal, 6, p31m},
	P6:   {Hexagonal, 6, p6},
	P6M:  {Hexagonal, 12, p6m},
}

// Building blocks. T is the tile size, c its half; every block fixes (c, c).

// mirrorV reflects across the vertical mid-line: x -> T-x.
func mirrorV(T float64) affine.Transform {
	return affine.Multiply(affine.Translation(T, 0), affine.ReflectY())
}

// mirrorH reflects across the horizontal mid-line: y -> T-y.
func mirrorH(T float64) affine.Transform {
	return affine.Multiply(affine.Translation(0, T), affine.ReflectX())
}

// mirrorDiag reflects across the diagonal y = x through the center.
func mirrorDiag(T float64) affine.Transform {
	c := T / 2
	return affine.Multiply(affine.Translation(c, c),
		affine.Multiply(affine.ReflectY(),
			affine.Multiply(affine.Rotation(90*s1.Degree), affine.Translation(-c, -c))))
}

// rotations returns the n rotations about the center by multiples of 360°/n.
func rotations(T float64, n int) []affine.Transform {
	c := T / 2
	out := make([]affine.Transform, n)
	out[0] = affine.Identity()
	for k := 1; k < n; k++ {
		out[k] = affine.RotationAround(c, c, s1.Angle(k)*(360*s1.Degree)/s1.Angle(n))
	}
	return out
}

// dihedral appends every rotation composed with the mirror m (rotation applied last).
func dihedral(T float64, n int, m affine.Transform) []affine.Transform {
	rs := rotations(T, n)
	out := make([]affine.Transform, 0, 2*n)
	out = append(out, rs...)
	for _, r := range rs {
		out = append(out, affine.Multiply(r, m))
	}
	return out
}

func p1(float64) []affine.Transform {
	return []affine.Transform{affine.Identity()}
}

func p2(T float64) []affine.Transform {
	return rotations(T, 2)
}

func pm(T float64) []affine.Transform {
	return []affine.Transform{affine.Identity(), mirrorV(T)}
}

// pg uses the linear part of its glide, shifted back onto the center.
func pg(T float64) []affine.Transform {
	c := T / 2
	return []affine.Transform{
		affine.Identity(),
		affine.Multiply(affine.Translation(T, c),
			affine.Multiply(affine.ReflectY(), affine.Translation(0, -c))),
	}
}

func cm(T float64) []affine.Transform {
	return []affine.Transform{affine.Identity(), mirrorV(T)}
}

func pmm(T float64) []affine.Transform {
	return []affine.Transform{
		affine.Identity(),
		mirrorV(T),
		mirrorH(T),
		affine.Multiply(affine.Translation(T, T), affine.Multiply(affine.ReflectX(), affine.ReflectY())),
	}
}

func pmg(T float64) []affine.Transform {
	c := T / 2
	return []affine.Transform{
		affine.Identity(),
		mirrorV(T),
		affine.Multiply(affine.Translation(c, T),
			affine.Multiply(affine.ReflectX(), affine.Translation(-c, 0))),
		affine.Multiply(affine.Translation(c, T),
			affine.Multiply(affine.ReflectX(), affine.Multiply(affine.ReflectY(), affine.Translation(-c, 0)))),
	}
}

func pgg(T float64) []affine.Transform {
	c := T / 2
	return []affine.Transform{
		affine.Identity(),
		affine.RotationAround(c, c, 180*s1.Degree),
		affine.Multiply(affine.Translation(T, c),
			affine.Multiply(affine.ReflectY(), affine.Translation(0, -c))),
		affine.Multiply(affine.Translation(c, T),
			affine.Multiply(affine.ReflectX(), affine.Translation(-c, 0))),
	}
}

func p4(T float64) []affine.Transform {
	return rotations(T, 4)
}

func p4m(T float64) []affine.Transform {
	return dihedral(T, 4, mirrorV(T))
}

func p4g(T float64) []affine.Transform {
	return dihedral(T, 4, mirrorDiag(T))
}

func p3(T float64) []affine.Transform {
	return rotations(T, 3)
}

func p3m1(T float64) []affine.Transform {
	return dihedral(T, 3, mirrorV(T))
}

func p31m(T float64) []affine.Transform {
	return dihedral(T, 3, mirrorH(T))
}

func p6(T float64) []affine.Transform {
	return rotations(T, 6)
}

func p6m(T float64) []affine.Transform {
	return dihedral(T, 6, mirrorV(T))
}
