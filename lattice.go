// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package wallpaper

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/wallpaper/affine"
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultMargin = 2

	// degenerateDet is the basis determinant below which the fallback range is used.
	degenerateDet = 1e-10
	fallbackRange = 2
)

// LatticeType is the lattice family of a wallpaper group.
type LatticeType string

const (
	Square      LatticeType = "square"
	Rectangular LatticeType = "rectangular"
	Rhombic     LatticeType = "rhombic"
	Oblique     LatticeType = "oblique"
	Hexagonal   LatticeType = "hexagonal"
)

// BaseVectors returns the normalized base vectors of the lattice.
// They are scaled by the tile size at use time.
func (lt LatticeType) BaseVectors() (r2.Point, r2.Point) {
	switch lt {
	case Rhombic, Oblique:
		return r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: 0.866}
	case Hexagonal:
		return r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: math.Sqrt(3) / 2}
	default:
		return r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}
	}
}

// Options configures lattice enumeration.
type Options struct {
	// Margin expands the viewport on every side, in tile sizes.
	Margin float64
}

type Option func(*Options) error

// WithMargin sets the viewport margin in tile sizes. It must be non-negative.
func WithMargin(cells float64) Option {
	return func(o *Options) error {
		if cells < 0 || math.IsNaN(cells) {
			return errors.New("WithMargin: margin must be non-negative")
		}
		o.Margin = cells
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Margin: defaultMargin,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// Range is an inclusive range of lattice indices.
type Range struct {
	IMin, IMax int
	JMin, JMax int
}

// Len returns the number of (i, j) pairs in r.
func (r Range) Len() int {
	if r.IMax < r.IMin || r.JMax < r.JMin {
		return 0
	}
	return (r.IMax - r.IMin + 1) * (r.JMax - r.JMin + 1)
}

// LatticeRange returns the lattice indices (i, j) whose cells at (i*u + j*v)*tileSize
// may intersect the viewport expanded by the configured margin.
func LatticeRange(lt LatticeType, tileSize float64, vp Viewport, setters ...Option) (Range, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return Range{}, err
	}
	u, v := lt.BaseVectors()
	return latticeRange(u.Mul(tileSize), v.Mul(tileSize), vp.Rect().ExpandedByMargin(opts.Margin*tileSize)), nil
}

func latticeRange(u, v r2.Point, area r2.Rect) Range {
	basis := mat.NewDense(2, 2, []float64{
		u.X, v.X,
		u.Y, v.Y,
	})
	fallback := Range{-fallbackRange, fallbackRange, -fallbackRange, fallbackRange}
	if det := mat.Det(basis); math.Abs(det) < degenerateDet {
		Logger().Warn("wallpaper: degenerate lattice basis, using fallback range",
			"det", det, "u", u, "v", v)
		return fallback
	}
	var inv mat.Dense
	if err := inv.Inverse(basis); err != nil {
		Logger().Warn("wallpaper: lattice basis not invertible, using fallback range", "err", err)
		return fallback
	}

	iMin, jMin := math.Inf(1), math.Inf(1)
	iMax, jMax := math.Inf(-1), math.Inf(-1)
	var ij mat.VecDense
	for _, corner := range area.Vertices() {
		ij.MulVec(&inv, mat.NewVecDense(2, []float64{corner.X, corner.Y}))
		iMin = math.Min(iMin, ij.AtVec(0))
		iMax = math.Max(iMax, ij.AtVec(0))
		jMin = math.Min(jMin, ij.AtVec(1))
		jMax = math.Max(jMax, ij.AtVec(1))
	}
	return Range{
		IMin: int(math.Floor(iMin)) - 1,
		IMax: int(math.Ceil(iMax)) + 1,
		JMin: int(math.Floor(jMin)) - 1,
		JMax: int(math.Ceil(jMax)) + 1,
	}
}

// Translations returns one translation per lattice cell that may intersect the viewport.
// Each maps cell (0, 0) local coordinates to world coordinates.
func Translations(lt LatticeType, tileSize float64, vp Viewport, setters ...Option) ([]affine.Transform, error) {
	r, err := LatticeRange(lt, tileSize, vp, setters...)
	if err != nil {
		return nil, fmt.Errorf("Translations: %w", err)
	}
	u, v := lt.BaseVectors()
	out := make([]affine.Transform, 0, r.Len())
	for j := r.JMin; j <= r.JMax; j++ {
		for i := r.IMin; i <= r.IMax; i++ {
			t := u.Mul(float64(i)).Add(v.Mul(float64(j))).Mul(tileSize)
			out = append(out, affine.Translation(t.X, t.Y))
		}
	}
	return out, nil
}

// CountTranslations returns the number of translations Translations would produce.
func CountTranslations(lt LatticeType, tileSize float64, vp Viewport, setters ...Option) (int, error) {
	r, err := LatticeRange(lt, tileSize, vp, setters...)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}
