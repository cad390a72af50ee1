// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package wallpaper replicates a fundamental domain across the plane according to one of
// the 17 wallpaper groups. It holds the group catalog, the lattice generator and the tile
// instancer; transforms live in package affine.
package wallpaper

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

// GroupID identifies one of the 17 wallpaper groups.
type GroupID string

const (
	P1   GroupID = "p1"
	P2   GroupID = "p2"
	PM   GroupID = "pm"
	PG   GroupID = "pg"
	CM   GroupID = "cm"
	PMM  GroupID = "pmm"
	PMG  GroupID = "pmg"
	PGG  GroupID = "pgg"
	CMM  GroupID = "cmm"
	P4   GroupID = "p4"
	P4M  GroupID = "p4m"
	P4G  GroupID = "p4g"
	P3   GroupID = "p3"
	P3M1 GroupID = "p3m1"
	P31M GroupID = "p31m"
	P6   GroupID = "p6"
	P6M  GroupID = "p6m"
)

// ErrUnknownGroup is returned for a GroupID outside the catalog.
var ErrUnknownGroup = errors.New("wallpaper: unknown group")

var groupIDs = []GroupID{
	P1, P2, PM, PG, CM, PMM, PMG, PGG, CMM, P4, P4M, P4G, P3, P3M1, P31M, P6, P6M,
}

// Groups returns all group identifiers in catalog order.
func Groups() []GroupID {
	out := make([]GroupID, len(groupIDs))
	copy(out, groupIDs)
	return out
}

// ParseGroupID validates s as a group identifier.
func ParseGroupID(s string) (GroupID, error) {
	id := GroupID(s)
	if _, ok := catalog[id]; !ok {
		return "", fmt.Errorf("ParseGroupID: %q: %w", s, ErrUnknownGroup)
	}
	return id, nil
}

func (id GroupID) String() string {
	return string(id)
}

// Viewport is a world-space rectangle to cover with tile instances.
type Viewport struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Rect returns the viewport as an r2.Rect.
func (v Viewport) Rect() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: v.Left, Y: v.Top},
		r2.Point{X: v.Left + v.Width, Y: v.Top + v.Height},
	)
}
