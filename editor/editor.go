// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package editor drives interactive editing of a tile shape. It owns the current group,
// base shape, polygon and undo history in an explicit State, and advances it with Reduce.
// Reduce never modifies the State it is given.
package editor

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/wallpaper"
	"github.com/2dChan/wallpaper/constraint"
	"github.com/2dChan/wallpaper/history"
	"github.com/2dChan/wallpaper/shape"
	"github.com/golang/geo/r2"
)

const DefaultTileSize = 80

var ErrUnknownEvent = errors.New("editor: unknown event")

// DefaultPalette holds the fill colors of the first role indices.
var DefaultPalette = []string{"#667eea", "#764ba2", "#f093fb", "#4facfe", "#43e97b", "#fa709a"}

// State is a snapshot of the editor.
type State struct {
	Group        wallpaper.GroupID
	BaseShape    shape.BaseShape
	TileSize     float64
	HitTolerance float64
	// History holds the edited polygon. A nil History.Present means the default shape
	// of BaseShape has not been edited yet.
	History history.State

	// Corner maps travel with History: cornerPast and cornerFuture mirror its stacks.
	corners      [4]int
	cornerPast   [][4]int
	cornerFuture [][4]int

	roleColors []string
}

// Options configures a new State.
type Options struct {
	Group        wallpaper.GroupID
	BaseShape    shape.BaseShape
	TileSize     float64
	HitTolerance float64
}

type Option func(*Options) error

// WithGroup sets the initial wallpaper group. Default: p1.
func WithGroup(id wallpaper.GroupID) Option {
	return func(o *Options) error {
		if _, err := wallpaper.ParseGroupID(string(id)); err != nil {
			return fmt.Errorf("WithGroup: %w", err)
		}
		o.Group = id
		return nil
	}
}

// WithBaseShape sets the initial base shape. Default: square.
func WithBaseShape(base shape.BaseShape) Option {
	return func(o *Options) error {
		if _, err := shape.ParseBaseShape(string(base)); err != nil {
			return fmt.Errorf("WithBaseShape: %w", err)
		}
		o.BaseShape = base
		return nil
	}
}

// WithTileSize sets the cell side length. It must be positive and finite.
func WithTileSize(size float64) Option {
	return func(o *Options) error {
		if !(size > 0) || math.IsInf(size, 1) {
			return fmt.Errorf("WithTileSize: invalid tile size %v", size)
		}
		o.TileSize = size
		return nil
	}
}

// WithHitTolerance sets the maximum distance at which InsertVertex finds an edge.
func WithHitTolerance(tolerance float64) Option {
	return func(o *Options) error {
		if tolerance < 0 || math.IsNaN(tolerance) {
			return errors.New("WithHitTolerance: tolerance must be non-negative")
		}
		o.HitTolerance = tolerance
		return nil
	}
}

// New returns an editor State showing the default shape.
func New(setters ...Option) (State, error) {
	opts := Options{
		Group:        wallpaper.P1,
		BaseShape:    shape.Square,
		TileSize:     DefaultTileSize,
		HitTolerance: shape.DefaultHitTolerance,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return State{}, err
		}
	}
	s := State{
		Group:        opts.Group,
		BaseShape:    opts.BaseShape,
		TileSize:     opts.TileSize,
		HitTolerance: opts.HitTolerance,
		roleColors:   append([]string(nil), DefaultPalette...),
	}
	return s.reseed(), nil
}

// Shape returns the effective polygon: the edited one, or the default of BaseShape.
func (s State) Shape() []r2.Point {
	if s.History.Present == nil {
		return shape.Default(s.BaseShape, s.TileSize)
	}
	return s.History.Present
}

// Corners returns the point indices of the top-left, top-right, bottom-right and
// bottom-left corners of Shape().
func (s State) Corners() [4]int {
	return s.corners
}

// Edited reports whether the shape has been edited since the last reseed or full undo.
func (s State) Edited() bool {
	return s.History.Present != nil
}

func (s State) CanUndo() bool { return history.CanUndo(s.History) }

func (s State) CanRedo() bool { return history.CanRedo(s.History) }

// RoleColor returns the fill color of role index i.
func (s State) RoleColor(i int) string {
	if i >= 0 && i < len(s.roleColors) {
		return s.roleColors[i]
	}
	return DefaultPalette[((i%len(DefaultPalette))+len(DefaultPalette))%len(DefaultPalette)]
}

// Instances returns the tile instances of the current group covering vp.
func (s State) Instances(vp wallpaper.Viewport, setters ...wallpaper.Option) ([]wallpaper.TileInstance, error) {
	return wallpaper.GenerateTileInstances(s.Group, s.TileSize, vp, setters...)
}

// reseed drops the edited shape and its history.
func (s State) reseed() State {
	s.History = history.New(nil)
	s.corners = shape.DefaultCorners(s.BaseShape)
	s.cornerPast = nil
	s.cornerFuture = nil
	return s
}

// commit records next with its corner map as a new history entry.
func (s State) commit(next []r2.Point, corners [4]int) State {
	if shape.Equal(s.Shape(), next) {
		return s
	}
	past := make([][4]int, 0, min(len(s.cornerPast)+1, history.MaxPast))
	if drop := len(s.cornerPast) + 1 - history.MaxPast; drop > 0 {
		past = append(past, s.cornerPast[drop:]...)
	} else {
		past = append(past, s.cornerPast...)
	}
	s.cornerPast = append(past, s.corners)
	s.cornerFuture = nil
	s.corners = corners
	s.History = history.Push(s.History, next)
	return s
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// SelectGroup switches the wallpaper group and resets the shape.
type SelectGroup struct {
	ID wallpaper.GroupID
}

// SelectBaseShape switches the base shape and resets the shape.
type SelectBaseShape struct {
	Base shape.BaseShape
}

// DragVertex moves vertex Index to Pos, clamped to the tile. The paired point on a
// constrained edge follows.
type DragVertex struct {
	Index int
	Pos   r2.Point
}

// InsertVertex inserts a vertex on the edge nearest to Pos, if one is within the hit tolerance.
type InsertVertex struct {
	Pos r2.Point
}

// Subdivide splits every edge into SegmentsPerEdge segments.
type Subdivide struct {
	SegmentsPerEdge int
}

// SetRoleColor changes the fill color of a role index.
type SetRoleColor struct {
	Index int
	Color string
}

type (
	Undo  struct{}
	Redo  struct{}
	Reset struct{}
)

func (SelectGroup) event()     {}
func (SelectBaseShape) event() {}
func (DragVertex) event()      {}
func (InsertVertex) event()    {}
func (Subdivide) event()       {}
func (SetRoleColor) event()    {}
func (Undo) event()            {}
func (Redo) event()            {}
func (Reset) event()           {}

// Reduce applies e to s and returns the resulting state. Edits that do not apply,
// such as an out-of-range vertex index or a click far from every edge, return s unchanged.
func Reduce(s State, e Event) (State, error) {
	wallpaper.Logger().Debug("editor: event", "event", fmt.Sprintf("%T", e), "group", s.Group)

	switch e := e.(type) {
	case SelectGroup:
		id, err := wallpaper.ParseGroupID(string(e.ID))
		if err != nil {
			return s, fmt.Errorf("Reduce: %w", err)
		}
		s.Group = id
		return s.reseed(), nil

	case SelectBaseShape:
		base, err := shape.ParseBaseShape(string(e.Base))
		if err != nil {
			return s, fmt.Errorf("Reduce: %w", err)
		}
		s.BaseShape = base
		return s.reseed(), nil

	case DragVertex:
		points := s.Shape()
		if e.Index < 0 || e.Index >= len(points) {
			return s, nil
		}
		pos := shape.ClampToTile(e.Pos, s.TileSize)
		next, err := constraint.Apply(points, e.Index, pos, s.Group, s.TileSize,
			constraint.WithCorners(s.corners))
		if err != nil {
			return s, fmt.Errorf("Reduce: %w", err)
		}
		return s.commit(next, s.corners), nil

	case InsertVertex:
		points := s.Shape()
		hit, ok := shape.HitTestEdge(points, e.Pos.X, e.Pos.Y, s.HitTolerance)
		if !ok {
			return s, nil
		}
		corners := s.corners
		for k, c := range corners {
			if c > hit.Index {
				corners[k] = c + 1
			}
		}
		return s.commit(shape.InsertPointAt(points, hit.Index, hit.Point), corners), nil

	case Subdivide:
		points := s.Shape()
		next := shape.SubdivideEdges(points, e.SegmentsPerEdge)
		if len(next) == len(points) {
			return s, nil
		}
		corners := s.corners
		for k, c := range corners {
			corners[k] = c * e.SegmentsPerEdge
		}
		return s.commit(next, corners), nil

	case SetRoleColor:
		if e.Index < 0 {
			return s, nil
		}
		colors := make([]string, max(len(s.roleColors), e.Index+1))
		copy(colors, s.roleColors)
		for i := len(s.roleColors); i < e.Index; i++ {
			colors[i] = DefaultPalette[i%len(DefaultPalette)]
		}
		colors[e.Index] = e.Color
		s.roleColors = colors
		return s, nil

	case Undo:
		h, ok := history.Undo(s.History)
		if !ok {
			return s, nil
		}
		n := len(s.cornerPast)
		future := make([][4]int, 0, len(s.cornerFuture)+1)
		future = append(future, s.corners)
		s.cornerFuture = append(future, s.cornerFuture...)
		s.corners = s.cornerPast[n-1]
		s.cornerPast = s.cornerPast[:n-1:n-1]
		s.History = h
		return s, nil

	case Redo:
		h, ok := history.Redo(s.History)
		if !ok {
			return s, nil
		}
		past := make([][4]int, 0, len(s.cornerPast)+1)
		past = append(past, s.cornerPast...)
		s.cornerPast = append(past, s.corners)
		s.corners = s.cornerFuture[0]
		s.cornerFuture = s.cornerFuture[1:]
		s.History = h
		return s, nil

	case Reset:
		return s.reseed(), nil
	}
	return s, fmt.Errorf("Reduce: %T: %w", e, ErrUnknownEvent)
}
