// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package history implements bounded undo/redo over shape snapshots.
// A State is a value: every operation returns a new State and never modifies
// the slices of the one it was given.
package history

import (
	"github.com/2dChan/wallpaper/shape"
	"github.com/golang/geo/r2"
)

// MaxPast is the maximum number of undo snapshots kept.
const MaxPast = 50

// State holds the snapshots before, at and after the current shape.
// Past is ordered oldest first and Future is ordered nearest first.
type State struct {
	Past    [][]r2.Point
	Present []r2.Point
	Future  [][]r2.Point
}

// New returns a State with initial as the present shape and nothing to undo or redo.
func New(initial []r2.Point) State {
	return State{Present: shape.Clone(initial)}
}

// Push records next as the present shape. The previous present moves onto Past,
// dropping the oldest snapshot beyond MaxPast, and Future is cleared.
// If next equals the present shape, s is returned unchanged.
func Push(s State, next []r2.Point) State {
	if shape.Equal(s.Present, next) {
		return s
	}
	past := make([][]r2.Point, 0, min(len(s.Past)+1, MaxPast))
	if drop := len(s.Past) + 1 - MaxPast; drop > 0 {
		past = append(past, s.Past[drop:]...)
	} else {
		past = append(past, s.Past...)
	}
	past = append(past, s.Present)
	return State{
		Past:    past,
		Present: shape.Clone(next),
	}
}

// Undo moves the present shape onto Future and restores the latest Past snapshot.
// It reports false if there is nothing to undo.
func Undo(s State) (State, bool) {
	n := len(s.Past)
	if n == 0 {
		return s, false
	}
	future := make([][]r2.Point, 0, len(s.Future)+1)
	future = append(future, s.Present)
	future = append(future, s.Future...)
	return State{
		Past:    s.Past[:n-1:n-1],
		Present: s.Past[n-1],
		Future:  future,
	}, true
}

// Redo moves the present shape onto Past and restores the nearest Future snapshot.
// It reports false if there is nothing to redo.
func Redo(s State) (State, bool) {
	if len(s.Future) == 0 {
		return s, false
	}
	past := make([][]r2.Point, 0, len(s.Past)+1)
	past = append(past, s.Past...)
	past = append(past, s.Present)
	return State{
		Past:    past,
		Present: s.Future[0],
		Future:  s.Future[1:],
	}, true
}

func CanUndo(s State) bool { return len(s.Past) > 0 }

func CanRedo(s State) bool { return len(s.Future) > 0 }
