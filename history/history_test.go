// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package history

import (
	"testing"

	"github.com/2dChan/wallpaper/utils"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

func snapshot(i int) []r2.Point {
	return []r2.Point{{X: float64(i), Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestNew(t *testing.T) {
	initial := snapshot(0)
	s := New(initial)
	if CanUndo(s) || CanRedo(s) {
		t.Errorf("New(...): CanUndo = %v, CanRedo = %v, want false, false", CanUndo(s), CanRedo(s))
	}
	initial[0].X = 42
	if s.Present[0].X != 0 {
		t.Errorf("New(...) shares storage with its argument")
	}
}

func TestPush(t *testing.T) {
	s := Push(New(snapshot(0)), snapshot(1))
	if diff := cmp.Diff([][]r2.Point{snapshot(0)}, s.Past); diff != "" {
		t.Errorf("Push(...).Past mismatch (-want +got):\n%v", diff)
	}
	if diff := cmp.Diff(snapshot(1), s.Present); diff != "" {
		t.Errorf("Push(...).Present mismatch (-want +got):\n%v", diff)
	}
	if CanRedo(s) {
		t.Errorf("CanRedo(Push(...)) = true, want false")
	}
}

func TestPush_Equal(t *testing.T) {
	s := Push(New(snapshot(0)), snapshot(1))
	got := Push(s, snapshot(1))
	if len(got.Past) != len(s.Past) {
		t.Errorf("len(Push(equal).Past) = %v, want %v", len(got.Past), len(s.Past))
	}
	if &got.Present[0] != &s.Present[0] {
		t.Errorf("Push(equal) replaced Present, want the same snapshot")
	}
}

func TestPush_DeepCopies(t *testing.T) {
	next := snapshot(1)
	s := Push(New(snapshot(0)), next)
	next[0].X = 42
	if s.Present[0].X != 1 {
		t.Errorf("Push(...) shares storage with its argument")
	}
}

func TestPush_ClearsFuture(t *testing.T) {
	s := Push(New(snapshot(0)), snapshot(1))
	s, _ = Undo(s)
	if !CanRedo(s) {
		t.Fatalf("CanRedo(Undo(...)) = false, want true")
	}
	s = Push(s, snapshot(2))
	if CanRedo(s) {
		t.Errorf("CanRedo after Push = true, want false")
	}
}

func TestPush_BoundedPast(t *testing.T) {
	s := New(snapshot(0))
	for i := 1; i <= MaxPast+10; i++ {
		s = Push(s, snapshot(i))
	}
	if len(s.Past) != MaxPast {
		t.Fatalf("len(Past) = %v, want %v", len(s.Past), MaxPast)
	}
	// The oldest ten snapshots were dropped.
	if diff := cmp.Diff(snapshot(10), s.Past[0]); diff != "" {
		t.Errorf("Past[0] mismatch (-want +got):\n%v", diff)
	}
	if diff := cmp.Diff(snapshot(MaxPast+9), s.Past[MaxPast-1]); diff != "" {
		t.Errorf("Past[last] mismatch (-want +got):\n%v", diff)
	}
}

func TestUndoRedo_Empty(t *testing.T) {
	s := New(snapshot(0))
	if _, ok := Undo(s); ok {
		t.Errorf("Undo(New(...)) ok = true, want false")
	}
	if _, ok := Redo(s); ok {
		t.Errorf("Redo(New(...)) ok = true, want false")
	}
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := New(utils.GenerateRandomPoints(5, 1, 80))
	for i := 0; i < 4; i++ {
		s = Push(s, utils.GenerateRandomPoints(5, int64(i+2), 80))
	}
	before := s.Present

	undone, ok := Undo(s)
	if !ok {
		t.Fatalf("Undo(...) ok = false, want true")
	}
	if diff := cmp.Diff(s.Past[len(s.Past)-1], undone.Present); diff != "" {
		t.Errorf("Undo(...).Present mismatch (-want +got):\n%v", diff)
	}
	redone, ok := Redo(undone)
	if !ok {
		t.Fatalf("Redo(...) ok = false, want true")
	}
	if diff := cmp.Diff(before, redone.Present); diff != "" {
		t.Errorf("Redo(Undo(...)).Present mismatch (-want +got):\n%v", diff)
	}
	if len(redone.Past) != len(s.Past) || CanRedo(redone) {
		t.Errorf("Redo(Undo(s)): len(Past) = %v, CanRedo = %v, want %v, false",
			len(redone.Past), CanRedo(redone), len(s.Past))
	}
}

func TestUndo_All(t *testing.T) {
	s := New(snapshot(0))
	for i := 1; i <= 3; i++ {
		s = Push(s, snapshot(i))
	}
	for i := 2; i >= 0; i-- {
		var ok bool
		if s, ok = Undo(s); !ok {
			t.Fatalf("Undo(...) ok = false at step %d, want true", i)
		}
		if diff := cmp.Diff(snapshot(i), s.Present); diff != "" {
			t.Errorf("Undo(...).Present mismatch (-want +got):\n%v", diff)
		}
	}
	if CanUndo(s) {
		t.Errorf("CanUndo after undoing everything = true, want false")
	}
	if len(s.Future) != 3 {
		t.Errorf("len(Future) = %v, want 3", len(s.Future))
	}
}

func TestUndo_DoesNotAliasPast(t *testing.T) {
	s := New(snapshot(0))
	s = Push(s, snapshot(1))
	s = Push(s, snapshot(2))
	undone, _ := Undo(s)
	// Pushing onto the undone state must not overwrite s.Past.
	_ = Push(undone, snapshot(9))
	if diff := cmp.Diff(snapshot(1), s.Past[1]); diff != "" {
		t.Errorf("s.Past[1] changed (-want +got):\n%v", diff)
	}
}

// Benchmarks

func BenchmarkPush(b *testing.B) {
	points := utils.GenerateRandomPoints(64, 1, 80)
	alt := utils.GenerateRandomPoints(64, 2, 80)
	s := New(points)
	i := 0
	b.ResetTimer()
	for bn := 0; bn < b.N; bn++ {
		if i%2 == 0 {
			s = Push(s, alt)
		} else {
			s = Push(s, points)
		}
		i++
	}
}
