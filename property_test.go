package main

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// opEvents maps generated op codes onto editor events.
func opEvents(op int) []Event {
	switch op {
	case 0:
		return []Event{AddFrame{}}
	case 1:
		return []Event{DuplicateFrame{}}
	case 2:
		return []Event{DeleteFrame{Scope: DeleteOne}}
	case 3:
		return []Event{DeleteFrame{Scope: DeleteAll}}
	case 4:
		return []Event{Undo{}}
	case 5:
		return []Event{Redo{}}
	default:
		return []Event{
			GestureStart{At: Point{float64(op), 0}},
			GestureMove{To: Point{float64(op), 10}},
			GestureEnd{},
		}
	}
}

// TestReelNeverEmpty verifies the reel keeps at least one frame.
// Property: len(reel) >= 1 after any sequence of operations
func TestReelNeverEmpty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("reel always holds a frame", prop.ForAll(
		func(ops []int) bool {
			s := NewSession()
			defer s.Close()
			for _, op := range ops {
				for _, ev := range opEvents(op) {
					if err := s.Dispatch(ev); err != nil {
						return false
					}
				}
				if len(s.State().Reel) < 1 || s.Store().Len() < 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}

// TestUndoRedoRoundTrip verifies undo followed by redo restores the frame.
// Property: redo(undo(frame)) == frame for any non-empty frame
func TestUndoRedoRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("undo then redo is identity", prop.ForAll(
		func(xs []float64) bool {
			figs := make([]Figure, len(xs))
			for i, x := range xs {
				figs[i] = testStroke(x)
			}
			frame := NewFrame(figs...)
			var u UndoStack

			undone, ok := u.undo(frame)
			if !ok {
				return frame.IsBlank()
			}
			redone, ok := u.redo(undone)
			return ok && redone.ID == frame.ID && redone.Equal(frame) && u.Depth() == 0
		},
		gen.SliceOf(gen.Float64Range(-1000, 1000)),
	))

	properties.TestingRun(t)
}

// TestDeleteAllIdempotent verifies clearing twice matches clearing once.
func TestDeleteAllIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("deleteAll is idempotent", prop.ForAll(
		func(adds int) bool {
			fs := NewFrameStore()
			defer fs.Close()
			for range adds {
				fs.AppendFrame(fs.Tail().With(testStroke(1)))
			}
			fs.DeleteAllFrames()
			once := fs.Reel()
			fs.DeleteAllFrames()
			twice := fs.Reel()
			return len(once) == 1 && len(twice) == 1 && once[0].IsBlank() && twice[0].IsBlank()
		},
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
