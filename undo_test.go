package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoStack_Scenario(t *testing.T) {
	a, b, c := testStroke(1), testStroke(2), testStroke(3)
	frame := NewFrame(a, b, c)
	var u UndoStack

	frame, ok := u.undo(frame)
	require.True(t, ok)
	assert.Equal(t, []Figure{a, b}, frame.Figures)
	assert.Equal(t, []Figure{c}, u.removed)

	frame, ok = u.undo(frame)
	require.True(t, ok)
	assert.Equal(t, []Figure{a}, frame.Figures)
	assert.Equal(t, []Figure{c, b}, u.removed)

	frame, ok = u.redo(frame)
	require.True(t, ok)
	assert.Equal(t, []Figure{a, b}, frame.Figures)
	assert.Equal(t, []Figure{c}, u.removed)
}

func TestUndoStack_UndoRedoRoundTrip(t *testing.T) {
	frame := NewFrame(testStroke(1), testStroke(2))
	var u UndoStack

	undone, ok := u.undo(frame)
	require.True(t, ok)
	redone, ok := u.redo(undone)
	require.True(t, ok)

	assert.Equal(t, frame.ID, redone.ID)
	assert.Equal(t, frame.Figures, redone.Figures)
	assert.Zero(t, u.Depth())
}

// Hardened: undo on an empty frame is a guarded no-op instead of a failed
// removal.
func TestUndoStack_UndoOnEmptyFrameIsNoOp(t *testing.T) {
	frame := NewFrame()
	var u UndoStack

	next, ok := u.undo(frame)
	assert.False(t, ok)
	assert.Equal(t, frame.ID, next.ID)
	assert.True(t, next.IsBlank())
	assert.Zero(t, u.Depth())
}

func TestUndoStack_RedoOnEmptyStackIsNoOp(t *testing.T) {
	frame := NewFrame(testStroke(1))
	var u UndoStack

	next, ok := u.redo(frame)
	assert.False(t, ok)
	assert.Equal(t, frame.Figures, next.Figures)
}

func TestUndoStack_UndoDoesNotMutateInput(t *testing.T) {
	frame := NewFrame(testStroke(1), testStroke(2))
	var u UndoStack

	_, ok := u.undo(frame)
	require.True(t, ok)
	assert.Equal(t, 2, frame.Len())
}

func TestUndoStack_Clear(t *testing.T) {
	var u UndoStack
	u.RecordRemoval(testStroke(1))
	u.RecordRemoval(testStroke(2))
	require.Equal(t, 2, u.Depth())

	u.Clear()
	assert.Zero(t, u.Depth())
	_, ok := u.Pop()
	assert.False(t, ok)
}

func TestSession_UndoRedoThroughDispatch(t *testing.T) {
	s := newTestSession(t)

	drawLine(t, s, Point{10, 10}, Point{50, 50})
	drawLine(t, s, Point{60, 60}, Point{90, 90})
	require.Equal(t, 2, s.State().Current.Len())

	require.NoError(t, s.Dispatch(Undo{}))
	st := s.State()
	assert.Equal(t, 1, st.Current.Len())
	assert.Equal(t, 1, st.StackDepth)

	require.NoError(t, s.Dispatch(Redo{}))
	st = s.State()
	assert.Equal(t, 2, st.Current.Len())
	assert.Zero(t, st.StackDepth)

	// Underflow in both directions is silent.
	require.NoError(t, s.Dispatch(Redo{}))
	require.NoError(t, s.Dispatch(Undo{}))
	require.NoError(t, s.Dispatch(Undo{}))
	require.NoError(t, s.Dispatch(Undo{}))
	assert.True(t, s.State().Current.IsBlank())
	assert.Equal(t, 2, s.State().StackDepth)
}

func TestSession_StructuralOpsClearUndoStack(t *testing.T) {
	events := []Event{AddFrame{}, DuplicateFrame{}, DeleteFrame{Scope: DeleteOne}, ResetUndoStack{}}
	for _, ev := range events {
		s := newTestSession(t)
		drawLine(t, s, Point{10, 10}, Point{50, 50})
		require.NoError(t, s.Dispatch(Undo{}))
		require.Equal(t, 1, s.State().StackDepth)

		require.NoError(t, s.Dispatch(ev))
		assert.Zero(t, s.State().StackDepth, "%T should clear the undo stack", ev)
	}
}

func TestSession_NewGestureClearsUndoStack(t *testing.T) {
	s := newTestSession(t)
	drawLine(t, s, Point{10, 10}, Point{50, 50})
	require.NoError(t, s.Dispatch(Undo{}))
	require.Equal(t, 1, s.State().StackDepth)

	require.NoError(t, s.Dispatch(GestureStart{At: Point{1, 1}}))
	assert.Zero(t, s.State().StackDepth)
}
