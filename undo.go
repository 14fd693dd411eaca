package main

// UndoStack holds figures removed from the open frame, most recent last.
// It only lives as long as the current frame edit; structural reel
// operations and new gestures clear it.
type UndoStack struct {
	removed []Figure
}

func (u *UndoStack) RecordRemoval(fig Figure) {
	u.removed = append(u.removed, fig)
}

func (u *UndoStack) Pop() (Figure, bool) {
	if len(u.removed) == 0 {
		return Figure{}, false
	}
	last := len(u.removed) - 1
	fig := u.removed[last]
	u.removed[last] = Figure{}
	u.removed = u.removed[:last]
	return fig, true
}

func (u *UndoStack) Clear() {
	clear(u.removed)
	u.removed = u.removed[:0]
}

func (u *UndoStack) Depth() int { return len(u.removed) }

// undo moves the last figure of frame onto the stack. An empty frame is
// left alone.
func (u *UndoStack) undo(frame Frame) (Frame, bool) {
	next, fig, ok := frame.WithoutLast()
	if !ok {
		return frame, false
	}
	u.RecordRemoval(fig)
	return next, true
}

// redo puts the most recently removed figure back on frame.
func (u *UndoStack) redo(frame Frame) (Frame, bool) {
	fig, ok := u.Pop()
	if !ok {
		return frame, false
	}
	return frame.With(fig), true
}
