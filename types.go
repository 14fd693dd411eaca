package main

import (
	"image/color"
	"slices"

	"github.com/google/uuid"
)

type Point struct {
	X, Y float64
}

type Segment struct {
	From, To Point
}

// Figure is either a freehand stroke (Kind == FigureStroke, Segments and Cap
// set) or an instrument shape placed at Anchor.
type Figure struct {
	Kind     FigureKind
	Segments []Segment
	Cap      LineCap
	Anchor   Point
	Color    color.RGBA
	Width    float64
	Opacity  float64
}

func (f Figure) IsGhost() bool { return f.Opacity < committedOpacity }

func (f Figure) IsInstrument() bool { return f.Kind != FigureStroke }

// Equal compares two figures by value.
func (f Figure) Equal(o Figure) bool {
	return f.Kind == o.Kind &&
		f.Cap == o.Cap &&
		f.Anchor == o.Anchor &&
		f.Color == o.Color &&
		f.Width == o.Width &&
		f.Opacity == o.Opacity &&
		slices.Equal(f.Segments, o.Segments)
}

// Frame is one drawing of the reel. Frames are values: edits build a new
// Frame with the same ID and never touch the Figures slice of the old one.
type Frame struct {
	ID      uuid.UUID
	Figures []Figure
}

func NewFrame(figures ...Figure) Frame {
	return Frame{ID: uuid.New(), Figures: slices.Clone(figures)}
}

func (f Frame) Len() int { return len(f.Figures) }

func (f Frame) IsBlank() bool { return len(f.Figures) == 0 }

func (f Frame) Last() (Figure, bool) {
	if len(f.Figures) == 0 {
		return Figure{}, false
	}
	return f.Figures[len(f.Figures)-1], true
}

// With returns a copy of f with fig appended.
func (f Frame) With(fig Figure) Frame {
	figs := make([]Figure, len(f.Figures), len(f.Figures)+1)
	copy(figs, f.Figures)
	return Frame{ID: f.ID, Figures: append(figs, fig)}
}

// WithoutLast returns a copy of f minus its last figure, and that figure.
func (f Frame) WithoutLast() (Frame, Figure, bool) {
	last, ok := f.Last()
	if !ok {
		return f, Figure{}, false
	}
	return Frame{ID: f.ID, Figures: slices.Clone(f.Figures[:len(f.Figures)-1])}, last, true
}

// Copy returns a frame with the same figures under a new ID.
func (f Frame) Copy() Frame {
	return Frame{ID: uuid.New(), Figures: slices.Clone(f.Figures)}
}

// Equal reports whether f and o hold the same figures in the same order.
func (f Frame) Equal(o Frame) bool {
	return slices.EqualFunc(f.Figures, o.Figures, Figure.Equal)
}

type Reel []Frame

func (r Reel) Tail() Frame {
	if len(r) == 0 {
		return Frame{}
	}
	return r[len(r)-1]
}

// Previous returns the frame before the tail, used for onion-skin ghosting.
func (r Reel) Previous() Frame {
	if len(r) < 2 {
		return Frame{}
	}
	return r[len(r)-2]
}

type PaletteColor struct {
	Name  string
	Color color.RGBA
}
