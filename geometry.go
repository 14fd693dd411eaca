package main

import (
	"image/color"
	"slices"
)

// capForMode maps a paint sub-mode to the stroke cap it commits with.
func capForMode(m Mode) LineCap {
	switch m {
	case ModePencil:
		return CapRound
	case ModeEraser:
		return CapSquare
	default:
		return CapButt
	}
}

// StrokeFigure builds a freehand stroke. The eraser paints in background.
func StrokeFigure(segments []Segment, col, background color.RGBA, width float64, mode Mode, opacity float64) Figure {
	if mode == ModeEraser {
		col = background
	}
	return Figure{
		Kind:     FigureStroke,
		Segments: slices.Clone(segments),
		Cap:      capForMode(mode),
		Color:    col,
		Width:    width,
		Opacity:  opacity,
	}
}

// InstrumentFigure builds a shape anchored at the last touch point.
func InstrumentFigure(inst Instrument, anchor Point, col color.RGBA, width, opacity float64) (Figure, bool) {
	kind, ok := inst.figureKind()
	if !ok {
		return Figure{}, false
	}
	return Figure{
		Kind:    kind,
		Anchor:  anchor,
		Color:   col,
		Width:   width,
		Opacity: opacity,
	}, true
}

// Outline is the drawable geometry of an instrument figure.
type Outline struct {
	Kind FigureKind
	// Square: Min is the top-left corner and Size the edge length.
	Min  Point
	Size float64
	// Circle
	Center Point
	Radius float64
	// Triangle, apex first.
	Vertices [3]Point
	// Stroke width of the outline.
	Stroke float64
}

// OutlineOf scales an instrument figure from its anchor and width.
func OutlineOf(f Figure) (Outline, bool) {
	w := f.Width
	switch f.Kind {
	case FigureSquare:
		c := f.Anchor
		return Outline{Kind: FigureSquare, Min: Point{c.X - w*5, c.Y - w*5}, Size: w * 10, Stroke: w / 2}, true
	case FigureCircle:
		return Outline{Kind: FigureCircle, Center: f.Anchor, Radius: w * 4, Stroke: w / 2}, true
	case FigureTriangle:
		c := f.Anchor
		return Outline{
			Kind: FigureTriangle,
			Vertices: [3]Point{
				{c.X, c.Y - w*8},
				{c.X + w*5, c.Y - w},
				{c.X - w*5, c.Y - w},
			},
			Stroke: w / 1.5,
		}, true
	default:
		return Outline{}, false
	}
}

// StripGhost drops a trailing ghost figure, if any.
func StripGhost(f Frame) Frame {
	if last, ok := f.Last(); ok && last.IsGhost() {
		f, _, _ = f.WithoutLast()
	}
	return f
}

// gesture accumulates one drag interaction. Tool settings are fixed when
// the drag starts.
type gesture struct {
	tools    toolSettings
	segments []Segment
	last     Point
	anchor   Point
	moved    bool
}

func newGesture(at Point, tools toolSettings) *gesture {
	return &gesture{tools: tools, last: at, anchor: at}
}

func (g *gesture) move(to Point) {
	g.segments = append(g.segments, Segment{From: g.last, To: to})
	g.last = to
	g.anchor = to
	g.moved = true
}

// figure renders the gesture so far.
func (g *gesture) figure(opacity float64) (Figure, bool) {
	t := g.tools
	if t.mode.IsPaint() {
		return StrokeFigure(g.segments, t.color, t.background, t.width, t.mode, opacity), true
	}
	if t.mode == ModeInstrumentPicker {
		return InstrumentFigure(t.instrument, g.anchor, t.color, t.width, opacity)
	}
	return Figure{}, false
}

type toolSettings struct {
	mode       Mode
	instrument Instrument
	color      color.RGBA
	background color.RGBA
	width      float64
}
