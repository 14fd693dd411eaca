package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBlue  = color.RGBA{0x19, 0x76, 0xD2, 0xFF}
	testWhite = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	testBlack = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

func TestCapForMode(t *testing.T) {
	assert.Equal(t, CapRound, capForMode(ModePencil))
	assert.Equal(t, CapButt, capForMode(ModeBrush))
	assert.Equal(t, CapSquare, capForMode(ModeEraser))
}

func TestStrokeFigure(t *testing.T) {
	segs := []Segment{{From: Point{0, 0}, To: Point{5, 5}}}

	brush := StrokeFigure(segs, testBlue, testWhite, 12, ModeBrush, ghostOpacity)
	assert.Equal(t, FigureStroke, brush.Kind)
	assert.Equal(t, testBlue, brush.Color)
	assert.Equal(t, 12.0, brush.Width)
	assert.True(t, brush.IsGhost())

	eraser := StrokeFigure(segs, testBlue, testWhite, 12, ModeEraser, committedOpacity)
	assert.Equal(t, testWhite, eraser.Color)
	assert.False(t, eraser.IsGhost())

	segs[0].To = Point{9, 9}
	assert.Equal(t, Point{5, 5}, brush.Segments[0].To, "stroke must not alias caller segments")
}

func TestInstrumentFigure(t *testing.T) {
	_, ok := InstrumentFigure(InstrumentNone, Point{}, testBlue, 10, 1)
	assert.False(t, ok)

	fig, ok := InstrumentFigure(InstrumentSquare, Point{3, 4}, testBlue, 10, 1)
	require.True(t, ok)
	assert.Equal(t, FigureSquare, fig.Kind)
	assert.True(t, fig.IsInstrument())
	assert.Equal(t, Point{3, 4}, fig.Anchor)
}

func TestOutlineOf(t *testing.T) {
	anchor := Point{100, 200}
	const w = 2.0

	sq, _ := InstrumentFigure(InstrumentSquare, anchor, testBlue, w, 1)
	o, ok := OutlineOf(sq)
	require.True(t, ok)
	assert.Equal(t, Point{90, 190}, o.Min)
	assert.Equal(t, 20.0, o.Size)
	assert.Equal(t, 1.0, o.Stroke)
	// centered on the anchor
	assert.Equal(t, anchor, Point{o.Min.X + o.Size/2, o.Min.Y + o.Size/2})

	ci, _ := InstrumentFigure(InstrumentCircle, anchor, testBlue, w, 1)
	o, ok = OutlineOf(ci)
	require.True(t, ok)
	assert.Equal(t, anchor, o.Center)
	assert.Equal(t, 8.0, o.Radius)
	assert.Equal(t, 1.0, o.Stroke)

	tr, _ := InstrumentFigure(InstrumentTriangle, anchor, testBlue, w, 1)
	o, ok = OutlineOf(tr)
	require.True(t, ok)
	assert.Equal(t, [3]Point{{100, 184}, {110, 198}, {90, 198}}, o.Vertices)
	assert.InDelta(t, 4.0/3.0, o.Stroke, 1e-9)
	// apex points up
	assert.Less(t, o.Vertices[0].Y, o.Vertices[1].Y)

	_, ok = OutlineOf(testStroke(1))
	assert.False(t, ok)
}

func TestStripGhost(t *testing.T) {
	committed := testStroke(1)
	ghost := testStroke(2)
	ghost.Opacity = ghostOpacity

	frame := NewFrame(committed, ghost)
	stripped := StripGhost(frame)
	assert.Equal(t, []Figure{committed}, stripped.Figures)
	assert.Equal(t, frame.ID, stripped.ID)

	assert.Equal(t, 1, StripGhost(stripped).Len())
	assert.True(t, StripGhost(NewFrame()).IsBlank())
}

func TestGesture_FixesToolsAtStart(t *testing.T) {
	g := newGesture(Point{0, 0}, toolSettings{mode: ModeBrush, color: testBlue, background: testWhite, width: 7})
	g.move(Point{1, 0})
	g.move(Point{2, 0})

	fig, ok := g.figure(committedOpacity)
	require.True(t, ok)
	assert.Equal(t, []Segment{
		{From: Point{0, 0}, To: Point{1, 0}},
		{From: Point{1, 0}, To: Point{2, 0}},
	}, fig.Segments)
	assert.Equal(t, CapButt, fig.Cap)
	assert.Equal(t, 7.0, fig.Width)
}

func TestGesture_InstrumentAnchorFollowsLastPoint(t *testing.T) {
	g := newGesture(Point{0, 0}, toolSettings{mode: ModeInstrumentPicker, instrument: InstrumentSquare, width: 3})
	g.move(Point{4, 4})
	g.move(Point{8, 2})

	fig, ok := g.figure(ghostOpacity)
	require.True(t, ok)
	assert.Equal(t, Point{8, 2}, fig.Anchor)
	assert.Empty(t, fig.Segments)
}

func TestGesture_ColorPickerDrawsNothing(t *testing.T) {
	g := newGesture(Point{0, 0}, toolSettings{mode: ModeColorPicker})
	g.move(Point{1, 1})
	_, ok := g.figure(committedOpacity)
	assert.False(t, ok)
}
