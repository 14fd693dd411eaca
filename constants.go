package main

import "time"

type Mode int

const (
	ModePencil Mode = iota
	ModeBrush
	ModeEraser
	ModeInstrumentPicker
	ModeColorPicker
	ModeDisabled
)

// allModes lists every Mode; switch statements over Mode are checked against it in tests.
var allModes = []Mode{
	ModePencil,
	ModeBrush,
	ModeEraser,
	ModeInstrumentPicker,
	ModeColorPicker,
	ModeDisabled,
}

type Instrument int

const (
	InstrumentNone Instrument = iota
	InstrumentSquare
	InstrumentCircle
	InstrumentTriangle
)

type FigureKind int

const (
	FigureStroke FigureKind = iota
	FigureSquare
	FigureCircle
	FigureTriangle
)

type LineCap int

const (
	CapRound LineCap = iota
	CapButt
	CapSquare
)

type DeleteScope int

const (
	DeleteOne DeleteScope = iota
	DeleteAll
)

const (
	ghostOpacity     = 0.5
	committedOpacity = 1.0

	sliderMin = 5.0
	sliderMax = 100.0

	// interval = (sliderMax - value) * intervalStep
	intervalStep = 20 * time.Millisecond
	minTick      = time.Millisecond

	defaultLineWidth       = 50.0
	defaultInterval        = 1000 * time.Millisecond
	defaultPaletteCollapse = 1000 * time.Millisecond

	generatedMinWidth = 3.0
	generatedMaxWidth = 100.0
)

func (m Mode) String() string {
	switch m {
	case ModePencil:
		return "PENCIL"
	case ModeBrush:
		return "BRUSH"
	case ModeEraser:
		return "ERASER"
	case ModeInstrumentPicker:
		return "SHAPES"
	case ModeColorPicker:
		return "COLOR"
	case ModeDisabled:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}

// IsPaint reports whether m is one of the freehand sub-modes.
func (m Mode) IsPaint() bool {
	return m == ModePencil || m == ModeBrush || m == ModeEraser
}

func (i Instrument) String() string {
	switch i {
	case InstrumentNone:
		return "none"
	case InstrumentSquare:
		return "square"
	case InstrumentCircle:
		return "circle"
	case InstrumentTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

func (i Instrument) figureKind() (FigureKind, bool) {
	switch i {
	case InstrumentSquare:
		return FigureSquare, true
	case InstrumentCircle:
		return FigureCircle, true
	case InstrumentTriangle:
		return FigureTriangle, true
	default:
		return 0, false
	}
}
