package main

import (
	"errors"
	"image/color"
)

var (
	ErrPlaybackActive = errors.New("playback in progress")
	ErrIllegalMode    = errors.New("not allowed in current mode")
	ErrNoInstrument   = errors.New("no instrument chosen")
	ErrNoGesture      = errors.New("no gesture in progress")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrClosed         = errors.New("session closed")
)

// Event is anything the surface can ask the session to do.
type Event interface {
	event()
}

// Reel
type (
	AddFrame              struct{}
	DuplicateFrame        struct{}
	DeleteFrame           struct{ Scope DeleteScope }
	RequestDeleteDialog   struct{}
	RequestGenerateDialog struct{}
	GenerateFrames        struct{ Count int }
)

// Playback
type (
	Resume struct{}
	Pause  struct{}
)

// Undo
type (
	Undo           struct{}
	Redo           struct{}
	ResetUndoStack struct{}
)

// Tools
type (
	SelectPaintTool      struct{ Mode Mode }
	OpenInstrumentPicker struct{}
	ChooseInstrument     struct{ Instrument Instrument }
	OpenColorPicker      struct{}
	ExpandColorPalette   struct{}
	ChooseColor          struct{ Color color.RGBA }
	SetSliderValue       struct{ Value float64 }
)

// Canvas gestures
type (
	GestureStart struct{ At Point }
	GestureMove  struct{ To Point }
	GestureEnd   struct{}
)

func (AddFrame) event()              {}
func (DuplicateFrame) event()        {}
func (DeleteFrame) event()           {}
func (RequestDeleteDialog) event()   {}
func (RequestGenerateDialog) event() {}
func (GenerateFrames) event()        {}
func (Resume) event()                {}
func (Pause) event()                 {}
func (Undo) event()                  {}
func (Redo) event()                  {}
func (ResetUndoStack) event()        {}
func (SelectPaintTool) event()       {}
func (OpenInstrumentPicker) event()  {}
func (ChooseInstrument) event()      {}
func (OpenColorPicker) event()       {}
func (ExpandColorPalette) event()    {}
func (ChooseColor) event()           {}
func (SetSliderValue) event()        {}
func (GestureStart) event()          {}
func (GestureMove) event()           {}
func (GestureEnd) event()            {}

// allowedWhilePlaying lists the events accepted in ModeDisabled.
func allowedWhilePlaying(ev Event) bool {
	switch ev.(type) {
	case Pause, SetSliderValue:
		return true
	default:
		return false
	}
}

func isGesture(ev Event) bool {
	switch ev.(type) {
	case GestureStart, GestureMove, GestureEnd:
		return true
	default:
		return false
	}
}
