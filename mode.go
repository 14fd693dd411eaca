package main

// ModeController tracks the active tool mode and the picker popups that
// hang off it. lastChosen remembers the mode to return to when the color
// picker closes or playback stops.
type ModeController struct {
	mode       Mode
	lastChosen Mode

	instrument          Instrument
	instrumentsExpanded bool

	paletteVisible  bool
	paletteExpanded bool
	collapseGen     uint64
}

func NewModeController() *ModeController {
	return &ModeController{mode: ModePencil, lastChosen: ModePencil}
}

func (mc *ModeController) Mode() Mode { return mc.mode }

func (mc *ModeController) LastChosen() Mode { return mc.lastChosen }

func (mc *ModeController) Instrument() Instrument { return mc.instrument }

// Set switches mode. Entering the color picker leaves the memo alone.
func (mc *ModeController) Set(m Mode) {
	if m != ModeColorPicker {
		mc.lastChosen = m
	}
	mc.mode = m
}

// disable enters ModeDisabled, remembering the mode being left. The memo
// never holds the color picker; an open palette is closed instead.
func (mc *ModeController) disable() {
	if mc.mode == ModeDisabled {
		return
	}
	if mc.mode != ModeColorPicker {
		mc.lastChosen = mc.mode
	}
	mc.paletteVisible = false
	mc.paletteExpanded = false
	mc.mode = ModeDisabled
}

// restore leaves ModeDisabled (or the color picker) for the remembered mode.
func (mc *ModeController) restore() {
	mc.mode = mc.lastChosen
}

// CanDraw reports whether a gesture may start in the current mode.
func (mc *ModeController) CanDraw() error {
	switch mc.mode {
	case ModePencil, ModeBrush, ModeEraser:
		return nil
	case ModeInstrumentPicker:
		if mc.instrument == InstrumentNone {
			return ErrNoInstrument
		}
		return nil
	case ModeDisabled:
		return ErrPlaybackActive
	default:
		return ErrIllegalMode
	}
}

// toggleInstruments enters the instrument picker and flips its popup.
func (mc *ModeController) toggleInstruments(inst Instrument) {
	mc.Set(ModeInstrumentPicker)
	mc.instrumentsExpanded = !mc.instrumentsExpanded
	mc.instrument = inst
}

// togglePalette opens or closes the color palette and returns the collapse
// generation the caller should schedule.
func (mc *ModeController) togglePalette() uint64 {
	if mc.paletteVisible {
		mc.paletteVisible = false
		mc.restore()
	} else {
		mc.Set(ModeColorPicker)
		mc.paletteVisible = true
	}
	mc.collapseGen++
	return mc.collapseGen
}

// expandPalette flips the expanded swatches. While the palette is shown it
// supersedes a pending collapse and reports true; a hidden palette keeps its
// scheduled collapse.
func (mc *ModeController) expandPalette() bool {
	mc.paletteExpanded = !mc.paletteExpanded
	if !mc.paletteVisible {
		return false
	}
	mc.collapseGen++
	return true
}

// collapse applies a scheduled collapse if it is still the latest one.
func (mc *ModeController) collapse(gen uint64) bool {
	if gen != mc.collapseGen {
		return false
	}
	expanded := mc.paletteVisible && mc.paletteExpanded
	if expanded == mc.paletteExpanded {
		return false
	}
	mc.paletteExpanded = expanded
	return true
}
