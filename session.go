package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// State is an immutable snapshot of the editing session. A new one is
// published after every change; readers never see a partial update.
type State struct {
	Current  Frame
	Previous Frame
	Reel     Reel

	Mode       Mode
	Color      color.RGBA
	Instrument Instrument
	LineWidth  float64
	Interval   time.Duration
	StackDepth int

	PaletteVisible         bool
	PaletteExpanded        bool
	InstrumentsExpanded    bool
	DeleteDialogExpanded   bool
	GenerateDialogExpanded bool

	Version uint64
}

func (s State) Playing() bool { return s.Mode == ModeDisabled }

// FrameIndex is the position of Current in the reel, or -1.
func (s State) FrameIndex() int {
	for i, f := range s.Reel {
		if f.ID == s.Current.ID {
			return i
		}
	}
	return -1
}

// Session is the editing core: the reel, the undo stack, the mode state
// machine and the playback loop. All mutations are serialized on mu.
type Session struct {
	mu sync.Mutex

	store   *FrameStore
	undo    UndoStack
	modes   *ModeController
	player  Scheduler
	gesture *gesture

	// showing is the frame on screen during playback; nil means the tail.
	showing *Frame

	color      color.RGBA
	background color.RGBA
	lineWidth  float64
	interval   time.Duration
	canvas     Point

	deleteDialog   bool
	generateDialog bool

	paletteCollapse time.Duration
	collapseTimer   *time.Timer
	timers          sync.WaitGroup

	maxGenerate int
	rng         *rand.Rand

	out     *broadcaster[State]
	version uint64
	closed  bool
}

type Option func(*Session)

// WithConfig applies user settings from the config file.
func WithConfig(cfg *Config) Option {
	return func(s *Session) {
		s.color = cfg.BrushColor()
		s.background = cfg.BackgroundColor()
		s.lineWidth = cfg.LineWidth
		s.canvas = Point{cfg.CanvasWidth, cfg.CanvasHeight}
		s.paletteCollapse = cfg.PaletteCollapse()
		s.maxGenerate = cfg.MaxGenerate
	}
}

func WithRand(r *rand.Rand) Option { return func(s *Session) { s.rng = r } }

func WithPaletteCollapse(d time.Duration) Option {
	return func(s *Session) { s.paletteCollapse = d }
}

func WithCanvasSize(w, h float64) Option {
	return func(s *Session) { s.canvas = Point{w, h} }
}

func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	s := &Session{
		store:    NewFrameStore(),
		modes:    NewModeController(),
		interval: defaultInterval,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9E3779B97F4A7C15)),
	}
	WithConfig(cfg)(s)
	for _, opt := range opts {
		opt(s)
	}
	s.out = newBroadcaster(s.snapshotLocked())
	return s
}

// State returns the latest published snapshot.
func (s *Session) State() State {
	return s.out.Latest()
}

// Subscribe streams snapshots, starting with the current one. Slow readers
// skip to the newest snapshot.
func (s *Session) Subscribe() (<-chan State, func()) {
	return s.out.Subscribe()
}

func (s *Session) Store() *FrameStore { return s.store }

func (s *Session) CanvasSize() Point { return s.canvas }

func (s *Session) Background() color.RGBA { return s.background }

// Dispatch applies one event. Events that are illegal in the current mode
// return an error and leave the state untouched.
func (s *Session) Dispatch(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.modes.Mode() == ModeDisabled && !allowedWhilePlaying(ev) {
		return fmt.Errorf("%T: %w", ev, ErrPlaybackActive)
	}
	aborted := false
	if s.gesture != nil && !isGesture(ev) {
		s.abortGestureLocked()
		aborted = true
	}
	if err := s.applyLocked(ev); err != nil {
		log.Printf("[session] %T rejected: %v", ev, err)
		if aborted {
			s.publishLocked()
		}
		return err
	}
	s.publishLocked()
	return nil
}

func (s *Session) applyLocked(ev Event) error {
	switch ev := ev.(type) {
	case AddFrame:
		s.undo.Clear()
		s.store.AppendFrame(s.store.Tail())
	case DuplicateFrame:
		s.undo.Clear()
		s.store.DuplicateFrame()
	case DeleteFrame:
		s.undo.Clear()
		if ev.Scope == DeleteAll {
			s.store.DeleteAllFrames()
		} else {
			s.store.DeleteFrame()
		}
		s.deleteDialog = false
	case RequestDeleteDialog:
		s.deleteDialog = !s.deleteDialog
	case RequestGenerateDialog:
		s.generateDialog = !s.generateDialog
	case GenerateFrames:
		s.generateLocked(ev.Count)

	case Resume:
		s.resumeLocked()
	case Pause:
		s.pauseLocked()

	case Undo:
		if next, ok := s.undo.undo(s.store.Tail()); ok {
			s.store.ReplaceTail(next)
		}
	case Redo:
		if next, ok := s.undo.redo(s.store.Tail()); ok {
			s.store.ReplaceTail(next)
		}
	case ResetUndoStack:
		s.undo.Clear()

	case SelectPaintTool:
		if !ev.Mode.IsPaint() {
			return fmt.Errorf("select %v: %w", ev.Mode, ErrIllegalMode)
		}
		s.modes.Set(ev.Mode)
	case OpenInstrumentPicker:
		s.modes.toggleInstruments(InstrumentNone)
	case ChooseInstrument:
		s.modes.toggleInstruments(ev.Instrument)
	case OpenColorPicker:
		s.scheduleCollapseLocked(s.modes.togglePalette())
	case ExpandColorPalette:
		if s.modes.expandPalette() {
			s.stopCollapseLocked()
		}
	case ChooseColor:
		s.color = ev.Color
		if s.modes.paletteVisible {
			s.scheduleCollapseLocked(s.modes.togglePalette())
		}
	case SetSliderValue:
		v := clamp(ev.Value, sliderMin, sliderMax)
		if s.modes.Mode() == ModeDisabled {
			s.interval = SpeedInterval(v)
		} else {
			s.lineWidth = v
		}

	case GestureStart:
		return s.startGestureLocked(ev.At)
	case GestureMove:
		return s.moveGestureLocked(ev.To)
	case GestureEnd:
		return s.endGestureLocked()

	default:
		return fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}
	return nil
}

func (s *Session) tools() toolSettings {
	return toolSettings{
		mode:       s.modes.Mode(),
		instrument: s.modes.Instrument(),
		color:      s.color,
		background: s.background,
		width:      s.lineWidth,
	}
}

func (s *Session) startGestureLocked(at Point) error {
	if err := s.modes.CanDraw(); err != nil {
		return fmt.Errorf("gesture start: %w", err)
	}
	if s.gesture != nil {
		s.abortGestureLocked()
	}
	s.undo.Clear()
	s.gesture = newGesture(at, s.tools())
	return nil
}

func (s *Session) moveGestureLocked(to Point) error {
	if s.gesture == nil {
		return ErrNoGesture
	}
	s.gesture.move(to)
	ghost, ok := s.gesture.figure(ghostOpacity)
	if !ok {
		return nil
	}
	s.store.ReplaceTail(StripGhost(s.store.Tail()).With(ghost))
	return nil
}

func (s *Session) endGestureLocked() error {
	g := s.gesture
	if g == nil {
		return ErrNoGesture
	}
	s.gesture = nil
	tail := StripGhost(s.store.Tail())
	if g.moved {
		if fig, ok := g.figure(committedOpacity); ok {
			tail = tail.With(fig)
		}
	}
	s.store.ReplaceTail(tail)
	return nil
}

// abortGestureLocked drops an unfinished gesture and its ghost.
func (s *Session) abortGestureLocked() {
	s.gesture = nil
	tail := s.store.Tail()
	if stripped := StripGhost(tail); stripped.Len() != tail.Len() {
		s.store.ReplaceTail(stripped)
	}
}

func (s *Session) scheduleCollapseLocked(gen uint64) {
	s.stopCollapseLocked()
	s.timers.Add(1)
	s.collapseTimer = time.AfterFunc(s.paletteCollapse, func() {
		defer s.timers.Done()
		s.collapsePalette(gen)
	})
}

func (s *Session) stopCollapseLocked() {
	if s.collapseTimer != nil && s.collapseTimer.Stop() {
		s.timers.Done()
	}
	s.collapseTimer = nil
}

func (s *Session) collapsePalette(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.modes.collapse(gen) {
		s.publishLocked()
	}
}

func (s *Session) snapshotLocked() State {
	reel := s.store.Reel()
	current := reel.Tail()
	if s.showing != nil {
		current = *s.showing
	}
	return State{
		Current:                current,
		Previous:               reel.Previous(),
		Reel:                   reel,
		Mode:                   s.modes.Mode(),
		Color:                  s.color,
		Instrument:             s.modes.Instrument(),
		LineWidth:              s.lineWidth,
		Interval:               s.interval,
		StackDepth:             s.undo.Depth(),
		PaletteVisible:         s.modes.paletteVisible,
		PaletteExpanded:        s.modes.paletteExpanded,
		InstrumentsExpanded:    s.modes.instrumentsExpanded,
		DeleteDialogExpanded:   s.deleteDialog,
		GenerateDialogExpanded: s.generateDialog,
		Version:                s.version,
	}
}

func (s *Session) publishLocked() {
	s.version++
	s.out.Publish(s.snapshotLocked())
}

// Close stops playback and timers and closes all subscriptions.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.player.Stop()
	s.stopCollapseLocked()
	s.mu.Unlock()

	s.player.Wait()
	s.timers.Wait()
	s.out.Close()
	s.store.Close()
}
