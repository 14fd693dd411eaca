package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flipbook: %v (using defaults)\n", err)
	}
	closeLog, err := setupLogging(config)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	session := NewSession(WithConfig(config))
	defer session.Close()

	m, err := initialModel(session, config)
	if err != nil {
		log.Fatal(err)
	}
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// setupLogging sends the log package to a file, since the terminal belongs
// to the UI. Without a configured file logs are dropped.
func setupLogging(config *Config) (func(), error) {
	path := config.LogFile
	if path == "" && os.Getenv("FLIPBOOK_DEBUG") != "" {
		path = "flipbook.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "flipbook")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

type model struct {
	session  *Session
	config   *Config
	exporter *exporter

	state   State
	updates <-chan State
	cancel  func()

	width  int
	height int

	cursorX  int
	cursorY  int
	penDown  bool
	dragging bool

	// motion throttles drag updates; a skipped move is flushed on release.
	motion      *rate.Limiter
	pendingMove bool

	paletteIndex  int
	generateInput string

	help       bool
	helpScroll int

	errorMessage   string
	successMessage string
}

type stateMsg State

func initialModel(session *Session, config *Config) (model, error) {
	exp, err := newExporter(config, session.Background())
	if err != nil {
		return model{}, err
	}
	updates, cancel := session.Subscribe()
	return model{
		session:  session,
		config:   config,
		exporter: exp,
		state:    session.State(),
		updates:  updates,
		cancel:   cancel,
		motion:   rate.NewLimiter(rate.Every(time.Second/60), 4),
		width:    80,
		height:   24,
	}, nil
}

// waitForState blocks on the next published snapshot.
func waitForState(updates <-chan State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return stateMsg(state)
	}
}

func (m model) Init() tea.Cmd {
	return waitForState(m.updates)
}

// dispatch forwards ev to the session. Mode-gate rejections are expected
// from a keyboard surface and are not shown.
func (m *model) dispatch(ev Event) error {
	err := m.session.Dispatch(ev)
	m.state = m.session.State()
	switch {
	case err == nil:
	case errors.Is(err, ErrNoGesture):
		m.penDown = false
		m.dragging = false
	case errors.Is(err, ErrPlaybackActive), errors.Is(err, ErrIllegalMode):
	default:
		m.errorMessage = err.Error()
	}
	return err
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case stateMsg:
		m.state = State(msg)
		return m, waitForState(m.updates)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) tea.Model {
	c := m.canvas()
	col, row := msg.X, msg.Y-toolbarHeight
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !c.Contains(col, row) {
			return m
		}
		m.cursorX, m.cursorY = col, row
		m.dragging = m.dispatch(GestureStart{At: c.ToCanvas(col, row)}) == nil
	case tea.MouseActionMotion:
		if !m.dragging {
			return m
		}
		m.cursorX, m.cursorY = col, row
		m.ensureCursorInBounds()
		if !m.motion.Allow() {
			m.pendingMove = true
			return m
		}
		m.pendingMove = false
		m.dispatch(GestureMove{To: c.ToCanvas(m.cursorX, m.cursorY)})
	case tea.MouseActionRelease:
		if !m.dragging {
			return m
		}
		if m.pendingMove {
			m.pendingMove = false
			m.dispatch(GestureMove{To: c.ToCanvas(m.cursorX, m.cursorY)})
		}
		m.dragging = false
		m.dispatch(GestureEnd{})
	}
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit
	}
	if m.help {
		return m.handleHelpKey(key), nil
	}
	if m.state.GenerateDialogExpanded {
		return m.handleGenerateKey(msg), nil
	}
	if m.state.DeleteDialogExpanded {
		return m.handleDeleteKey(key), nil
	}
	if m.state.Playing() {
		return m.handlePlayingKey(key)
	}
	if m.state.PaletteVisible {
		if handled := m.handlePaletteKey(key); handled {
			return m, nil
		}
	}
	if m.state.InstrumentsExpanded {
		if inst, ok := instrumentKey(key); ok {
			m.dispatch(ChooseInstrument{Instrument: inst})
			return m, nil
		}
	}

	m.successMessage = ""
	switch key {
	case "q":
		m.cancel()
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "esc":
		m.errorMessage = ""
		if m.penDown {
			m.penDown = false
			m.dispatch(GestureEnd{})
		}

	case "p":
		m.dispatch(SelectPaintTool{Mode: ModePencil})
	case "b":
		m.dispatch(SelectPaintTool{Mode: ModeBrush})
	case "e":
		m.dispatch(SelectPaintTool{Mode: ModeEraser})
	case "i":
		m.dispatch(OpenInstrumentPicker{})
	case "c":
		m.paletteIndex = 0
		m.dispatch(OpenColorPicker{})
	case "x":
		if m.state.PaletteVisible {
			m.dispatch(ExpandColorPalette{})
		}

	case "u":
		m.dispatch(Undo{})
	case "r":
		m.dispatch(Redo{})
	case "R":
		m.dispatch(ResetUndoStack{})

	case "a":
		m.dispatch(AddFrame{})
	case "D":
		m.dispatch(DuplicateFrame{})
	case "d":
		if m.config.Confirmations {
			m.dispatch(RequestDeleteDialog{})
		} else {
			m.dispatch(DeleteFrame{Scope: DeleteOne})
		}
	case "g":
		m.generateInput = ""
		m.dispatch(RequestGenerateDialog{})

	case " ":
		m.penDown = false
		m.dispatch(Resume{})
	case "+", "=":
		m.nudgeSlider(m.config.SliderStep)
	case "-", "_":
		m.nudgeSlider(-m.config.SliderStep)

	case "enter":
		m.togglePen()
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key)), nil

	case "s":
		m.exportFrame()
	case "S":
		m.exportReel()
	case "y":
		hex := toHex(m.state.Color)
		if err := writeClipboardText(hex); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Copied %s", hex)
		}
	}
	return m, nil
}

func (m model) handlePlayingKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		m.cancel()
		return m, tea.Quit
	case " ", "esc":
		m.dispatch(Pause{})
	case "+", "=":
		m.nudgeSlider(m.config.SliderStep)
	case "-", "_":
		m.nudgeSlider(-m.config.SliderStep)
	}
	return m, nil
}

func (m model) handleHelpKey(key string) tea.Model {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m
}

func (m model) handleDeleteKey(key string) tea.Model {
	switch key {
	case "o":
		m.dispatch(DeleteFrame{Scope: DeleteOne})
	case "A":
		m.dispatch(DeleteFrame{Scope: DeleteAll})
	case "esc", "d", "n":
		m.dispatch(RequestDeleteDialog{})
	}
	return m
}

func (m model) handleGenerateKey(msg tea.KeyMsg) tea.Model {
	switch msg.Type {
	case tea.KeyEscape:
		m.generateInput = ""
		m.dispatch(RequestGenerateDialog{})
	case tea.KeyEnter:
		n, err := strconv.Atoi(m.generateInput)
		if err != nil || n <= 0 {
			m.errorMessage = fmt.Sprintf("Enter a frame count between 1 and %d", m.config.MaxGenerate)
			return m
		}
		m.generateInput = ""
		m.errorMessage = ""
		if m.dispatch(GenerateFrames{Count: n}) == nil {
			m.successMessage = fmt.Sprintf("Generated %d frames", min(n, m.config.MaxGenerate))
		}
	case tea.KeyBackspace:
		if len(m.generateInput) > 0 {
			m.generateInput = m.generateInput[:len(m.generateInput)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.generateInput) < 6 {
				m.generateInput += string(r)
			}
		}
	}
	return m
}

// handlePaletteKey picks swatches while the color picker is open.
func (m *model) handlePaletteKey(key string) bool {
	swatches := paletteFor(m.state.PaletteExpanded)
	switch key {
	case "h", "left":
		m.paletteIndex = (m.paletteIndex - 1 + len(swatches)) % len(swatches)
	case "l", "right":
		m.paletteIndex = (m.paletteIndex + 1) % len(swatches)
	case "enter":
		m.chooseSwatch(swatches, m.paletteIndex)
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if key == "0" {
			i = 9
		}
		if i >= len(swatches) {
			return true
		}
		m.chooseSwatch(swatches, i)
	default:
		return false
	}
	return true
}

func (m *model) chooseSwatch(swatches []PaletteColor, i int) {
	i = min(max(i, 0), len(swatches)-1)
	m.paletteIndex = i
	if m.dispatch(ChooseColor{Color: swatches[i].Color}) == nil {
		m.successMessage = fmt.Sprintf("Color %s", swatches[i].Name)
	}
}

func instrumentKey(key string) (Instrument, bool) {
	switch key {
	case "1":
		return InstrumentSquare, true
	case "2":
		return InstrumentCircle, true
	case "3":
		return InstrumentTriangle, true
	default:
		return InstrumentNone, false
	}
}

// sliderValue reads the slider position back out of the snapshot.
func (m model) sliderValue() float64 {
	if m.state.Playing() {
		return sliderMax - float64(m.state.Interval)/float64(intervalStep)
	}
	return m.state.LineWidth
}

func (m *model) nudgeSlider(delta float64) {
	m.dispatch(SetSliderValue{Value: clamp(m.sliderValue()+delta, sliderMin, sliderMax)})
}

// togglePen puts the keyboard pen down at the cursor or lifts it.
func (m *model) togglePen() {
	if m.penDown {
		m.penDown = false
		m.dispatch(GestureEnd{})
		return
	}
	at := m.canvas().ToCanvas(m.cursorX, m.cursorY)
	m.penDown = m.dispatch(GestureStart{At: at}) == nil
}

func (m *model) exportFrame() {
	path, err := m.exporter.exportFrame(m.state, time.Now())
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", path)
	if err := writeClipboardText(path); err == nil {
		m.successMessage += " (path copied)"
	}
}

func (m *model) exportReel() {
	paths, err := m.exporter.exportReel(m.state.Reel, time.Now())
	if err != nil {
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %d frames", len(paths))
	if len(paths) > 0 {
		if err := writeClipboardText(strings.Join(paths, "\n")); err == nil {
			m.successMessage += " (paths copied)"
		}
	}
}
