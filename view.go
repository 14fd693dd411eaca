package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The screen is a toolbar, the canvas, one panel line for popups and a
// status line.
const (
	toolbarHeight = 1
	chromeHeight  = 3
)

var (
	toolStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	panelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func (m model) canvas() Canvas {
	return NewCanvas(m.width, m.height-chromeHeight, m.session.CanvasSize(), m.session.Background())
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var previous *Frame
	if !m.state.Playing() && !m.state.Previous.IsBlank() {
		previous = &m.state.Previous
	}
	body := m.canvas().Render(m.state.Current, previous, m.cursorX, m.cursorY, !m.state.Playing(), m.penDown)

	return strings.Join([]string{m.toolbarView(), body, m.panelView(), m.statusView()}, "\n")
}

func (m model) toolbarView() string {
	tool := func(label string, active bool) string {
		if active {
			return activeStyle.Render(label)
		}
		return toolStyle.Render(label)
	}
	s := m.state
	counts := fmt.Sprintf("undo:%d redo:%d", s.Current.Len(), s.StackDepth)
	play := "▶ play"
	if s.Playing() {
		counts = fmt.Sprintf("frame %d/%d", s.FrameIndex()+1, len(s.Reel))
		play = "■ pause"
	}
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(toHex(s.Color))).Render("   ")
	parts := []string{
		tool("p pencil", s.Mode == ModePencil),
		tool("b brush", s.Mode == ModeBrush),
		tool("e eraser", s.Mode == ModeEraser),
		tool("i "+s.Instrument.String(), s.Mode == ModeInstrumentPicker),
		tool("c color", s.Mode == ModeColorPicker),
		swatch,
		mutedStyle.Render(" " + counts + " "),
		tool(play, s.Playing()),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// panelView shows whichever popup is open, or nothing.
func (m model) panelView() string {
	s := m.state
	switch {
	case s.GenerateDialogExpanded:
		return panelStyle.Render(fmt.Sprintf("Generate frames (1-%d): %s█  Enter=generate, Esc=cancel", m.config.MaxGenerate, m.generateInput))
	case s.DeleteDialogExpanded:
		return panelStyle.Render("Delete: o=last frame, A=all frames, Esc=cancel")
	case s.PaletteVisible:
		return m.paletteView()
	case s.InstrumentsExpanded:
		return panelStyle.Render("Shapes: 1=square 2=circle 3=triangle")
	}
	return ""
}

func (m model) paletteView() string {
	swatches := paletteFor(m.state.PaletteExpanded)
	cells := make([]string, 0, len(swatches))
	for i, sw := range swatches {
		label := "  "
		if i < 10 {
			label = fmt.Sprintf("%d ", (i+1)%10)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(toHex(sw.Color))).
			Foreground(lipgloss.Color(hexOf(contrastColor(sw.Color))))
		if i == m.paletteIndex {
			style = style.Underline(true).Bold(true)
		}
		cells = append(cells, style.Render(label))
	}
	hint := mutedStyle.Render(" x=more")
	if m.state.PaletteExpanded {
		hint = mutedStyle.Render(" x=less")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + hint
}

func (m model) statusView() string {
	s := m.state
	index := s.FrameIndex() + 1
	status := fmt.Sprintf("Mode: %s | Frame %d/%d", m.modeString(), index, len(s.Reel))
	if s.Playing() {
		status += fmt.Sprintf(" | Speed %.0f (%v/frame)", m.sliderValue(), s.Interval)
	} else {
		status += fmt.Sprintf(" | Width %.0f | Cursor (%d,%d)", s.LineWidth, m.cursorX, m.cursorY)
	}
	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + okStyle.Render(m.successMessage)
	default:
		status += mutedStyle.Render(" | ? for help | q to quit")
	}
	return status
}

func (m model) modeString() string {
	if m.penDown {
		return m.state.Mode.String() + "*"
	}
	return m.state.Mode.String()
}

var helpLines = []string{
	"Flipbook Help",
	"=============",
	"",
	"Drawing:",
	"--------",
	"  mouse drag       Draw with the current tool",
	"  h/j/k/l, arrows  Move the cursor (Shift for 4x)",
	"  Enter            Put the pen down at the cursor / lift it",
	"  p / b / e        Pencil (round) / brush (flat) / eraser",
	"  i, then 1/2/3    Shapes: square / circle / triangle",
	"  + / -            Line width (speed while playing)",
	"",
	"Color:",
	"------",
	"  c                Open or close the palette",
	"  x                Show more colors",
	"  1-9, 0           Pick a swatch; h/l + Enter also work",
	"  y                Copy the brush color as hex",
	"",
	"Frames:",
	"-------",
	"  a                Commit this frame and start a new one",
	"  D                Duplicate this frame",
	"  d                Delete: o=last frame, A=all frames",
	"  g                Generate frames with random triangles",
	"  u / r            Undo / redo the last figure",
	"  R                Forget the redo history",
	"",
	"Playback:",
	"---------",
	"  Space            Play / pause",
	"  + / -            Faster / slower while playing",
	"",
	"Export:",
	"-------",
	"  s                Save the current frame as PNG",
	"  S                Save every frame as a PNG sequence",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)

	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
