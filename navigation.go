package main

import tea "github.com/charmbracelet/bubbletea"

// handleNavigation moves the keyboard cursor. With the pen down the move
// extends the current gesture.
func (m model) handleNavigation(key string, speed int) tea.Model {
	m.handleCursorMove(key, speed)
	if m.penDown {
		m.dispatch(GestureMove{To: m.canvas().ToCanvas(m.cursorX, m.cursorY)})
	}
	return m
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	c := m.canvas()
	m.cursorX = min(max(m.cursorX, 0), c.cols-1)
	m.cursorY = min(max(m.cursorY, 0), c.rows-1)
}
