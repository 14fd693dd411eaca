package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas maps the drawing area onto terminal cells. Each cell shows two
// vertically stacked pixels using the upper half block, so a cols x rows
// area is rasterized at cols x rows*2.
type Canvas struct {
	cols, rows int
	size       Point
	background color.RGBA
}

const halfBlock = "▀"

func NewCanvas(cols, rows int, size Point, background color.RGBA) Canvas {
	return Canvas{cols: max(cols, 1), rows: max(rows, 1), size: size, background: background}
}

// ToCanvas converts a cell position to canvas coordinates at the cell center.
func (c Canvas) ToCanvas(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) / float64(c.cols) * c.size.X,
		Y: (float64(row) + 0.5) / float64(c.rows) * c.size.Y,
	}
}

// Contains reports whether a cell lies inside the drawing area.
func (c Canvas) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// Render draws current over a faint copy of previous and returns the cells
// as styled lines. The cell under cursor is marked when showCursor is set.
func (c Canvas) Render(current Frame, previous *Frame, cursorCol, cursorRow int, showCursor, penDown bool) string {
	img := newRaster(c.cols, c.rows*2, c.size, c.background).render(current, previous)

	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		c.renderRow(&b, img, row, cursorCol, cursorRow, showCursor, penDown)
	}
	return b.String()
}

// renderRow groups runs of identical cells into one styled string.
func (c Canvas) renderRow(b *strings.Builder, img image.Image, row, cursorCol, cursorRow int, showCursor, penDown bool) {
	var run strings.Builder
	var runStyle lipgloss.Style
	runKey := ""
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}
	for col := 0; col < c.cols; col++ {
		top := hexOf(img.At(col, row*2))
		bottom := hexOf(img.At(col, row*2+1))
		glyph := halfBlock
		key := top + bottom
		if showCursor && col == cursorCol && row == cursorRow {
			glyph = "+"
			if penDown {
				glyph = "●"
			}
			top = hexOf(contrastColor(toRGBA(img.At(col, row*2))))
			key = "cursor"
		}
		if key != runKey {
			flush()
			runKey = key
			runStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
		}
		run.WriteString(glyph)
	}
	flush()
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func hexOf(c color.Color) string {
	rgba := toRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
