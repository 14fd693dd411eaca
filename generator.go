package main

import (
	"image/color"
	"log"
	"math/rand/v2"
)

// generateLocked appends n frames, each holding one random triangle in the
// brush color. Drawing is blocked for the duration and the working tail,
// if it has anything on it, is committed first so no edit is lost.
func (s *Session) generateLocked(n int) {
	n = int(clamp(float64(n), 1, float64(s.maxGenerate)))
	s.generateDialog = false

	s.modes.disable()
	s.publishLocked()
	defer s.modes.restore()

	if tail := s.store.Tail(); !tail.IsBlank() {
		s.store.AppendFrame(tail)
	}
	for range n {
		s.store.AppendFrame(randomTriangleFrame(s.rng, s.canvas, s.color))
	}
	s.undo.Clear()
	log.Printf("[session] generated %d frames, reel now %d", n, s.store.Len())
}

func randomTriangleFrame(rng *rand.Rand, canvas Point, col color.RGBA) Frame {
	anchor := Point{
		X: rng.Float64() * canvas.X,
		Y: rng.Float64() * canvas.Y,
	}
	width := generatedMinWidth + rng.Float64()*(generatedMaxWidth-generatedMinWidth)
	fig, _ := InstrumentFigure(InstrumentTriangle, anchor, col, width, committedOpacity)
	return NewFrame(fig)
}
