package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// onionAlpha is the opacity of the previous frame drawn under the current one.
const onionAlpha = 0.5

// raster draws frames at a fixed pixel size. Figures are in canvas
// coordinates and scaled to fit.
type raster struct {
	width, height int
	canvas        Point
	background    color.RGBA
}

func newRaster(width, height int, canvas Point, background color.RGBA) raster {
	return raster{width: max(width, 1), height: max(height, 1), canvas: canvas, background: background}
}

func (r raster) scale() (float64, float64) {
	sx, sy := 1.0, 1.0
	if r.canvas.X > 0 {
		sx = float64(r.width) / r.canvas.X
	}
	if r.canvas.Y > 0 {
		sy = float64(r.height) / r.canvas.Y
	}
	return sx, sy
}

// context returns a cleared drawing context with frame painted on it. When
// onion is non-nil it is drawn faintly underneath.
func (r raster) context(frame Frame, onion *Frame) *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(r.background)
	dc.Clear()

	sx, sy := r.scale()
	p := pen{dc: dc, sx: sx, sy: sy}
	if onion != nil {
		for _, fig := range onion.Figures {
			p.draw(fig, onionAlpha)
		}
	}
	for _, fig := range frame.Figures {
		p.draw(fig, 1)
	}
	return dc
}

func (r raster) render(frame Frame, onion *Frame) image.Image {
	return r.context(frame, onion).Image()
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := float64(c.A) * clamp(alpha, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a + 0.5)}
}

func ggCap(c LineCap) gg.LineCap {
	switch c {
	case CapButt:
		return gg.LineCapButt
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}

// pen maps canvas coordinates to pixels. gg does not scale line widths
// with the transform matrix, so points and widths are scaled here.
type pen struct {
	dc     *gg.Context
	sx, sy float64
}

func (p pen) x(v float64) float64 { return v * p.sx }

func (p pen) y(v float64) float64 { return v * p.sy }

func (p pen) w(v float64) float64 { return max(v*min(p.sx, p.sy), 1) }

func (p pen) draw(fig Figure, alpha float64) {
	p.dc.SetColor(withAlpha(fig.Color, fig.Opacity*alpha))
	if fig.Kind == FigureStroke {
		p.stroke(fig)
		return
	}
	o, ok := OutlineOf(fig)
	if !ok {
		return
	}
	dc := p.dc
	dc.SetLineWidth(p.w(o.Stroke))
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)
	switch o.Kind {
	case FigureSquare:
		dc.DrawRectangle(p.x(o.Min.X), p.y(o.Min.Y), p.x(o.Size), p.y(o.Size))
	case FigureCircle:
		dc.DrawEllipse(p.x(o.Center.X), p.y(o.Center.Y), p.x(o.Radius), p.y(o.Radius))
	case FigureTriangle:
		dc.MoveTo(p.x(o.Vertices[0].X), p.y(o.Vertices[0].Y))
		dc.LineTo(p.x(o.Vertices[1].X), p.y(o.Vertices[1].Y))
		dc.LineTo(p.x(o.Vertices[2].X), p.y(o.Vertices[2].Y))
		dc.ClosePath()
	}
	dc.Stroke()
}

func (p pen) stroke(fig Figure) {
	if len(fig.Segments) == 0 {
		return
	}
	dc := p.dc
	dc.SetLineWidth(p.w(fig.Width))
	dc.SetLineCap(ggCap(fig.Cap))
	dc.SetLineJoin(gg.LineJoinRound)
	last := fig.Segments[0].From
	dc.MoveTo(p.x(last.X), p.y(last.Y))
	for _, seg := range fig.Segments {
		if seg.From != last {
			dc.MoveTo(p.x(seg.From.X), p.y(seg.From.Y))
		}
		dc.LineTo(p.x(seg.To.X), p.y(seg.To.Y))
		last = seg.To
	}
	dc.Stroke()
}
