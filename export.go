package main

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = errors.New("nothing to export")

// exporter writes frames to PNG files under the configured save directory.
type exporter struct {
	config *Config
	raster raster
	face   font.Face
}

func newExporter(config *Config, background color.RGBA) (*exporter, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	canvas := Point{config.CanvasWidth, config.CanvasHeight}
	return &exporter{
		config: config,
		raster: newRaster(int(canvas.X), int(canvas.Y), canvas, background),
		face:   face,
	}, nil
}

// exportFrame saves the frame shown in state, without onion skin.
func (e *exporter) exportFrame(state State, now time.Time) (string, error) {
	if state.Current.IsBlank() {
		return "", errNothingToExport
	}
	index := state.FrameIndex()
	name := fmt.Sprintf("flipbook-%s-%03d.png", now.Format("20060102-150405"), index+1)
	return e.save(name, state.Current, index, len(state.Reel))
}

// exportReel saves every non-blank frame as a numbered PNG sequence and
// returns the paths written.
func (e *exporter) exportReel(reel Reel, now time.Time) ([]string, error) {
	stamp := now.Format("20060102-150405")
	var paths []string
	for i, frame := range reel {
		if frame.IsBlank() {
			continue
		}
		path, err := e.save(fmt.Sprintf("flipbook-%s-%03d.png", stamp, i+1), frame, i, len(reel))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, errNothingToExport
	}
	return paths, nil
}

func (e *exporter) save(name string, frame Frame, index, total int) (string, error) {
	path, err := e.config.GetSavePath(name)
	if err != nil {
		return "", err
	}
	dc := e.raster.context(frame, nil)
	e.caption(dc, index, total)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

func (e *exporter) caption(dc *gg.Context, index, total int) {
	if index < 0 {
		return
	}
	dc.SetFontFace(e.face)
	dc.SetColor(contrastColor(e.raster.background))
	label := fmt.Sprintf("frame %d/%d", index+1, total)
	dc.DrawStringAnchored(label, float64(e.raster.width)-12, float64(e.raster.height)-12, 1, 0)
}

// contrastColor picks black or white text for the given background.
func contrastColor(bg color.RGBA) color.Color {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 128 {
		return color.Black
	}
	return color.White
}
