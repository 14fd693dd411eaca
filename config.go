package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SaveDirectory     string  `yaml:"save_directory"`
	CanvasWidth       float64 `yaml:"canvas_width"`
	CanvasHeight      float64 `yaml:"canvas_height"`
	Background        string  `yaml:"background"`
	Color             string  `yaml:"color"`
	LineWidth         float64 `yaml:"line_width"`
	SliderStep        float64 `yaml:"slider_step"`
	PaletteCollapseMs int     `yaml:"palette_collapse_ms"`
	MaxGenerate       int     `yaml:"max_generate"`
	LogFile           string  `yaml:"log_file"`
	Confirmations     bool    `yaml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		CanvasWidth:       1600,
		CanvasHeight:      1000,
		Background:        "#FFFFFF",
		Color:             "#1976D2",
		LineWidth:         defaultLineWidth,
		SliderStep:        5,
		PaletteCollapseMs: int(defaultPaletteCollapse / time.Millisecond),
		MaxGenerate:       500,
		Confirmations:     true,
	}
}

// configPath returns $FLIPBOOK_CONFIG or ~/.flipbook.yaml.
func configPath() (string, error) {
	if p := os.Getenv("FLIPBOOK_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".flipbook.yaml"), nil
}

// loadConfig reads the user's config. A missing file yields the defaults.
func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(path)
}

func loadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := config.normalize(); err != nil {
		return defaultConfig(), fmt.Errorf("config %q: %w", path, err)
	}
	return config, nil
}

// normalize expands paths and pulls out-of-range values back to defaults.
func (c *Config) normalize() error {
	def := defaultConfig()

	if c.SaveDirectory != "" {
		if strings.HasPrefix(c.SaveDirectory, "~") {
			if homeDir, err := os.UserHomeDir(); err == nil {
				c.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(c.SaveDirectory, "~"))
			}
		}
		if !filepath.IsAbs(c.SaveDirectory) {
			if absPath, err := filepath.Abs(c.SaveDirectory); err == nil {
				c.SaveDirectory = absPath
			}
		}
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = def.CanvasWidth
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = def.CanvasHeight
	}
	if c.LineWidth < sliderMin || c.LineWidth > sliderMax {
		c.LineWidth = def.LineWidth
	}
	if c.SliderStep <= 0 {
		c.SliderStep = def.SliderStep
	}
	if c.PaletteCollapseMs <= 0 {
		c.PaletteCollapseMs = def.PaletteCollapseMs
	}
	if c.MaxGenerate <= 0 {
		c.MaxGenerate = def.MaxGenerate
	}
	if _, err := parseHexColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := parseHexColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

func (c *Config) PaletteCollapse() time.Duration {
	return time.Duration(c.PaletteCollapseMs) * time.Millisecond
}

func (c *Config) BrushColor() color.RGBA {
	col, err := parseHexColor(c.Color)
	if err != nil {
		col, _ = parseHexColor(defaultConfig().Color)
	}
	return col
}

func (c *Config) BackgroundColor() color.RGBA {
	col, err := parseHexColor(c.Background)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return col
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
