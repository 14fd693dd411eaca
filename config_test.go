package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flipbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFrom_Values(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
save_directory: `+dir+`
canvas_width: 800
canvas_height: 600
background: "#000000"
color: "#FF3D00"
line_width: 20
palette_collapse_ms: 250
max_generate: 40
confirmations: false
`)
	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.SaveDirectory)
	assert.Equal(t, 800.0, cfg.CanvasWidth)
	assert.Equal(t, 600.0, cfg.CanvasHeight)
	assert.Equal(t, 20.0, cfg.LineWidth)
	assert.Equal(t, 250*time.Millisecond, cfg.PaletteCollapse())
	assert.Equal(t, 40, cfg.MaxGenerate)
	assert.False(t, cfg.Confirmations)
	assert.Equal(t, testBlack, cfg.BackgroundColor())
	assert.Equal(t, "#FF3D00", toHex(cfg.BrushColor()))
}

func TestLoadConfigFrom_OutOfRangeFallsBack(t *testing.T) {
	path := writeConfig(t, "line_width: 500\ncanvas_width: -3\nmax_generate: 0\n")
	cfg, err := loadConfigFrom(path)
	require.NoError(t, err)

	def := defaultConfig()
	assert.Equal(t, def.LineWidth, cfg.LineWidth)
	assert.Equal(t, def.CanvasWidth, cfg.CanvasWidth)
	assert.Equal(t, def.MaxGenerate, cfg.MaxGenerate)
}

func TestLoadConfigFrom_InvalidColor(t *testing.T) {
	path := writeConfig(t, "color: blue\n")
	cfg, err := loadConfigFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color")
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFrom_BadYAML(t *testing.T) {
	path := writeConfig(t, "line_width: [1, 2\n")
	_, err := loadConfigFrom(path)
	assert.Error(t, err)
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv("FLIPBOOK_CONFIG", "/tmp/custom.yaml")
	path, err := configPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	path, err := cfg.GetSavePath("a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", path)

	cfg.SaveDirectory = filepath.Join(t.TempDir(), "out")
	path, err = cfg.GetSavePath("a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.SaveDirectory, "a.png"), path)
	assert.DirExists(t, cfg.SaveDirectory)
}

func TestWithConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Color = "#000000"
	cfg.LineWidth = 12
	cfg.CanvasWidth = 300
	cfg.CanvasHeight = 200

	s := newTestSession(t, WithConfig(cfg))
	st := s.State()
	assert.Equal(t, testBlack, st.Color)
	assert.Equal(t, 12.0, st.LineWidth)
	assert.Equal(t, Point{300, 200}, s.CanvasSize())
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1976D2")
	require.NoError(t, err)
	assert.Equal(t, testBlue, c)

	c, err = parseHexColor("FF3D0080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)
	assert.Equal(t, "#FF3D0080", toHex(c))

	for _, bad := range []string{"", "#12", "#GGGGGG", "1234567"} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, bad)
	}
}
