package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := &Flags{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.DefineFlags(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
enabled_tags = ["history"]

[canvas]
width = 640
compact_below = 60
default_font = "Georgia"
max_history = 50
system_clipboard = false

[fonts]
families = ["Georgia", "Lato"]
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, 60, cfg.Canvas.CompactBelow)
	assert.Equal(t, "Georgia", cfg.Canvas.DefaultFont)
	assert.Equal(t, DefaultFontSize, cfg.Canvas.DefaultFontSize)
	assert.Equal(t, 50, cfg.Canvas.MaxHistory)
	assert.False(t, cfg.Canvas.SystemClipboard)
	assert.Equal(t, []string{"Georgia", "Lato"}, cfg.Fonts.Families)
	assert.Equal(t, path, cfg.Source)
	assert.Empty(t, cfg.Undecoded)
}

func TestLoadRecordsUnrecognizedKeys(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 640
colour = "red"

[toolbar]
visible = true
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.ElementsMatch(t, []string{"canvas.colour", "toolbar.visible"}, cfg.Undecoded)

	// Logging the summary must not need anything beyond the loaded config.
	assert.NotPanics(t, cfg.LogSummary)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeConfig(t, "[canvas\nwidth = ")
	cfg, err := load(path, nil)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultCanvasWidth, cfg.Canvas.Width)
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = ""

[canvas]
width = -1
compact_height = 0
cell_width = 0
default_font_size = 0
max_history = -3
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, DefaultCompactHeight, cfg.Canvas.CompactHeight)
	assert.Equal(t, DefaultCellWidth, cfg.Canvas.CellWidth)
	assert.Equal(t, DefaultFontSize, cfg.Canvas.DefaultFontSize)
	assert.Equal(t, 0, cfg.Canvas.MaxHistory)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 640
max_history = 50
`)
	flags := parseFlags(t,
		"-width", "800",
		"-max-history", "0",
		"-loglevel", "warn",
		"-log-tags", "history, session,",
		"-system-clipboard=false",
	)
	cfg, err := load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 0, cfg.Canvas.MaxHistory)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history", "session"}, cfg.Logger.EnabledTags)
	assert.False(t, cfg.Canvas.SystemClipboard)
	assert.ElementsMatch(t,
		[]string{"width", "max-history", "loglevel", "log-tags", "system-clipboard"},
		cfg.Overrides)
}

func TestUnsetFlagsLeaveFileValues(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 640
system_clipboard = false
`)
	cfg, err := load(path, parseFlags(t))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.False(t, cfg.Canvas.SystemClipboard)
	assert.Empty(t, cfg.Overrides)
}

func TestCanvasSize(t *testing.T) {
	cv := NewDefaultConfig().Canvas
	tests := []struct {
		cols int
		w, h int
	}{
		{cols: 0, w: 400, h: 400},
		{cols: 80, w: 250, h: 250},
		{cols: 99, w: 250, h: 250},
		{cols: 100, w: 400, h: 400},
		{cols: 200, w: 400, h: 400},
	}
	for _, tt := range tests {
		w, h := cv.CanvasSize(tt.cols)
		assert.Equal(t, tt.w, w, "cols=%d", tt.cols)
		assert.Equal(t, tt.h, h, "cols=%d", tt.cols)
	}
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Nil(t, splitCommaList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitCommaList("a, ,b"))
}
