// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/overlay/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Canvas CanvasConfig  `toml:"canvas"`
	Fonts  FontsConfig   `toml:"fonts"`

	// Filled while loading, logged by LogSummary once the logger is up.
	Source    string   `toml:"-"` // file the values came from, if any
	Undecoded []string `toml:"-"` // unrecognized file keys
	Overrides []string `toml:"-"` // flags that replaced file values
}

// CanvasConfig holds canvas and toolbar settings.
type CanvasConfig struct {
	Width         int `toml:"width"`
	Height        int `toml:"height"`
	CompactWidth  int `toml:"compact_width"`
	CompactHeight int `toml:"compact_height"`
	CompactBelow  int `toml:"compact_below"` // terminal columns

	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`

	DefaultFont     string `toml:"default_font"`
	DefaultFontSize int    `toml:"default_font_size"`
	DefaultText     string `toml:"default_text"`

	MaxHistory      int    `toml:"max_history"` // 0 keeps everything
	SystemClipboard bool   `toml:"system_clipboard"`
	ThemeFile       string `toml:"theme_file"`
}

// FontsConfig replaces the built-in font list when Families is non-empty.
type FontsConfig struct {
	Families []string `toml:"families"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Canvas: CanvasConfig{
			Width:           DefaultCanvasWidth,
			Height:          DefaultCanvasHeight,
			CompactWidth:    DefaultCompactWidth,
			CompactHeight:   DefaultCompactHeight,
			CompactBelow:    DefaultCompactBelow,
			CellWidth:       DefaultCellWidth,
			CellHeight:      DefaultCellHeight,
			DefaultFont:     DefaultFont,
			DefaultFontSize: DefaultFontSize,
			DefaultText:     DefaultText,
			SystemClipboard: SystemClipboard,
		},
	}
}

// CanvasSize picks the canvas size for a terminal termCols wide.
func (c *CanvasConfig) CanvasSize(termCols int) (int, int) {
	if termCols > 0 && termCols < c.CompactBelow {
		return c.CompactWidth, c.CompactHeight
	}
	return c.Width, c.Height
}

// loadFromFile decodes the TOML file at filePath over cfg.
// A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	cfg.Source = filePath
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	cv := &c.Canvas
	if cv.Width <= 0 || cv.Height <= 0 {
		cv.Width, cv.Height = defaults.Canvas.Width, defaults.Canvas.Height
	}
	if cv.CompactWidth <= 0 || cv.CompactHeight <= 0 {
		cv.CompactWidth, cv.CompactHeight = defaults.Canvas.CompactWidth, defaults.Canvas.CompactHeight
	}
	if cv.CompactBelow < 0 {
		cv.CompactBelow = defaults.Canvas.CompactBelow
	}
	if cv.CellWidth <= 0 {
		cv.CellWidth = defaults.Canvas.CellWidth
	}
	if cv.CellHeight <= 0 {
		cv.CellHeight = defaults.Canvas.CellHeight
	}
	if cv.DefaultFont == "" {
		cv.DefaultFont = defaults.Canvas.DefaultFont
	}
	if cv.DefaultFontSize < 1 {
		cv.DefaultFontSize = defaults.Canvas.DefaultFontSize
	}
	if cv.DefaultText == "" {
		cv.DefaultText = defaults.Canvas.DefaultText
	}
	if cv.MaxHistory < 0 {
		cv.MaxHistory = 0
	}
}

// DefaultConfigPath returns the config file location under the user's
// config directory, or "" when it cannot be determined.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// load builds a config from defaults, the file at path and flag overrides.
func load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	var err error
	if path != "" {
		err = loadFromFile(path, cfg)
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// An empty configFilePath means DefaultConfigPath. The returned config is
// usable even when the file could not be read.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}
	return load(effectivePath, flags)
}

// LogSummary reports where the configuration came from. Loading happens
// before the logger exists, so main calls this after logger.Init.
func (c *Config) LogSummary() {
	if c.Source == "" {
		logger.Debugf("Config: no config file, using defaults")
	} else {
		logger.Infof("Successfully loaded configuration from: %s", c.Source)
	}
	if len(c.Undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", c.Source, c.Undecoded)
	}
	for _, name := range c.Overrides {
		logger.DebugTagf("config", "Applied flag override: %s", name)
	}
}
