// internal/config/constants.go
package config

import "time"

// Base application details
const AppName = "overlay"
const ConfigDirName = "overlay"
const ThemesDirName = "themes"
const DefaultThemeFileName = "theme.toml"   // Active theme file
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "overlay.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults, in canvas units.
const (
	DefaultCanvasWidth   = 400
	DefaultCanvasHeight  = 400
	DefaultCompactWidth  = 250
	DefaultCompactHeight = 250
	// Terminals narrower than this many columns get the compact canvas.
	DefaultCompactBelow = 100
)

// One terminal cell covers this many canvas units.
const (
	DefaultCellWidth  = 5
	DefaultCellHeight = 10
)

// Toolbar defaults
const DefaultFont = "Arial"
const DefaultFontSize = 20
const DefaultText = "New Text"

const SystemClipboard = true
