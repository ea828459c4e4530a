// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/overlay/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the renderer and status bar.
const (
	StyleDefault          = "Default"
	StyleCanvas           = "Canvas"
	StyleCanvasBorder     = "CanvasBorder"
	StyleLabel            = "Label"
	StyleSelected         = "Selected"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarDim     = "StatusBarDim"
)

// Theme is a named set of tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style called name. Dotted names fall back to their
// base ("Label.bold" -> "Label"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Built-in themes.
var (
	Paper   Theme
	Blotter Theme
)

func init() {
	// Paper: a white sheet with black ink, like the browser canvas.
	ink := tcell.NewHexColor(0x000000)
	sheet := tcell.NewHexColor(0xffffff)
	frame := tcell.NewHexColor(0x8a8f98)
	barBg := tcell.NewHexColor(0x2a2f38)
	barFg := tcell.NewHexColor(0xc5cdd9)
	accent := tcell.NewHexColor(0x61afef)
	muted := tcell.NewHexColor(0x5c6370)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(barFg)
	canvas := tcell.StyleDefault.Background(sheet).Foreground(ink)

	Paper = Theme{
		Name:   "Paper",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleCanvas:           canvas,
			StyleCanvasBorder:     base.Foreground(frame),
			StyleLabel:            canvas,
			StyleSelected:         canvas.Background(accent),
			StyleStatusBar:        tcell.StyleDefault.Background(barBg).Foreground(barFg),
			StyleStatusBarMessage: tcell.StyleDefault.Background(barBg).Foreground(barFg).Bold(true),
			StyleStatusBarDim:     tcell.StyleDefault.Background(barBg).Foreground(muted),
		},
	}

	// Blotter: the same layout on a dark sheet.
	darkSheet := tcell.NewHexColor(0x1e2127)
	chalk := tcell.NewHexColor(0xe5e9f0)
	yellow := tcell.NewHexColor(0xe5c07b)
	darkCanvas := tcell.StyleDefault.Background(darkSheet).Foreground(chalk)

	Blotter = Theme{
		Name:   "Blotter",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleCanvas:           darkCanvas,
			StyleCanvasBorder:     base.Foreground(muted),
			StyleLabel:            darkCanvas,
			StyleSelected:         darkCanvas.Foreground(darkSheet).Background(yellow),
			StyleStatusBar:        tcell.StyleDefault.Background(barBg).Foreground(barFg),
			StyleStatusBarMessage: tcell.StyleDefault.Background(barBg).Foreground(yellow).Bold(true),
			StyleStatusBarDim:     tcell.StyleDefault.Background(barBg).Foreground(muted),
		},
	}
}
