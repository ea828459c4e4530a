// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/bethropolis/overlay/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	StyleDim       tcell.Style // Unavailable undo/redo
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleDim:       tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlue),
		MessageTimeout: 4 * time.Second,
	}
}

// State is what the status line shows when no message is active.
type State struct {
	Font      string
	FontSize  int
	Bold      bool
	Italic    bool
	Underline bool
	Selected  uint64 // 0 when nothing is selected
	Objects   int

	UndoCount int
	RedoCount int
	NextUndo  string // description of the edit Undo would revert
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	state  State

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.config = config
}

// SetState updates the editor state shown.
func (sb *StatusBar) SetState(state State) {
	sb.state = state
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// messageActive reports whether a message is showing, expiring old ones.
func (sb *StatusBar) messageActive() bool {
	if sb.tempMessageTime.IsZero() {
		return false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.ResetTemporaryMessage()
		return false
	}
	return true
}

// leftText builds the toolbar half of the status line.
func (sb *StatusBar) leftText() string {
	s := sb.state
	flags := []byte("---")
	if s.Bold {
		flags[0] = 'B'
	}
	if s.Italic {
		flags[1] = 'I'
	}
	if s.Underline {
		flags[2] = 'U'
	}
	selected := "none"
	if s.Selected != 0 {
		selected = fmt.Sprintf("#%d", s.Selected)
	}
	return fmt.Sprintf(" %s %dpx [%s] -- Selected: %s of %d", s.Font, s.FontSize, flags, selected, s.Objects)
}

// rightText builds the history half of the status line.
func (sb *StatusBar) rightText() (undo, redo string) {
	s := sb.state
	undo = fmt.Sprintf("Undo: %d", s.UndoCount)
	if s.NextUndo != "" {
		undo += fmt.Sprintf(" (%s)", s.NextUndo)
	}
	redo = fmt.Sprintf("Redo: %d ", s.RedoCount)
	return undo, redo
}

// Draw renders the status bar onto the last row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	if sb.messageActive() {
		style := sb.config.StyleMessage
		tui.FillRect(screen, 0, y, width, 1, style)
		tui.DrawText(screen, 0, y, width, " "+sb.tempMessage, style)
		return
	}

	style := sb.config.StyleDefault
	tui.FillRect(screen, 0, y, width, 1, style)
	left := sb.leftText()
	x := tui.DrawText(screen, 0, y, width, left, style)

	undo, redo := sb.rightText()
	right := undo + " | " + redo
	start := width - tui.StringWidth(right)
	if start <= x {
		return // no room
	}

	undoStyle, redoStyle := style, style
	if sb.state.UndoCount == 0 {
		undoStyle = sb.config.StyleDim
	}
	if sb.state.RedoCount == 0 {
		redoStyle = sb.config.StyleDim
	}
	x = tui.DrawText(screen, start, y, width, undo, undoStyle)
	x = tui.DrawText(screen, x, y, width, " | ", style)
	tui.DrawText(screen, x, y, width, redo, redoStyle)
}

// Text returns the plain status line, mainly for logging.
func (sb *StatusBar) Text() string {
	if sb.messageActive() {
		return sb.tempMessage
	}
	undo, redo := sb.rightText()
	return strings.TrimSpace(sb.leftText()) + " | " + undo + " | " + strings.TrimSpace(redo)
}
