// internal/app/actions.go
package app

import (
	"errors"

	"github.com/bethropolis/overlay/internal/clipboard"
	"github.com/bethropolis/overlay/internal/core/history"
	"github.com/bethropolis/overlay/internal/input"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/theme"
)

// handleAction runs one editor action and reports whether to redraw.
func (a *App) handleAction(ev input.ActionEvent) bool {
	s := a.session
	logger.DebugTagf("input", "Action: %v", ev.Action)

	var err error
	switch ev.Action {
	case input.ActionQuit:
		a.signalQuit()
		return false

	case input.ActionAddText:
		_, err = s.AddText("")
	case input.ActionPaste:
		_, err = s.PasteText()
		if errors.Is(err, clipboard.ErrEmpty) {
			a.statusBar.SetTemporaryMessage("Clipboard is empty")
			return true
		}
	case input.ActionCopy:
		var copied bool
		copied, err = s.CopyText()
		if copied {
			a.statusBar.SetTemporaryMessage("Copied")
		}

	case input.ActionUndo:
		if s.Undo() == history.Empty {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
			return true
		}
	case input.ActionRedo:
		if s.Redo() == history.Empty {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
			return true
		}

	case input.ActionToggleBold:
		_, err = s.ToggleBold()
	case input.ActionToggleItalic:
		_, err = s.ToggleItalic()
	case input.ActionToggleUnderline:
		_, err = s.ToggleUnderline()
	case input.ActionFontSizeUp:
		_, err = s.AdjustFontSize(1)
	case input.ActionFontSizeDown:
		_, err = s.AdjustFontSize(-1)
	case input.ActionNextFont:
		_, err = s.CycleFont(1)
	case input.ActionPrevFont:
		_, err = s.CycleFont(-1)

	case input.ActionMoveUp:
		_, err = s.Move(0, -float64(a.cfg.Canvas.CellHeight))
	case input.ActionMoveDown:
		_, err = s.Move(0, float64(a.cfg.Canvas.CellHeight))
	case input.ActionMoveLeft:
		_, err = s.Move(-float64(a.cfg.Canvas.CellWidth), 0)
	case input.ActionMoveRight:
		_, err = s.Move(float64(a.cfg.Canvas.CellWidth), 0)
	case input.ActionSelectNext:
		s.SelectNext(1)
	case input.ActionSelectPrev:
		s.SelectNext(-1)

	case input.ActionNextTheme:
		a.applyTheme(a.themeManager.Next())

	default:
		return false
	}

	if err != nil {
		logger.Warnf("App: %v failed: %v", ev.Action, err)
		a.statusBar.SetTemporaryMessage("Error: %v", err)
	}
	// The canvas asks for a redraw itself; toolbar-only changes still need one.
	return true
}

// applyTheme restyles the screen and status bar.
func (a *App) applyTheme(t *theme.Theme) {
	a.tuiManager.SetStyle(t.GetStyle(theme.StyleDefault))
	a.statusBar.SetConfig(statusBarConfig(t))
	a.statusBar.SetTemporaryMessage("Theme: %s", t.Name)
}
