// internal/app/ui.go
package app

import (
	"github.com/bethropolis/overlay/internal/config"
	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/render"
	"github.com/bethropolis/overlay/internal/statusbar"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := height - config.StatusBarHeight

	c := a.session.Canvas()
	canvasW, canvasH := c.Size()
	layout := render.NewLayout(width, viewHeight, canvasW, canvasH, a.cfg.Canvas.CellWidth, a.cfg.Canvas.CellHeight)
	logger.DebugTagf("draw", "draw: screen %dx%d, canvas %dx%d in %dx%d cells",
		width, height, canvasW, canvasH, layout.Cols, layout.Rows)

	a.tuiManager.Clear()
	render.Canvas(screen, c, layout, a.themeManager.Current())
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the toolbar and history state to the status bar.
func (a *App) updateStatusBarContent() {
	s := a.session
	state := statusbar.State{
		Font:      s.Font(),
		FontSize:  s.FontSize(),
		Objects:   len(s.Canvas().Objects()),
		UndoCount: s.History().UndoCount(),
		RedoCount: s.History().RedoCount(),
	}
	if next, ok := s.History().PeekUndo(); ok {
		state.NextUndo = next.Description()
	}
	if id, ok := s.Selected(); ok {
		state.Selected = uint64(id)
		if h, ok := s.Canvas().Active(); ok {
			if txt, ok := s.Canvas().Text(h); ok {
				state.Bold = txt.Bold()
				state.Italic = txt.Italic()
				state.Underline = txt.Underline
			}
		}
	}
	a.statusBar.SetState(state)
}

// --- Event Handlers (App reacts to events) ---

func (a *App) handleHistoryChanged(e event.Event) bool {
	data, ok := e.Data.(event.HistoryChangedData)
	if !ok {
		return false
	}
	switch data.Op {
	case event.HistoryUndo:
		if data.Target {
			a.statusBar.SetTemporaryMessage("Undo: %s", data.Description)
		} else {
			a.statusBar.SetTemporaryMessage("Undo: %s (label no longer exists)", data.Description)
		}
	case event.HistoryRedo:
		if data.Target {
			a.statusBar.SetTemporaryMessage("Redo: %s", data.Description)
		} else {
			a.statusBar.SetTemporaryMessage("Redo: %s (label no longer exists)", data.Description)
		}
	}
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		logger.DebugTagf("app", "Selection is now #%d", data.ID)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleKeyPressed(e event.Event) bool {
	if data, ok := e.Data.(event.KeyPressedData); ok && data.KeyEvent != nil {
		logger.DebugTagf("input", "Key: %s", data.KeyEvent.Name())
	}
	return false
}
