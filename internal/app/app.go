// internal/app/app.go
package app

import (
	"context"
	"fmt"

	"github.com/bethropolis/overlay/internal/canvas"
	"github.com/bethropolis/overlay/internal/clipboard"
	"github.com/bethropolis/overlay/internal/config"
	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/fonts"
	"github.com/bethropolis/overlay/internal/input"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/session"
	"github.com/bethropolis/overlay/internal/statusbar"
	"github.com/bethropolis/overlay/internal/theme"
	"github.com/bethropolis/overlay/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	session        *session.Session
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	screenEvents  chan tcell.Event

	quitting bool
}

// NewApp creates the terminal screen and wires the editor.
func NewApp(cfg *config.Config) (*App, error) {
	themeManager := newThemeManager(cfg)
	tuiManager, err := tui.New(themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager, themeManager, clipboard.New(cfg.Canvas.SystemClipboard)), nil
}

func newThemeManager(cfg *config.Config) *theme.Manager {
	mgr := theme.NewManager(theme.DefaultThemesDir(config.ConfigDirName, config.ThemesDirName))
	if cfg.Canvas.ThemeFile != "" {
		if err := mgr.LoadFile(cfg.Canvas.ThemeFile); err != nil {
			logger.Warnf("App: theme file ignored: %v", err)
		}
	}
	return mgr
}

// newApp wires the editor onto an initialised screen.
func newApp(cfg *config.Config, tuiManager *tui.TUI, themeManager *theme.Manager, clip clipboard.Source) *App {
	cols, _ := tuiManager.Size()
	width, height := cfg.Canvas.CanvasSize(cols)

	eventManager := event.NewManager()
	c := canvas.New(width, height)
	sess := session.New(c, eventManager, session.Options{
		DefaultFont:     cfg.Canvas.DefaultFont,
		DefaultFontSize: cfg.Canvas.DefaultFontSize,
		DefaultText:     cfg.Canvas.DefaultText,
		MaxHistory:      cfg.Canvas.MaxHistory,
		Fonts:           fonts.NewCatalog(cfg.Fonts.Families),
		Clipboard:       clip,
	})

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		session:        sess,
		statusBar:      statusbar.New(statusBarConfig(themeManager.Current())),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		themeManager:   themeManager,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
		screenEvents:   make(chan tcell.Event, 16),
	}

	// Every canvas render request becomes a screen redraw.
	c.OnRender(a.requestRedraw)

	eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	eventManager.Subscribe(event.TypeKeyPressed, a.handleKeyPressed)

	logger.Infof("App: canvas %dx%d, session %s", width, height, sess.ID())
	return a
}

func statusBarConfig(t *theme.Theme) statusbar.Config {
	return statusbar.Config{
		StyleDefault:   t.GetStyle(theme.StyleStatusBar),
		StyleMessage:   t.GetStyle(theme.StyleStatusBarMessage),
		StyleDim:       t.GetStyle(theme.StyleStatusBarDim),
		MessageTimeout: config.MessageTimeout,
	}
}

// Run starts the application's main loop. It returns when the user quits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("a Add | p Paste | y Copy | u/r Undo/Redo | b/i/_ Style | f Font | +/- Size | q Quit")
	a.requestRedraw()

	// Drawing and key handling share this goroutine.
	for {
		select {
		case <-ctx.Done():
			// Release pollEvents if it is blocked handing over an event.
			a.signalQuit()
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application: %v", ctx.Err())
			return ctx.Err()
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.screenEvents:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollEvents forwards terminal events to the main loop. It only reads the
// screen; all state changes happen in Run.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.screenEvents <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.resizeCanvas()
		return true
	case *tcell.EventKey:
		a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: e})
		return a.handleAction(a.inputProcessor.ProcessEvent(e))
	}
	return false
}

// resizeCanvas switches between the regular and compact canvas sizes.
func (a *App) resizeCanvas() {
	cols, _ := a.tuiManager.Size()
	w, h := a.cfg.Canvas.CanvasSize(cols)
	a.session.Canvas().Resize(w, h)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// signalQuit closes the quit channel once.
func (a *App) signalQuit() {
	if a.quitting {
		return
	}
	a.quitting = true
	close(a.quit)
}
