package app

import (
	"context"
	"testing"
	"time"

	"github.com/bethropolis/overlay/internal/clipboard"
	"github.com/bethropolis/overlay/internal/config"
	"github.com/bethropolis/overlay/internal/render"
	"github.com/bethropolis/overlay/internal/theme"
	"github.com/bethropolis/overlay/internal/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cols, rows int) (*App, tcell.SimulationScreen, *clipboard.Internal) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	tuiManager, err := tui.NewWithScreen(screen, tcell.StyleDefault)
	require.NoError(t, err)
	screen.SetSize(cols, rows)

	clip := &clipboard.Internal{}
	a := newApp(config.NewDefaultConfig(), tuiManager, theme.NewManager(""), clip)
	return a, screen, clip
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func read(s tcell.SimulationScreen, x, y, n int) string {
	var out []rune
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func TestAddTextIsDrawn(t *testing.T) {
	a, screen, _ := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	assert.True(t, a.handleEvent(key('a')))
	objs := a.session.Canvas().Objects()
	require.Len(t, objs, 1)
	a.draw()

	cw, ch := a.session.Canvas().Size()
	layout := render.NewLayout(120, 60-config.StatusBarHeight, cw, ch, a.cfg.Canvas.CellWidth, a.cfg.Canvas.CellHeight)
	x, y := layout.Cell(objs[0].Text.Position())
	assert.Equal(t, "New Text", read(screen, x, y, 8))
	assert.Contains(t, read(screen, 0, 59, 120), "Undo: 1 (Add text #1)")
}

func TestUndoRedoKeys(t *testing.T) {
	a, _, _ := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	a.handleEvent(key('u'))
	assert.Equal(t, "Nothing to undo", a.statusBar.Text())

	a.handleEvent(key('a'))
	a.handleEvent(key('b'))
	require.Equal(t, 2, a.session.History().UndoCount())

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	assert.Equal(t, `Undo: Set fontWeight of #1 to "bold"`, a.statusBar.Text())
	a.handleEvent(key('u'))
	assert.Equal(t, 0, len(a.session.Canvas().Objects()))

	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl))
	a.handleEvent(key('r'))
	assert.Equal(t, 2, a.session.History().UndoCount())
	a.handleEvent(key('r'))
	assert.Equal(t, "Nothing to redo", a.statusBar.Text())

	// Undoing the creation dropped the selection.
	a.handleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	a.updateStatusBarContent()
	a.statusBar.ResetTemporaryMessage()
	assert.Contains(t, a.statusBar.Text(), "[B--]")
}

func TestPasteKey(t *testing.T) {
	a, _, clip := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	a.handleEvent(key('p'))
	assert.Equal(t, "Clipboard is empty", a.statusBar.Text())

	require.NoError(t, clip.WriteAll("hello\nworld"))
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl))
	objs := a.session.Canvas().Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, "hello", objs[0].Text.Text)
}

func TestCopyThenPasteKeys(t *testing.T) {
	a, _, clip := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	a.handleEvent(key('a'))
	a.handleEvent(key('y'))
	assert.Equal(t, "Copied", a.statusBar.Text())
	got, err := clip.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultText, got)

	a.handleEvent(key('p'))
	objs := a.session.Canvas().Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, objs[0].Text.Text, objs[1].Text.Text)
}

func TestMoveAndFontKeys(t *testing.T) {
	a, _, _ := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	a.handleEvent(key('a'))
	before := a.session.Canvas().Objects()[0].Text
	a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	a.handleEvent(key('+'))
	a.handleEvent(key('f'))

	after := a.session.Canvas().Objects()[0].Text
	assert.Equal(t, before.Left+float64(config.DefaultCellWidth), after.Left)
	assert.Equal(t, before.Top+float64(config.DefaultCellHeight), after.Top)
	assert.Equal(t, 21.0, after.FontSize)
	assert.Equal(t, "Helvetica", after.FontFamily)
	assert.Equal(t, 5, a.session.History().UndoCount())
}

func TestThemeKey(t *testing.T) {
	a, _, _ := newTestApp(t, 120, 60)
	defer a.tuiManager.Close()

	a.handleEvent(key('t'))
	assert.Equal(t, "Blotter", a.themeManager.Current().Name)
	assert.Equal(t, "Theme: Blotter", a.statusBar.Text())
}

func TestCompactCanvasFollowsTerminalWidth(t *testing.T) {
	a, screen, _ := newTestApp(t, 80, 30)
	defer a.tuiManager.Close()

	w, h := a.session.Canvas().Size()
	assert.Equal(t, config.DefaultCompactWidth, w)
	assert.Equal(t, config.DefaultCompactHeight, h)

	screen.SetSize(140, 50)
	assert.True(t, a.handleEvent(tcell.NewEventResize(140, 50)))
	w, h = a.session.Canvas().Size()
	assert.Equal(t, config.DefaultCanvasWidth, w)
	assert.Equal(t, config.DefaultCanvasHeight, h)
}

func TestRunQuitsOnKey(t *testing.T) {
	a, screen, _ := newTestApp(t, 120, 60)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
	assert.Len(t, a.session.Canvas().Objects(), 1)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _, _ := newTestApp(t, 120, 60)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	select {
	case <-a.quit:
	default:
		t.Fatal("quit channel left open after cancel")
	}
}
