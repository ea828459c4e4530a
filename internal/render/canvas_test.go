package render

import (
	"testing"

	"github.com/bethropolis/overlay/internal/canvas"
	"github.com/bethropolis/overlay/internal/theme"
	"github.com/bethropolis/overlay/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func read(s tcell.SimulationScreen, x, y, n int) string {
	var out []rune
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(120, 60, 400, 400, 5, 10)
	assert.Equal(t, 80, l.Cols)
	assert.Equal(t, 40, l.Rows)
	assert.Equal(t, 20, l.X)
	assert.Equal(t, 10, l.Y)

	// Too small a terminal shrinks the area but keeps the frame on screen.
	l = NewLayout(30, 10, 400, 400, 5, 10)
	assert.Equal(t, 28, l.Cols)
	assert.Equal(t, 8, l.Rows)
	assert.Equal(t, 1, l.X)
	assert.Equal(t, 1, l.Y)

	l = NewLayout(100, 100, 401, 0, 0, 0)
	assert.Equal(t, 98, l.Cols)
	assert.Equal(t, 0, l.Rows)
}

func TestLayoutCell(t *testing.T) {
	l := NewLayout(120, 60, 400, 400, 5, 10)
	x, y := l.Cell(types.Position{Left: 12, Top: 29})
	assert.Equal(t, 22, x)
	assert.Equal(t, 12, y)
	assert.True(t, l.Contains(x, y))
	assert.False(t, l.Contains(l.X+l.Cols, l.Y))
}

func TestCanvasDrawsLabels(t *testing.T) {
	s := newScreen(t, 100, 50)
	c := canvas.New(400, 400)
	plain := c.Add(canvas.NewText("plain", "Arial", 20, types.Position{Left: 0, Top: 0}))
	bold := c.Add(canvas.NewText("bold", "Arial", 20, types.Position{Left: 50, Top: 100}))
	require.NoError(t, c.SetProperty(bold, types.FontWeight, types.StringValue(canvas.WeightBold)))
	require.NoError(t, c.SetProperty(bold, types.Underline, types.BoolValue(true)))
	hidden := c.Add(canvas.NewText("hidden", "Arial", 20, types.Position{Left: 0, Top: 200}))
	c.Detach(hidden)
	c.SetActive(plain)

	layout := NewLayout(100, 50, 400, 400, 5, 10)
	Canvas(s, c, layout, &theme.Paper)

	assert.Equal(t, "plain", read(s, layout.X, layout.Y, 5))
	_, _, style, _ := s.GetContent(layout.X, layout.Y)
	assert.Equal(t, theme.Paper.Styles[theme.StyleSelected].Bold(false).Italic(false).Underline(false), style)

	assert.Equal(t, "bold", read(s, layout.X+10, layout.Y+10, 4))
	_, _, style, _ = s.GetContent(layout.X+10, layout.Y+10)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrUnderline)
	assert.Zero(t, attrs&tcell.AttrItalic)

	assert.Equal(t, "      ", read(s, layout.X, layout.Y+20, 6))

	r, _, _, _ := s.GetContent(layout.X-1, layout.Y-1)
	assert.Equal(t, tcell.RuneULCorner, r)
}

func TestLabelClipsAtRightEdge(t *testing.T) {
	s := newScreen(t, 100, 50)
	c := canvas.New(400, 400)
	c.Add(canvas.NewText("overflowing", "Arial", 20, types.Position{Left: 390, Top: 0}))

	layout := NewLayout(100, 50, 400, 400, 5, 10)
	Canvas(s, c, layout, &theme.Paper)

	assert.Equal(t, "ov", read(s, layout.X+78, layout.Y, 2))
	r, _, _, _ := s.GetContent(layout.X+80, layout.Y)
	assert.Equal(t, tcell.RuneVLine, r)
}
