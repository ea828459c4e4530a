// internal/render/canvas.go

// Package render draws the canvas and its labels onto a tcell screen.
package render

import (
	"github.com/bethropolis/overlay/internal/canvas"
	"github.com/bethropolis/overlay/internal/theme"
	"github.com/bethropolis/overlay/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Canvas draws the frame, the canvas background and every attached label in
// z-order. The active label is drawn with the Selected style.
func Canvas(screen tcell.Screen, c *canvas.Canvas, layout Layout, activeTheme *theme.Theme) {
	if layout.Cols <= 0 || layout.Rows <= 0 {
		return
	}
	bg := activeTheme.GetStyle(theme.StyleCanvas)
	tui.FillRect(screen, layout.X, layout.Y, layout.Cols, layout.Rows, bg)
	tui.DrawBox(screen, layout.X, layout.Y, layout.Cols, layout.Rows, activeTheme.GetStyle(theme.StyleCanvasBorder))

	active, hasActive := c.Active()
	for _, obj := range c.Objects() {
		style := activeTheme.GetStyle(theme.StyleLabel)
		if hasActive && obj.Handle == active {
			style = activeTheme.GetStyle(theme.StyleSelected)
		}
		Label(screen, obj.Text, layout, LabelStyle(obj.Text, style))
	}
}

// LabelStyle applies the label's weight, style and underline to base.
func LabelStyle(t canvas.Text, base tcell.Style) tcell.Style {
	return base.Bold(t.Bold()).Italic(t.Italic()).Underline(t.Underline)
}

// Label draws one label clipped to the canvas area.
func Label(screen tcell.Screen, t canvas.Text, layout Layout, style tcell.Style) {
	x, y := layout.Cell(t.Position())
	if !layout.Contains(x, y) {
		return
	}
	tui.DrawText(screen, x, y, layout.X+layout.Cols, t.Text, style)
}
