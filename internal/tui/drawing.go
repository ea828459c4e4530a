// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of cells text occupies.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// DrawText draws text from (x, y) without crossing maxX (exclusive), one
// grapheme cluster per cell group. It returns the x after the last cluster.
func DrawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width := gr.Width()
		if x+width > maxX {
			break
		}
		runes := gr.Runes()
		if width == 0 || len(runes) == 0 {
			continue
		}
		var combining []rune
		if len(runes) > 1 {
			combining = runes[1:]
		}
		if x >= 0 {
			screen.SetContent(x, y, runes[0], combining, style)
		}
		x += width
	}
	return x
}

// FillRect paints the cells [x, x+w) x [y, y+h) with blanks in style.
func FillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawBox draws a single-line frame around the w x h area whose top-left
// inner cell is (x, y).
func DrawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	left, right := x-1, x+w
	top, bottom := y-1, y+h
	for col := x; col < x+w; col++ {
		screen.SetContent(col, top, tcell.RuneHLine, nil, style)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y; row < y+h; row++ {
		screen.SetContent(left, row, tcell.RuneVLine, nil, style)
		screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
