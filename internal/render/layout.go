// internal/render/layout.go
package render

import "github.com/bethropolis/overlay/internal/types"

// Layout places the canvas on the terminal. X, Y is the top-left inner cell;
// Cols x Rows is the area inside the frame.
type Layout struct {
	X, Y       int
	Cols, Rows int
	CellWidth  int // canvas units per column
	CellHeight int // canvas units per row
}

// NewLayout centres a canvasW x canvasH canvas in a screenW x screenH area,
// one cell per cellW x cellH canvas units. The area shrinks to fit.
func NewLayout(screenW, screenH, canvasW, canvasH, cellW, cellH int) Layout {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	cols := ceilDiv(canvasW, cellW)
	rows := ceilDiv(canvasH, cellH)

	// Leave room for the frame.
	if maxCols := screenW - 2; cols > maxCols {
		cols = max(maxCols, 0)
	}
	if maxRows := screenH - 2; rows > maxRows {
		rows = max(maxRows, 0)
	}
	return Layout{
		X:          max((screenW-cols)/2, 1),
		Y:          max((screenH-rows)/2, 1),
		Cols:       cols,
		Rows:       rows,
		CellWidth:  cellW,
		CellHeight: cellH,
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Cell maps a canvas position to a screen cell.
func (l Layout) Cell(p types.Position) (int, int) {
	return l.X + int(p.Left)/l.CellWidth, l.Y + int(p.Top)/l.CellHeight
}

// Contains reports whether the screen cell x, y is inside the canvas area.
func (l Layout) Contains(x, y int) bool {
	return x >= l.X && x < l.X+l.Cols && y >= l.Y && y < l.Y+l.Rows
}
