// internal/types/position.go
package types

// Position is a point on the canvas in canvas units. Left grows to the
// right, Top grows downwards.
type Position struct {
	Left float64
	Top  float64
}

// Offset returns the position moved by dx, dy.
func (p Position) Offset(dx, dy float64) Position {
	return Position{Left: p.Left + dx, Top: p.Top + dy}
}

// Clamp keeps the position inside [0, width) x [0, height).
func (p Position) Clamp(width, height float64) Position {
	p.Left = clamp(p.Left, 0, width-1)
	p.Top = clamp(p.Top, 0, height-1)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
