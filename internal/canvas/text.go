// internal/canvas/text.go
package canvas

import "github.com/bethropolis/overlay/internal/types"

// Text is a styled text label placed on the canvas.
type Text struct {
	Text       string
	FontFamily string
	FontSize   float64
	FontWeight string // "normal" or "bold"
	FontStyle  string // "normal" or "italic"
	Underline  bool
	Left       float64
	Top        float64
	Fill       string
}

// Weight and style values used by the editor toggles.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
	StyleNormal  = "normal"
	StyleItalic  = "italic"
)

// NewText returns a label with the canvas defaults for unset style fields.
func NewText(text, family string, size float64, pos types.Position) *Text {
	return &Text{
		Text:       text,
		FontFamily: family,
		FontSize:   size,
		FontWeight: WeightNormal,
		FontStyle:  StyleNormal,
		Left:       pos.Left,
		Top:        pos.Top,
		Fill:       "black",
	}
}

// Bold reports whether the label is drawn bold.
func (t Text) Bold() bool { return t.FontWeight == WeightBold }

// Italic reports whether the label is drawn slanted.
func (t Text) Italic() bool { return t.FontStyle == StyleItalic }

// Position returns the label's top-left corner.
func (t Text) Position() types.Position {
	return types.Position{Left: t.Left, Top: t.Top}
}

// get reads property p from the label.
func (t *Text) get(p types.Property) (types.Value, bool) {
	switch p {
	case types.FontFamily:
		return types.StringValue(t.FontFamily), true
	case types.FontSize:
		return types.NumberValue(t.FontSize), true
	case types.FontWeight:
		return types.StringValue(t.FontWeight), true
	case types.FontStyle:
		return types.StringValue(t.FontStyle), true
	case types.Underline:
		return types.BoolValue(t.Underline), true
	case types.Left:
		return types.NumberValue(t.Left), true
	case types.Top:
		return types.NumberValue(t.Top), true
	}
	return types.Value{}, false
}

// set writes v into property p. The caller has checked v.Fits(p).
func (t *Text) set(p types.Property, v types.Value) {
	switch p {
	case types.FontFamily:
		t.FontFamily = v.Str()
	case types.FontSize:
		t.FontSize = v.Number()
	case types.FontWeight:
		t.FontWeight = v.Str()
	case types.FontStyle:
		t.FontStyle = v.Str()
	case types.Underline:
		t.Underline = v.Bool()
	case types.Left:
		t.Left = v.Number()
	case types.Top:
		t.Top = v.Number()
	}
}
