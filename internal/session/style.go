// internal/session/style.go
package session

import (
	"fmt"

	"github.com/bethropolis/overlay/internal/canvas"
	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/types"
)

// update sets p on the selected label and records the change. It reports
// whether anything changed; with no selection it does nothing.
func (s *Session) update(p types.Property, after types.Value) (bool, error) {
	id, h, ok := s.selection()
	if !ok {
		logger.DebugTagf("session", "No selection for %v change", p)
		return false, nil
	}
	before, ok := s.canvas.Property(h, p)
	if !ok {
		return false, nil
	}
	if before.Equal(after) {
		return false, nil
	}
	if err := s.canvas.SetProperty(h, p, after); err != nil {
		return false, fmt.Errorf("set %v: %w", p, err)
	}
	if err := s.history.OnPropertyChange(id, p, before, after); err != nil {
		// Keep canvas and history consistent.
		_ = s.canvas.SetProperty(h, p, before)
		return false, fmt.Errorf("record %v: %w", p, err)
	}

	s.events.Dispatch(event.TypePropertyChanged, event.PropertyChangedData{
		ID: id, Property: p, Before: before, After: after,
	})
	s.canvas.RequestRender()
	return true, nil
}

// SetFontFamily changes the toolbar font and applies it to the selection.
func (s *Session) SetFontFamily(name string) (bool, error) {
	family, ok := s.fonts.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	s.font = family
	return s.update(types.FontFamily, types.StringValue(family))
}

// CycleFont moves the toolbar font delta positions through the catalog.
func (s *Session) CycleFont(delta int) (bool, error) {
	return s.SetFontFamily(s.fonts.Step(s.font, delta))
}

// SetFontSize changes the toolbar size and applies it to the selection.
func (s *Session) SetFontSize(size int) (bool, error) {
	if size < 1 {
		return false, fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	s.fontSize = size
	return s.update(types.FontSize, types.NumberValue(float64(size)))
}

// AdjustFontSize changes the toolbar size by delta.
func (s *Session) AdjustFontSize(delta int) (bool, error) {
	return s.SetFontSize(s.fontSize + delta)
}

// ToggleBold flips the selection between bold and normal weight.
func (s *Session) ToggleBold() (bool, error) {
	return s.toggleString(types.FontWeight, canvas.WeightBold, canvas.WeightNormal)
}

// ToggleItalic flips the selection between italic and normal style.
func (s *Session) ToggleItalic() (bool, error) {
	return s.toggleString(types.FontStyle, canvas.StyleItalic, canvas.StyleNormal)
}

// ToggleUnderline flips the selection's underline.
func (s *Session) ToggleUnderline() (bool, error) {
	_, h, ok := s.selection()
	if !ok {
		return false, nil
	}
	current, _ := s.canvas.Property(h, types.Underline)
	return s.update(types.Underline, types.BoolValue(!current.Bool()))
}

func (s *Session) toggleString(p types.Property, on, off string) (bool, error) {
	_, h, ok := s.selection()
	if !ok {
		return false, nil
	}
	current, _ := s.canvas.Property(h, p)
	next := on
	if current.Str() == on {
		next = off
	}
	return s.update(p, types.StringValue(next))
}

// Move shifts the selection by dx, dy canvas units, clamped to the canvas.
// Each axis that changes is recorded as its own edit.
func (s *Session) Move(dx, dy float64) (bool, error) {
	_, h, ok := s.selection()
	if !ok {
		return false, nil
	}
	txt, _ := s.canvas.Text(h)
	w, hgt := s.canvas.Size()
	to := txt.Position().Offset(dx, dy).Clamp(float64(w), float64(hgt))

	movedX, err := s.update(types.Left, types.NumberValue(to.Left))
	if err != nil {
		return movedX, err
	}
	movedY, err := s.update(types.Top, types.NumberValue(to.Top))
	return movedX || movedY, err
}
