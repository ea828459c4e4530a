// internal/session/selection.go
package session

import (
	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/types"
)

// selection resolves the selected label to a live, attached handle.
func (s *Session) selection() (types.ObjectID, types.Handle, bool) {
	if s.selected == 0 {
		return 0, 0, false
	}
	h, err := s.registry.Resolve(s.selected)
	if err != nil || !s.canvas.Attached(h) {
		return 0, 0, false
	}
	return s.selected, h, true
}

// Selected returns the selected label, if it is still on the canvas.
func (s *Session) Selected() (types.ObjectID, bool) {
	id, _, ok := s.selection()
	return id, ok
}

// Select makes id the active label. It fails for labels not on the canvas.
func (s *Session) Select(id types.ObjectID) bool {
	h, err := s.registry.Resolve(id)
	if err != nil || !s.canvas.Attached(h) {
		return false
	}
	s.selectID(id)
	return true
}

// ClearSelection deselects the active label.
func (s *Session) ClearSelection() {
	s.selectID(0)
}

func (s *Session) selectID(id types.ObjectID) {
	var h types.Handle
	if id != 0 {
		h, _ = s.registry.Resolve(id)
	}
	if id == s.selected {
		s.canvas.SetActive(h)
		return
	}
	s.selected = id
	s.canvas.SetActive(h)
	s.events.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{ID: id})
	s.canvas.RequestRender()
}

// SelectNext moves the selection delta labels through the visible labels in
// creation order, wrapping around. It returns false when nothing is visible.
func (s *Session) SelectNext(delta int) bool {
	var visible []types.ObjectID
	current := -1
	for _, id := range s.created {
		h, err := s.registry.Resolve(id)
		if err != nil || !s.canvas.Attached(h) {
			continue
		}
		if id == s.selected {
			current = len(visible)
		}
		visible = append(visible, id)
	}
	if len(visible) == 0 {
		s.selectID(0)
		return false
	}

	n := len(visible)
	var next int
	if current < 0 {
		next = 0
		if delta < 0 {
			next = n - 1
		}
	} else {
		next = ((current+delta)%n + n) % n
	}
	s.selectID(visible[next])
	return true
}

// dropStaleSelection clears a selection whose label left the canvas.
func (s *Session) dropStaleSelection() {
	if s.selected == 0 {
		return
	}
	if _, _, ok := s.selection(); !ok {
		s.selectID(0)
	}
}
