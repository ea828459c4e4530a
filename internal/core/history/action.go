// internal/core/history/action.go

// Package history provides undo/redo over canvas edits via two action logs.
package history

import (
	"errors"
	"fmt"

	"github.com/bethropolis/overlay/internal/types"
)

// ErrValueKind is returned when a property change carries values of the wrong kind.
var ErrValueKind = errors.New("value kind does not match property")

// ActionType indicates whether a label was created or a property changed.
type ActionType int

const (
	CreateAction ActionType = iota
	PropertyChangeAction
)

func (t ActionType) String() string {
	switch t {
	case CreateAction:
		return "create"
	case PropertyChangeAction:
		return "propertyChange"
	}
	return "unknown"
}

// Action is one reversible edit. A PropertyChange keeps both sides of the
// change so redo never depends on what the object holds at undo time.
type Action struct {
	Type     ActionType
	ID       types.ObjectID
	Property types.Property // PropertyChangeAction only
	Before   types.Value    // value prior to the change
	After    types.Value    // value the change applied
}

// NewCreate records that the object id was added to the canvas.
func NewCreate(id types.ObjectID) Action {
	return Action{Type: CreateAction, ID: id}
}

// NewPropertyChange records that p on id went from before to after.
func NewPropertyChange(id types.ObjectID, p types.Property, before, after types.Value) (Action, error) {
	if !p.Valid() {
		return Action{}, fmt.Errorf("property change on %d: unknown property %v", id, p)
	}
	if !before.Fits(p) || !after.Fits(p) {
		return Action{}, fmt.Errorf("property change %v on %d (%v -> %v): %w", p, id, before, after, ErrValueKind)
	}
	return Action{
		Type:     PropertyChangeAction,
		ID:       id,
		Property: p,
		Before:   before,
		After:    after,
	}, nil
}

// Equal reports whether two actions describe the same edit.
func (a Action) Equal(o Action) bool {
	if a.Type != o.Type || a.ID != o.ID {
		return false
	}
	if a.Type == CreateAction {
		return true
	}
	return a.Property == o.Property && a.Before.Equal(o.Before) && a.After.Equal(o.After)
}

// Description is a short human readable summary for the status bar.
func (a Action) Description() string {
	switch a.Type {
	case CreateAction:
		return fmt.Sprintf("Add text #%d", a.ID)
	case PropertyChangeAction:
		return fmt.Sprintf("Set %v of #%d to %v", a.Property, a.ID, a.After)
	}
	return "Unknown action"
}

func (a Action) String() string {
	if a.Type == CreateAction {
		return fmt.Sprintf("Create(%d)", a.ID)
	}
	return fmt.Sprintf("PropertyChange(%d, %v, %v -> %v)", a.ID, a.Property, a.Before, a.After)
}
