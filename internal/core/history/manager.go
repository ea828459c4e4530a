// internal/core/history/manager.go
package history

import (
	"errors"

	"github.com/bethropolis/overlay/internal/event"
	"github.com/bethropolis/overlay/internal/logger"
	"github.com/bethropolis/overlay/internal/registry"
	"github.com/bethropolis/overlay/internal/types"
)

// Canvas is what the history manager needs from the rendering side.
type Canvas interface {
	Detach(h types.Handle) bool
	Reattach(h types.Handle) bool
	Property(h types.Handle, p types.Property) (types.Value, bool)
	SetProperty(h types.Handle, p types.Property, v types.Value) error
	RequestRender()
}

// Outcome is the result of Undo or Redo.
type Outcome int

const (
	// Empty means the log was empty and nothing changed.
	Empty Outcome = iota
	// Applied means an action moved between the logs.
	Applied
)

func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "empty"
}

// Manager owns the undo and redo logs (most recent last). Each action lives
// in exactly one log; recording a new action discards the redo log.
//
// Manager is not safe for concurrent use; it belongs to the UI loop.
type Manager struct {
	canvas     Canvas
	registry   *registry.Registry
	events     *event.Manager
	undoLog    []Action
	redoLog    []Action
	maxHistory int // 0 means unbounded

	// onDiscard is called for every Create dropped with the redo log.
	onDiscard func(id types.ObjectID)
}

// NewManager creates a history manager. events may be nil.
func NewManager(canvas Canvas, reg *registry.Registry, events *event.Manager, maxHistory int) *Manager {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &Manager{
		canvas:     canvas,
		registry:   reg,
		events:     events,
		maxHistory: maxHistory,
	}
}

// OnDiscard sets fn to be called with the id of every undone creation that
// a new Record drops from the redo log. Those objects can never come back.
func (m *Manager) OnDiscard(fn func(id types.ObjectID)) {
	m.onDiscard = fn
}

// Record appends action to the undo log and clears the redo log.
func (m *Manager) Record(action Action) {
	m.undoLog = append(m.undoLog, action)
	m.discardRedo()

	if m.maxHistory > 0 && len(m.undoLog) > m.maxHistory {
		excess := len(m.undoLog) - m.maxHistory
		m.undoLog = append([]Action(nil), m.undoLog[excess:]...)
		logger.DebugTagf("history", "Evicted %d oldest action(s)", excess)
	}

	logger.DebugTagf("history", "Recorded %v. Undo: %d, Redo: %d", action, len(m.undoLog), len(m.redoLog))
	m.notify(event.HistoryRecord, action, true)
}

// OnCreate registers a freshly added object and records its creation.
// A duplicate id is rejected before either log changes.
func (m *Manager) OnCreate(id types.ObjectID, h types.Handle) error {
	if err := m.registry.Register(id, h); err != nil {
		return err
	}
	m.Record(NewCreate(id))
	return nil
}

// OnPropertyChange records a property change on id from before to after.
func (m *Manager) OnPropertyChange(id types.ObjectID, p types.Property, before, after types.Value) error {
	action, err := NewPropertyChange(id, p, before, after)
	if err != nil {
		logger.Errorf("History: rejected property change: %v", err)
		return err
	}
	m.Record(action)
	return nil
}

// Undo moves the newest undo action to the redo log and reverts it on the
// canvas. A vanished target is skipped silently; the action still moves.
func (m *Manager) Undo() Outcome {
	if len(m.undoLog) == 0 {
		logger.DebugTagf("history", "Nothing to undo.")
		return Empty
	}

	action := m.undoLog[len(m.undoLog)-1]
	m.undoLog = m.undoLog[:len(m.undoLog)-1]
	m.redoLog = append(m.redoLog, action)

	found := m.apply(action, false)
	logger.DebugTagf("history", "Undid %v (target found: %v). Undo: %d, Redo: %d",
		action, found, len(m.undoLog), len(m.redoLog))
	m.notify(event.HistoryUndo, action, found)
	return Applied
}

// Redo moves the newest redo action back to the undo log and reapplies it.
func (m *Manager) Redo() Outcome {
	if len(m.redoLog) == 0 {
		logger.DebugTagf("history", "Nothing to redo.")
		return Empty
	}

	action := m.redoLog[len(m.redoLog)-1]
	m.redoLog = m.redoLog[:len(m.redoLog)-1]
	m.undoLog = append(m.undoLog, action)

	found := m.apply(action, true)
	logger.DebugTagf("history", "Redid %v (target found: %v). Undo: %d, Redo: %d",
		action, found, len(m.undoLog), len(m.redoLog))
	m.notify(event.HistoryRedo, action, found)
	return Applied
}

// apply performs the forward (redo) or inverse (undo) effect of action and
// reports whether the target object was found.
func (m *Manager) apply(action Action, forward bool) bool {
	h, err := m.registry.Resolve(action.ID)
	if err != nil {
		if !errors.Is(err, registry.ErrNotFound) {
			logger.Warnf("History: resolving %d: %v", action.ID, err)
		}
		logger.DebugTagf("history", "Skipping %v: object gone", action)
		return false
	}

	switch action.Type {
	case CreateAction:
		if forward {
			m.canvas.Reattach(h)
		} else {
			m.canvas.Detach(h)
		}
	case PropertyChangeAction:
		value := action.Before
		if forward {
			value = action.After
		}
		if err := m.canvas.SetProperty(h, action.Property, value); err != nil {
			// The object exists but no longer accepts the value; treat as a skip.
			logger.Warnf("History: applying %v: %v", action, err)
			return false
		}
	}

	m.canvas.RequestRender()
	return true
}

// discardRedo empties the redo log, reporting each dropped creation.
func (m *Manager) discardRedo() {
	for _, action := range m.redoLog {
		if action.Type != CreateAction {
			continue
		}
		logger.DebugTagf("history", "Discarding undone creation of #%d", action.ID)
		if m.onDiscard != nil {
			m.onDiscard(action.ID)
		}
	}
	m.redoLog = nil
}

func (m *Manager) notify(op event.HistoryOp, action Action, target bool) {
	if m.events == nil {
		return
	}
	m.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Op:          op,
		Description: action.Description(),
		Target:      target,
		UndoCount:   len(m.undoLog),
		RedoCount:   len(m.redoLog),
	})
}

// Clear drops both logs.
func (m *Manager) Clear() {
	m.undoLog = nil
	m.redoLog = nil
	logger.DebugTagf("history", "Cleared.")
	if m.events != nil {
		m.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{Op: event.HistoryClear})
	}
}

// CanUndo returns true if there are actions that can be undone.
func (m *Manager) CanUndo() bool { return len(m.undoLog) > 0 }

// CanRedo returns true if there are actions that can be redone.
func (m *Manager) CanRedo() bool { return len(m.redoLog) > 0 }

// UndoCount returns the size of the undo log.
func (m *Manager) UndoCount() int { return len(m.undoLog) }

// RedoCount returns the size of the redo log.
func (m *Manager) RedoCount() int { return len(m.redoLog) }

// UndoLog returns a copy of the undo log, most recent last.
func (m *Manager) UndoLog() []Action {
	return append([]Action(nil), m.undoLog...)
}

// RedoLog returns a copy of the redo log, most recent last.
func (m *Manager) RedoLog() []Action {
	return append([]Action(nil), m.redoLog...)
}

// PeekUndo returns the action Undo would revert next.
func (m *Manager) PeekUndo() (Action, bool) {
	if len(m.undoLog) == 0 {
		return Action{}, false
	}
	return m.undoLog[len(m.undoLog)-1], true
}

// PeekRedo returns the action Redo would reapply next.
func (m *Manager) PeekRedo() (Action, bool) {
	if len(m.redoLog) == 0 {
		return Action{}, false
	}
	return m.redoLog[len(m.redoLog)-1], true
}
