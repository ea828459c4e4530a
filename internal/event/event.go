// internal/event/event.go
package event

import (
	"github.com/bethropolis/overlay/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Canvas events
	TypeObjectAdded      // A label was added to the canvas
	TypePropertyChanged  // A label property was set by a gesture
	TypeSelectionChanged // The active label changed

	// History events
	TypeHistoryChanged // Undo/redo logs changed (record, undo, redo, clear)

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:          "Unknown",
	TypeObjectAdded:      "ObjectAdded",
	TypePropertyChanged:  "PropertyChanged",
	TypeSelectionChanged: "SelectionChanged",
	TypeHistoryChanged:   "HistoryChanged",
	TypeKeyPressed:       "KeyPressed",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(?)"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ObjectAddedData describes a freshly created label.
type ObjectAddedData struct {
	ID     types.ObjectID
	Handle types.Handle
}

// PropertyChangedData describes a gesture-driven property change.
type PropertyChangedData struct {
	ID       types.ObjectID
	Property types.Property
	Before   types.Value
	After    types.Value
}

// SelectionChangedData carries the newly selected label (0 for none).
type SelectionChangedData struct {
	ID types.ObjectID
}

// HistoryOp names what changed the history.
type HistoryOp int

const (
	HistoryRecord HistoryOp = iota
	HistoryUndo
	HistoryRedo
	HistoryClear
)

func (op HistoryOp) String() string {
	switch op {
	case HistoryRecord:
		return "record"
	case HistoryUndo:
		return "undo"
	case HistoryRedo:
		return "redo"
	case HistoryClear:
		return "clear"
	}
	return "unknown"
}

// HistoryChangedData reports the log sizes after a history operation.
// Target is false when the undo/redo step found no live object.
type HistoryChangedData struct {
	Op          HistoryOp
	Description string
	Target      bool
	UndoCount   int
	RedoCount   int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData is sent just before the application exits.
type AppQuitData struct{}

// AppReadyData is sent once the application is wired.
type AppReadyData struct{}
