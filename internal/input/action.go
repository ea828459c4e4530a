// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Labels ---
	ActionAddText
	ActionPaste
	ActionCopy

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Style ---
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline
	ActionFontSizeUp
	ActionFontSizeDown
	ActionNextFont
	ActionPrevFont

	// --- Selection ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSelectNext
	ActionSelectPrev

	// --- View ---
	ActionNextTheme
)

var actionNames = map[Action]string{
	ActionUnknown:         "unknown",
	ActionQuit:            "quit",
	ActionAddText:         "add-text",
	ActionPaste:           "paste",
	ActionCopy:            "copy",
	ActionUndo:            "undo",
	ActionRedo:            "redo",
	ActionToggleBold:      "toggle-bold",
	ActionToggleItalic:    "toggle-italic",
	ActionToggleUnderline: "toggle-underline",
	ActionFontSizeUp:      "font-size-up",
	ActionFontSizeDown:    "font-size-down",
	ActionNextFont:        "next-font",
	ActionPrevFont:        "prev-font",
	ActionMoveUp:          "move-up",
	ActionMoveDown:        "move-down",
	ActionMoveLeft:        "move-left",
	ActionMoveRight:       "move-right",
	ActionSelectNext:      "select-next",
	ActionSelectPrev:      "select-prev",
	ActionNextTheme:       "next-theme",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // the key's rune, if any
}
