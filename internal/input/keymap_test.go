package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"add", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionAddText},
		{"paste rune", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPaste},
		{"paste ctrl", tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), ActionPaste},
		{"copy yank", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionCopy},
		{"copy rune", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionCopy},
		{"undo ctrl", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionUndo},
		{"undo ctrl no mod", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModNone), ActionUndo},
		{"undo rune", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), ActionUndo},
		{"redo ctrl", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionRedo},
		{"redo rune", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRedo},
		{"bold", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), ActionToggleBold},
		{"italic", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), ActionToggleItalic},
		{"underline", tcell.NewEventKey(tcell.KeyRune, '_', tcell.ModShift), ActionToggleUnderline},
		{"size up", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), ActionFontSizeUp},
		{"size down", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), ActionFontSizeDown},
		{"next font", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), ActionNextFont},
		{"prev font", tcell.NewEventKey(tcell.KeyRune, 'F', tcell.ModShift), ActionPrevFont},
		{"theme", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), ActionNextTheme},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionSelectNext},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), ActionSelectPrev},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionUnknown},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), ActionUnknown},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev).Action)
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "undo", ActionUndo.String())
	assert.Equal(t, "next-theme", ActionNextTheme.String())
	assert.Equal(t, "unknown", Action(999).String())
}
