// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Esc, arrows, Ctrl+letter)
type RuneKeymap map[rune]Action         // For plain rune bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyTab] = ActionSelectNext
	p.keymap[tcell.KeyBacktab] = ActionSelectPrev
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlV] = ActionPaste

	// Terminals report Ctrl+letter with the Ctrl modifier set.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlC] = ActionQuit
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings ---
	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['a'] = ActionAddText
	p.runeKeymap['p'] = ActionPaste
	p.runeKeymap['y'] = ActionCopy // Ctrl+C is taken by quit
	p.runeKeymap['c'] = ActionCopy
	p.runeKeymap['u'] = ActionUndo
	p.runeKeymap['r'] = ActionRedo
	p.runeKeymap['b'] = ActionToggleBold
	p.runeKeymap['i'] = ActionToggleItalic
	p.runeKeymap['_'] = ActionToggleUnderline
	p.runeKeymap['+'] = ActionFontSizeUp
	p.runeKeymap['='] = ActionFontSizeUp
	p.runeKeymap['-'] = ActionFontSizeDown
	p.runeKeymap['f'] = ActionNextFont
	p.runeKeymap['F'] = ActionPrevFont
	p.runeKeymap['t'] = ActionNextTheme
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// The key name already implies Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Simple Key mappings. Shift is allowed for Backtab and arrows.
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Rune mappings. Some terminals flag upper-case runes with Shift.
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		return ActionEvent{Action: ActionUnknown, Rune: runeVal}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
