package ui

import "github.com/gdamore/tcell/v2"

// Action is something the user can ask the picker to do.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // ActionUp moves the cursor to the item above
	ActionDown              // ActionDown moves the cursor to the item below
	ActionPageUp            // ActionPageUp moves the cursor one page up
	ActionPageDown          // ActionPageDown moves the cursor one page down
	ActionTop               // ActionTop moves the cursor to the first item
	ActionBottom            // ActionBottom moves the cursor to the last item
	ActionToggle            // ActionToggle toggles the selection of the item under the cursor
	ActionSelectAll         // ActionSelectAll selects every item (multi-select only)
	ActionClear             // ActionClear unselects everything
	ActionAccept            // ActionAccept finishes, keeping the selection
	ActionCancel            // ActionCancel finishes, discarding the result
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionPageUp:    "PageUp",
	ActionPageDown:  "PageDown",
	ActionTop:       "Top",
	ActionBottom:    "Bottom",
	ActionToggle:    "Toggle",
	ActionSelectAll: "SelectAll",
	ActionClear:     "Clear",
	ActionAccept:    "Accept",
	ActionCancel:    "Cancel",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "Unknown"
}

// Key identifies a key press. Ch is only meaningful when Code is
// tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Ch   rune
}

// KeyFromEvent extracts the Key from a tcell key event.
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Ch: ev.Rune()}
	}
	return Key{Code: ev.Key()}
}

// Keymap maps keys to actions
type Keymap map[Key]Action

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		{Code: tcell.KeyUp}:            ActionUp,
		{Code: tcell.KeyCtrlP}:         ActionUp,
		{Code: tcell.KeyRune, Ch: 'k'}: ActionUp,
		{Code: tcell.KeyDown}:          ActionDown,
		{Code: tcell.KeyCtrlN}:         ActionDown,
		{Code: tcell.KeyRune, Ch: 'j'}: ActionDown,
		{Code: tcell.KeyPgUp}:          ActionPageUp,
		{Code: tcell.KeyPgDn}:          ActionPageDown,
		{Code: tcell.KeyHome}:          ActionTop,
		{Code: tcell.KeyRune, Ch: 'g'}: ActionTop,
		{Code: tcell.KeyEnd}:           ActionBottom,
		{Code: tcell.KeyRune, Ch: 'G'}: ActionBottom,
		{Code: tcell.KeyRune, Ch: ' '}: ActionToggle,
		{Code: tcell.KeyCtrlSpace}:     ActionToggle,
		{Code: tcell.KeyCtrlA}:         ActionSelectAll,
		{Code: tcell.KeyCtrlU}:         ActionClear,
		{Code: tcell.KeyEnter}:         ActionAccept,
		{Code: tcell.KeyEscape}:        ActionCancel,
		{Code: tcell.KeyCtrlC}:         ActionCancel,
		{Code: tcell.KeyRune, Ch: 'q'}: ActionCancel,
	}
}

// Lookup returns the action bound to k.
func (km Keymap) Lookup(k Key) (Action, bool) {
	a, ok := km[k]
	return a, ok
}
