package hostinput

import (
	tea "github.com/charmbracelet/bubbletea"

	tui "github.com/grindlemire/go-tui-behaviors"
)

type teaKey struct {
	key tui.Key
	mod tui.Modifier
}

var teaKeys = map[tea.KeyType]teaKey{
	tea.KeyEsc:       {key: tui.KeyEscape},
	tea.KeyEnter:     {key: tui.KeyEnter},
	tea.KeyTab:       {key: tui.KeyTab},
	tea.KeyBackspace: {key: tui.KeyBackspace},
	tea.KeyDelete:    {key: tui.KeyDelete},
	tea.KeySpace:     {key: tui.KeySpace},
	tea.KeyUp:        {key: tui.KeyUp},
	tea.KeyDown:      {key: tui.KeyDown},
	tea.KeyLeft:      {key: tui.KeyLeft},
	tea.KeyRight:     {key: tui.KeyRight},
	tea.KeyHome:      {key: tui.KeyHome},
	tea.KeyEnd:       {key: tui.KeyEnd},
	tea.KeyPgUp:      {key: tui.KeyPageUp},
	tea.KeyPgDown:    {key: tui.KeyPageDown},
	tea.KeyCtrlC:     {key: tui.KeyCtrlC},
	tea.KeyShiftUp:   {key: tui.KeyUp, mod: tui.ModShift},
	tea.KeyShiftDown: {key: tui.KeyDown, mod: tui.ModShift},
	tea.KeyCtrlUp:    {key: tui.KeyUp, mod: tui.ModCtrl},
	tea.KeyCtrlDown:  {key: tui.KeyDown, mod: tui.ModCtrl},
	tea.KeyCtrlLeft:  {key: tui.KeyLeft, mod: tui.ModCtrl},
	tea.KeyCtrlRight: {key: tui.KeyRight, mod: tui.ModCtrl},
	tea.KeyCtrlHome:  {key: tui.KeyHome, mod: tui.ModCtrl},
	tea.KeyCtrlEnd:   {key: tui.KeyEnd, mod: tui.ModCtrl},
}

// KeyFromTea converts a bubbletea key message. Keys with no equivalent come
// back as KeyNone.
func KeyFromTea(msg tea.KeyMsg) tui.KeyEvent {
	var mod tui.Modifier
	if msg.Alt {
		mod |= tui.ModAlt
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return tui.KeyEvent{Key: tui.KeyNone, Mod: mod}
		}
		return tui.KeyEvent{Key: tui.KeyRune, Rune: msg.Runes[0], Mod: mod}
	}
	k, ok := teaKeys[msg.Type]
	if !ok {
		return tui.KeyEvent{Key: tui.KeyNone, Mod: mod}
	}
	ke := tui.KeyEvent{Key: k.key, Mod: mod | k.mod}
	if k.key == tui.KeySpace {
		ke.Rune = ' '
	}
	return ke
}

// TeaMouse feeds a bubbletea mouse message through the tracker. Wheel events
// are ignored.
func (t *MouseTracker) TeaMouse(msg tea.MouseMsg) (tui.PointerEvent, bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return tui.PointerEvent{}, false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return t.Sample(msg.X, msg.Y, true, msg.Button == tea.MouseButtonLeft)
	case tea.MouseActionMotion:
		if !t.Down() {
			return tui.PointerEvent{}, false
		}
		return t.Sample(msg.X, msg.Y, true, false)
	case tea.MouseActionRelease:
		return t.Sample(msg.X, msg.Y, false, false)
	}
	return tui.PointerEvent{}, false
}
