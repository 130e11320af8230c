package hostinput

import (
	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tui-behaviors"
)

var tcellKeys = map[tcell.Key]tui.Key{
	tcell.KeyEscape:     tui.KeyEscape,
	tcell.KeyEnter:      tui.KeyEnter,
	tcell.KeyTab:        tui.KeyTab,
	tcell.KeyBackspace:  tui.KeyBackspace,
	tcell.KeyBackspace2: tui.KeyBackspace,
	tcell.KeyDelete:     tui.KeyDelete,
	tcell.KeyUp:         tui.KeyUp,
	tcell.KeyDown:       tui.KeyDown,
	tcell.KeyLeft:       tui.KeyLeft,
	tcell.KeyRight:      tui.KeyRight,
	tcell.KeyHome:       tui.KeyHome,
	tcell.KeyEnd:        tui.KeyEnd,
	tcell.KeyPgUp:       tui.KeyPageUp,
	tcell.KeyPgDn:       tui.KeyPageDown,
	tcell.KeyCtrlC:      tui.KeyCtrlC,
}

// KeyFromTcell converts a tcell key event. Keys with no equivalent come back
// as KeyNone.
func KeyFromTcell(ev *tcell.EventKey) tui.KeyEvent {
	mod := modFromTcell(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return tui.KeyEvent{Key: tui.KeySpace, Rune: ' ', Mod: mod}
		}
		return tui.KeyEvent{Key: tui.KeyRune, Rune: ev.Rune(), Mod: mod}
	}
	k, ok := tcellKeys[ev.Key()]
	if !ok {
		return tui.KeyEvent{Key: tui.KeyNone, Mod: mod}
	}
	if k == tui.KeyCtrlC {
		// tcell reports Ctrl on control keys; the key already says so.
		mod &^= tui.ModCtrl
	}
	return tui.KeyEvent{Key: k, Mod: mod}
}

func modFromTcell(m tcell.ModMask) tui.Modifier {
	var mod tui.Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= tui.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= tui.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mod |= tui.ModShift
	}
	if m&tcell.ModMeta != 0 {
		mod |= tui.ModMeta
	}
	return mod
}

// TcellMouse feeds a tcell mouse event through the tracker. Wheel events are
// ignored.
func (t *MouseTracker) TcellMouse(ev *tcell.EventMouse) (tui.PointerEvent, bool) {
	buttons := ev.Buttons() &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	if buttons == tcell.ButtonNone && ev.Buttons() != tcell.ButtonNone {
		return tui.PointerEvent{}, false
	}
	x, y := ev.Position()
	return t.Sample(x, y, buttons != tcell.ButtonNone, buttons&tcell.ButtonPrimary != 0)
}
