package tui

// KeyMap is a list of key bindings. It is a value, not a registration: the
// host collects it and offers key events to it with Dispatch.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	// Handler reports whether it consumed the event.
	Handler func(KeyEvent) bool
	Stop    bool // If true and the handler consumed the event, later bindings do not run
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyUp, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// OnKey creates a broadcast binding for a specific key.
// Other handlers for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent) bool) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
	}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent) bool) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnRuneStop creates a stop-propagation binding for a specific printable character.
func OnRuneStop(r rune, handler func(KeyEvent) bool) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    true,
	}
}

// Matches checks if a key event satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// Dispatch sends ke to every matching binding in order. It stops early after
// a Stop binding consumes the event. Returns true if any handler consumed it.
func (km KeyMap) Dispatch(ke KeyEvent) bool {
	handled := false
	for _, b := range km {
		if b.Handler == nil || !b.Pattern.Matches(ke) {
			continue
		}
		if b.Handler(ke) {
			handled = true
			if b.Stop {
				return true
			}
		}
	}
	return handled
}

// DirectionKeyMap returns stop bindings that offer the navigation keys to h's
// keydown chain. Hosts that route input through key maps use it to place a
// direction-aware component in their dispatch order.
func DirectionKeyMap(h *Host) KeyMap {
	keydown := func(ke KeyEvent) bool {
		return h.Keydown(ke)
	}
	keys := []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd}
	km := make(KeyMap, 0, len(keys))
	for _, k := range keys {
		km = append(km, OnKeyStop(k, keydown))
	}
	return km
}
