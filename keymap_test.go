package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPattern_Matches(t *testing.T) {
	type tc struct {
		pattern KeyPattern
		ke      KeyEvent
		want    bool
	}

	tests := map[string]tc{
		"key": {
			pattern: KeyPattern{Key: KeyEnter},
			ke:      KeyEvent{Key: KeyEnter},
			want:    true,
		},
		"other key": {
			pattern: KeyPattern{Key: KeyEnter},
			ke:      KeyEvent{Key: KeyTab},
		},
		"rune": {
			pattern: KeyPattern{Rune: 'j'},
			ke:      KeyEvent{Key: KeyRune, Rune: 'j'},
			want:    true,
		},
		"rune needs KeyRune": {
			pattern: KeyPattern{Rune: ' '},
			ke:      KeyEvent{Key: KeySpace, Rune: ' '},
		},
		"any rune": {
			pattern: KeyPattern{AnyRune: true},
			ke:      KeyEvent{Key: KeyRune, Rune: 'z'},
			want:    true,
		},
		"exact mods": {
			pattern: KeyPattern{Key: KeyUp, Mod: ModAlt},
			ke:      KeyEvent{Key: KeyUp, Mod: ModAlt},
			want:    true,
		},
		"extra mods rejected": {
			pattern: KeyPattern{Key: KeyUp, Mod: ModAlt},
			ke:      KeyEvent{Key: KeyUp, Mod: ModAlt | ModShift},
		},
		"no mods required": {
			pattern: KeyPattern{Key: KeyUp, RequireNoMods: true},
			ke:      KeyEvent{Key: KeyUp, Mod: ModCtrl},
		},
		"mods ignored by default": {
			pattern: KeyPattern{Key: KeyUp},
			ke:      KeyEvent{Key: KeyUp, Mod: ModCtrl},
			want:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.ke))
		})
	}
}

func TestKeyMap_Dispatch(t *testing.T) {
	type tc struct {
		km          func(calls *[]string) KeyMap
		ke          KeyEvent
		wantHandled bool
		wantCalls   []string
	}

	record := func(calls *[]string, name string, consume bool) func(KeyEvent) bool {
		return func(KeyEvent) bool {
			*calls = append(*calls, name)
			return consume
		}
	}

	tests := map[string]tc{
		"broadcast runs every match": {
			km: func(calls *[]string) KeyMap {
				return KeyMap{
					OnKey(KeyEnter, record(calls, "a", true)),
					OnKey(KeyEnter, record(calls, "b", true)),
				}
			},
			ke:          KeyEvent{Key: KeyEnter},
			wantHandled: true,
			wantCalls:   []string{"a", "b"},
		},
		"stop ends dispatch when consumed": {
			km: func(calls *[]string) KeyMap {
				return KeyMap{
					OnKeyStop(KeyEnter, record(calls, "a", true)),
					OnKey(KeyEnter, record(calls, "b", true)),
				}
			},
			ke:          KeyEvent{Key: KeyEnter},
			wantHandled: true,
			wantCalls:   []string{"a"},
		},
		"stop that declines lets others run": {
			km: func(calls *[]string) KeyMap {
				return KeyMap{
					OnKeyStop(KeyEnter, record(calls, "a", false)),
					OnKey(KeyEnter, record(calls, "b", true)),
				}
			},
			ke:          KeyEvent{Key: KeyEnter},
			wantHandled: true,
			wantCalls:   []string{"a", "b"},
		},
		"no match": {
			km: func(calls *[]string) KeyMap {
				return KeyMap{OnRuneStop('x', record(calls, "a", true))}
			},
			ke: KeyEvent{Key: KeyRune, Rune: 'y'},
		},
		"nil handler skipped": {
			km: func(calls *[]string) KeyMap {
				return KeyMap{{Pattern: KeyPattern{Key: KeyTab}}, OnKey(KeyTab, record(calls, "b", false))}
			},
			ke:        KeyEvent{Key: KeyTab},
			wantCalls: []string{"b"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls []string
			handled := tt.km(&calls).Dispatch(tt.ke)
			assert.Equal(t, tt.wantHandled, handled)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
