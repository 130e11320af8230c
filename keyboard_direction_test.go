package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// directionRecorder defines every go* method, records which ran and reports
// them handled.
func directionRecorder(got *[]string) *Layer {
	l := NewLayer("Recorder")
	for _, m := range []string{MethodGoUp, MethodGoDown, MethodGoLeft, MethodGoRight, MethodGoStart, MethodGoEnd} {
		l.Method(m, func(h *Host, next Next, args ...any) any {
			*got = append(*got, m)
			return true
		})
	}
	return l
}

func TestKeyboardDirection_Keydown(t *testing.T) {
	type tc struct {
		axis        Axis
		event       KeyEvent
		wantMethod  string
		wantHandled bool
	}

	tests := map[string]tc{
		"home":                {event: KeyEvent{Key: KeyHome}, wantMethod: MethodGoStart, wantHandled: true},
		"end":                 {event: KeyEvent{Key: KeyEnd}, wantMethod: MethodGoEnd, wantHandled: true},
		"left":                {event: KeyEvent{Key: KeyLeft}, wantMethod: MethodGoLeft, wantHandled: true},
		"right":               {event: KeyEvent{Key: KeyRight}, wantMethod: MethodGoRight, wantHandled: true},
		"up":                  {event: KeyEvent{Key: KeyUp}, wantMethod: MethodGoUp, wantHandled: true},
		"down":                {event: KeyEvent{Key: KeyDown}, wantMethod: MethodGoDown, wantHandled: true},
		"alt+up is start":     {event: KeyEvent{Key: KeyUp, Mod: ModAlt}, wantMethod: MethodGoStart, wantHandled: true},
		"alt+down is end":     {event: KeyEvent{Key: KeyDown, Mod: ModAlt}, wantMethod: MethodGoEnd, wantHandled: true},
		"alt+left ignored":    {event: KeyEvent{Key: KeyLeft, Mod: ModAlt}},
		"meta+right ignored":  {event: KeyEvent{Key: KeyRight, Mod: ModMeta}},
		"vertical drops left": {axis: AxisVertical, event: KeyEvent{Key: KeyLeft}},
		"vertical keeps down": {axis: AxisVertical, event: KeyEvent{Key: KeyDown}, wantMethod: MethodGoDown, wantHandled: true},
		"horizontal drops up": {axis: AxisHorizontal, event: KeyEvent{Key: KeyUp}},
		"horizontal keeps right": {
			axis: AxisHorizontal, event: KeyEvent{Key: KeyRight}, wantMethod: MethodGoRight, wantHandled: true,
		},
		"horizontal keeps home": {axis: AxisHorizontal, event: KeyEvent{Key: KeyHome}, wantMethod: MethodGoStart, wantHandled: true},
		"rune ignored":          {event: KeyEvent{Key: KeyRune, Rune: 'j'}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got []string
			h := Compose(nil, directionRecorder(&got), KeyboardDirection()).New(nil)
			h.SetNavigationAxis(tt.axis)

			handled := h.Keydown(tt.event)
			assert.Equal(t, tt.wantHandled, handled)
			if tt.wantMethod == "" {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, []string{tt.wantMethod}, got)
			}
		})
	}
}

func TestKeyboardDirection_UnhandledFallsThrough(t *testing.T) {
	var lower []KeyEvent
	base := NewLayer("base").Method(MethodKeydown, func(h *Host, next Next, args ...any) any {
		lower = append(lower, args[0].(KeyEvent))
		return true
	})
	h := Compose(base, KeyboardDirection()).New(nil)

	// goDown is defined only as a pass-through, so nothing handles it.
	assert.True(t, h.Keydown(KeyEvent{Key: KeyDown}))
	assert.True(t, h.Keydown(KeyEvent{Key: KeyRune, Rune: 'x'}))
	assert.Len(t, lower, 2)
}

func TestKeyboardDirection_AxisAccessor(t *testing.T) {
	h := Compose(nil, KeyboardDirection()).New(nil)
	assert.Equal(t, AxisBoth, h.NavigationAxis())

	h.MustSet(PropNavigationAxis, "vertical")
	assert.Equal(t, AxisVertical, h.NavigationAxis())

	h.MustSet(PropNavigationAxis, "sideways")
	assert.Equal(t, AxisVertical, h.NavigationAxis())
}

func TestParseAxis(t *testing.T) {
	type tc struct {
		in      string
		want    Axis
		wantErr bool
	}

	tests := map[string]tc{
		"empty":      {in: "", want: AxisBoth},
		"both":       {in: "both", want: AxisBoth},
		"horizontal": {in: "horizontal", want: AxisHorizontal},
		"vertical":   {in: "vertical", want: AxisVertical},
		"unknown":    {in: "diagonal", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Axis {
	t.Helper()
	a, err := ParseAxis(s)
	if err != nil {
		t.Fatalf("ParseAxis(%q) error = %v", s, err)
	}
	return a
}

func TestDirectionKeyMap(t *testing.T) {
	var got []string
	h := Compose(nil, directionRecorder(&got), KeyboardDirection()).New(nil)
	km := DirectionKeyMap(h)

	assert.True(t, km.Dispatch(KeyEvent{Key: KeyEnd}))
	assert.False(t, km.Dispatch(KeyEvent{Key: KeyEnter}))
	assert.Equal(t, []string{MethodGoEnd}, got)
}
