package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newList composes the standard list stack over a host with the given item
// ids and attaches it.
func newList(t *testing.T, ids ...string) (*Host, []*Element) {
	t.Helper()
	typ := Compose(nil, ContentItems(), ItemsSelection(), DirectionSelection(), KeyboardDirection())
	items := make([]*Element, len(ids))
	for i, id := range ids {
		items[i] = New(WithID(id))
	}
	h := typ.New(New(WithChildren(items...)))
	h.Attach()
	return h, items
}

func TestItemsSelection_Wraparound(t *testing.T) {
	type tc struct {
		wraps     bool
		start     int
		do        func(h *Host) bool
		wantIndex int
		wantMoved bool
	}

	tests := map[string]tc{
		"next at end without wrap": {
			start: 2, do: (*Host).SelectNext, wantIndex: 2,
		},
		"next at end with wrap": {
			wraps: true, start: 2, do: (*Host).SelectNext, wantIndex: 0, wantMoved: true,
		},
		"previous at start without wrap": {
			start: 0, do: (*Host).SelectPrevious, wantIndex: 0,
		},
		"previous at start with wrap": {
			wraps: true, start: 0, do: (*Host).SelectPrevious, wantIndex: 2, wantMoved: true,
		},
		"next in the middle": {
			start: 1, do: (*Host).SelectNext, wantIndex: 2, wantMoved: true,
		},
		"next with no selection picks first": {
			start: -1, do: (*Host).SelectNext, wantIndex: 0, wantMoved: true,
		},
		"previous with no selection picks last": {
			start: -1, do: (*Host).SelectPrevious, wantIndex: 2, wantMoved: true,
		},
		"first": {
			start: 2, do: (*Host).SelectFirst, wantIndex: 0, wantMoved: true,
		},
		"last": {
			start: 0, do: (*Host).SelectLast, wantIndex: 2, wantMoved: true,
		},
		"last when already last": {
			start: 2, do: (*Host).SelectLast, wantIndex: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newList(t, "a", "b", "c")
			h.SetSelectionWraps(tt.wraps)
			h.SetSelectedIndex(tt.start)

			assert.Equal(t, tt.wantMoved, tt.do(h))
			assert.Equal(t, tt.wantIndex, h.SelectedIndex())
		})
	}
}

func TestItemsSelection_EmptyItems(t *testing.T) {
	h, _ := newList(t)
	h.SetSelectionWraps(true)
	h.SetSelectionRequired(true)

	assert.False(t, h.SelectNext())
	assert.False(t, h.SelectPrevious())
	assert.False(t, h.SelectFirst())
	assert.False(t, h.SelectLast())
	assert.Equal(t, -1, h.SelectedIndex())
	assert.Nil(t, h.SelectedItem())
}

func TestItemsSelection_IdentityPreserved(t *testing.T) {
	h, items := newList(t, "a", "b", "c")
	a, b := items[0], items[1]

	h.SetSelectedIndex(1)
	require.Same(t, b, h.SelectedItem())

	h.Element().RemoveChild(a)
	assert.Same(t, b, h.SelectedItem())
	assert.Equal(t, 0, h.SelectedIndex())

	h.Element().InsertChild(0, New(WithID("z")))
	h.Element().InsertChild(0, New(WithID("y")))
	assert.Same(t, b, h.SelectedItem())
	assert.Equal(t, 2, h.SelectedIndex())
}

func TestItemsSelection_RemovalFallback(t *testing.T) {
	type tc struct {
		required bool
		selected int
		remove   []int
		wantID   string
	}

	tests := map[string]tc{
		"not required clears": {
			selected: 1, remove: []int{1}, wantID: "",
		},
		"required falls to former index": {
			required: true, selected: 1, remove: []int{1}, wantID: "c",
		},
		"required falls to last when index is gone": {
			required: true, selected: 2, remove: []int{2}, wantID: "b",
		},
		"required with everything removed": {
			required: true, selected: 0, remove: []int{0, 1, 2}, wantID: "",
		},
		"unselected removal leaves selection": {
			required: true, selected: 2, remove: []int{0}, wantID: "c",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, items := newList(t, "a", "b", "c")
			h.SetSelectedIndex(tt.selected)
			h.SetSelectionRequired(tt.required)

			for _, i := range tt.remove {
				h.Element().RemoveChild(items[i])
			}

			got := h.SelectedItem()
			if tt.wantID == "" {
				assert.Nil(t, got)
				assert.Equal(t, -1, h.SelectedIndex())
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID())
		})
	}
}

func TestItemsSelection_RequiredSelectsFirst(t *testing.T) {
	h, items := newList(t, "a", "b")
	assert.Equal(t, -1, h.SelectedIndex())

	h.SetSelectionRequired(true)
	assert.Same(t, items[0], h.SelectedItem())

	h.SetSelectedItem(nil)
	assert.Same(t, items[0], h.SelectedItem())
}

func TestItemsSelection_OutOfRangeClears(t *testing.T) {
	h, _ := newList(t, "a", "b")
	h.SetSelectedIndex(1)
	h.SetSelectedIndex(7)
	assert.Equal(t, -1, h.SelectedIndex())

	h.SetSelectedIndex(0)
	h.SetSelectedItem(New())
	assert.Equal(t, -1, h.SelectedIndex())
}

func TestItemsSelection_HookOrder(t *testing.T) {
	var calls []string
	record := NewLayer("Record").
		Method(MethodApplySelection, func(h *Host, next Next, args ...any) any {
			next(args...)
			el := args[0].(*Element)
			if args[1].(bool) {
				calls = append(calls, "select "+el.ID())
			} else {
				calls = append(calls, "deselect "+el.ID())
			}
			return nil
		}).
		Method(MethodSelectedItemChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			calls = append(calls, "changed")
			return nil
		})
	typ := Compose(nil, ContentItems(), ItemsSelection(), record)
	h := typ.New(New(WithChildren(New(WithID("a")), New(WithID("b")))))
	h.Attach()
	h.Element().AddEventListener(EventSelectedItemChanged, func() {
		calls = append(calls, "event")
	})

	calls = nil
	h.SetSelectedIndex(0)
	h.SetSelectedIndex(1)
	h.SetSelectedIndex(1)

	assert.Equal(t, []string{
		"select a", "changed", "event",
		"deselect a", "select b", "changed", "event",
	}, calls)
}

func TestItemsSelection_ItemAddedAppliesState(t *testing.T) {
	var applied []bool
	record := NewLayer("Record").Method(MethodApplySelection, func(h *Host, next Next, args ...any) any {
		applied = append(applied, args[1].(bool))
		return nil
	})
	typ := Compose(nil, ContentItems(), ItemsSelection(), record)
	h := typ.New(New(WithChildren(New(), New())))
	h.Attach()

	assert.Equal(t, []bool{false, false}, applied)

	applied = nil
	h.Element().AddChild(New())
	assert.Equal(t, []bool{false}, applied)
}

func TestItemsSelection_CanSelect(t *testing.T) {
	type tc struct {
		ids          []string
		wraps        bool
		selected     int
		wantNext     bool
		wantPrevious bool
	}

	tests := map[string]tc{
		"empty":            {selected: -1},
		"no selection":     {ids: []string{"a", "b"}, selected: -1, wantNext: true, wantPrevious: true},
		"at start":         {ids: []string{"a", "b"}, selected: 0, wantNext: true},
		"at end":           {ids: []string{"a", "b"}, selected: 1, wantPrevious: true},
		"at end with wrap": {ids: []string{"a", "b"}, wraps: true, selected: 1, wantNext: true, wantPrevious: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newList(t, tt.ids...)
			h.SetSelectionWraps(tt.wraps)
			h.SetSelectedIndex(tt.selected)

			assert.Equal(t, tt.wantNext, h.MustGet(PropCanSelectNext))
			assert.Equal(t, tt.wantPrevious, h.MustGet(PropCanSelectPrevious))
		})
	}
}

func TestContentItems_SkipsAuxiliaryTags(t *testing.T) {
	a, b := New(), New(WithTag("span"))
	h := Compose(nil, ContentItems()).New(New(WithChildren(
		New(WithTag("style")), a, New(WithTag("template")), b, New(WithTag("script")),
	)))

	assert.Equal(t, []*Element{a, b}, h.Items())
}

func TestContentItems_ItemAddedOnce(t *testing.T) {
	var added []*Element
	record := NewLayer("Record").Method(MethodItemAdded, func(h *Host, next Next, args ...any) any {
		added = append(added, args[0].(*Element))
		return nil
	})
	a, b := New(), New()
	h := Compose(nil, ContentItems(), record).New(New(WithChildren(a)))
	h.Attach()
	h.Element().AddChild(b)
	h.Element().RemoveChild(a)
	h.Element().AddChild(a)

	assert.Equal(t, []*Element{a, b}, added)
}

func TestDirectionSelection(t *testing.T) {
	type tc struct {
		key       KeyEvent
		start     int
		wantIndex int
	}

	tests := map[string]tc{
		"down is next":     {key: KeyEvent{Key: KeyDown}, start: 0, wantIndex: 1},
		"right is next":    {key: KeyEvent{Key: KeyRight}, start: 0, wantIndex: 1},
		"up is previous":   {key: KeyEvent{Key: KeyUp}, start: 2, wantIndex: 1},
		"left is previous": {key: KeyEvent{Key: KeyLeft}, start: 2, wantIndex: 1},
		"home is first":    {key: KeyEvent{Key: KeyHome}, start: 2, wantIndex: 0},
		"end is last":      {key: KeyEvent{Key: KeyEnd}, start: 0, wantIndex: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := newList(t, "a", "b", "c")
			h.SetSelectedIndex(tt.start)

			assert.True(t, h.Keydown(tt.key))
			assert.Equal(t, tt.wantIndex, h.SelectedIndex())
		})
	}
}

func TestDirectionSelection_UnmovedIsUnhandled(t *testing.T) {
	h, _ := newList(t, "a", "b")
	h.SetSelectedIndex(1)
	assert.False(t, h.Keydown(KeyEvent{Key: KeyDown}))
	assert.False(t, h.GoEnd())
}
