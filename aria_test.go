package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ariaList(ids *IDGenerator) *Composed {
	return Compose(nil,
		ContentItems(),
		ItemsSelection(),
		TargetInCollective(),
		SelectionAriaActive(ids),
	)
}

func TestSelectionAriaActive_ActiveDescendantOnOutermost(t *testing.T) {
	outer := New(WithID("combo"))
	h := ariaList(&IDGenerator{}).New(New(WithChildren(New(), New())))
	outer.Assimilate(h.Element())
	h.Attach()

	item := h.Items()[0]
	require.Equal(t, "_option0", item.ID())
	require.Same(t, outer, h.Element().Collective().OutermostElement())

	h.SetSelectedIndex(0)
	assert.Equal(t, "_option0", outer.AttributeValue(AttrAriaActive))
	assert.False(t, h.Element().HasAttribute(AttrAriaActive))
	assert.Equal(t, "true", item.AttributeValue(AttrAriaSelected))

	h.SetSelectedIndex(-1)
	assert.False(t, outer.HasAttribute(AttrAriaActive))
	assert.Equal(t, "false", item.AttributeValue(AttrAriaSelected))
}

func TestSelectionAriaActive_NoCollectiveAnnotatesHost(t *testing.T) {
	typ := Compose(nil, ContentItems(), ItemsSelection(), SelectionAriaActive(&IDGenerator{}))
	h := typ.New(New(WithChildren(New(WithID("first")))))
	h.Attach()

	h.SetSelectedIndex(0)
	assert.Equal(t, "first", h.Element().AttributeValue(AttrAriaActive))
	h.SetSelectedItem(nil)
	assert.False(t, h.Element().HasAttribute(AttrAriaActive))
}

func TestSelectionAriaActive_RequiredReselectionKeepsPointer(t *testing.T) {
	h := ariaList(&IDGenerator{}).New(New(WithChildren(New(), New())))
	h.Attach()
	h.SetSelectionRequired(true)

	h.SetSelectedItem(nil)
	require.NotNil(t, h.SelectedItem())
	assert.Equal(t, h.SelectedItem().ID(), h.Element().AttributeValue(AttrAriaActive))
}

func TestSelectionAriaActive_ItemIDs(t *testing.T) {
	type tc struct {
		hostID  string
		start   int
		itemIDs []string
		wantIDs []string
	}

	tests := map[string]tc{
		"default prefix": {
			itemIDs: []string{"", ""},
			wantIDs: []string{"_option0", "_option1"},
		},
		"prefix from host id": {
			hostID:  "fruit",
			itemIDs: []string{"", ""},
			wantIDs: []string{"_fruitOption0", "_fruitOption1"},
		},
		"existing ids are kept": {
			itemIDs: []string{"keep", ""},
			wantIDs: []string{"keep", "_option0"},
		},
		"seeded generator": {
			start:   5,
			itemIDs: []string{""},
			wantIDs: []string{"_option5"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items := make([]*Element, len(tt.itemIDs))
			for i, id := range tt.itemIDs {
				items[i] = New()
				if id != "" {
					items[i].SetID(id)
				}
			}
			host := New(WithChildren(items...))
			if tt.hostID != "" {
				host.SetID(tt.hostID)
			}
			h := ariaList(NewIDGenerator(tt.start)).New(host)
			h.Attach()

			for i, item := range items {
				assert.Equal(t, tt.wantIDs[i], item.ID())
				assert.Equal(t, DefaultItemRole, item.AttributeValue(AttrRole))
			}
		})
	}
}

func TestSelectionAriaActive_IDAssignedOnce(t *testing.T) {
	ids := &IDGenerator{}
	h := ariaList(ids).New(nil)
	item := New()

	h.MustCall(MethodItemAdded, item)
	first := item.ID()
	h.MustCall(MethodItemAdded, item)

	assert.Equal(t, "_option0", first)
	assert.Equal(t, first, item.ID())
	assert.Equal(t, "_option1", ids.Next("_option"))
}

func TestSelectionAriaActive_CollectiveChanged(t *testing.T) {
	type tc struct {
		outerRole  string
		innerAttrs map[string]string
		wantRole   string
		wantActive string
	}

	tests := map[string]tc{
		"default role": {
			wantRole: DefaultCollectiveRole,
		},
		"outer role kept": {
			outerRole:  "combobox",
			innerAttrs: map[string]string{AttrRole: "tree"},
			wantRole:   "combobox",
		},
		"active descendant promoted": {
			innerAttrs: map[string]string{AttrAriaActive: "_option3"},
			wantRole:   DefaultCollectiveRole,
			wantActive: "_option3",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			outer := New()
			if tt.outerRole != "" {
				outer.SetAttribute(AttrRole, tt.outerRole)
			}
			h := Compose(nil, TargetInCollective(), SelectionAriaActive(nil)).New(nil)
			inner := h.Element()
			for k, v := range tt.innerAttrs {
				inner.SetAttribute(k, v)
			}

			outer.Assimilate(inner)

			assert.Equal(t, tt.wantRole, outer.AttributeValue(AttrRole))
			assert.Equal(t, tt.wantActive, outer.AttributeValue(AttrAriaActive))
			assert.False(t, inner.HasAttribute(AttrRole))
			assert.False(t, inner.HasAttribute(AttrAriaActive))
		})
	}
}

func TestSelectionAriaActive_RolePromotedFromInner(t *testing.T) {
	outer := New()
	h := Compose(nil, TargetInCollective(), SelectionAriaActive(nil)).New(New(WithRole("tree")))

	outer.Assimilate(h.Element())

	assert.Equal(t, "tree", outer.AttributeValue(AttrRole))
	assert.False(t, h.Element().HasAttribute(AttrRole))
}

func TestSelectionAriaActive_EmptyOuterAttributesReplaced(t *testing.T) {
	outer := New(WithRole(""), WithAttribute(AttrAriaActive, ""))
	h := Compose(nil, TargetInCollective(), SelectionAriaActive(nil)).New(New(WithRole("grid")))
	h.Element().SetAttribute(AttrAriaActive, "_option3")

	outer.Assimilate(h.Element())

	assert.Equal(t, "grid", outer.AttributeValue(AttrRole))
	assert.Equal(t, "_option3", outer.AttributeValue(AttrAriaActive))
	assert.False(t, h.Element().HasAttribute(AttrRole))
	assert.False(t, h.Element().HasAttribute(AttrAriaActive))
}

func TestIDGenerator(t *testing.T) {
	var g IDGenerator
	assert.Equal(t, "x0", g.Next("x"))
	assert.Equal(t, "y1", g.Next("y"))
	g.Reset()
	assert.Equal(t, "x0", g.Next("x"))
}
