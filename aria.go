package tui

import "github.com/grindlemire/go-tui-behaviors/internal/debug"

// Accessibility attribute names.
const (
	AttrRole           = "role"
	AttrAriaSelected   = "aria-selected"
	AttrAriaActive     = "aria-activedescendant"
	AttrAriaExpanded   = "aria-expanded"
	AttrAriaLabel      = "aria-label"
	AttrAriaControls   = "aria-controls"
	AttrAriaLabelledBy = "aria-labelledby"
)

// Roles assigned when an element has none.
const (
	DefaultCollectiveRole = "listbox"
	DefaultItemRole       = "option"
)

type ariaState struct {
	itemBaseID string
}

var ariaKey = NewStateKey[ariaState]("SelectionAriaActive")

// SelectionAriaActive returns a layer that reflects the selection into
// accessibility attributes. Items get role="option", a generated id when they
// have none, and aria-selected. The collective's outermost element gets a role
// and an aria-activedescendant pointing at the selected item's id; inner
// members of the collective are stripped of both.
//
// Generated ids are "_<hostID>Option<n>", or "_option<n>" when the host has no
// id, with n drawn from ids. A nil ids uses a generator private to the layer.
//
// Nothing here faults on missing annotations: an item without an id is simply
// not pointed at, and a host outside any collective annotates itself.
func SelectionAriaActive(ids *IDGenerator) *Layer {
	if ids == nil {
		ids = &IDGenerator{}
	}
	return NewLayer("SelectionAriaActive").
		Method(MethodCreated, func(h *Host, next Next, args ...any) any {
			next(args...)
			st := LoadState(h, ariaKey)
			if id := h.Element().ID(); id != "" {
				st.itemBaseID = "_" + id + "Option"
			} else {
				st.itemBaseID = "_option"
			}
			return nil
		}).
		Method(MethodItemAdded, func(h *Host, next Next, args ...any) any {
			// The id must exist before the lower layers apply the selection.
			if item := asElement(argAt(args, 0)); item != nil {
				item.SetAttribute(AttrRole, DefaultItemRole)
				if item.ID() == "" {
					item.SetID(ids.Next(LoadState(h, ariaKey).itemBaseID))
				}
			}
			next(args...)
			return nil
		}).
		Method(MethodApplySelection, func(h *Host, next Next, args ...any) any {
			next(args...)
			item := asElement(argAt(args, 0))
			if item == nil {
				return nil
			}
			selected := asBool(argAt(args, 1))
			item.SetAttribute(AttrAriaSelected, boolString(selected))
			if id := item.ID(); selected && id != "" {
				outermostOf(h).SetAttribute(AttrAriaActive, id)
			}
			return nil
		}).
		Accessor(PropSelectedItem,
			func(h *Host, next NextGet) any {
				v, _ := next()
				return v
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				// A required selection may already have been restored by the
				// lower setter, so check what is selected now.
				current, _ := h.get(PropSelectedItem)
				if asElement(current) == nil {
					outermostOf(h).RemoveAttribute(AttrAriaActive)
				}
			},
		).
		Method(MethodCollectiveChanged, func(h *Host, next Next, args ...any) any {
			next(args...)
			reflectCollective(h)
			return nil
		})
}

// outermostOf returns the element that carries list-level annotations for h.
func outermostOf(h *Host) *Element {
	if c := h.Element().Collective(); c != nil {
		if outer := c.OutermostElement(); outer != nil {
			return outer
		}
	}
	return h.Element()
}

func reflectCollective(h *Host) {
	c := h.Element().Collective()
	if c == nil {
		return
	}
	outer := c.OutermostElement()
	if outer == nil {
		return
	}
	members := c.Elements()

	if outer.AttributeValue(AttrRole) == "" {
		role := DefaultCollectiveRole
		if r := firstAttribute(members, AttrRole); r != "" {
			role = r
		}
		outer.SetAttribute(AttrRole, role)
	}
	if outer.AttributeValue(AttrAriaActive) == "" {
		if d := firstAttribute(members, AttrAriaActive); d != "" {
			outer.SetAttribute(AttrAriaActive, d)
		}
	}
	for _, el := range members {
		if el != outer {
			el.RemoveAttribute(AttrAriaActive)
			el.RemoveAttribute(AttrRole)
		}
	}
	debug.Log("SelectionAriaActive.collectiveChanged: outermost=%s role=%s",
		outer, outer.AttributeValue(AttrRole))
}

func firstAttribute(els []*Element, name string) string {
	for _, el := range els {
		if v, ok := el.Attribute(name); ok && v != "" {
			return v
		}
	}
	return ""
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
