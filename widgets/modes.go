package widgets

import (
	tui "github.com/grindlemire/go-tui-behaviors"
)

// AttrHidden marks modes that are not shown.
const AttrHidden = "hidden"

// Modes shows exactly one of its child elements at a time. It has no UI for
// changing which mode is shown; callers select through the host or join it
// to a collective with a control that does.
type Modes struct {
	host   *tui.Host
	ids    *tui.IDGenerator
	styles Styles
}

// NewModes creates a Modes over modes and attaches it. The first mode is
// shown.
func NewModes(modes []*tui.Element, opts ...ModesOption) *Modes {
	m := &Modes{
		ids:    &tui.IDGenerator{},
		styles: PlainStyles(),
	}
	el := tui.New(tui.WithTag("modes"), tui.WithChildren(modes...))
	for _, opt := range opts {
		opt(m, el)
	}

	typ := tui.Compose(nil,
		tui.ContentItems(),
		tui.ItemsSelection(),
		tui.TargetInCollective(),
		tui.SelectionAriaActive(m.ids),
		modesLayer(),
	)
	m.host = typ.New(el)
	m.host.Attach()
	return m
}

func modesLayer() *tui.Layer {
	return tui.NewLayer("Modes").
		Method(tui.MethodApplySelection, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			item, _ := args[0].(*tui.Element)
			if item == nil {
				return nil
			}
			if selected, _ := args[1].(bool); selected {
				item.RemoveAttribute(AttrHidden)
			} else {
				item.SetAttribute(AttrHidden, "")
			}
			return nil
		}).
		Method(tui.MethodAttached, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			h.SetSelectionRequired(true)
			return nil
		})
}

// Host returns the composed host behind the modes.
func (m *Modes) Host() *tui.Host {
	return m.host
}

// Element returns the Modes element.
func (m *Modes) Element() *tui.Element {
	return m.host.Element()
}

// Visible returns the mode being shown, or nil when there are none.
func (m *Modes) Visible() *tui.Element {
	return m.host.SelectedItem()
}

// Show shows the mode with the given id. Returns false if no mode has it.
func (m *Modes) Show(id string) bool {
	for _, mode := range m.host.Items() {
		if mode.ID() == id {
			m.host.SetSelectedItem(mode)
			return true
		}
	}
	return false
}

// View renders the visible mode.
func (m *Modes) View() string {
	mode := m.Visible()
	if mode == nil {
		return ""
	}
	return m.styles.Page.Render(mode.Text())
}
