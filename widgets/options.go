package widgets

import tui "github.com/grindlemire/go-tui-behaviors"

// TabStripOption configures a TabStrip.
type TabStripOption func(*TabStrip, *tui.Element)

// WithTabPosition places the tab row. The default is TabsTop.
func WithTabPosition(p TabPosition) TabStripOption {
	return func(ts *TabStrip, _ *tui.Element) {
		ts.position = p
	}
}

// WithTabStyles sets the rendering styles.
func WithTabStyles(s Styles) TabStripOption {
	return func(ts *TabStrip, _ *tui.Element) {
		ts.styles = s
	}
}

// WithPanelIDs shares an id generator for pages without ids.
func WithPanelIDs(ids *tui.IDGenerator) TabStripOption {
	return func(ts *TabStrip, _ *tui.Element) {
		if ids != nil {
			ts.ids = ids
		}
	}
}

// WithTabStripID sets the tab strip element's id. Generated page ids are
// derived from it.
func WithTabStripID(id string) TabStripOption {
	return func(_ *TabStrip, el *tui.Element) {
		el.SetID(id)
	}
}

// WithTabWidth sets the width, in cells, the strip is laid out in. Swipes are
// measured against it.
func WithTabWidth(cells int) TabStripOption {
	return func(_ *TabStrip, el *tui.Element) {
		el.SetWidth(cells)
	}
}

// WithCollapsible lets Enter and Space collapse and expand the page area.
func WithCollapsible() TabStripOption {
	return func(ts *TabStrip, _ *tui.Element) {
		ts.collapsible = true
	}
}

// WithTabWrap makes navigation wrap from the last tab to the first.
func WithTabWrap(wraps bool) TabStripOption {
	return func(ts *TabStrip, _ *tui.Element) {
		ts.wraps = wraps
	}
}

// ModesOption configures Modes.
type ModesOption func(*Modes, *tui.Element)

// WithModesID sets the Modes element's id.
func WithModesID(id string) ModesOption {
	return func(_ *Modes, el *tui.Element) {
		el.SetID(id)
	}
}

// WithModeIDs shares an id generator for modes without ids.
func WithModeIDs(ids *tui.IDGenerator) ModesOption {
	return func(m *Modes, _ *tui.Element) {
		if ids != nil {
			m.ids = ids
		}
	}
}

// WithModesStyle sets the style the visible mode is rendered with.
func WithModesStyle(s Styles) ModesOption {
	return func(m *Modes, _ *tui.Element) {
		m.styles = s
	}
}
