package widgets

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tui "github.com/grindlemire/go-tui-behaviors"
	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

// TabPosition places the tab row relative to the pages.
type TabPosition string

const (
	TabsTop    TabPosition = "top"
	TabsBottom TabPosition = "bottom"
	TabsLeft   TabPosition = "left"
	TabsRight  TabPosition = "right"
)

// ParseTabPosition parses "top", "bottom", "left" or "right".
func ParseTabPosition(s string) (TabPosition, error) {
	switch p := TabPosition(strings.ToLower(strings.TrimSpace(s))); p {
	case TabsTop, TabsBottom, TabsLeft, TabsRight:
		return p, nil
	case "":
		return TabsTop, nil
	default:
		return TabsTop, fmt.Errorf("unknown tab position %q", s)
	}
}

// Axis returns the navigation axis that matches the tab row's orientation.
func (p TabPosition) Axis() tui.Axis {
	if p == TabsLeft || p == TabsRight {
		return tui.AxisVertical
	}
	return tui.AxisHorizontal
}

// ClassSelected marks the selected tab.
const ClassSelected = "selected"

// TabStrip shows one tab per page and the selected page. Pages are the host
// element's children; each page's aria-label becomes its tab's caption.
//
// Keys navigate along the tab row's axis, horizontal drags over the page
// switch tabs, and clicks on the tab row select the tab under the pointer.
type TabStrip struct {
	host     *tui.Host
	tabs     *tui.Element
	ids      *tui.IDGenerator
	position TabPosition
	styles   Styles

	collapsible bool
	wraps       bool
}

// NewTabStrip creates a tab strip over pages and attaches it.
func NewTabStrip(pages []*tui.Element, opts ...TabStripOption) *TabStrip {
	ts := &TabStrip{
		tabs:     tui.New(tui.WithID("tabs")),
		ids:      &tui.IDGenerator{},
		position: TabsTop,
		styles:   DefaultStyles(),
	}
	el := tui.New(tui.WithTag("tab-strip"))
	for _, opt := range opts {
		opt(ts, el)
	}

	layers := []*tui.Layer{
		tui.ContentItems(),
		tui.ItemsSelection(),
		tui.DirectionSelection(),
		tui.KeyboardDirection(),
		tui.SwipeDirection(),
		tui.TargetInCollective(),
	}
	if ts.collapsible {
		layers = append(layers, tui.OpenClose())
	}
	layers = append(layers, ts.layer())

	el.AddChild(pages...)
	ts.host = tui.Compose(nil, layers...).New(el)
	ts.host.SetSelectionWraps(ts.wraps)
	ts.host.Attach()
	ts.host.SetSelectionRequired(true)
	return ts
}

// layer adds the tab strip's own behavior on top of the selection stack.
func (ts *TabStrip) layer() *tui.Layer {
	return tui.NewLayer("TabStrip").
		Method(tui.MethodCreated, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			el := h.Element()
			if !el.HasAttribute(tui.AttrRole) {
				el.SetAttribute(tui.AttrRole, "tablist")
			}
			el.SetAttribute("tab-position", string(ts.position))
			h.SetNavigationAxis(ts.position.Axis())
			return nil
		}).
		Method(tui.MethodItemsChanged, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			ts.renderTabs(h)
			h.MustCall(tui.MethodSelectedItemChanged)
			return nil
		}).
		Method(tui.MethodApplySelection, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			item, _ := args[0].(*tui.Element)
			selected, _ := args[1].(bool)
			index := slices.Index(h.Items(), item)
			if tab := ts.tab(index); tab != nil {
				applySelectionToTab(tab, selected)
			}
			return nil
		}).
		Method(tui.MethodSelectedItemChanged, func(h *tui.Host, next tui.Next, args ...any) any {
			next(args...)
			selected := h.SelectedIndex()
			for i, tab := range ts.tabs.Children() {
				applySelectionToTab(tab, i == selected)
			}
			return nil
		})
}

// renderTabs makes the tab row match the pages, one tab per page, pointing
// each tab and page at each other.
func (ts *TabStrip) renderTabs(h *tui.Host) {
	pages := h.Items()
	baseID := "_panel"
	if id := h.Element().ID(); id != "" {
		baseID = "_" + id + "Panel"
	}

	for ts.tabs.ChildCount() > len(pages) {
		children := ts.tabs.Children()
		ts.tabs.RemoveChild(children[len(children)-1])
	}
	for ts.tabs.ChildCount() < len(pages) {
		ts.tabs.AddChild(tui.New(
			tui.WithTag("button"),
			tui.WithRole("tab"),
			tui.WithClass("tab"),
		))
	}

	tabs := ts.tabs.Children()
	for i, page := range pages {
		if !page.HasAttribute(tui.AttrRole) {
			page.SetAttribute(tui.AttrRole, "tabpanel")
		}
		if page.ID() == "" {
			page.SetID(ts.ids.Next(baseID))
		}
		tab := tabs[i]
		tab.SetID(page.ID() + "_tab")
		tab.SetText(page.AttributeValue(tui.AttrAriaLabel))
		tab.SetAttribute(tui.AttrAriaControls, page.ID())
		page.SetAttribute(tui.AttrAriaLabelledBy, tab.ID())
	}
	debug.Log("TabStrip.renderTabs: %d tabs", len(pages))
}

func applySelectionToTab(tab *tui.Element, selected bool) {
	tui.ToggleClass(tab, ClassSelected, selected)
	tab.SetAttribute(tui.AttrAriaSelected, fmt.Sprint(selected))
}

func (ts *TabStrip) tab(index int) *tui.Element {
	tabs := ts.tabs.Children()
	if index < 0 || index >= len(tabs) {
		return nil
	}
	return tabs[index]
}

// Host returns the composed host behind the tab strip.
func (ts *TabStrip) Host() *tui.Host {
	return ts.host
}

// Element returns the tab strip's element.
func (ts *TabStrip) Element() *tui.Element {
	return ts.host.Element()
}

// Tabs returns the generated tab elements, one per page.
func (ts *TabStrip) Tabs() []*tui.Element {
	return ts.tabs.Children()
}

// Pages returns the pages.
func (ts *TabStrip) Pages() []*tui.Element {
	return ts.host.Items()
}

// Position returns the tab row placement.
func (ts *TabStrip) Position() TabPosition {
	return ts.position
}

// SetPosition moves the tab row and updates the navigation axis to match.
func (ts *TabStrip) SetPosition(p TabPosition) {
	ts.position = p
	ts.Element().SetAttribute("tab-position", string(p))
	ts.host.SetNavigationAxis(p.Axis())
}

// AddPage appends a page and its tab.
func (ts *TabStrip) AddPage(page *tui.Element) {
	ts.Element().AddChild(page)
}

// RemovePage removes a page and its tab. The selection stays on the same page
// if it survives, and otherwise falls to a neighbor.
func (ts *TabStrip) RemovePage(page *tui.Element) bool {
	return ts.Element().RemoveChild(page)
}

// Keydown offers a key to the tab strip. Returns true if it was consumed.
func (ts *TabStrip) Keydown(ke tui.KeyEvent) bool {
	if ts.collapsible && (ke.Key == tui.KeyEnter || ke.Key == tui.KeySpace) {
		ts.host.Toggle()
		return true
	}
	return ts.host.Keydown(ke)
}

// Pointer offers a pointer sample in widget coordinates. A press on the tab
// row selects the tab under it; drags over the page swipe.
func (ts *TabStrip) Pointer(pe tui.PointerEvent) bool {
	if pe.Phase == tui.PointerDown {
		if i := ts.TabAt(int(pe.X), int(pe.Y)); i >= 0 {
			ts.host.SetSelectedIndex(i)
			return true
		}
	}
	return ts.host.Pointer(pe)
}

// TabAt returns the index of the tab at cell (x, y) of the current View
// layout, or -1.
func (ts *TabStrip) TabAt(x, y int) int {
	for i, r := range ts.tabRects() {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return i
		}
	}
	return -1
}

type rect struct{ x, y, w, h int }

func (ts *TabStrip) tabRects() []rect {
	rendered := ts.renderedTabs()
	rects := make([]rect, len(rendered))
	vertical := ts.position.Axis() == tui.AxisVertical

	x, y := 0, 0
	row := lipgloss.Height(ts.tabRow(rendered))
	col := lipgloss.Width(ts.tabRow(rendered))
	switch ts.position {
	case TabsBottom:
		y = lipgloss.Height(ts.pageView())
	case TabsRight:
		x = lipgloss.Width(ts.pageView())
	}
	for i, s := range rendered {
		w, h := lipgloss.Width(s), lipgloss.Height(s)
		if vertical {
			rects[i] = rect{x: x, y: y, w: col, h: h}
			y += h
		} else {
			rects[i] = rect{x: x, y: y, w: w, h: row}
			x += w
		}
	}
	return rects
}

func (ts *TabStrip) renderedTabs() []string {
	tabs := ts.tabs.Children()
	out := make([]string, len(tabs))
	for i, tab := range tabs {
		style := ts.styles.Tab
		if tab.HasClass(ClassSelected) {
			style = ts.styles.SelectedTab
		}
		caption := tab.Text()
		if caption == "" {
			caption = fmt.Sprintf("Tab %d", i+1)
		}
		out[i] = style.Render(caption)
	}
	return out
}

func (ts *TabStrip) tabRow(rendered []string) string {
	if ts.position.Axis() == tui.AxisVertical {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func (ts *TabStrip) pageView() string {
	if ts.collapsible && ts.host.Closed() {
		return ts.styles.Closed.Render("(collapsed)")
	}
	page := ts.host.SelectedItem()
	if page == nil {
		return ts.styles.Page.Render("")
	}
	style := ts.styles.Page
	if w := ts.Element().Width(); w > 0 {
		style = style.Width(w - style.GetHorizontalBorderSize())
	}
	return style.Render(page.Text())
}

// View renders the tab row and the selected page.
func (ts *TabStrip) View() string {
	row := ts.tabRow(ts.renderedTabs())
	page := ts.pageView()
	switch ts.position {
	case TabsBottom:
		return lipgloss.JoinVertical(lipgloss.Left, page, row)
	case TabsLeft:
		return lipgloss.JoinHorizontal(lipgloss.Top, row, page)
	case TabsRight:
		return lipgloss.JoinHorizontal(lipgloss.Top, page, row)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, row, page)
	}
}
