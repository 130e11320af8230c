package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tui "github.com/grindlemire/go-tui-behaviors"
	"github.com/grindlemire/go-tui-behaviors/widgets"
)

// demo is a widget a backend can drive.
type demo interface {
	Keydown(ke tui.KeyEvent) bool
	Pointer(pe tui.PointerEvent) bool
	View() string
}

func isQuit(ke tui.KeyEvent) bool {
	switch ke.Key {
	case tui.KeyCtrlC, tui.KeyEscape:
		return true
	case tui.KeyRune:
		return ke.Rune == 'q'
	}
	return false
}

// markedStyles tells the selected tab apart by border shape so the selection
// survives backends that draw without color.
func markedStyles() widgets.Styles {
	s := widgets.PlainStyles()
	s.Tab = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	s.SelectedTab = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	s.Page = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return s
}

func newTabsDemo(cfg Config) (*widgets.TabStrip, error) {
	pos, err := widgets.ParseTabPosition(cfg.Tabs.Position)
	if err != nil {
		return nil, err
	}

	pages := make([]*tui.Element, 0, len(cfg.Tabs.Pages))
	for i, name := range cfg.Tabs.Pages {
		pages = append(pages, tui.New(
			tui.WithLabel(name),
			tui.WithText(fmt.Sprintf("%s\n\nPage %d of %d.", name, i+1, len(cfg.Tabs.Pages))),
		))
	}

	opts := []widgets.TabStripOption{
		widgets.WithTabStripID("demo"),
		widgets.WithTabPosition(pos),
		widgets.WithTabWrap(cfg.Tabs.Wrap),
		widgets.WithTabWidth(cfg.Tabs.Width),
	}
	if cfg.Tabs.Collapsible {
		opts = append(opts, widgets.WithCollapsible())
	}
	if cfg.Backend == BackendTcell {
		opts = append(opts, widgets.WithTabStyles(markedStyles()))
	}
	return widgets.NewTabStrip(pages, opts...), nil
}

// modesDemo puts a key-driven switcher in front of a Modes, which has no UI
// of its own.
type modesDemo struct {
	modes *widgets.Modes
}

func newModesDemo(cfg Config) *modesDemo {
	els := make([]*tui.Element, 0, len(cfg.Modes.Names))
	for _, name := range cfg.Modes.Names {
		els = append(els, tui.New(
			tui.WithID(name),
			tui.WithText(fmt.Sprintf("Showing the %s view.", name)),
		))
	}
	m := widgets.NewModes(els, widgets.WithModesID("modes"))
	m.Host().SetSelectionWraps(cfg.Modes.Wrap)
	return &modesDemo{modes: m}
}

func (d *modesDemo) Keydown(ke tui.KeyEvent) bool {
	h := d.modes.Host()
	switch ke.Key {
	case tui.KeyRight, tui.KeyDown, tui.KeyTab:
		return h.SelectNext()
	case tui.KeyLeft, tui.KeyUp:
		return h.SelectPrevious()
	case tui.KeyRune:
		if ke.Rune >= '1' && ke.Rune <= '9' {
			i := int(ke.Rune - '1')
			if i >= len(h.Items()) {
				return false
			}
			h.SetSelectedIndex(i)
			return true
		}
	}
	return false
}

func (d *modesDemo) Pointer(tui.PointerEvent) bool {
	return false
}

func (d *modesDemo) View() string {
	visible := d.modes.Visible()
	names := make([]string, 0, len(d.modes.Host().Items()))
	for i, mode := range d.modes.Host().Items() {
		label := fmt.Sprintf("%d:%s", i+1, mode.ID())
		if mode == visible {
			label = "[" + label + "]"
		}
		names = append(names, label)
	}
	return strings.Join(names, " ") + "\n\n" + d.modes.View()
}

const helpLine = "arrows/swipe navigate · q quits"
