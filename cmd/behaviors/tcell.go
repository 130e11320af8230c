package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
	"github.com/grindlemire/go-tui-behaviors/pkg/hostinput"
)

func runTcell(d demo) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	return loopTcell(s, d)
}

// loopTcell draws d and feeds it events until a quit key arrives or the
// screen is finalized.
func loopTcell(s tcell.Screen, d demo) error {
	var mouse hostinput.MouseTracker
	for {
		drawTcell(s, d.View()+"\n"+helpLine)

		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			mouse.Reset()
			s.Sync()
		case *tcell.EventKey:
			ke := hostinput.KeyFromTcell(ev)
			if isQuit(ke) {
				return nil
			}
			handled := d.Keydown(ke)
			debug.Log("tcell: key %s handled=%v", ev.Name(), handled)
		case *tcell.EventMouse:
			if pe, ok := mouse.TcellMouse(ev); ok {
				d.Pointer(pe)
			}
		}
	}
}

// drawTcell paints view from the origin. Styling sequences are dropped; the
// screen draws text only.
func drawTcell(s tcell.Screen, view string) {
	s.Clear()
	for y, line := range strings.Split(ansi.Strip(view), "\n") {
		x := 0
		for _, r := range line {
			s.SetContent(x, y, r, nil, tcell.StyleDefault)
			x += max(1, ansi.StringWidth(string(r)))
		}
	}
	s.Show()
}
