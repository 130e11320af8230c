// Package tui provides composable behaviors for list-like terminal widgets.
//
// A widget is an Element bound to a Host. The host's type is built by
// Compose from an ordered list of Layers; each layer overrides methods and
// accessors and chooses whether to call the next-lower implementation:
//
//	list := tui.Compose(nil,
//		tui.ContentItems(),
//		tui.ItemsSelection(),
//		tui.DirectionSelection(),
//		tui.KeyboardDirection(),
//		tui.SwipeDirection(),
//		tui.TargetInCollective(),
//		tui.SelectionAriaActive(ids),
//	)
//	h := list.New(tui.New(tui.WithID("fruit")))
//	h.Element().AddChild(tui.New(tui.WithText("apple")), tui.New(tui.WithText("pear")))
//	h.Attach()
//	h.Keydown(tui.KeyEvent{Key: tui.KeyDown})
//
// Input arrives as KeyEvent, PointerEvent and TouchEvent values and is turned
// into the abstract direction vocabulary (goUp, goDown, goLeft, goRight,
// goStart, goEnd), which selection and other layers consume without knowing
// the source. Elements that act as one control share a Collective, whose
// outermost element carries the accessibility annotations.
//
// Everything runs synchronously on the caller's goroutine. Hosts are not safe
// for concurrent use.
package tui
