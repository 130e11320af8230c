package tui

import "fmt"

// Axis restricts which arrow keys keyboard navigation responds to.
type Axis int

const (
	// AxisBoth accepts all arrow keys (default).
	AxisBoth Axis = iota
	// AxisHorizontal accepts only Left and Right.
	AxisHorizontal
	// AxisVertical accepts only Up and Down.
	AxisVertical
)

// String returns the axis name as used in configuration.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "both"
	}
}

// ParseAxis parses "both", "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "both":
		return AxisBoth, nil
	case "horizontal":
		return AxisHorizontal, nil
	case "vertical":
		return AxisVertical, nil
	default:
		return AxisBoth, fmt.Errorf("unknown navigation axis %q", s)
	}
}

type keyboardState struct {
	axis Axis
}

var keyboardKey = NewStateKey[keyboardState]("KeyboardDirection")

// KeyboardDirection returns a layer that maps navigation keys to the abstract
// direction vocabulary:
//
//	End        goEnd
//	Home       goStart
//	Left/Right goLeft/goRight (horizontal axis, ignored with Alt or Meta)
//	Up/Down    goUp/goDown, or goStart/goEnd with Alt (vertical axis)
//
// keydown returns whether the key was handled; unhandled keys are offered to
// the next keydown in the chain.
func KeyboardDirection() *Layer {
	return NewLayer("KeyboardDirection").
		Method(MethodKeydown, func(h *Host, next Next, args ...any) any {
			ke, _ := argAt(args, 0).(KeyEvent)
			if handled := keyDirection(h, ke); handled {
				return true
			}
			v, _ := next(args...)
			return asBool(v)
		}).
		Accessor(PropNavigationAxis,
			func(h *Host, next NextGet) any {
				return LoadState(h, keyboardKey).axis
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				switch a := value.(type) {
				case Axis:
					LoadState(h, keyboardKey).axis = a
				case string:
					if parsed, err := ParseAxis(a); err == nil {
						LoadState(h, keyboardKey).axis = parsed
					}
				}
			},
		).
		Method(MethodGoUp, passThrough).
		Method(MethodGoDown, passThrough).
		Method(MethodGoLeft, passThrough).
		Method(MethodGoRight, passThrough).
		Method(MethodGoStart, passThrough).
		Method(MethodGoEnd, passThrough)
}

func keyDirection(h *Host, ke KeyEvent) bool {
	axis := LoadState(h, keyboardKey).axis
	if v, ok := h.get(PropNavigationAxis); ok {
		axis, _ = v.(Axis)
	}
	horizontal := axis == AxisBoth || axis == AxisHorizontal
	vertical := axis == AxisBoth || axis == AxisVertical

	var d Direction
	switch ke.Key {
	case KeyEnd:
		d = DirectionEnd
	case KeyHome:
		d = DirectionStart
	case KeyLeft:
		// With Alt or Meta the user is probably asking the host for
		// back/forward navigation.
		if horizontal && !ke.Mod.Has(ModAlt) && !ke.Mod.Has(ModMeta) {
			d = DirectionLeft
		}
	case KeyRight:
		if horizontal && !ke.Mod.Has(ModAlt) && !ke.Mod.Has(ModMeta) {
			d = DirectionRight
		}
	case KeyUp:
		if vertical {
			d = DirectionUp
			if ke.Mod.Has(ModAlt) {
				d = DirectionStart
			}
		}
	case KeyDown:
		if vertical {
			d = DirectionDown
			if ke.Mod.Has(ModAlt) {
				d = DirectionEnd
			}
		}
	}
	if d == DirectionNone {
		return false
	}
	v, _ := h.call(d.Method())
	return asBool(v)
}

// passThrough is the default for a vocabulary member a layer needs to exist:
// it defers to the next layer and reports unhandled when there is none.
func passThrough(h *Host, next Next, args ...any) any {
	v, _ := next(args...)
	return asBool(v)
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
