package tui

import (
	"math"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

const (
	// FlickThreshold is the last incremental horizontal delta, in input
	// coordinate units, at or beyond which a release commits regardless of
	// the distance traveled.
	FlickThreshold = 20.0

	// CommitFraction is the traveled fraction of the element width at or
	// beyond which a slow release commits.
	CommitFraction = 0.5
)

// SwipeState is the state of a Swipe.
type SwipeState int

const (
	// SwipeIdle means no gesture is in progress.
	SwipeIdle SwipeState = iota
	// SwipeDragging means a single-contact gesture is being tracked.
	SwipeDragging
)

// String returns a human-readable representation of the state.
func (s SwipeState) String() string {
	if s == SwipeDragging {
		return "dragging"
	}
	return "idle"
}

// Swipe is the drag-gesture state machine: idle → dragging → idle. It knows
// nothing about event types; pointer and touch input are normalized by
// HandlePointer and HandleTouch before reaching Start, Move and End.
//
// Moving the contact left produces a positive position and commits
// DirectionRight; moving it right commits DirectionLeft.
type Swipe struct {
	state SwipeState

	startX    float64
	previousX float64
	previousY float64
	deltaX    float64
	deltaY    float64
	position  float64

	// multiTouch is latched when a touch gesture starts with several
	// contacts and cleared once they are all lifted.
	multiTouch bool

	// OnPosition, if set, is called whenever the position changes.
	OnPosition func(position float64)
	// OnTransition, if set, is called with false when a drag starts and true
	// when it ends, so visual transitions can be suppressed while dragging.
	OnTransition func(show bool)
	// OnCommit, if set, is called with the committed direction before the
	// gesture state is reset.
	OnCommit func(d Direction)
}

// State returns the current state.
func (s *Swipe) State() SwipeState {
	return s.state
}

// Position returns the distance traveled since the drag started as a signed
// fraction of the element width.
func (s *Swipe) Position() float64 {
	return s.position
}

// Start begins a drag at (x, y).
func (s *Swipe) Start(x, y float64) {
	s.transition(false)
	s.state = SwipeDragging
	s.startX = x
	s.previousX = x
	s.previousY = y
	s.deltaX = 0
	s.deltaY = 0
}

// Move records a motion sample. It reports true when the sample was mostly
// horizontal, in which case the caller should suppress default scrolling.
func (s *Swipe) Move(x, y, width float64) bool {
	if s.state != SwipeDragging {
		return false
	}
	s.deltaX = x - s.previousX
	s.deltaY = y - s.previousY
	s.previousX = x
	s.previousY = y
	if math.Abs(s.deltaX) > math.Abs(s.deltaY) {
		s.trackTo(x, width)
		return true
	}
	return false
}

// End finishes the drag at (x, y) and returns the committed direction. The
// flick check runs first, on the last incremental delta; only a slow release
// is resolved by the traveled fraction. All gesture fields are reset.
func (s *Swipe) End(x, y, width float64) Direction {
	if s.state != SwipeDragging {
		return DirectionNone
	}
	s.transition(true)

	d := DirectionNone
	switch {
	case s.deltaX >= FlickThreshold:
		d = DirectionLeft
	case s.deltaX <= -FlickThreshold:
		d = DirectionRight
	default:
		s.trackTo(x, width)
		if s.position >= CommitFraction {
			d = DirectionRight
		} else if s.position <= -CommitFraction {
			d = DirectionLeft
		}
	}
	debug.Log("Swipe.End: deltaX=%.1f position=%.3f commit=%s", s.deltaX, s.position, d)
	if d != DirectionNone && s.OnCommit != nil {
		s.OnCommit(d)
	}
	s.reset()
	return d
}

// Reset abandons any gesture in progress without committing.
func (s *Swipe) Reset() {
	if s.state == SwipeDragging {
		s.transition(true)
	}
	s.reset()
	s.multiTouch = false
}

func (s *Swipe) reset() {
	s.state = SwipeIdle
	s.startX = 0
	s.previousX = 0
	s.previousY = 0
	s.deltaX = 0
	s.deltaY = 0
	s.setPosition(0)
}

func (s *Swipe) trackTo(x, width float64) {
	fraction := 0.0
	if width > 0 {
		fraction = (s.startX - x) / width
	}
	s.setPosition(fraction)
}

func (s *Swipe) setPosition(p float64) {
	s.position = p
	if s.OnPosition != nil {
		s.OnPosition(p)
	}
}

func (s *Swipe) transition(show bool) {
	if s.OnTransition != nil {
		s.OnTransition(show)
	}
}

// HandlePointer feeds a pointer sample. Only pen, primary touch and primary
// mouse samples are considered. Returns whether the sample was handled and
// the direction committed, if any.
func (s *Swipe) HandlePointer(pe PointerEvent, width float64) (bool, Direction) {
	if !pe.Primary {
		return false, DirectionNone
	}
	switch pe.Phase {
	case PointerDown:
		s.Start(pe.X, pe.Y)
	case PointerMove:
		return s.Move(pe.X, pe.Y, width), DirectionNone
	case PointerUp:
		return false, s.End(pe.X, pe.Y, width)
	}
	return false, DirectionNone
}

// HandleTouch feeds a legacy touch sample. A gesture that starts with more
// than one contact is ignored until every contact is lifted.
func (s *Swipe) HandleTouch(te TouchEvent, width float64) (bool, Direction) {
	switch te.Phase {
	case TouchStart:
		if s.multiTouch {
			return false, DirectionNone
		}
		if te.Touches == 1 {
			s.Start(te.X, te.Y)
		} else {
			s.multiTouch = true
			if s.state == SwipeDragging {
				s.Reset()
				s.multiTouch = true
			}
		}
	case TouchMove:
		if !s.multiTouch && te.Touches == 1 {
			return s.Move(te.X, te.Y, width), DirectionNone
		}
	case TouchEnd:
		if te.Touches == 0 {
			d := DirectionNone
			if !s.multiTouch {
				d = s.End(te.X, te.Y, width)
			}
			s.multiTouch = false
			return false, d
		}
	}
	return false, DirectionNone
}
