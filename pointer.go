package tui

// PointerPhase is the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerDown starts an interaction (button or contact down).
	PointerDown PointerPhase = iota
	// PointerMove reports motion while down.
	PointerMove
	// PointerUp ends an interaction.
	PointerUp
)

// PointerKind identifies the device behind a pointer event.
type PointerKind int

const (
	// PointerMouse is a mouse. Terminals report every pointer as a mouse.
	PointerMouse PointerKind = iota
	// PointerPen is a stylus.
	PointerPen
	// PointerTouch is a touch contact.
	PointerTouch
)

// PointerEvent is a normalized pointer sample in element coordinates.
type PointerEvent struct {
	Phase PointerPhase
	Kind  PointerKind
	// Primary is true for the primary button or the first touch contact.
	Primary bool
	X, Y    float64
}

// TouchPhase is the stage of a legacy touch interaction.
type TouchPhase int

const (
	// TouchStart reports a new contact.
	TouchStart TouchPhase = iota
	// TouchMove reports contact motion.
	TouchMove
	// TouchEnd reports a lifted contact.
	TouchEnd
)

// TouchEvent is a normalized legacy touch sample. Touches counts contacts
// still down after the event; X and Y are the first changed contact.
type TouchEvent struct {
	Phase   TouchPhase
	Touches int
	X, Y    float64
}
