package tui

import "sync/atomic"

// elementSerial orders elements by creation. The collective uses it to pick a
// default outermost element that does not depend on merge order.
var elementSerial atomic.Uint64

// Element is a node in the widget tree. It carries the attributes and classes
// behavior layers annotate, its children (the content a list exposes as
// items), and the width gestures are measured against.
type Element struct {
	// Tree structure (single source of truth)
	tag      string
	children []*Element
	parent   *Element

	// Annotations
	attrs   []attribute // insertion ordered
	classes []string

	// Content
	text  string
	width int

	// Event listeners keyed by event name
	listeners map[string][]*listener

	// Non-owning associations
	collective *Collective
	host       *Host

	serial uint64
}

type attribute struct {
	name  string
	value string
}

// New creates a new Element with the given options.
// By default, an Element is a "div" with no attributes or children.
func New(opts ...Option) *Element {
	e := &Element{
		tag:    "div",
		serial: elementSerial.Add(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Host returns the composed instance bound to this element, or nil.
func (e *Element) Host() *Host {
	return e.host
}

// Collective returns the collective this element belongs to, or nil if it has
// never joined one.
func (e *Element) Collective() *Collective {
	if e.collective == nil {
		return nil
	}
	e.collective = e.collective.canonical()
	return e.collective
}

// Assimilate merges other (and everything it is grouped with) into this
// element's collective, creating collectives for either side as needed.
// Returns true if membership changed.
func (e *Element) Assimilate(other *Element) bool {
	return CollectiveOf(e).Assimilate(other)
}

// String returns a short description for diagnostics.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if id := e.ID(); id != "" {
		return e.tag + "#" + id
	}
	return e.tag
}
