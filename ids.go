package tui

import "strconv"

// IDGenerator hands out sequence numbers for generated element ids. Share one
// generator across every component that must produce unique ids. The zero
// value is ready to use and starts at 0.
//
// An IDGenerator is not safe for concurrent use.
type IDGenerator struct {
	next int
}

// NewIDGenerator returns a generator whose first id uses start.
func NewIDGenerator(start int) *IDGenerator {
	return &IDGenerator{next: start}
}

// Next returns prefix followed by the next sequence number.
func (g *IDGenerator) Next(prefix string) string {
	n := g.next
	g.next++
	return prefix + strconv.Itoa(n)
}

// Reset restarts the sequence at 0.
func (g *IDGenerator) Reset() {
	g.next = 0
}
