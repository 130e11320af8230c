// Package hostinput converts terminal backend events into the behavior
// toolkit's normalized input.
//
// Keys map one to one. Terminal mice report button state rather than
// press/move/release phases, so MouseTracker derives the phases from the
// sequence of samples; every terminal pointer is a mouse, and only the left
// button counts as primary.
package hostinput
