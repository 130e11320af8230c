// Package debug provides optional debug logging for behavior layers.
//
// When the BEHAVIORS_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging goes nowhere so a
// running UI never writes over the terminal it is drawing on.
package debug
