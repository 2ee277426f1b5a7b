// Package tui implements the live watch screen for idnls.
//
// The screen runs discovery passes on an interval through the same provider
// the plain listing uses and displays the identical inventory lines, with a
// spinner while a pass is in flight. Key bindings: r rescans immediately,
// q quits.
package tui
