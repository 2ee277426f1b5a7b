// Package linebuf provides a fixed-capacity line composer.
//
// Log lines for discovered servers are built incrementally from many small
// formatted pieces. A Buffer caps the finished line at a fixed size: text
// that overflows is cut and marked with "..." instead of failing the whole
// render, and once a line has overflowed all further appends become no-ops
// so callers can keep formatting unconditionally.
package linebuf
