package linebuf

import "fmt"

const (
	// ellipsisMargin is the space reserved so a truncated line can still
	// carry the ellipsis marker plus the terminator slot.
	ellipsisMargin = 4

	// ellipsisLen is the number of filler characters in the marker.
	ellipsisLen = 3

	filler = '.'
)

// Buffer composes a single output line in a fixed-size byte region.
//
// A Buffer of capacity C holds at most C-1 characters; the last slot is
// reserved for the line terminator of whatever log transport the finished
// line is handed to. Appends that do not fit are truncated with a "..."
// marker, after which the buffer is full and further appends are no-ops.
// Buffer never allocates after New and is not safe for concurrent use.
type Buffer struct {
	buf  []byte
	n    int
	full bool
}

// New returns an empty Buffer with the given capacity. Capacities below 1
// are raised to 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Appendf renders format with args at the cursor.
//
// If the rendered text fits in the remaining space the cursor advances past
// it and later appends continue from there. If it does not fit, the tail of
// the written region is overwritten with the ellipsis marker and the buffer
// becomes full. If the remaining space cannot even hold the marker, it is
// filled entirely with filler characters. Rendering nothing never changes
// the buffer.
func (b *Buffer) Appendf(format string, args ...any) {
	if b.full {
		return
	}
	avail := len(b.buf) - b.n
	if avail <= 0 {
		b.full = true
		return
	}

	s := format
	if len(args) > 0 {
		s = fmt.Sprintf(format, args...)
	}
	if len(s) == 0 {
		return
	}

	if avail > ellipsisMargin {
		if len(s) <= avail-1 {
			b.n += copy(b.buf[b.n:], s)
			return
		}

		// Truncated. Keep what fits ahead of the margin, then mark it.
		keep := avail - ellipsisMargin - 1
		b.n += copy(b.buf[b.n:], s[:keep])
		for i := 0; i < ellipsisLen; i++ {
			b.buf[b.n] = filler
			b.n++
		}
		b.full = true
		return
	}

	// Not even room for the marker: fill everything but the terminator slot.
	for avail > 1 {
		b.buf[b.n] = filler
		b.n++
		avail--
	}
	b.full = true
}

// String returns the composed line.
func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Len returns the current cursor position.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the buffer capacity passed to New.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Full reports whether the buffer has been exhausted. Once full, every
// Appendf is a no-op until Reset.
func (b *Buffer) Full() bool {
	return b.full
}

// Reset rewinds the cursor so the buffer can compose a new line.
func (b *Buffer) Reset() {
	b.n = 0
	b.full = false
}
