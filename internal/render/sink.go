package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Sink consumes one finished line at a time. Implementations append the
// line terminator themselves and must not buffer across calls, so a line is
// visible before Line returns.
type Sink interface {
	Line(text string)
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))

type writerSink struct {
	w     io.Writer
	style *lipgloss.Style
}

// NewWriterSink returns a Sink writing each line plus a newline to w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// NewErrorSink returns a Sink for diagnostics on f. Lines are rendered in
// red when f is a terminal.
func NewErrorSink(f *os.File) Sink {
	s := &writerSink{w: f}
	if term.IsTerminal(int(f.Fd())) {
		s.style = &errorStyle
	}
	return s
}

func (s *writerSink) Line(text string) {
	if s.style != nil {
		text = s.style.Render(text)
	}
	fmt.Fprintln(s.w, text)
}
