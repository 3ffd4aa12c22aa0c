package chatmd

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

const ansiReset = "\x1b[0m"

// TerminalSink renders commands as ANSI escape sequences on an io.Writer.
// It is safe for concurrent use; each batch is written under one lock.
type TerminalSink struct {
	mu             sync.Mutex
	w              *bufio.Writer
	styles         Styles
	styled         bool
	lastWasNewline bool
}

// NewTerminalSink creates a sink writing to w with theme. A nil theme uses
// DefaultTheme.
func NewTerminalSink(w io.Writer, theme Theme) *TerminalSink {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &TerminalSink{
		w:              bufio.NewWriterSize(w, 4096),
		styles:         theme.Styles(),
		lastWasNewline: true,
	}
}

// WriteCommands writes a batch of commands and flushes it to the writer.
func (s *TerminalSink) WriteCommands(cmds ...Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cmds {
		switch c.Kind {
		case CmdText:
			if c.Text == "" {
				continue
			}
			s.w.WriteString(c.Text)
			s.lastWasNewline = strings.HasSuffix(c.Text, "\n")
		case CmdNewline, CmdWrap:
			s.w.WriteByte('\n')
			s.lastWasNewline = true
		case CmdReset:
			s.reset()
		case CmdBold:
			s.apply(s.styles.Strong)
		case CmdItalic:
			s.apply(s.styles.Emphasis)
		case CmdForeground:
			s.apply(s.styles.Foreground(c.Color))
		}
	}
	return s.w.Flush()
}

// Flush resets the style at the end of a turn and terminates the last line.
func (s *TerminalSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	if !s.lastWasNewline {
		s.w.WriteByte('\n')
		s.lastWasNewline = true
	}
	return s.w.Flush()
}

func (s *TerminalSink) apply(st Style) {
	if st.Prefix == "" {
		return
	}
	s.w.WriteString(st.Prefix)
	s.styled = true
}

func (s *TerminalSink) reset() {
	if !s.styled {
		return
	}
	s.w.WriteString(ansiReset)
	s.styled = false
}
