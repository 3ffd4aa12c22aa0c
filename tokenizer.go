package chatmd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNeedMore reports that the input ends inside a token that cannot be
// confirmed yet. Nothing was consumed; append more input and retry from the
// same offset.
var ErrNeedMore = errors.New("need more input")

// ParseState is the render state carried between tokenizer calls. It belongs
// to a single rendering session.
type ParseState struct {
	InCodeBlock      bool
	Bold             bool
	Italic           bool
	AtLineStart      bool
	PendingLineStart bool
	Column           int
	// WrapWidth is the terminal width; 0 disables forced wrapping.
	WrapWidth int
	// LineColor is the block color of the current line (heading, quote),
	// re-applied after an emphasis reset.
	LineColor Color
}

// NewParseState returns the state for the start of a rendering session.
func NewParseState(width int) ParseState {
	if width < 0 {
		width = 0
	}
	return ParseState{AtLineStart: true, WrapWidth: width}
}

// Cursor is the growing markup buffer and how much of it has been rendered.
// Offset only moves forward and always sits on a rune boundary.
type Cursor struct {
	buf    strings.Builder
	Offset int
}

// Append adds newly reconciled text to the buffer.
func (c *Cursor) Append(s string) {
	c.buf.WriteString(s)
}

// Len returns the buffer length in bytes.
func (c *Cursor) Len() int {
	return c.buf.Len()
}

// Buffer returns everything appended so far.
func (c *Cursor) Buffer() string {
	return c.buf.String()
}

// Consumed returns the rendered prefix of the buffer.
func (c *Cursor) Consumed() string {
	return c.buf.String()[:c.Offset]
}

// Pending returns the part of the buffer that has not been rendered yet.
func (c *Cursor) Pending() string {
	return c.buf.String()[c.Offset:]
}

type matchStatus uint8

const (
	noMatch matchStatus = iota
	matched
	needMore
)

// scanner is the checkpointed view a recognizer works on. Every attempt
// starts from pos 0 with a fresh copy of the state, so a failed recognizer
// leaves nothing behind.
type scanner struct {
	src       string
	pos       int
	eof       bool
	lineStart bool
	st        ParseState
	cmds      []Command
	endsLine  bool
	marker    bool
}

type recognizer func(s *scanner) matchStatus

var normalRecognizers = []recognizer{
	recognizeLiteral,
	recognizeFenceOpen,
	recognizeHeading,
	recognizeBullet,
	recognizeNumbered,
	recognizeRule,
	recognizeCodeSpan,
	recognizeBold,
	recognizeItalic,
	recognizeQuote,
	recognizeLineEnding,
	recognizeFallback,
}

var codeRecognizers = []recognizer{
	recognizeFenceClose,
	recognizeCodeLineEnding,
	recognizeCodeFallback,
}

// Next recognizes one token at the start of src. On success it returns the
// number of bytes consumed and the commands to emit, and updates st. When the
// token cannot be confirmed it returns ErrNeedMore and leaves st untouched.
//
// With eof set no more input will follow, so recognizers that would wait
// give up instead and the single-character fallback always makes progress.
func Next(src string, st *ParseState, eof bool) (int, []Command, error) {
	if src == "" {
		return 0, nil, ErrNeedMore
	}
	set := normalRecognizers
	if st.InCodeBlock {
		set = codeRecognizers
	}
	s := scanner{src: src, eof: eof, lineStart: st.AtLineStart}
	for _, rec := range set {
		s.pos = 0
		s.cmds = s.cmds[:0]
		s.st = *st
		s.endsLine = false
		s.marker = false
		switch rec(&s) {
		case matched:
			s.st.AtLineStart = s.endsLine
			s.st.PendingLineStart = s.marker
			*st = s.st
			return s.pos, s.cmds, nil
		case needMore:
			return 0, nil, ErrNeedMore
		}
	}
	return 0, nil, fmt.Errorf("tokenize: no recognizer matched %q", truncateWithEllipsis(src, 16))
}

// Drain renders as much of the cursor's pending input as can be recognized,
// writing the resulting commands to sink as one batch. It returns nil when
// the input is exhausted or the tokenizer is waiting for more.
func Drain(cur *Cursor, st *ParseState, sink Sink, eof bool) error {
	var batch []Command
	for cur.Offset < cur.Len() {
		n, cmds, err := Next(cur.Pending(), st, eof)
		if errors.Is(err, ErrNeedMore) {
			break
		}
		if err != nil {
			return err
		}
		cur.Offset += n
		batch = append(batch, cmds...)
	}
	if len(batch) == 0 {
		return nil
	}
	if err := sink.WriteCommands(batch...); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
