package chatmd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

const (
	fence            = "```"
	bulletGlyph      = "•"
	quoteGlyph       = "│ "
	ruleGlyph        = "─"
	defaultRuleWidth = 40
)

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// partial reports whether rest is a proper prefix of tok, i.e. tok may still
// arrive with more input.
func (s *scanner) partial(tok string) bool {
	rest := s.rest()
	return !s.eof && len(rest) < len(tok) && strings.HasPrefix(tok, rest)
}

// wait is the status for input that ended before a token was decided.
func (s *scanner) wait() matchStatus {
	if s.eof {
		return noMatch
	}
	return needMore
}

func (s *scanner) emit(cmds ...Command) {
	s.cmds = append(s.cmds, cmds...)
}

// advance accounts for width printable columns, wrapping first when the
// token would overflow the configured width.
func (s *scanner) advance(width int) {
	if s.st.WrapWidth > 0 && s.st.Column > 0 && s.st.Column+width > s.st.WrapWidth {
		s.emit(wrapCmd)
		s.st.Column = width
		return
	}
	s.st.Column += width
}

// restyle re-applies the styles still in effect after a reset.
func (s *scanner) restyle() {
	if s.st.LineColor == ColorHeading && !s.st.Bold {
		s.emit(boldCmd)
	}
	if s.st.LineColor != ColorNone {
		s.emit(fgCmd(s.st.LineColor))
	}
	if s.st.Bold {
		s.emit(boldCmd)
	}
	if s.st.Italic {
		s.emit(italicCmd)
	}
}

func isLiteralBreak(r rune) bool {
	switch r {
	case '`', '*', '_':
		return true
	}
	return unicode.IsSpace(r)
}

func isBlockLead(r rune) bool {
	switch r {
	case '#', '-', '>':
		return true
	}
	return r >= '0' && r <= '9'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func recognizeLiteral(s *scanner) matchStatus {
	rest := s.rest()
	end := 0
	for end < len(rest) {
		if !utf8.FullRuneInString(rest[end:]) {
			if s.eof {
				break
			}
			return needMore
		}
		r, size := utf8.DecodeRuneInString(rest[end:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if isLiteralBreak(r) {
			break
		}
		if end == 0 && s.lineStart && isBlockLead(r) {
			return noMatch
		}
		end += size
	}
	if end == 0 {
		return noMatch
	}
	if end == len(rest) && !s.eof {
		return needMore
	}
	text := rest[:end]
	s.advance(ansi.PrintableRuneWidth(text))
	s.emit(textCmd(text))
	s.pos += end
	return matched
}

func recognizeFenceOpen(s *scanner) matchStatus {
	rest := s.rest()
	if !strings.HasPrefix(rest, fence) {
		if s.partial(fence) {
			return needMore
		}
		return noMatch
	}
	i := len(fence)
	end := -1
	for i < len(rest) {
		c := rest[i]
		if c == '`' {
			return noMatch
		}
		if c == '\n' {
			end = i + 1
			break
		}
		if c == '\r' {
			if i+1 == len(rest) {
				return s.wait()
			}
			if rest[i+1] != '\n' {
				return noMatch
			}
			end = i + 2
			break
		}
		i++
	}
	if end < 0 {
		return s.wait()
	}
	lang := strings.TrimSpace(rest[len(fence):i])
	label := fence + lang
	if s.st.WrapWidth > 0 {
		label = truncateWithEllipsis(label, s.st.WrapWidth)
	}
	if s.st.Column > 0 {
		s.emit(resetCmd, newlineCmd)
	}
	s.emit(fgCmd(ColorCodeFence), textCmd(label), resetCmd, newlineCmd)
	s.st.Column = 0
	s.st.InCodeBlock = true
	s.st.LineColor = ColorNone
	s.endsLine = true
	s.pos += end
	return matched
}

func recognizeHeading(s *scanner) matchStatus {
	if !s.lineStart {
		return noMatch
	}
	rest := s.rest()
	i := 0
	for i < len(rest) && rest[i] == '#' {
		i++
	}
	if i == 0 {
		return noMatch
	}
	if i == len(rest) {
		return s.wait()
	}
	if !isBlank(rest[i]) {
		return noMatch
	}
	marker := rest[:i] + " "
	s.advance(ansi.PrintableRuneWidth(marker))
	s.emit(boldCmd, fgCmd(ColorHeading), textCmd(marker))
	s.st.LineColor = ColorHeading
	s.marker = true
	s.pos += i + 1
	return matched
}

// leadingBlanks returns the length of the run of spaces and tabs at the start
// of rest.
func leadingBlanks(rest string) int {
	i := 0
	for i < len(rest) && isBlank(rest[i]) {
		i++
	}
	return i
}

func (s *scanner) emitListMarker(indent, marker string) {
	s.advance(ansi.PrintableRuneWidth(indent) + ansi.PrintableRuneWidth(marker) + 1)
	if indent != "" {
		s.emit(textCmd(indent))
	}
	s.emit(fgCmd(ColorListMarker), textCmd(marker), resetCmd)
	s.restyle()
	s.emit(textCmd(" "))
	s.marker = true
}

func recognizeBullet(s *scanner) matchStatus {
	if !s.lineStart {
		return noMatch
	}
	rest := s.rest()
	i := leadingBlanks(rest)
	if i == len(rest) {
		return s.wait()
	}
	if rest[i] != '-' && rest[i] != '*' {
		return noMatch
	}
	if i+1 == len(rest) {
		return s.wait()
	}
	if !isBlank(rest[i+1]) {
		return noMatch
	}
	s.emitListMarker(rest[:i], bulletGlyph)
	s.pos += i + 2
	return matched
}

func recognizeNumbered(s *scanner) matchStatus {
	if !s.lineStart {
		return noMatch
	}
	rest := s.rest()
	i := leadingBlanks(rest)
	j := i
	for j < len(rest) && isDigit(rest[j]) {
		j++
	}
	if j == len(rest) {
		return s.wait()
	}
	if j == i || rest[j] != '.' {
		return noMatch
	}
	if j+1 == len(rest) {
		return s.wait()
	}
	if !isBlank(rest[j+1]) {
		return noMatch
	}
	s.emitListMarker(rest[:i], rest[i:j+1])
	s.pos += j + 2
	return matched
}

func recognizeRule(s *scanner) matchStatus {
	if !s.lineStart {
		return noMatch
	}
	rest := s.rest()
	ch := rest[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return noMatch
	}
	i := 0
	for i < len(rest) && rest[i] == ch {
		i++
	}
	run := i
	for i < len(rest) && isBlank(rest[i]) {
		i++
	}
	if i == len(rest) {
		if !s.eof {
			return needMore
		}
	} else if rest[i] != '\n' && rest[i] != '\r' {
		return noMatch
	}
	if run < 3 {
		return noMatch
	}
	width := defaultRuleWidth
	if s.st.WrapWidth > 0 && s.st.WrapWidth < width {
		width = s.st.WrapWidth
	}
	s.advance(width)
	s.emit(fgCmd(ColorRule), textCmd(strings.Repeat(ruleGlyph, width)), resetCmd)
	s.restyle()
	s.pos += i
	return matched
}

func recognizeCodeSpan(s *scanner) matchStatus {
	rest := s.rest()
	if rest[0] != '`' {
		return noMatch
	}
	end := strings.IndexAny(rest[1:], "`\r\n")
	if end < 0 {
		return s.wait()
	}
	end++
	if rest[end] != '`' || end == 1 {
		return noMatch
	}
	code := rest[1:end]
	s.advance(ansi.PrintableRuneWidth(code))
	s.emit(fgCmd(ColorCodeSpan), textCmd(code), resetCmd)
	s.restyle()
	s.pos += end + 1
	return matched
}

func recognizeBold(s *scanner) matchStatus {
	rest := s.rest()
	if !strings.HasPrefix(rest, "**") && !strings.HasPrefix(rest, "__") {
		if s.partial("**") || s.partial("__") {
			return needMore
		}
		return noMatch
	}
	s.st.Bold = !s.st.Bold
	if s.st.Bold {
		s.emit(boldCmd)
	} else {
		s.emit(resetCmd)
		s.restyle()
	}
	s.pos += 2
	return matched
}

func recognizeItalic(s *scanner) matchStatus {
	rest := s.rest()
	if rest[0] != '*' && rest[0] != '_' {
		return noMatch
	}
	s.st.Italic = !s.st.Italic
	if s.st.Italic {
		s.emit(italicCmd)
	} else {
		s.emit(resetCmd)
		s.restyle()
	}
	s.pos++
	return matched
}

func recognizeQuote(s *scanner) matchStatus {
	if !s.lineStart {
		return noMatch
	}
	rest := s.rest()
	if rest[0] != '>' {
		return noMatch
	}
	n := 1
	if len(rest) == 1 {
		if !s.eof {
			return needMore
		}
	} else if rest[1] == ' ' {
		n = 2
	}
	s.advance(ansi.PrintableRuneWidth(quoteGlyph))
	s.emit(fgCmd(ColorQuote), textCmd(quoteGlyph))
	s.st.LineColor = ColorQuote
	s.marker = true
	s.pos += n
	return matched
}

// lineEnding returns the length of the line break at the start of rest, 0
// when there is none.
func (s *scanner) lineEnding() (int, matchStatus) {
	rest := s.rest()
	switch rest[0] {
	case '\n':
		return 1, matched
	case '\r':
		if len(rest) == 1 {
			if !s.eof {
				return 0, needMore
			}
			return 1, matched
		}
		if rest[1] == '\n' {
			return 2, matched
		}
		return 1, matched
	}
	return 0, noMatch
}

func recognizeLineEnding(s *scanner) matchStatus {
	n, status := s.lineEnding()
	if status != matched {
		return status
	}
	s.emit(resetCmd, newlineCmd)
	s.st.Column = 0
	s.st.LineColor = ColorNone
	if s.st.Bold {
		s.emit(boldCmd)
	}
	if s.st.Italic {
		s.emit(italicCmd)
	}
	s.endsLine = true
	s.pos += n
	return matched
}

// fallbackRune consumes a single character, reporting its width.
func (s *scanner) fallbackRune() (string, int, matchStatus) {
	rest := s.rest()
	if !utf8.FullRuneInString(rest) && !s.eof {
		return "", 0, needMore
	}
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError && size <= 1 {
		return rest[:1], 1, matched
	}
	return rest[:size], runewidth.RuneWidth(r), matched
}

func recognizeFallback(s *scanner) matchStatus {
	text, width, status := s.fallbackRune()
	if status != matched {
		return status
	}
	s.pos += len(text)
	if text == " " && s.st.PendingLineStart {
		return matched
	}
	s.advance(width)
	s.emit(textCmd(text))
	return matched
}

func recognizeFenceClose(s *scanner) matchStatus {
	rest := s.rest()
	if !strings.HasPrefix(rest, fence) {
		if s.partial(fence) {
			return needMore
		}
		return noMatch
	}
	s.advance(len(fence))
	s.emit(fgCmd(ColorCodeFence), textCmd(fence), resetCmd)
	s.st.InCodeBlock = false
	s.restyle()
	s.pos += len(fence)
	return matched
}

func recognizeCodeLineEnding(s *scanner) matchStatus {
	n, status := s.lineEnding()
	if status != matched {
		return status
	}
	s.emit(newlineCmd)
	s.st.Column = 0
	s.endsLine = true
	s.pos += n
	return matched
}

func recognizeCodeFallback(s *scanner) matchStatus {
	text, width, status := s.fallbackRune()
	if status != matched {
		return status
	}
	s.advance(width)
	s.emit(textCmd(text))
	s.pos += len(text)
	return matched
}
