package chatmd

import "strings"

// Reconcile folds one observation into an author's accumulated text and
// returns the part that has not been shown yet.
//
// Partial text is a literal increment and is appended as is. Non-partial text
// is treated as a snapshot: exact repeats print nothing, a snapshot that
// extends buf prints only the extension, and anything else is merged on the
// longest suffix/prefix overlap.
//
// A final snapshot replaces buf without printing once anything has been
// shown. Whatever the screen still lacks is printed by FinalSuffix when the
// turn ends.
func Reconcile(buf *string, text string, partial, final bool) string {
	switch {
	case text == "":
		return ""
	case partial:
		*buf += text
		return text
	case *buf == "":
		*buf = text
		return text
	case text == *buf:
		return ""
	case final:
		*buf = text
		return ""
	case strings.HasPrefix(text, *buf):
		delta := text[len(*buf):]
		*buf = text
		return delta
	}
	delta := text[Overlap(*buf, text):]
	*buf += delta
	return delta
}
