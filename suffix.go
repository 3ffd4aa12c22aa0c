package chatmd

import "strings"

// FinalSuffix returns what still has to be printed so that the output shows
// final after emitted has already been rendered. It reports false when
// nothing is missing.
//
// When emitted and final share no prefix the whole final text is reprinted on
// a fresh line. That can duplicate text on screen but never drops any.
func FinalSuffix(emitted, final string) (string, bool) {
	if strings.TrimSpace(final) == "" {
		return "", false
	}
	if emitted == "" {
		return final, true
	}
	if final == emitted || strings.TrimSpace(final) == strings.TrimSpace(emitted) {
		return "", false
	}
	if strings.HasPrefix(final, emitted) {
		return final[len(emitted):], true
	}
	return "\n" + final, true
}
