package chatmd

import (
	"strings"
	"unicode/utf8"
)

// Overlap returns the length of the longest prefix of incoming that existing
// ends with. The result is bounded by the shorter input and always falls on a
// rune boundary of incoming.
func Overlap(existing, incoming string) int {
	k := len(incoming)
	if len(existing) < k {
		k = len(existing)
	}
	for ; k > 0; k-- {
		if k < len(incoming) && !utf8.RuneStart(incoming[k]) {
			continue
		}
		if strings.HasSuffix(existing, incoming[:k]) {
			return k
		}
	}
	return 0
}
