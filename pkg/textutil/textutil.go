// Package textutil holds small string helpers used by the canvas and CLI.
package textutil

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Slugify lowercases s and replaces every run of characters that are not
// letters or digits with a single '-'. Leading and trailing dashes are
// dropped. Slugify("Save File…") returns "save-file".
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// Truncate shortens s to at most width terminal cells, ending it with tail
// when something was cut. Wide runes (CJK, emoji) count as two cells.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
