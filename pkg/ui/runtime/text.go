package runtime

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// widthCondition is fixed so layout does not depend on the user's
// locale: ambiguous-width runes are narrow, emoji are wide.
var widthCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// RuneWidth returns the number of terminal columns r occupies. Control
// characters have no table width; they count as 2 when their UTF-8
// encoding is longer than 2 bytes and 1 otherwise.
func RuneWidth(r rune) int {
	if unicode.IsControl(r) {
		if utf8.RuneLen(r) > 2 {
			return 2
		}
		return 1
	}
	return widthCondition.RuneWidth(r)
}

// StringWidth returns the column width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// FitWidth returns the width of the longest rune prefix of s that fits
// in limit columns. It can be less than limit when the next rune is wide.
func FitWidth(s string, limit int) int {
	w := 0
	for _, r := range s {
		rw := RuneWidth(r)
		if w+rw > limit {
			break
		}
		w += rw
	}
	return w
}

// Truncate returns the longest rune prefix of s that fits in limit columns.
func Truncate(s string, limit int) string {
	w := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if w+rw > limit {
			return s[:i]
		}
		w += rw
	}
	return s
}

// PadLeft right-aligns s in a field of width columns.
func PadLeft(s string, width int) string {
	if gap := width - StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
