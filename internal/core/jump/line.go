package jump

import (
	"strings"
	"unicode"
)

// Line is a single row of the source document.
type Line struct {
	Raw    string
	Lower  string
	Number int // 1-based line number in the original document

	lower []rune
}

// NewLine builds a Line for raw text at the given original line number.
// Lowercasing is done rune by rune so that character positions in Lower and
// Raw always refer to the same characters.
func NewLine(raw string, number int) Line {
	lower := strings.Map(unicode.ToLower, raw)
	return Line{
		Raw:    raw,
		Lower:  lower,
		Number: number,
		lower:  []rune(lower),
	}
}

// runes returns the lowercase text as runes, tolerating Lines built as
// literals instead of through NewLine.
func (l Line) runes() []rune {
	if l.lower == nil && l.Lower != "" {
		return []rune(l.Lower)
	}
	return l.lower
}
