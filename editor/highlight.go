package editor

import (
	"strings"
	"unicode"
)

// HighlightKind classifies one rune of a line for Markdown rendering.
type HighlightKind uint8

const (
	HighlightNone HighlightKind = iota
	HighlightHeader
	HighlightList
	HighlightBold
	HighlightItalic
)

// HighlightLine classifies every rune of line. A '#' at column zero colors
// the whole line as a header. List markers color only the marker itself.
// ** pairs mark bold spans including the delimiters, * pairs italic; bold
// wins where the two overlap.
func HighlightLine(line string) []HighlightKind {
	runes := []rune(line)
	kinds := make([]HighlightKind, len(runes))

	if strings.HasPrefix(line, "#") {
		for i := range kinds {
			kinds[i] = HighlightHeader
		}
		return kinds
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ") {
		kinds[0] = HighlightList
	}
	if len(runes) > 2 && unicode.IsDigit(runes[0]) && runes[1] == '.' && runes[2] == ' ' {
		kinds[0] = HighlightList
		kinds[1] = HighlightList
	}

	i := 0
	for i < len(runes) {
		if i+1 < len(runes) && runes[i] == '*' && runes[i+1] == '*' {
			start := i
			i += 2
			for i+1 < len(runes) {
				if runes[i] == '*' && runes[i+1] == '*' {
					for j := start; j <= i+1; j++ {
						kinds[j] = HighlightBold
					}
					i += 2
					break
				}
				i++
			}
		} else if runes[i] == '*' {
			start := i
			i++
			for i < len(runes) {
				if runes[i] == '*' {
					for j := start; j <= i; j++ {
						if kinds[j] == HighlightNone {
							kinds[j] = HighlightItalic
						}
					}
					i++
					break
				}
				i++
			}
		} else {
			i++
		}
	}
	return kinds
}
