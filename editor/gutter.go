package editor

import (
	"fmt"
	"strings"
)

// GutterWidth returns the total gutter width in cells for a document of
// lineCount lines: the digits of the largest line number plus a space and
// the separator bar.
func GutterWidth(lineCount int) int {
	return gutterDigits(lineCount) + 2
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// gutterCell renders one gutter cell: the 1-based line number on a row's
// first fragment, a tilde for rows past the end of the document, and
// blanks on continuation fragments.
func gutterCell(f Fragment, lineCount, digits int) string {
	switch {
	case f.Row >= lineCount:
		return fmt.Sprintf("%*s |", digits, "~")
	case f.Continuation:
		return strings.Repeat(" ", digits) + " |"
	default:
		return fmt.Sprintf("%*d |", digits, f.Row+1)
	}
}
