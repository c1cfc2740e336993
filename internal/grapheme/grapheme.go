// Package grapheme provides grapheme-cluster and terminal-cell-width
// helpers for rendering.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate caps text at width terminal cells, cutting on cluster
// boundaries so a wide character is never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	var sb strings.Builder
	used := 0
	for _, cluster := range Split(text) {
		w := runewidth.StringWidth(cluster)
		if used+w > width {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}

// PadRight pads text with spaces to exactly width cells, truncating first
// when it is too long.
func PadRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(text, width)
	if gap := width - Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
