package editor

import "github.com/charmbracelet/lipgloss"

// Style bundles every lipgloss style the editor paints with. Callers can
// replace any subset; the zero value renders unstyled text.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	EmptyRow      lipgloss.Style

	Text       lipgloss.Style
	Cursor     lipgloss.Style
	WrapMarker lipgloss.Style

	Header lipgloss.Style
	List   lipgloss.Style
	Bold   lipgloss.Style
	Italic lipgloss.Style
}

// DefaultStyle returns the stock look: a dim gutter, reverse-video cursor,
// and the classic Markdown palette of blue headers, cyan list markers,
// bright bold and yellow italics.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		EmptyRow:      dim,
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		WrapMarker:    dim,
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		List:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Bold:          lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Italic:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
	}
}

func (s Style) forKind(k HighlightKind) lipgloss.Style {
	switch k {
	case HighlightHeader:
		return s.Header
	case HighlightList:
		return s.List
	case HighlightBold:
		return s.Bold
	case HighlightItalic:
		return s.Italic
	default:
		return s.Text
	}
}
