// Package editor provides a Bubble Tea component for editing Markdown
// documents: a cursor, a wrapping viewport, a line number gutter, and
// per-rune Markdown highlighting on top of a document.Document.
//
// The Model follows Bubble Tea value semantics. Geometry arrives through
// SetSize or tea.WindowSizeMsg; key handling is configured with a KeyMap
// and rendering with a Style.
package editor
