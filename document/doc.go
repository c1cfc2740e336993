// Package document implements the pure Markdown document model for Vellum:
// line storage, snapshot-based undo/redo, coordinate conversion, and the
// editing operations the command layer is built from.
//
// Coordinates are 0-based (Row, Col) in runes. Out-of-range positions are
// clamped, never rejected; the only operations that can fail are Save and
// Load.
package document
