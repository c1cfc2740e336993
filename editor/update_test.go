package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vellumtext/vellum/document"
)

func newTestModel(text string) Model {
	m := New(Config{Text: text})
	return m.SetSize(80, 10)
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		if r == '\n' {
			m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTyping(t *testing.T) {
	m := typeString(newTestModel(""), "ab\nc")
	if got := m.Doc().Text(); got != "ab\nc" {
		t.Fatalf("text = %q, want %q", got, "ab\nc")
	}
	if m.Cursor() != (document.Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor = %+v, want {1 1}", m.Cursor())
	}
	if !m.Doc().IsDirty() {
		t.Fatal("typing did not mark the document dirty")
	}
}

func TestArrowMovement(t *testing.T) {
	m := newTestModel("ab\ncde")

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if m.Cursor() != (document.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want {0 2}", m.Cursor())
	}

	// Right at end of line crosses to the next line.
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Cursor() != (document.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor = %+v, want {1 0}", m.Cursor())
	}

	// Left at column zero crosses back.
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Cursor() != (document.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want {0 2}", m.Cursor())
	}

	// Down snaps the column into the longer line unchanged, up clamps back.
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnd})
	if m.Cursor() != (document.Pos{Row: 1, Col: 3}) {
		t.Fatalf("cursor = %+v, want {1 3}", m.Cursor())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != (document.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want {0 2}", m.Cursor())
	}
}

func TestHomeEnd(t *testing.T) {
	m := newTestModel("hello")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.Cursor().Col != 5 {
		t.Fatalf("end col = %d, want 5", m.Cursor().Col)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	if m.Cursor().Col != 0 {
		t.Fatalf("home col = %d, want 0", m.Cursor().Col)
	}
}

func TestBackspaceMergesLines(t *testing.T) {
	m := newTestModel("ab\ncd")
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Doc().Text(); got != "abcd" {
		t.Fatalf("text = %q, want %q", got, "abcd")
	}
	if m.Cursor() != (document.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %+v, want {0 2}", m.Cursor())
	}

	// Backspace at the very start is a no-op.
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Doc().Text(); got != "abcd" {
		t.Fatalf("text after no-op backspace = %q", got)
	}
}

func TestDeleteForward(t *testing.T) {
	m := newTestModel("ab\ncd")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Doc().Text(); got != "abcd" {
		t.Fatalf("text = %q, want %q", got, "abcd")
	}

	// Delete at end of document is a no-op and pushes no snapshot.
	m = newTestModel("x")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyDelete})
	if m.Doc().Undo() {
		t.Fatal("no-op delete recorded history")
	}
}

func TestUndoRedoKeys(t *testing.T) {
	m := typeString(newTestModel(""), "hi")
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Doc().Text(); got != "h" {
		t.Fatalf("after undo text = %q, want %q", got, "h")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Doc().Text(); got != "hi" {
		t.Fatalf("after redo text = %q, want %q", got, "hi")
	}
}

func TestUndoClampsCursor(t *testing.T) {
	m := typeString(newTestModel(""), "abcdef")
	for i := 0; i < 6; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	}
	if got := m.Doc().Text(); got != "" {
		t.Fatalf("text = %q, want empty", got)
	}
	if m.Cursor() != (document.Pos{}) {
		t.Fatalf("cursor = %+v, want origin", m.Cursor())
	}
}

func TestCutLineAndPaste(t *testing.T) {
	clip := &MemoryClipboard{}
	m := NewWithDocument(Config{Clipboard: clip}, document.New("one\ntwo\nthree", document.Options{}))
	m = m.SetSize(80, 10)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyCtrlK})
	if got := m.Doc().Text(); got != "one\nthree" {
		t.Fatalf("after cut text = %q, want %q", got, "one\nthree")
	}
	if text, _ := clip.ReadText(); text != "two\n" {
		t.Fatalf("clipboard = %q, want %q", text, "two\n")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Doc().Text(); got != "one\ntwo\nthree" {
		t.Fatalf("after paste text = %q, want %q", got, "one\ntwo\nthree")
	}
	if m.Cursor() != (document.Pos{Row: 2, Col: 0}) {
		t.Fatalf("cursor = %+v, want {2 0}", m.Cursor())
	}
}

func TestTabIndents(t *testing.T) {
	m := typeString(newTestModel(""), "x")
	m = press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Doc().Text(); got != "    x" {
		t.Fatalf("text = %q, want %q", got, "    x")
	}
	if m.Cursor().Col != document.IndentUnit {
		t.Fatalf("cursor col = %d, want %d", m.Cursor().Col, document.IndentUnit)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne\nf\ng\nh"}).SetSize(80, 3)
	for i := 0; i < 5; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if top := m.Viewport().Top; top != 3 {
		t.Fatalf("top = %d, want 3", top)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyPgUp})
	if top := m.Viewport().Top; top != 2 {
		t.Fatalf("after page up top = %d, want 2", top)
	}
}

func TestBlurredModelIgnoresKeys(t *testing.T) {
	m := newTestModel("abc").Blur()
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if got := m.Doc().Text(); got != "abc" {
		t.Fatalf("blurred model edited: %q", got)
	}
}
