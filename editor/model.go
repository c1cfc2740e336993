package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vellumtext/vellum/document"
)

// Config carries the knobs for a new editor Model. The zero value is
// usable: an empty unnamed document, default key map, unstyled rendering.
type Config struct {
	// Text is the initial document content.
	Text string

	// ShowLineNums reserves a gutter and draws 1-based line numbers.
	ShowLineNums bool

	// Style controls rendering. The zero value renders plain text.
	Style Style

	// KeyMap overrides the default bindings when any binding is set.
	KeyMap KeyMap

	// HistoryLimit caps the undo stack. Zero means the default.
	HistoryLimit int

	// Clipboard backs cut and paste. Nil falls back to an in-process
	// clipboard.
	Clipboard Clipboard
}

// Model is a Bubble Tea model wrapping a document with a cursor and a
// viewport. It is a value; Update returns the successor state.
type Model struct {
	cfg     Config
	doc     *document.Document
	cursor  document.Pos
	view    Viewport
	width   int
	focused bool
}

// New builds a Model from cfg.
func New(cfg Config) Model {
	doc := document.New(cfg.Text, document.Options{HistoryLimit: cfg.HistoryLimit})
	return NewWithDocument(cfg, doc)
}

// NewWithDocument builds a Model around an existing document, typically
// one opened from disk.
func NewWithDocument(cfg Config, doc *document.Document) Model {
	if !keyMapSet(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &MemoryClipboard{}
	}
	return Model{cfg: cfg, doc: doc, focused: true}
}

func keyMapSet(km KeyMap) bool {
	return len(km.Left.Keys()) > 0 || len(km.Enter.Keys()) > 0
}

// Doc exposes the underlying document.
func (m Model) Doc() *document.Document { return m.doc }

// Cursor returns the current cursor position.
func (m Model) Cursor() document.Pos { return m.cursor }

// SetCursor moves the cursor, clamping to the document and scrolling the
// viewport to keep it visible.
func (m Model) SetCursor(p document.Pos) Model {
	m.cursor = m.doc.ClampToLine(p)
	m.view.Follow(m.cursor)
	return m
}

// Viewport returns the current viewport state.
func (m Model) Viewport() Viewport { return m.view }

// SetSize tells the editor how many terminal cells it may paint.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.view.Height = height
	m.view.Follow(m.cursor)
	return m
}

// Focus lets the editor consume key input.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur makes the editor ignore key input.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the editor consumes key input.
func (m Model) Focused() bool { return m.focused }

// ShowLineNums toggles the line number gutter.
func (m Model) ShowLineNums(on bool) Model {
	m.cfg.ShowLineNums = on
	return m
}

// LineNumsShown reports whether the gutter is drawn.
func (m Model) LineNumsShown() bool { return m.cfg.ShowLineNums }

// wrapWidth is the content width in cells after the gutter takes its cut.
func (m Model) wrapWidth() int {
	w := m.width
	if m.cfg.ShowLineNums {
		w -= GutterWidth(m.doc.LineCount())
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Init returns no startup command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles window size and key messages, returning the updated
// editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// View renders the editor's current screen.
func (m Model) View() string {
	return m.render()
}
