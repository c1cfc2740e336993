package editor

// Clipboard abstracts the system clipboard so the editor can cut and
// paste without binding to any one backend. Implementations must be safe
// for use from the Bubble Tea update loop.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(string) error
}

// MemoryClipboard is an in-process Clipboard. It is the fallback when no
// system clipboard is available, and what tests use.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) {
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
