// Package clip adapts the system clipboard to the editor's Clipboard
// interface.
package clip

import (
	"errors"

	"golang.design/x/clipboard"
)

// ErrUnavailable reports that no system clipboard could be reached.
var ErrUnavailable = errors.New("clip: system clipboard unavailable")

// System is a Clipboard backed by the OS clipboard.
type System struct{}

// New initializes the system clipboard. Callers should fall back to an
// in-process clipboard when it returns ErrUnavailable, for example on a
// headless machine.
func New() (*System, error) {
	if err := clipboard.Init(); err != nil {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

func (*System) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (*System) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
