package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNoFilename is returned by Save when the document has no filename yet.
var ErrNoFilename = errors.New("document: no filename")

// Save writes the document to its filename, always emitting one trailing
// line terminator. On failure the dirty flag and content are untouched;
// the underlying I/O error stays reachable through errors.Is.
func (d *Document) Save() error {
	if d.filename == "" {
		return ErrNoFilename
	}
	return d.SaveAs(d.filename)
}

// SaveAs writes the document to name and adopts name as the filename on
// success.
func (d *Document) SaveAs(name string) error {
	if name == "" {
		return ErrNoFilename
	}

	if err := os.WriteFile(name, []byte(d.Text()+"\n"), 0o644); err != nil {
		return fmt.Errorf("document: save %s: %w", name, err)
	}

	d.filename = name
	d.dirty = false
	return nil
}

// Load replaces the document content with the file at name, stripping
// exactly one trailing terminator. On failure the in-memory content,
// filename, and dirty flag are untouched. A successful load resets the
// undo/redo history.
func (d *Document) Load(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("document: load %s: %w", name, err)
	}

	d.lines = splitLines(strings.TrimSuffix(string(data), "\n"))
	d.filename = name
	d.dirty = false
	d.hist = historyState{}
	d.version++
	return nil
}

// Open loads name into a new document. A missing file yields an empty
// document carrying the name, matching open-or-create editor behavior.
func Open(name string, opt Options) (*Document, error) {
	d := New("", opt)
	if err := d.Load(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.filename = name
			return d, nil
		}
		return nil, err
	}
	return d, nil
}
