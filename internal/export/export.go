package export

import (
	"fmt"
	"io"

	"github.com/handoverhq/tenancy-stats/internal/adapter"
)

// Writer writes reports as indented JSON documents
type Writer struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewWriter creates a new report writer
func NewWriter(fs adapter.FileSystem, json adapter.JSON) *Writer {
	return &Writer{fs: fs, json: json}
}

// Write encodes v to out followed by a newline
func (w *Writer) Write(out io.Writer, v any) error {
	data, err := w.json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteFile writes v to path. A partially written file is removed.
func (w *Writer) WriteFile(path string, v any) (err error) {
	f, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		if err != nil {
			_ = w.fs.Remove(path)
		}
	}()

	return w.Write(f, v)
}
