package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Journal appends each accepted inquiry as one JSON line to a file.
type Journal struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// NewJournal creates a journal writing to path on fs.
func NewJournal(fs afero.Fs, path string) *Journal {
	return &Journal{fs: fs, path: path}
}

// Handle appends in to the journal file, creating it when missing.
func (j *Journal) Handle(_ context.Context, in Submitted) error {
	line, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	line = append(line, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := j.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal directory: %w", err)
		}
	}
	f, err := j.fs.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open journal %s: %w", j.path, err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write journal %s: %w", j.path, err)
	}
	return nil
}

// ReadJournal returns every entry in the journal at path.
func ReadJournal(fs afero.Fs, path string) ([]Submitted, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var out []Submitted
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var s Submitted
		if err := dec.Decode(&s); err != nil {
			return out, fmt.Errorf("decode journal %s: %w", path, err)
		}
		out = append(out, s)
	}
	return out, nil
}
