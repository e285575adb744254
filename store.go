package sitectl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the JSON file holding a kind's entries as an ordered array.
type Store struct {
	path  string
	write func(path string, data []byte) error
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path, write: writeFileAtomic}
}

// Path returns the store's file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the store file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads all entries. A missing file yields an empty slice; a file that
// is not a JSON array of objects yields ErrInvalidStore.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sitectl: read store: %w", err)
	}
	return decodeEntries(s.path, data)
}

// Save replaces the whole file with entries, pretty-printed. The data is
// written to a sibling temp file and renamed into place.
func (s *Store) Save(entries []Entry) error {
	data, err := encodeEntries(entries, "")
	if err != nil {
		return fmt.Errorf("sitectl: encode store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sitectl: mkdir %s: %w", dir, err)
		}
	}
	if err := s.write(s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("sitectl: write store: %w", err)
	}
	return nil
}

func decodeEntries(path string, data []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidStore, path)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidStore, path)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidStore, path, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// encodeEntries renders entries as two-space indented JSON without HTML
// escaping. Every line after the first is prefixed with prefix.
func encodeEntries(entries []Entry, prefix string) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// over path, keeping the original file mode when there is one.
func writeFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
