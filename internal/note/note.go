// Package note implements the note store on top of markdown files.
package note

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Note is the note open for editing.
type Note struct {
	// Path is the markdown file backing the note.
	Path string
	// Body is the note content. A note without a file yet has an empty body.
	Body string
}

// FileStore holds at most one note open for editing. Edits stay in memory
// until Save is called on a store marked as changed.
type FileStore struct {
	path    string
	note    *Note
	changed bool
}

// NewFileStore creates a store whose active note is the file at path. An
// empty path means no note is open.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// EditingNote returns the active note, loading it on first use. It returns
// nil when no note is open.
func (s *FileStore) EditingNote() (*Note, error) {
	if s.path == "" {
		return nil, nil
	}
	if s.note != nil {
		return s.note, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read note %s", s.path)
	}
	s.note = &Note{Path: s.path, Body: string(data)}
	return s.note, nil
}

// UpdateBody replaces the body of the active note. It is a no-op when no
// note is open.
func (s *FileStore) UpdateBody(body string) {
	if s.path == "" {
		return
	}
	if s.note == nil {
		s.note = &Note{Path: s.path}
	}
	s.note.Body = body
}

// SetChanged marks whether the note has unsaved changes.
func (s *FileStore) SetChanged(changed bool) {
	s.changed = changed
}

// Changed reports whether the note has unsaved changes.
func (s *FileStore) Changed() bool {
	return s.changed
}

// Save writes the note to disk if it has unsaved changes. Missing parent
// directories are created.
func (s *FileStore) Save() error {
	if !s.changed || s.note == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.note.Path), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for note %s", s.note.Path)
	}
	if err := os.WriteFile(s.note.Path, []byte(s.note.Body), 0644); err != nil {
		return errors.Wrapf(err, "failed to write note %s", s.note.Path)
	}
	s.changed = false
	return nil
}
