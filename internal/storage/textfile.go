// Package storage persists arena snapshots as plain UTF-8 text files.
package storage

import (
	"io"
	"io/fs"
	"log"
	"os"

	"robotarena-sim/internal/simulation"

	"github.com/pkg/errors"
)

const filePerm = 0o644

// TextStore reads and writes whole text files and reports each operation to its logger.
type TextStore struct {
	logger *log.Logger
}

// NewTextStore creates a store; a nil logger discards messages.
func NewTextStore(logger *log.Logger) *TextStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &TextStore{logger: logger}
}

// WriteFile creates or truncates path and writes content to it.
func (s *TextStore) WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		s.logger.Printf("error writing %s: %v", path, err)
		return errors.Wrapf(err, "could not write file (%s)", path)
	}
	s.logger.Printf("file saved: %s", path)
	return nil
}

// AppendFile adds content to the end of path, creating the file when needed.
func (s *TextStore) AppendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		s.logger.Printf("error appending to %s: %v", path, err)
		return errors.Wrapf(err, "could not open file for append (%s)", path)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		s.logger.Printf("error appending to %s: %v", path, err)
		return errors.Wrapf(err, "could not append to file (%s)", path)
	}
	s.logger.Printf("content appended: %s", path)
	return nil
}

// ReadFile returns the full content of path.
func (s *TextStore) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Printf("error reading %s: %v", path, err)
		return "", errors.Wrapf(err, "could not read file (%s)", path)
	}
	s.logger.Printf("file read: %s", path)
	return string(data), nil
}

// DeleteFile removes path. It reports false without error when the file did not exist.
func (s *TextStore) DeleteFile(path string) (bool, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		s.logger.Printf("file deleted: %s", path)
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Printf("file not found, cannot delete: %s", path)
		return false, nil
	default:
		s.logger.Printf("error deleting %s: %v", path, err)
		return false, errors.Wrapf(err, "could not delete file (%s)", path)
	}
}

// SaveArena writes the snapshot of a to path.
func (s *TextStore) SaveArena(path string, a *simulation.Arena) error {
	return s.WriteFile(path, a.Save())
}

// LoadArena replaces the contents of a with the snapshot stored at path. Item lines that
// could not be used are returned; the arena is untouched when the file cannot be read or
// its dimension line is invalid.
func (s *TextStore) LoadArena(path string, a *simulation.Arena) ([]error, error) {
	content, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	skipped, err := a.Load(content)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load arena from %s", path)
	}
	for _, e := range skipped {
		s.logger.Printf("%s: skipped %v", path, e)
	}
	return skipped, nil
}
