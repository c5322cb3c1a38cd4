package meow

import (
	"fmt"
	"os"
)

// Storage is the on-disk whatsmeow profile directory.
type Storage struct {
	dir string
}

// NewStorage returns the Storage rooted at dir.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// Wipe removes every stored credential. A missing directory is not an error.
func (s *Storage) Wipe() error {
	if s.dir == "" || s.dir == "/" {
		return fmt.Errorf("refusing to wipe store dir %q", s.dir)
	}

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("remove %s: %w", s.dir, err)
	}

	return nil
}
