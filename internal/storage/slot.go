package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot implements Slot as a JSON file inside a shared container
// directory, mirroring the app-group file handoff used by home-screen
// widgets. Writes go through a temp file and rename so the external reader
// never observes a partial record.
type FileSlot struct {
	dir string
}

// NewFileSlot creates a slot rooted at dir.
func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{dir: dir}
}

// Write overwrites the record at <dir>/<namespace>/<key>.json.
func (s *FileSlot) Write(ctx context.Context, namespace, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	nsDir := filepath.Join(s.dir, namespace)
	if err := os.MkdirAll(nsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create slot namespace dir: %w", err)
	}

	target := filepath.Join(nsDir, key+".json")
	tmp, err := os.CreateTemp(nsDir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create slot temp file: %w", err)
	}

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write slot temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close slot temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to publish slot record: %w", err)
	}
	return nil
}
