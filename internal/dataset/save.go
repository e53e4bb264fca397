package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes d to path. The data goes to a temporary file in the same
// directory first and is renamed into place, so path holds either the
// complete table or whatever it held before.
func (d *Dataset) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = writeXLSX(tmp, d)
	default:
		err = writeCSV(tmp, d)
	}
	if err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	committed = true
	return nil
}
