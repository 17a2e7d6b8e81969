package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// PackedOutputPath inserts the model index before the extension of the last
// path element: "out/body.ply" becomes "out/body2.ply". Without an extension
// the index is appended.
func PackedOutputPath(template string, model int) string {
	dir, base := filepath.Split(template)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	return dir + stem + strconv.Itoa(model) + ext
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so path only ever holds a complete file.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIOFailure, path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrIOFailure, path, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: syncing %s: %w", ErrIOFailure, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIOFailure, path, err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrIOFailure, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: renaming into %s: %w", ErrIOFailure, path, err)
	}
	return nil
}
