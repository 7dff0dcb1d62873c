package pipeline

import (
	"os"
	"path/filepath"

	errs "github.com/matzehuels/netgen/pkg/errors"
)

// WriteFile replaces path with data. The data is written in one call to a
// temporary file in the same directory, which is then renamed over path, so
// readers never observe a partially written file.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "chmod %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "rename into %s", path)
	}
	return nil
}
