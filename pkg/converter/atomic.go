package converter

import (
	"io"
	"os"
	"path/filepath"
)

const outputPerm = 0o644

// writeFileAtomic writes through a temporary file in the target directory and
// renames it over path, so path holds either its old content or all of the new.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), outputPerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
