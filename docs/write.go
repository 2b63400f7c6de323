package docs

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Filename returns the documentation path for database under root
func Filename(root, database string) string {
	return filepath.Join(root, "db-documentation-"+database+".md")
}

// Write replaces filename with contents. The data goes to a temporary
// file in the same folder first, so a failed write leaves any previous
// document in place.
func Write(filename string, contents []byte) (int, error) {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}

	tmp, err := ioutil.TempFile(dir, "."+base+".*.tmp")
	if err != nil {
		return 0, errors.Wrap(err, "creating temporary file")
	}
	cleanup := func(err error) (int, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, err
	}

	size, err := tmp.Write(contents)
	if err != nil {
		return cleanup(errors.Wrapf(err, "writing %s", tmp.Name()))
	}
	if err := tmp.Chmod(0644); err != nil {
		return cleanup(errors.WithStack(err))
	}
	if err := tmp.Close(); err != nil {
		return cleanup(errors.WithStack(err))
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return 0, errors.Wrapf(err, "renaming to %s", filename)
	}
	return size, nil
}
