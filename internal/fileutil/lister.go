package fileutil

import (
	"os"

	"github.com/harrison/lsv/internal/models"
)

// DirLister enumerates the member names of a directory in whatever order the
// underlying source yields them.
type DirLister interface {
	ListNames(dir string) ([]string, error)
}

// OSLister reads directory names from the local filesystem.
type OSLister struct{}

// ListNames opens dir, reads all names in one pass and closes the handle.
// Open and not-a-directory failures are models.KindDirectoryUnavailable;
// a read failure after a successful open is models.KindVisitAborted.
func (OSLister) ListNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, models.NewPathError(models.KindDirectoryUnavailable, "open", dir, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, models.NewPathError(models.KindDirectoryUnavailable, "stat", dir, err)
	}
	if !info.IsDir() {
		return nil, models.NewPathError(models.KindDirectoryUnavailable, "open", dir, errNotDirectory)
	}

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, models.NewPathError(models.KindVisitAborted, "readdir", dir, err)
	}
	return names, nil
}
