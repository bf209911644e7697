package fileutil

import (
	"errors"
	"os"
	"strings"

	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/metadata"
	"github.com/harrison/lsv/internal/models"
)

var errNotDirectory = errors.New("not a directory")

// CollectResult contains the snapshot of one directory visit
type CollectResult struct {
	// Snapshot holds the visible, resolved entries in name order
	Snapshot models.Snapshot
	// Errors contains entries that were dropped because their metadata was unavailable
	Errors []error
}

// Collector builds snapshots from a DirLister and a metadata.Resolver.
type Collector struct {
	lister   DirLister
	resolver metadata.Resolver
}

// NewCollector creates a Collector for the local filesystem.
func NewCollector() *Collector {
	return NewCollectorWith(OSLister{}, metadata.NewResolver())
}

// NewCollectorWith creates a Collector with custom enumeration and resolution.
// This is useful for testing.
func NewCollectorWith(lister DirLister, resolver metadata.Resolver) *Collector {
	return &Collector{
		lister:   lister,
		resolver: resolver,
	}
}

// Collect enumerates dir and returns its ordered snapshot.
// A non-nil error means the whole directory was skipped; per-entry failures
// are reported in CollectResult.Errors instead.
func (c *Collector) Collect(dir string) (*CollectResult, error) {
	names, err := c.lister.ListNames(dir)
	if err != nil {
		return nil, err
	}

	result := &CollectResult{
		Snapshot: models.Snapshot{
			Dir:     dir,
			Entries: make([]models.Entry, 0, len(names)),
		},
		Errors: make([]error, 0),
	}

	for _, name := range names {
		if models.IsHidden(name) {
			continue
		}

		path := JoinPath(dir, name)
		md, err := c.resolver.Resolve(path)
		if err != nil {
			if _, ok := models.KindOf(err); !ok {
				err = models.NewPathError(models.KindEntryMetadataUnavailable, "lstat", path, err)
			}
			result.Errors = append(result.Errors, err)
			continue
		}

		result.Snapshot.Entries = append(result.Snapshot.Entries, models.Entry{
			Name:     name,
			Path:     path,
			Color:    colorclass.Classify(name, md.Type, md.Perm),
			Metadata: md,
		})
	}

	SortEntries(result.Snapshot.Entries)

	return result, nil
}

// JoinPath appends name to dir without cleaning dir, so a root given as
// "./src" yields "./src/lib" rather than "src/lib".
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
