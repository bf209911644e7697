// Package metadata resolves the per-entry facts shown by the listing engine:
// type, permission bits, link count, ownership, size and modification time.
//
// Resolution uses lstat, so a symbolic link is described as a link and is
// never followed. Owner and group names are looked up best-effort; a failed
// lookup yields models.UnknownIdentity and is never returned as an error. It
// is passed to the IdentityCache failure handler, once per id, instead.
package metadata

import (
	"os"

	"github.com/harrison/lsv/internal/models"
)

// Resolver fetches the metadata of a single path.
type Resolver interface {
	Resolve(path string) (models.Metadata, error)
}

// OSResolver resolves metadata from the local filesystem.
// It is not safe for concurrent use because the identity cache is unguarded.
type OSResolver struct {
	lstat func(name string) (os.FileInfo, error)
	ids   *IdentityCache
}

// NewResolver creates an OSResolver backed by os.Lstat and the system user database.
func NewResolver() *OSResolver {
	return &OSResolver{
		lstat: os.Lstat,
		ids:   NewIdentityCache(),
	}
}

// NewResolverWithIdentities creates an OSResolver that resolves names through ids.
func NewResolverWithIdentities(ids *IdentityCache) *OSResolver {
	return &OSResolver{
		lstat: os.Lstat,
		ids:   ids,
	}
}

// Resolve takes one lstat snapshot of path. A failed lstat is reported as
// models.KindEntryMetadataUnavailable so the caller can drop just that entry.
func (r *OSResolver) Resolve(path string) (models.Metadata, error) {
	info, err := r.lstat(path)
	if err != nil {
		return models.Metadata{}, models.NewPathError(models.KindEntryMetadataUnavailable, "lstat", path, err)
	}
	return r.FromFileInfo(info), nil
}

// FromFileInfo converts an already-fetched FileInfo without touching the filesystem again.
func (r *OSResolver) FromFileInfo(info os.FileInfo) models.Metadata {
	md := models.Metadata{
		Type:      models.EntryTypeFromMode(info.Mode()),
		Perm:      info.Mode().Perm(),
		LinkCount: 1,
		Size:      info.Size(),
		Owner:     models.UnknownIdentity,
		Group:     models.UnknownIdentity,
		ModTime:   info.ModTime(),
	}

	if own, ok := ownershipOf(info); ok {
		md.LinkCount = own.nlink
		md.Owner = r.ids.UserName(own.uid)
		md.Group = r.ids.GroupName(own.gid)
	}

	return md
}

// ownership is the platform-specific part of a stat result.
type ownership struct {
	uid   uint32
	gid   uint32
	nlink uint64
}
