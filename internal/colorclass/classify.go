// Package colorclass assigns a display category to each directory entry and
// maps categories to ANSI SGR sequences.
package colorclass

import (
	"os"
	"strings"

	"github.com/harrison/lsv/internal/models"
)

// ownerExecute is the S_IXUSR permission bit.
const ownerExecute os.FileMode = 0100

var archiveExtensions = map[string]bool{
	"tar": true,
	"gz":  true,
	"zip": true,
	"tgz": true,
	"bz2": true,
	"xz":  true,
}

var sourceExtensions = map[string]bool{
	"c":   true,
	"h":   true,
	"cpp": true,
	"py":  true,
}

// Classify returns the color class for an entry. Rules are checked in order
// and the first match wins: directory, symlink, special file, owner-execute,
// archive extension, source extension, default.
func Classify(name string, typ models.EntryType, perm os.FileMode) models.ColorClass {
	switch {
	case typ == models.TypeDirectory:
		return models.ColorDirectory
	case typ == models.TypeSymlink:
		return models.ColorSymlink
	case typ.IsSpecial():
		return models.ColorSpecial
	case perm&ownerExecute != 0:
		return models.ColorExecutable
	}

	ext, ok := Extension(name)
	if !ok {
		return models.ColorDefault
	}
	if archiveExtensions[ext] {
		return models.ColorArchive
	}
	if sourceExtensions[ext] {
		return models.ColorSourceCode
	}
	return models.ColorDefault
}

// Extension returns the text after the last "." in name. The match is exact
// and case-sensitive; ok is false when name contains no ".".
func Extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", false
	}
	return name[idx+1:], true
}
