package models

import (
	"os"
	"time"
)

// EntryType is the filesystem object kind of a directory member.
type EntryType int

const (
	// TypeRegular is a plain file (and anything not matched below).
	TypeRegular EntryType = iota
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeSymlink is a symbolic link. The link itself, never its target.
	TypeSymlink
	// TypeCharDevice is a character special file.
	TypeCharDevice
	// TypeBlockDevice is a block special file.
	TypeBlockDevice
	// TypeFIFO is a named pipe.
	TypeFIFO
	// TypeSocket is a unix domain socket.
	TypeSocket
)

// String returns the string representation of EntryType.
func (t EntryType) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeCharDevice:
		return "char"
	case TypeBlockDevice:
		return "block"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// IsSpecial reports whether t is a char, block, fifo or socket type.
func (t EntryType) IsSpecial() bool {
	switch t {
	case TypeCharDevice, TypeBlockDevice, TypeFIFO, TypeSocket:
		return true
	default:
		return false
	}
}

// EntryTypeFromMode maps the type bits of an os.FileMode to an EntryType.
func EntryTypeFromMode(mode os.FileMode) EntryType {
	switch {
	case mode&os.ModeDir != 0:
		return TypeDirectory
	case mode&os.ModeSymlink != 0:
		return TypeSymlink
	case mode&os.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&os.ModeSocket != 0:
		return TypeSocket
	case mode&os.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&os.ModeDevice != 0:
		return TypeBlockDevice
	default:
		return TypeRegular
	}
}

// ColorClass is the display category that drives terminal coloring of a name.
type ColorClass int

const (
	// ColorDefault means the name is printed without color wrapping.
	ColorDefault ColorClass = iota
	// ColorDirectory marks directories.
	ColorDirectory
	// ColorSymlink marks symbolic links.
	ColorSymlink
	// ColorSpecial marks device, fifo and socket files.
	ColorSpecial
	// ColorExecutable marks files with the owner-execute bit set.
	ColorExecutable
	// ColorArchive marks compressed and archive files.
	ColorArchive
	// ColorSourceCode marks C, C++ and Python sources.
	ColorSourceCode
)

// String returns the string representation of ColorClass.
func (c ColorClass) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDirectory:
		return "directory"
	case ColorSymlink:
		return "symlink"
	case ColorSpecial:
		return "special"
	case ColorExecutable:
		return "executable"
	case ColorArchive:
		return "archive"
	case ColorSourceCode:
		return "source"
	default:
		return "unknown"
	}
}

// UnknownIdentity is displayed when an owner or group id cannot be resolved.
const UnknownIdentity = "unknown"

// Metadata holds the facts taken from a single lstat of one entry.
type Metadata struct {
	Type      EntryType   // Kind of filesystem object
	Perm      os.FileMode // Permission bits only (rwxrwxrwx)
	LinkCount uint64      // Hard link count
	Size      int64       // Size in bytes
	Owner     string      // Owner name, or UnknownIdentity
	Group     string      // Group name, or UnknownIdentity
	ModTime   time.Time   // Last modification time
}

// Entry is one member of a listed directory. Entries are values: once the
// collector has built one, nothing downstream modifies it.
type Entry struct {
	Name  string     // Base name, never contains a path separator
	Path  string     // Directory joined with Name
	Color ColorClass // Assigned at collection time and carried through layout
	Metadata
}

// IsDir returns true if the entry itself is a directory (symlinks are not followed).
func (e Entry) IsDir() bool {
	return e.Type == TypeDirectory
}

// IsHidden reports whether name is excluded from listings.
// Empty names and names starting with "." (including "." and "..") are hidden.
func IsHidden(name string) bool {
	return name == "" || name[0] == '.'
}

// Snapshot is the ordered, filtered set of entries for one directory visit.
type Snapshot struct {
	Dir     string
	Entries []Entry
}

// Len returns the number of entries in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Entries)
}

// MaxNameLen returns the byte length of the longest name, or 0 when empty.
func (s Snapshot) MaxNameLen() int {
	maxLen := 0
	for _, e := range s.Entries {
		if len(e.Name) > maxLen {
			maxLen = len(e.Name)
		}
	}
	return maxLen
}

// Directories returns the directory-typed entries in snapshot order.
func (s Snapshot) Directories() []Entry {
	dirs := make([]Entry, 0)
	for _, e := range s.Entries {
		if e.IsDir() && e.Name != "." && e.Name != ".." {
			dirs = append(dirs, e)
		}
	}
	return dirs
}

// Names returns entry names in snapshot order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Name
	}
	return names
}
