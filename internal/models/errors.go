package models

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies failures of the listing engine by the unit they affect.
type ErrorKind int

const (
	// KindDirectoryUnavailable means a directory could not be opened; its listing is skipped.
	KindDirectoryUnavailable ErrorKind = iota
	// KindEntryMetadataUnavailable means lstat failed for one entry; the entry is dropped.
	KindEntryMetadataUnavailable
	// KindIdentityLookup means an owner or group id had no name; it degrades to UnknownIdentity.
	KindIdentityLookup
	// KindVisitAborted means enumeration failed after the directory was opened;
	// the whole visit produces no output but siblings continue.
	KindVisitAborted
)

// Sentinel errors for use with errors.Is.
var (
	ErrDirectoryUnavailable     = errors.New("directory unavailable")
	ErrEntryMetadataUnavailable = errors.New("entry metadata unavailable")
	ErrIdentityLookup           = errors.New("identity lookup failed")
	ErrVisitAborted             = errors.New("directory visit aborted")
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindDirectoryUnavailable:
		return "directory unavailable"
	case KindEntryMetadataUnavailable:
		return "entry metadata unavailable"
	case KindIdentityLookup:
		return "identity lookup failed"
	case KindVisitAborted:
		return "directory visit aborted"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindDirectoryUnavailable:
		return ErrDirectoryUnavailable
	case KindEntryMetadataUnavailable:
		return ErrEntryMetadataUnavailable
	case KindIdentityLookup:
		return ErrIdentityLookup
	case KindVisitAborted:
		return ErrVisitAborted
	default:
		return nil
	}
}

// PathError records a failed filesystem operation on one path.
type PathError struct {
	Kind ErrorKind // Which unit of work the failure affects
	Op   string    // Operation that failed, e.g. "open" or "lstat"
	Path string    // Path the operation was applied to
	Err  error     // Underlying OS error (optional)
}

// NewPathError creates a PathError of the given kind.
func NewPathError(kind ErrorKind, op, path string, err error) *PathError {
	return &PathError{Kind: kind, Op: op, Path: path, Err: err}
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}

	// os errors already carry op and path; keep only the cause.
	cause := e.Err
	var fsErr *fs.PathError
	if errors.As(cause, &fsErr) {
		cause = fsErr.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

// Unwrap returns both the kind sentinel and the underlying error so that
// errors.Is matches either, e.g. ErrDirectoryUnavailable and fs.ErrPermission.
func (e *PathError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the ErrorKind carried by err and whether one was found.
func KindOf(err error) (ErrorKind, bool) {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
