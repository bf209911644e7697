//go:build !unix

package metadata

import "os"

// No uid/gid/nlink outside unix; callers keep the defaults.
func ownershipOf(info os.FileInfo) (ownership, bool) {
	return ownership{}, false
}
