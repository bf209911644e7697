//go:build unix

package metadata

import (
	"os"
	"syscall"
)

func ownershipOf(info os.FileInfo) (ownership, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return ownership{}, false
	}
	return ownership{
		uid:   st.Uid,
		gid:   st.Gid,
		nlink: uint64(st.Nlink),
	}, true
}
