package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/models"
)

// TimeLayout renders modification times as "Mon DD HH:MM", day space-padded.
const TimeLayout = "Jan _2 15:04"

// LongRenderer prints one line per entry:
// permissions, links, owner, group, size, time and the colorized name.
type LongRenderer struct {
	Palette    *colorclass.Palette
	HumanSizes bool
}

// Render writes one line per entry in snapshot order.
func (r *LongRenderer) Render(w io.Writer, snap models.Snapshot) error {
	var b strings.Builder
	for _, e := range snap.Entries {
		b.WriteString(r.FormatLine(e))
		b.WriteByte('\n')
	}
	return flushLines(w, b.String())
}

// FormatLine returns the long-format line for e without a trailing newline.
func (r *LongRenderer) FormatLine(e models.Entry) string {
	return fmt.Sprintf("%s %2d %-8s %-8s %8s %s %s",
		PermissionString(e.Type, e.Perm),
		e.LinkCount,
		e.Owner,
		e.Group,
		r.formatSize(e.Size),
		FormatTime(e),
		r.Palette.Wrap(e.Color, e.Name),
	)
}

func (r *LongRenderer) formatSize(size int64) string {
	if r.HumanSizes {
		return units.HumanSize(float64(size))
	}
	return strconv.FormatInt(size, 10)
}

// FormatTime renders the modification time of e in local time, 12 bytes wide.
func FormatTime(e models.Entry) string {
	return e.ModTime.Local().Format(TimeLayout)
}

// PermissionString returns the 10-character mode string, e.g. "drwxr-x---".
// The type character is 'd' for directories, 'l' for symlinks and '-' otherwise.
func PermissionString(typ models.EntryType, perm os.FileMode) string {
	var buf [10]byte

	switch typ {
	case models.TypeDirectory:
		buf[0] = 'd'
	case models.TypeSymlink:
		buf[0] = 'l'
	default:
		buf[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}

	return string(buf[:])
}
