package fileutil

import (
	"sort"

	"github.com/harrison/lsv/internal/models"
)

// SortEntries orders entries by byte-wise ascending name. The sort is stable,
// so sorting an already sorted slice leaves it unchanged.
func SortEntries(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
