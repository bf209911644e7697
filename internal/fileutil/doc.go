// Package fileutil collects the entries of one directory into an ordered
// models.Snapshot.
//
// # Collection
//
// Collector.Collect opens a directory once, reads every member name in a
// single pass and closes the handle on every exit path. Names that are empty
// or start with "." are dropped (this also removes "." and ".."). Every
// remaining name is resolved with lstat through a metadata.Resolver and
// classified with colorclass.Classify, so the color class is fixed on the
// entry before ordering and layout ever see it.
//
// # Error tolerance
//
// Failures are scoped to the smallest unit affected:
//   - The directory cannot be opened: Collect returns an error of kind
//     models.KindDirectoryUnavailable and no snapshot.
//   - Enumeration fails after opening: Collect returns an error of kind
//     models.KindVisitAborted and no snapshot.
//   - One entry cannot be resolved: the entry is left out and its error is
//     added to CollectResult.Errors; collection continues.
//
//	result, err := fileutil.NewCollector().Collect("/etc")
//	if err != nil {
//	    // directory skipped
//	}
//	for _, skipped := range result.Errors {
//	    log.Printf("  - %v", skipped)
//	}
//
// # Ordering
//
// The OS enumeration order is never relied upon. SortEntries orders a
// snapshot by byte-wise comparison of names, and it is applied the same way
// for every display mode.
package fileutil
