// Package engine drives a listing: for each root it collects, orders and
// renders one directory at a time, and with recursion enabled it descends
// depth-first into directory entries in name order.
//
// Every failure is scoped to the smallest unit it affects. An unreadable
// entry is dropped from its snapshot, an unreadable directory is skipped,
// and in both cases the listing continues with the next entry, sibling or
// root. The only error Run returns is a failure to write the listing itself.
package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/harrison/lsv/internal/colorclass"
	"github.com/harrison/lsv/internal/display"
	"github.com/harrison/lsv/internal/fileutil"
	"github.com/harrison/lsv/internal/metadata"
	"github.com/harrison/lsv/internal/models"
)

// HeaderFormat precedes every directory listing when headers are shown.
const HeaderFormat = "Directory listing of %s:\n"

// Logger receives diagnostics. It is implemented by logger.ConsoleLogger.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
	LogError(message string)
}

// Collector produces the snapshot of one directory.
type Collector interface {
	Collect(dir string) (*fileutil.CollectResult, error)
}

// Stats counts what happened during Run.
type Stats struct {
	Directories        int // Directories listed successfully
	Entries            int // Entries rendered across all directories
	SkippedDirectories int // Directories that could not be opened
	SkippedEntries     int // Entries dropped because their metadata was unavailable
	AbortedVisits      int // Directories whose enumeration failed after opening
}

// Engine lists directories according to a fixed set of options.
type Engine struct {
	opts      models.Options
	out       io.Writer
	collector Collector
	renderer  display.Renderer
	logger    Logger
	ids       *metadata.IdentityCache
	stats     Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollector replaces the filesystem collector.
func WithCollector(c Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// WithLogger sets the diagnostics logger. Without one, diagnostics are discarded.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithIdentityCache sets the owner and group name cache used by the default
// collector. It has no effect together with WithCollector.
func WithIdentityCache(ids *metadata.IdentityCache) Option {
	return func(e *Engine) {
		e.ids = ids
	}
}

// WithRenderer replaces the renderer chosen from the options.
func WithRenderer(r display.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// New creates an Engine writing listings to out.
func New(opts models.Options, out io.Writer, options ...Option) *Engine {
	e := &Engine{
		opts:   opts,
		out:    out,
		logger: discardLogger{},
	}
	for _, opt := range options {
		opt(e)
	}
	if e.collector == nil {
		if e.ids == nil {
			e.ids = metadata.NewIdentityCache()
		}
		// Unresolvable ids only ever show up at trace level.
		e.ids.SetFailureHandler(func(err error) { e.logger.LogTrace(err.Error()) })
		e.collector = fileutil.NewCollectorWith(fileutil.OSLister{}, metadata.NewResolverWithIdentities(e.ids))
	}
	if e.renderer == nil {
		e.renderer = display.Select(opts, colorclass.NewPalette(opts.Color))
	}
	return e
}

// Stats returns the counters accumulated by Run.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Run lists every root in order. An empty roots slice lists ".".
func (e *Engine) Run(roots []string) error {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	for _, root := range roots {
		if err := e.walk(root); err != nil {
			return err
		}
	}

	e.logger.LogDebug(fmt.Sprintf("listed %d directories, %d entries; skipped %d directories, %d entries; aborted %d",
		e.stats.Directories, e.stats.Entries, e.stats.SkippedDirectories, e.stats.SkippedEntries, e.stats.AbortedVisits))
	return nil
}

// ListDirectory renders a single directory without descending into it and
// returns the paths of its directory entries in snapshot order. The snapshot
// itself does not outlive this call.
func (e *Engine) ListDirectory(path string) ([]string, error) {
	bw := bufio.NewWriter(e.out)
	headers := e.opts.ShowHeaders()

	if headers {
		fmt.Fprintf(bw, HeaderFormat, path)
		// Flush so the header precedes any diagnostic about this directory.
		if err := bw.Flush(); err != nil {
			return nil, fmt.Errorf("failed to write header for %s: %w", path, err)
		}
	}

	var children []string
	result, err := e.collector.Collect(path)
	if err != nil {
		e.reportVisitError(path, err)
	} else {
		for _, skipped := range result.Errors {
			e.stats.SkippedEntries++
			e.logger.LogWarn(skipped.Error())
		}

		if err := e.renderer.Render(bw, result.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to write listing of %s: %w", path, err)
		}

		e.stats.Directories++
		e.stats.Entries += result.Snapshot.Len()
		for _, dir := range result.Snapshot.Directories() {
			children = append(children, dir.Path)
		}
	}

	if headers {
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write listing of %s: %w", path, err)
	}

	return children, nil
}

// reportVisitError logs a directory-level failure at the severity of its kind.
func (e *Engine) reportVisitError(path string, err error) {
	kind, ok := models.KindOf(err)
	switch {
	case ok && kind == models.KindDirectoryUnavailable:
		e.stats.SkippedDirectories++
		e.logger.LogWarn(fmt.Sprintf("cannot open directory: %v", err))
	case ok && kind == models.KindVisitAborted:
		e.stats.AbortedVisits++
		e.logger.LogError(fmt.Sprintf("listing aborted: %v", err))
	default:
		e.stats.SkippedDirectories++
		e.logger.LogError(fmt.Sprintf("cannot list %s: %v", path, err))
	}
}

type discardLogger struct{}

func (discardLogger) LogTrace(string) {}
func (discardLogger) LogDebug(string) {}
func (discardLogger) LogWarn(string)  {}
func (discardLogger) LogError(string) {}
