package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mvp-joe/classmap/internal/extractor"
	"github.com/mvp-joe/classmap/internal/syntax"
)

// Stats summarizes one driver run.
type Stats struct {
	FilesProcessed int
	FilesFailed    int
	Classes        int
	Entries        int
	Duration       time.Duration
}

// Observer is notified as the driver moves through the file list.
type Observer interface {
	OnFileProcessingStart(totalFiles int)
	OnFileProcessed(path string, err error)
	OnComplete(stats *Stats)
}

// Driver extracts a sequence of files one at a time and streams the results
// to a Sink in the order the files were given.
type Driver struct {
	parser    syntax.Parser
	extractor *extractor.Extractor
	filter    extractor.Filter
	observer  Observer
}

// NewDriver creates a driver. observer may be nil.
func NewDriver(parser syntax.Parser, ext *extractor.Extractor, filter extractor.Filter, observer Observer) *Driver {
	return &Driver{
		parser:    parser,
		extractor: ext,
		filter:    filter,
		observer:  observer,
	}
}

// Run processes files in order. A file that cannot be read, parsed or
// extracted is written to the sink as a failed result and the run
// continues. A parser that cannot load its grammar stops the run. Cancellation is checked between files; the results of files
// already processed stay in the sink. The sink is not closed.
func (d *Driver) Run(ctx context.Context, files []string, sink Sink) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	if d.observer != nil {
		d.observer.OnFileProcessingStart(len(files))
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		result := d.ExtractFile(ctx, path)
		if result.Err != nil && ctx.Err() != nil {
			// Interrupted mid-file: leave it out rather than report it as failed.
			stats.Duration = time.Since(start)
			return stats, ctx.Err()
		}
		if errors.Is(result.Err, syntax.ErrParserUnavailable) {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("cannot parse %s: %w", path, result.Err)
		}
		stats.FilesProcessed++
		if result.Err != nil {
			stats.FilesFailed++
			log.WithFields(log.Fields{
				"path":  path,
				"error": result.Err,
			}).Warn("Skipping file")
		} else {
			for _, e := range result.Entries {
				if e.Kind == extractor.TypeEntry {
					stats.Classes++
				}
			}
			stats.Entries += len(result.Entries)
		}

		if err := sink.WriteFile(result); err != nil {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("failed to write report for %s: %w", path, err)
		}

		if d.observer != nil {
			d.observer.OnFileProcessed(path, result.Err)
		}
	}

	stats.Duration = time.Since(start)
	if d.observer != nil {
		d.observer.OnComplete(stats)
	}
	return stats, nil
}

// ExtractFile parses and extracts a single file. Errors are returned in the
// result rather than as a separate value.
func (d *Driver) ExtractFile(ctx context.Context, path string) FileResult {
	unit, err := d.parser.ParseFile(ctx, path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	entries, err := d.extractor.Extract(unit, d.filter)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	log.WithFields(log.Fields{
		"path":    path,
		"entries": len(entries),
	}).Debug("Extracted file")

	return FileResult{Path: path, Entries: entries}
}
