// Package runner wires configuration, file discovery, parsing and report
// rendering into a single folder-to-report pass.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mvp-joe/classmap/internal/config"
	"github.com/mvp-joe/classmap/internal/discovery"
	"github.com/mvp-joe/classmap/internal/extractor"
	"github.com/mvp-joe/classmap/internal/report"
	"github.com/mvp-joe/classmap/internal/syntax"
)

// Runner produces reports for directories and files.
type Runner struct {
	cfg      *config.Config
	parser   syntax.Parser
	observer report.Observer
}

// New creates a runner. observer may be nil.
func New(cfg *config.Config, observer report.Observer) *Runner {
	return &Runner{
		cfg:      cfg,
		parser:   syntax.NewCSharpParser(syntax.WithStrict(cfg.Parser.Strict)),
		observer: observer,
	}
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// Discovery returns a file discovery for dir using the configured patterns.
func (r *Runner) Discovery(dir string) (*discovery.FileDiscovery, error) {
	return discovery.New(dir, r.cfg.Paths.Include, r.cfg.Paths.Ignore)
}

// Files expands targets into the ordered list of files to parse.
// Directories are walked with the configured patterns; files are taken as
// given, whatever their extension.
func (r *Runner) Files(targets []string) ([]string, error) {
	files := []string{}
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", target, err)
		}

		if !info.IsDir() {
			files = append(files, target)
			continue
		}

		fd, err := r.Discovery(target)
		if err != nil {
			return nil, err
		}
		found, err := fd.Discover()
		if err != nil {
			return nil, fmt.Errorf("failed to discover files in %s: %w", target, err)
		}
		log.WithFields(log.Fields{"dir": target, "files": len(found)}).Debug("Discovered source files")
		files = append(files, found...)
	}
	return files, nil
}

// Run writes the report for targets to w in the configured format.
func (r *Runner) Run(ctx context.Context, targets []string, w io.Writer) (*report.Stats, error) {
	files, err := r.Files(targets)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files, w)
}

// RunFiles writes the report for an explicit, already ordered file list.
func (r *Runner) RunFiles(ctx context.Context, files []string, w io.Writer) (*report.Stats, error) {
	sep, err := report.LineSeparator(r.cfg.Output.LineEnding)
	if err != nil {
		return nil, err
	}
	sink, err := report.NewSink(r.cfg.Output.Format, w, sep)
	if err != nil {
		return nil, err
	}

	driver := report.NewDriver(r.parser, extractor.New(r.cfg.ToScope()), r.cfg.ToFilter(), r.observer)
	stats, runErr := driver.Run(ctx, files, sink)

	// Flush what was gathered even when interrupted.
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return stats, runErr
}
