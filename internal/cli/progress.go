package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/classmap/internal/report"
)

// CLIProgressReporter draws a per-file progress bar and a closing summary.
type CLIProgressReporter struct {
	w       io.Writer
	quiet   bool
	fileBar *progressbar.ProgressBar
}

var _ report.Observer = (*CLIProgressReporter)(nil)

// NewCLIProgressReporter creates a reporter writing to w, usually stderr.
func NewCLIProgressReporter(w io.Writer, quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{w: w, quiet: quiet}
}

func (c *CLIProgressReporter) OnFileProcessingStart(totalFiles int) {
	if c.quiet || totalFiles == 0 {
		return
	}

	w := c.w
	c.fileBar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Parsing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

func (c *CLIProgressReporter) OnFileProcessed(path string, err error) {
	if c.quiet || c.fileBar == nil {
		return
	}
	_ = c.fileBar.Add(1)
}

func (c *CLIProgressReporter) OnComplete(stats *report.Stats) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		_ = c.fileBar.Finish()
		c.fileBar = nil
	}

	fmt.Fprintf(c.w, "✓ Parsed %s files in %.1fs\n",
		formatNumber(stats.FilesProcessed), stats.Duration.Seconds())
	fmt.Fprintf(c.w, "  Classes: %s\n", formatNumber(stats.Classes))
	fmt.Fprintf(c.w, "  Entries: %s\n", formatNumber(stats.Entries))
	if stats.FilesFailed > 0 {
		fmt.Fprintf(c.w, "  Failed:  %s\n", formatNumber(stats.FilesFailed))
	}
}

// formatNumber formats integer with thousand separators.
// Examples: 1234 -> "1,234", 1234567 -> "1,234,567"
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + fmt.Sprintf(",%03d", n%1000)
}
