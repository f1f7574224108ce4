package cli

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/classmap/internal/runner"
	"github.com/mvp-joe/classmap/internal/watcher"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print the class report and reprint it whenever a C# file changes",
		Long: `Watch prints the same report as parse for a directory, then keeps watching
it and prints a fresh report each time matching files are created, changed,
renamed or removed. Bursts of changes are collapsed into one refresh.

Example:
  classmap watch ./src --debounce 1s`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().Duration("debounce", watcher.DefaultDebounce, "Quiet period before reprinting")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	r := runner.New(cfg, nil)
	fd, err := r.Discovery(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	refresh := func() {
		if _, err := r.Run(ctx, []string{dir}, out); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("Report failed")
		}
	}
	refresh()

	fw, err := watcher.NewFileWatcher(dir, fd.Matches, watcher.WithDebounce(debounce))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Stop()

	if err := fw.Start(ctx, func(files []string) {
		log.WithFields(log.Fields{
			"files": len(files),
			"at":    time.Now().Format(time.TimeOnly),
		}).Info("Changes detected, refreshing report")
		refresh()
	}); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	log.WithField("dir", dir).Info("Watching for changes (Ctrl+C to stop)")
	<-ctx.Done()
	return nil
}
