package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/classmap/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classmap",
	Short: "Classmap - list the classes declared in C# sources",
	Long: `Classmap parses C# source files and prints every class with its fields,
properties, methods and nested structs as an indented text report.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <dir>/.classmap/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration for target, a directory or a file
// whose directory is used, and configures logging from it.
func loadConfig(target string) (*config.Config, error) {
	var loader config.Loader
	if cfgFile != "" {
		loader = config.NewFileLoader(cfgFile)
	} else {
		loader = config.NewLoader(configRoot(target))
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configureLogging(cfg.Log.Level, verbose); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configRoot returns the directory whose .classmap folder configures target.
func configRoot(target string) string {
	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		return filepath.Dir(target)
	}
	return target
}

// configureLogging sends logrus output to stderr so reports on stdout stay clean.
func configureLogging(level string, verbose bool) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		log.SetLevel(log.DebugLevel)
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(lvl)
	return nil
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			log.Info("Interrupted, finishing up")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
