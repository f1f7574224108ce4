package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mvp-joe/classmap/internal/config"
	"github.com/mvp-joe/classmap/internal/runner"
)

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [dir | files...]",
		Short: "Print the classes declared in C# files",
		Long: `Parse walks a directory (default: the current one) or takes an explicit list
of files, and prints one section per class:

  Class: Foo
  	Field: Bar, Type: int
  	Property: Baz, Type: string
  	Method: Qux, Return Type: void
  	Struct: Inner

Files that cannot be read or parsed are reported as "Error: <path>: <reason>"
lines and the remaining files are still processed.

Examples:
  # Report every .cs file below the current directory
  classmap parse

  # Only methods, written to a file
  classmap parse ./src --fields=false --properties=false --structs=false -o report.txt

  # Members of nested types are not listed under their outer class
  classmap parse --scope direct

  # Machine-readable output
  classmap parse --format json
`,
		RunE: runParse,
	}

	flags := cmd.Flags()
	flags.Bool("fields", true, "Include fields")
	flags.Bool("properties", true, "Include properties")
	flags.Bool("methods", true, "Include methods")
	flags.Bool("structs", true, "Include nested structs")
	flags.String("scope", "", "Member scope: descendants or direct")
	flags.Bool("strict", true, "Treat files with syntax errors as failures")
	flags.String("format", "", "Output format: text or json")
	flags.String("line-ending", "", "Line ending: platform, lf or crlf")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.BoolP("quiet", "q", false, "Disable progress output")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	targets := args
	if len(targets) == 0 {
		targets = []string{"."}
	}

	cfg, err := loadConfig(targets[0])
	if err != nil {
		return err
	}
	if err := applyParseFlags(cmd.Flags(), cfg); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if outputPath == "" && cfg.Output.Format == "json" {
		quiet = true
	}
	progress := NewCLIProgressReporter(cmd.ErrOrStderr(), quiet)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	if _, err := runner.New(cfg, progress).Run(ctx, targets, out); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("parse cancelled")
		}
		return err
	}
	return nil
}

// applyParseFlags overrides cfg with the flags given on the command line.
// Flags left at their defaults do not override config or environment.
func applyParseFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	bools := map[string]*bool{
		"fields":     &cfg.Filter.Fields,
		"properties": &cfg.Filter.Properties,
		"methods":    &cfg.Filter.Methods,
		"structs":    &cfg.Filter.Structs,
		"strict":     &cfg.Parser.Strict,
	}
	for name, dst := range bools {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	strs := map[string]*string{
		"scope":       &cfg.Extract.Scope,
		"format":      &cfg.Output.Format,
		"line-ending": &cfg.Output.LineEnding,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
