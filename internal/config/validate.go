package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mvp-joe/classmap/internal/extractor"
	"github.com/mvp-joe/classmap/internal/report"
)

var (
	// ErrEmptyInclude indicates no include patterns are configured
	ErrEmptyInclude = errors.New("empty include patterns")

	// ErrInvalidScope indicates an unsupported extraction scope
	ErrInvalidScope = errors.New("invalid extraction scope")

	// ErrInvalidFormat indicates an unsupported output format
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLineEnding indicates an unsupported line ending
	ErrInvalidLineEnding = errors.New("invalid line ending")

	// ErrInvalidLogLevel indicates an unknown log level
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if _, err := extractor.ParseScope(cfg.Extract.Scope); err != nil {
		errs = append(errs, fmt.Errorf("%w: must be 'descendants' or 'direct', got '%s'", ErrInvalidScope, cfg.Extract.Scope))
	}

	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidLogLevel, cfg.Log.Level))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	for _, pattern := range cfg.Include {
		if strings.TrimSpace(pattern) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: at least one include pattern required", ErrEmptyInclude)
}

func validateOutput(cfg *OutputConfig) error {
	var errs []error

	switch cfg.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: must be 'text' or 'json', got '%s'", ErrInvalidFormat, cfg.Format))
	}

	if _, err := report.LineSeparator(cfg.LineEnding); err != nil {
		errs = append(errs, fmt.Errorf("%w: must be 'platform', 'lf' or 'crlf', got '%s'", ErrInvalidLineEnding, cfg.LineEnding))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
// Sentinels stay reachable through errors.Is.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return &validationError{
		msg:  fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - ")),
		errs: errs,
	}
}

type validationError struct {
	msg  string
	errs []error
}

func (e *validationError) Error() string   { return e.msg }
func (e *validationError) Unwrap() []error { return e.errs }
