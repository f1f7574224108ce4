package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mvp-joe/classmap/internal/extractor"
)

// ErrUnknownFormat indicates an unrecognized output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// FileResult is the outcome of extracting one file.
type FileResult struct {
	Path    string
	Entries []extractor.Entry
	Err     error
}

// Sink receives file results in enumeration order.
type Sink interface {
	// WriteFile appends one file's result to the report.
	WriteFile(result FileResult) error

	// Close flushes anything buffered. It does not close the underlying writer.
	Close() error
}

// NewSink creates a sink for the named format ("text" or "json").
func NewSink(format string, w io.Writer, lineSeparator string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewTextSink(w, lineSeparator), nil
	case "json":
		return NewJSONSink(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// TextSink writes the indented line report.
type TextSink struct {
	w   io.Writer
	sep string
}

// NewTextSink creates a text sink terminating every line with sep.
func NewTextSink(w io.Writer, sep string) *TextSink {
	if sep == "" {
		sep = "\n"
	}
	return &TextSink{w: w, sep: sep}
}

func (s *TextSink) WriteFile(result FileResult) error {
	if result.Err != nil {
		return s.writeLine(FormatError(result.Path, result.Err))
	}
	for _, line := range Format(result.Entries) {
		if err := s.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *TextSink) writeLine(line string) error {
	_, err := io.WriteString(s.w, line+s.sep)
	return err
}

func (s *TextSink) Close() error {
	return nil
}

// JSONSink buffers results and writes a single JSON document on Close.
type JSONSink struct {
	w     io.Writer
	files []FileReport
}

// Document is the JSON report shape.
type Document struct {
	Files []FileReport `json:"files"`
}

// FileReport is one file's section of a Document.
type FileReport struct {
	Path    string            `json:"path"`
	Entries []extractor.Entry `json:"entries"`
	Error   string            `json:"error,omitempty"`
}

// NewJSONSink creates a JSON sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w, files: []FileReport{}}
}

func (s *JSONSink) WriteFile(result FileResult) error {
	f := FileReport{Path: result.Path, Entries: result.Entries}
	if f.Entries == nil {
		f.Entries = []extractor.Entry{}
	}
	if result.Err != nil {
		f.Error = result.Err.Error()
	}
	s.files = append(s.files, f)
	return nil
}

func (s *JSONSink) Close() error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Files: s.files}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
