package report

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/mvp-joe/classmap/internal/extractor"
)

// Indent prefixes every member line.
const Indent = "\t"

// ErrUnknownLineEnding indicates an unrecognized line ending name.
var ErrUnknownLineEnding = errors.New("unknown line ending")

// FormatEntry renders a single entry as one report line, without a
// line terminator.
func FormatEntry(e extractor.Entry) string {
	switch e.Kind {
	case extractor.TypeEntry:
		return "Class: " + e.Name
	case extractor.FieldEntry:
		return fmt.Sprintf("%sField: %s, Type: %s", Indent, e.Name, e.Type)
	case extractor.PropertyEntry:
		return fmt.Sprintf("%sProperty: %s, Type: %s", Indent, e.Name, e.Type)
	case extractor.MethodEntry:
		return fmt.Sprintf("%sMethod: %s, Return Type: %s", Indent, e.Name, e.Type)
	case extractor.StructEntry:
		return fmt.Sprintf("%sStruct: %s", Indent, e.Name)
	default:
		return fmt.Sprintf("%s%s: %s", Indent, e.Kind, e.Name)
	}
}

// Format renders entries in order, one line per entry.
func Format(entries []extractor.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}
	return lines
}

// FormatError renders the report line recorded for a file that failed.
func FormatError(path string, err error) string {
	return fmt.Sprintf("Error: %s: %v", path, err)
}

// LineSeparator resolves a line ending name: "platform" (or empty), "lf"
// or "crlf".
func LineSeparator(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "platform":
		if runtime.GOOS == "windows" {
			return "\r\n", nil
		}
		return "\n", nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLineEnding, name)
	}
}
