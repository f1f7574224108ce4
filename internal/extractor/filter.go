package extractor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory indicates a category name outside Fields, Properties,
// Methods and Structs.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one of the member categories a Filter can enable.
type Category int

const (
	Fields Category = iota
	Properties
	Methods
	Structs
)

// Categories lists every category in report order.
var Categories = []Category{Fields, Properties, Methods, Structs}

func (c Category) String() string {
	switch c {
	case Fields:
		return "fields"
	case Properties:
		return "properties"
	case Methods:
		return "methods"
	case Structs:
		return "structs"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Filter is the set of categories enabled for an extraction run.
// The zero value enables nothing; use AllCategories for the default.
type Filter struct {
	Fields     bool
	Properties bool
	Methods    bool
	Structs    bool
}

// AllCategories returns a filter with every category enabled.
func AllCategories() Filter {
	return Filter{Fields: true, Properties: true, Methods: true, Structs: true}
}

// Enabled reports whether c is part of the filter.
func (f Filter) Enabled(c Category) bool {
	switch c {
	case Fields:
		return f.Fields
	case Properties:
		return f.Properties
	case Methods:
		return f.Methods
	case Structs:
		return f.Structs
	default:
		return false
	}
}

// ParseCategories builds a filter enabling exactly the named categories.
// Names are case-insensitive and may be singular ("field") or plural.
func ParseCategories(names []string) (Filter, error) {
	var f Filter
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "field", "fields":
			f.Fields = true
		case "property", "properties":
			f.Properties = true
		case "method", "methods":
			f.Methods = true
		case "struct", "structs":
			f.Structs = true
		default:
			return Filter{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
	}
	return f, nil
}
