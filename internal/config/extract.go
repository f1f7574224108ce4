package config

import (
	"github.com/mvp-joe/classmap/internal/extractor"
)

// ToFilter converts the filter section to an extractor.Filter.
func (c *Config) ToFilter() extractor.Filter {
	return extractor.Filter{
		Fields:     c.Filter.Fields,
		Properties: c.Filter.Properties,
		Methods:    c.Filter.Methods,
		Structs:    c.Filter.Structs,
	}
}

// ToScope converts the extract section to an extractor.Scope.
// The value is assumed to have passed Validate.
func (c *Config) ToScope() extractor.Scope {
	scope, _ := extractor.ParseScope(c.Extract.Scope)
	return scope
}
