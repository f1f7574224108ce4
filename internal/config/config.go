// Package config loads classmap configuration.
//
// Settings come from built-in defaults, an optional .classmap/config.yml in
// the directory being parsed, and CLASSMAP_* environment variables, in
// increasing priority. Command-line flags are applied on top by the cli
// package.
package config

// Config represents the complete classmap configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Filter  FilterConfig  `yaml:"filter" mapstructure:"filter"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Parser  ParserConfig  `yaml:"parser" mapstructure:"parser"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// PathsConfig defines which files to parse and which to ignore.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// FilterConfig toggles the member categories shown under each class.
type FilterConfig struct {
	Fields     bool `yaml:"fields" mapstructure:"fields"`
	Properties bool `yaml:"properties" mapstructure:"properties"`
	Methods    bool `yaml:"methods" mapstructure:"methods"`
	Structs    bool `yaml:"structs" mapstructure:"structs"`
}

// ExtractConfig controls how members are attributed to classes.
type ExtractConfig struct {
	Scope string `yaml:"scope" mapstructure:"scope"` // "descendants" or "direct"
}

// ParserConfig controls the C# parser.
type ParserConfig struct {
	Strict bool `yaml:"strict" mapstructure:"strict"` // fail files with syntax errors
}

// OutputConfig controls how the report is rendered.
type OutputConfig struct {
	Format     string `yaml:"format" mapstructure:"format"`           // "text" or "json"
	LineEnding string `yaml:"line_ending" mapstructure:"line_ending"` // "platform", "lf" or "crlf"
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // logrus level name
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: []string{
				"**/*.cs",
			},
			Ignore: []string{
				"**/bin/**",
				"**/obj/**",
				"**/.vs/**",
				".git/**",
				"packages/**",
				"node_modules/**",
			},
		},
		Filter: FilterConfig{
			Fields:     true,
			Properties: true,
			Methods:    true,
			Structs:    true,
		},
		Extract: ExtractConfig{
			Scope: "descendants",
		},
		Parser: ParserConfig{
			Strict: true,
		},
		Output: OutputConfig{
			Format:     "text",
			LineEnding: "platform",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
