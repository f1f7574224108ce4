package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CLASSMAP"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
// The config file is looked up in rootDir/.classmap.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader reading an explicit config file instead of
// searching rootDir/.classmap. A missing explicit file is an error.
func NewFileLoader(configFile string) Loader {
	return &loader{
		configFile: configFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CLASSMAP_*)
// 2. Config file (.classmap/config.yml or .classmap/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".classmap"))
	}

	// CLASSMAP_FILTER_FIELDS=false, CLASSMAP_OUTPUT_FORMAT=json, ...
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"filter.fields",
		"filter.properties",
		"filter.methods",
		"filter.structs",
		"extract.scope",
		"parser.strict",
		"output.format",
		"output.line_ending",
		"log.level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("filter.fields", defaults.Filter.Fields)
	v.SetDefault("filter.properties", defaults.Filter.Properties)
	v.SetDefault("filter.methods", defaults.Filter.Methods)
	v.SetDefault("filter.structs", defaults.Filter.Structs)

	v.SetDefault("extract.scope", defaults.Extract.Scope)
	v.SetDefault("parser.strict", defaults.Parser.Strict)

	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.line_ending", defaults.Output.LineEnding)

	v.SetDefault("log.level", defaults.Log.Level)
}
