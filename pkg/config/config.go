// Package config loads netonto settings from an optional YAML file,
// NETONTO_* environment variables and built-in defaults, in increasing
// order of precedence: defaults, file, environment.
//
// Config file locations (first found wins):
//  1. the path passed to Load
//  2. ./netonto.yaml
//  3. ~/.config/netonto/netonto.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
	"github.com/dd0wney/cluso-netontology/pkg/validation"
)

const (
	// EnvPrefix prefixes every environment override, e.g. NETONTO_LOG_LEVEL
	EnvPrefix = "NETONTO"
	// ConfigName is the file name searched for, without extension
	ConfigName = "netonto"
	// ConfigDirName is the directory under ~/.config
	ConfigDirName = "netonto"
)

// Config is the complete netonto configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Output     OutputConfig     `mapstructure:"output"`
	Validation ValidationConfig `mapstructure:"validation"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// OutputConfig controls how generated graphs are written
type OutputConfig struct {
	Format        string `mapstructure:"format"` // turtle or ntriples
	IncludeSchema bool   `mapstructure:"include_schema"`
}

// ValidationConfig selects the shapes and ontology used by validate.
// Empty paths select the packaged shapes and ontology.
type ValidationConfig struct {
	ShapesPath   string `mapstructure:"shapes_path"`
	OntologyPath string `mapstructure:"ontology_path"`
	Inference    bool   `mapstructure:"inference"`
}

// MetricsConfig enables the Prometheus textfile dump
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // empty disables
}

// SetDefaults registers every key with its default value. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", string(rdf.FormatTurtle))
	v.SetDefault("output.include_schema", true)
	v.SetDefault("validation.shapes_path", "")
	v.SetDefault("validation.ontology_path", "")
	v.SetDefault("validation.inference", true)
	v.SetDefault("metrics.textfile", "")
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg := &Config{}
	// defaults alone always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration. An explicit path must exist; without one the
// standard locations are searched and a missing file is not an error.
// It returns the config and the file used, empty when none was read.
func Load(path string) (*Config, string, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller-supplied viper instance
func LoadWith(v *viper.Viper, path string) (*Config, string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigDirName))
		}
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, used, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, used, err
	}
	return cfg, used, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	return validation.NewConfigValidator("config").
		OneOf("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}).
		OneOf("log.format", c.Log.Format, []string{"json", "console"}).
		Custom("output.format", func() error {
			_, err := rdf.ParseFormat(c.Output.Format)
			return err
		}).
		ReadableFile("validation.shapes_path", c.Validation.ShapesPath).
		ReadableFile("validation.ontology_path", c.Validation.OntologyPath).
		Validate()
}

// LogLevel returns the configured logging level
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}

// OutputFormat returns the configured RDF output format
func (c *Config) OutputFormat() rdf.Format {
	f, err := rdf.ParseFormat(c.Output.Format)
	if err != nil {
		return rdf.FormatTurtle
	}
	return f
}
