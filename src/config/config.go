package config

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/eriklarko/proplogic/src/boolexpr"
)

const DefaultPath = ".proplogic.yaml"

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// CSV file with one `label,value` record per variable
	BindingsFile string `yaml:"bindings-file,omitempty"`
	// truth tables are written here as CSV when set
	TruthTableFile string `yaml:"truth-table-file,omitempty"`

	Color    string `yaml:"color,omitempty"`
	LogLevel string `yaml:"log-level,omitempty"`

	Path string `yaml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
		Path:     DefaultPath,
	}
}

// LoadConfig reads the yaml config file at path. If the file doesn't exist the
// returned error satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		// not wrapped, os.IsNotExist doesn't unwrap errors
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("color must be one of %s, %s or %s, got '%s'", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured log level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log-level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

// Write stores the config as yaml at c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of files that already exist
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions of config file %s: %w", c.Path, err)
	}
	return nil
}

// WriteBindings writes the bindings to the bindings file, one `label,value`
// record per variable, sorted by label.
func (c *Config) WriteBindings(bindings boolexpr.Bindings) error {
	absPath, err := filepath.Abs(c.BindingsFile)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = c.BindingsFile
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	labels := lo.Keys(bindings)
	slices.Sort(labels)
	for _, label := range labels {
		record := []string{string(label), strconv.FormatBool(bindings[label])}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", absPath, err)
	}
	return nil
}

// ReadBindings reads the bindings file written by WriteBindings.
func (c *Config) ReadBindings() (boolexpr.Bindings, error) {
	absPath, err := filepath.Abs(c.BindingsFile)
	if err != nil {
		absPath = c.BindingsFile
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", absPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from file %s: %w", absPath, err)
	}

	bindings := make(boolexpr.Bindings)
	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v: expected 2 fields, got %d", record, len(record))
		}

		label, size := utf8.DecodeRuneInString(record[0])
		if label == utf8.RuneError || size != len(record[0]) {
			return nil, fmt.Errorf("invalid variable '%s': variables are a single character", record[0])
		}

		value, err := strconv.ParseBool(record[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse boolean %s: %w", record[1], err)
		}

		bindings[label] = value
	}

	return bindings, nil
}
