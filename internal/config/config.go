package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/capnet-labs/archdeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("timeout must be positive")
)

// DiscoveryName is the config file looked up in the working directory
// when no explicit config is given.
const DiscoveryName = ".archdeck.yaml"

// Field length limits.
const (
	MaxPathLength = 4096 // output and palette paths
)

// Config holds all configuration for deck generation.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Palette PaletteConfig `yaml:"palette"`
	Render  RenderConfig  `yaml:"render"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // destination file (empty = CLI default)
}

// PaletteConfig defines style palette options.
type PaletteConfig struct {
	Path string `yaml:"path"` // palette YAML file (empty = embedded palette)
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	HTMLOnly       bool `yaml:"htmlOnly"`       // skip PDF generation
	TimeoutSeconds int  `yaml:"timeoutSeconds"` // PDF generation timeout (0 = library default)
}

// Validate checks field lengths and value ranges. Called automatically
// by Load, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("palette.path", c.Palette.Path, MaxPathLength); err != nil {
		return err
	}
	if c.Render.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: render.timeoutSeconds is %d", ErrInvalidTimeout, c.Render.TimeoutSeconds)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: embedded palette,
// full PDF render, library default timeout.
func DefaultConfig() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return loadFile(configPath)
}

// Discover looks for the default config file in the working directory.
// A missing file is not an error: the zero config is returned so the
// CLI works without any setup. A present but malformed file is an
// error; it is never silently ignored.
func Discover() (*Config, error) {
	if !fileExists(DiscoveryName) {
		return DefaultConfig(), nil
	}
	return loadFile(DiscoveryName)
}

// loadFile reads, parses, and validates one config file.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/archdeck/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "archdeck", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
