// Package config provides configuration management for bbc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// TagConfig describes a custom tag with fixed markup.
type TagConfig struct {
	Open            string   `yaml:"open"`
	Close           string   `yaml:"close"`
	HideContent     bool     `yaml:"hide_content,omitempty"`
	NoParse         bool     `yaml:"no_parse,omitempty"`
	StripLineBreaks bool     `yaml:"strip_line_breaks,omitempty"`
	AllowedChildren []string `yaml:"allowed_children,omitempty"`
	AllowedParents  []string `yaml:"allowed_parents,omitempty"`
}

// Config holds the bbc configuration.
type Config struct {
	RemoveMisalignedTags bool                 `yaml:"remove_misaligned_tags,omitempty"`
	KeepNewlines         bool                 `yaml:"keep_newlines,omitempty"`
	Sanitize             bool                 `yaml:"sanitize,omitempty"`
	OutputFormat         string               `yaml:"output_format,omitempty"`
	MaxDepth             int                  `yaml:"max_depth,omitempty"`
	MaxTags              int                  `yaml:"max_tags,omitempty"`
	Aliases              map[string]string    `yaml:"aliases,omitempty"`
	Tags                 map[string]TagConfig `yaml:"tags,omitempty"`
}

var validOutputFormats = []string{"table", "json", "plain"}

// Validate checks that all fields hold usable values. Tag definitions are
// validated when the engine is built.
func (c *Config) Validate() error {
	if c.OutputFormat != "" {
		valid := false
		for _, f := range validOutputFormats {
			if c.OutputFormat == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("output_format must be one of %v", validOutputFormats)
		}
	}
	if c.MaxDepth < 0 {
		return errors.New("max_depth must not be negative")
	}
	if c.MaxTags < 0 {
		return errors.New("max_tags must not be negative")
	}
	for alias, target := range c.Aliases {
		if alias == "" || target == "" {
			return errors.New("aliases must map a non-empty name to a non-empty tag")
		}
	}
	return nil
}

// EngineOptions converts the tag, alias and limit settings into options for
// bbcode.New. Tags are registered before aliases so an alias may point at a
// custom tag.
func (c *Config) EngineOptions() []bbcode.Option {
	var opts []bbcode.Option

	if len(c.Tags) > 0 {
		names := make([]string, 0, len(c.Tags))
		for name := range c.Tags {
			names = append(names, name)
		}
		sort.Strings(names)

		tags := make([]*bbcode.Tag, 0, len(names))
		for _, name := range names {
			tc := c.Tags[name]
			tags = append(tags, &bbcode.Tag{
				Name:            name,
				Renderer:        bbcode.StaticTag(tc.Open, tc.Close),
				HideContent:     tc.HideContent,
				NoParse:         tc.NoParse,
				StripLineBreaks: tc.StripLineBreaks,
				AllowedChildren: tc.AllowedChildren,
				AllowedParents:  tc.AllowedParents,
			})
		}
		opts = append(opts, bbcode.WithTags(tags...))
	}

	aliases := make([]string, 0, len(c.Aliases))
	for alias := range c.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		opts = append(opts, bbcode.WithAlias(alias, c.Aliases[alias]))
	}

	if c.MaxDepth > 0 {
		opts = append(opts, bbcode.WithMaxDepth(c.MaxDepth))
	}
	if c.MaxTags > 0 {
		opts = append(opts, bbcode.WithMaxTags(c.MaxTags))
	}

	return opts
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set to a valid value.
func (c *Config) LoadFromEnv() {
	if v, ok := getEnvBool("BBC_REMOVE_MISALIGNED"); ok {
		c.RemoveMisalignedTags = v
	}
	if v, ok := getEnvBool("BBC_KEEP_NEWLINES"); ok {
		c.KeepNewlines = v
	}
	if v, ok := getEnvBool("BBC_SANITIZE"); ok {
		c.Sanitize = v
	}
	if output := os.Getenv("BBC_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
}

// EnvVars lists the environment variables LoadFromEnv reads.
var EnvVars = []string{"BBC_REMOVE_MISALIGNED", "BBC_KEEP_NEWLINES", "BBC_SANITIZE", "BBC_OUTPUT"}

// getEnvBool parses a boolean env var. ok is false when it is unset or not a boolean.
func getEnvBool(name string) (value bool, ok bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bbc", "config.yml")
	}

	// Fall back to ~/.config/bbc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bbc", "config.yml")
	}

	return filepath.Join(home, ".config", "bbc", "config.yml")
}

// PathOrDefault returns path, or DefaultConfigPath when path is empty.
func PathOrDefault(path string) string {
	if path != "" {
		return path
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file yields an empty config; a file that exists but cannot be
// parsed is an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
