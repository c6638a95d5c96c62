// Package config defines the commitlint rule configuration and how it is
// loaded, discovered and validated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/commit"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"gopkg.in/yaml.v3"
)

// Config is an immutable snapshot of the rule set used for one validation run.
type Config struct {
	Parser  Parser   `yaml:"parser"`
	Ignores []string `yaml:"ignores" validate:"dive,regexp"`
	Logging Logging  `yaml:"logging"`
	Rules   Rules    `yaml:"rules"`
	History History  `yaml:"history"`
}

// Rules holds the parameters of every rule.
type Rules struct {
	SubjectFullStop     string   `yaml:"subject-full-stop"`
	Type                CaseRule `yaml:"type"`
	Scope               CaseRule `yaml:"scope"`
	SubjectCase         []string `yaml:"subject-case"`
	HeaderMaxLength     int      `yaml:"header-max-length" validate:"gte=0"`
	HeaderMinLength     int      `yaml:"header-min-length" validate:"gte=0,ltefield=HeaderMaxLength"`
	BodyMaxLineLength   int      `yaml:"body-max-line-length" validate:"gte=0"`
	FooterMaxLineLength int      `yaml:"footer-max-line-length" validate:"gte=0"`
	// SubjectEmpty allows headers with an empty subject.
	SubjectEmpty        bool     `yaml:"subject-empty"`
	BodyLeadingBlank    bool     `yaml:"body-leading-blank"`
	FooterLeadingBlank  bool     `yaml:"footer-leading-blank"`
}

// CaseRule restricts a header token to an enumeration and a case style.
// An empty enumeration allows any value.
type CaseRule struct {
	Case string   `yaml:"case"`
	Enum []string `yaml:"enum"`
}

// Parser configures header field extraction. A pattern that does not compile
// is accepted here and reported as a violation of every validated message.
type Parser struct {
	Correspondence map[string]string `yaml:"correspondence"`
	Pattern        string            `yaml:"pattern" validate:"required"`
}

// Logging configures the log level.
type Logging struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// History configures recording of validation runs.
type History struct {
	Keep    int  `yaml:"keep" validate:"gte=0"`
	Enabled bool `yaml:"enabled"`
}

// CommitParser returns the extractor settings for this configuration.
func (c *Config) CommitParser() commit.Parser {
	return commit.Parser{
		Pattern:        c.Parser.Pattern,
		Correspondence: c.Parser.Correspondence,
	}
}

// Load reads the config file at path, layering it over the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadFromYAML decodes data over the defaults and validates the result.
func LoadFromYAML(data []byte) (*Config, error) {
	config := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Discover returns the first config file found in dir.
func Discover(fs afero.Fs, dir string) (string, bool) {
	for _, name := range constants.ConfigFilenames {
		path := filepath.Join(dir, name)
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Resolve loads the config at path, or the one discovered in dir when path is
// empty. When nothing is found the defaults are returned with an empty source.
func Resolve(fs afero.Fs, path, dir string) (config *Config, source string, err error) {
	if path == "" {
		found, ok := Discover(fs, dir)
		if !ok {
			return Default(), "", nil
		}
		path = found
	}

	if _, statErr := fs.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return nil, "", fmt.Errorf("config file %s not found", path)
	}

	config, err = Load(fs, path)
	if err != nil {
		return nil, "", err
	}
	return config, path, nil
}
