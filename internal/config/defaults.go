package config

import (
	"fmt"

	"github.com/wizzomafizzo/commitlint/internal/commit"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"gopkg.in/yaml.v3"
)

const defaultHistoryKeep = 200

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Rules: Rules{
			Type: CaseRule{
				Enum: []string{
					"build", "chore", "ci", "docs", "feat", "fix",
					"perf", "refactor", "revert", "style", "test",
				},
				Case: constants.CaseLower,
			},
			Scope: CaseRule{
				Enum: []string{},
				Case: constants.CaseLower,
			},
			SubjectCase:         []string{constants.CaseSentence},
			SubjectEmpty:        false,
			SubjectFullStop:     ".",
			HeaderMaxLength:     72,
			HeaderMinLength:     0,
			BodyLeadingBlank:    true,
			BodyMaxLineLength:   100,
			FooterLeadingBlank:  true,
			FooterMaxLineLength: 100,
		},
		Parser: Parser{
			Pattern: commit.DefaultPattern,
			Correspondence: map[string]string{
				commit.FieldType:     commit.FieldType,
				commit.FieldScope:    commit.FieldScope,
				commit.FieldSubject:  commit.FieldSubject,
				commit.FieldBreaking: commit.FieldBreaking,
			},
		},
		Ignores: []string{},
		Logging: Logging{Level: "info"},
		History: History{Enabled: true, Keep: defaultHistoryKeep},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
