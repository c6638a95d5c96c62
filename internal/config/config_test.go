package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/commitlint/internal/commit"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, []string{
		"build", "chore", "ci", "docs", "feat", "fix",
		"perf", "refactor", "revert", "style", "test",
	}, cfg.Rules.Type.Enum)
	assert.Equal(t, "lowercase", cfg.Rules.Type.Case)
	assert.Empty(t, cfg.Rules.Scope.Enum)
	assert.Equal(t, "lowercase", cfg.Rules.Scope.Case)
	assert.Equal(t, []string{"sentence-case"}, cfg.Rules.SubjectCase)
	assert.False(t, cfg.Rules.SubjectEmpty)
	assert.Equal(t, ".", cfg.Rules.SubjectFullStop)
	assert.Equal(t, 72, cfg.Rules.HeaderMaxLength)
	assert.Equal(t, 0, cfg.Rules.HeaderMinLength)
	assert.True(t, cfg.Rules.BodyLeadingBlank)
	assert.Equal(t, 100, cfg.Rules.BodyMaxLineLength)
	assert.True(t, cfg.Rules.FooterLeadingBlank)
	assert.Equal(t, 100, cfg.Rules.FooterMaxLineLength)
	assert.Equal(t, commit.DefaultPattern, cfg.Parser.Pattern)
	assert.Empty(t, cfg.Ignores)
	require.NoError(t, cfg.Validate())
}

func TestDefaultReturnsFreshValues(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Rules.Type.Enum[0] = "changed"

	assert.Equal(t, "build", Default().Rules.Type.Enum[0])
}

func TestLoadFromYAMLKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromYAML([]byte(`
rules:
  header-max-length: 50
  scope:
    enum: [api, db]
ignores:
  - "^Merge branch"
`))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Rules.HeaderMaxLength)
	assert.Equal(t, []string{"api", "db"}, cfg.Rules.Scope.Enum)
	assert.Equal(t, "lowercase", cfg.Rules.Scope.Case)
	assert.Len(t, cfg.Rules.Type.Enum, 11)
	assert.Equal(t, 100, cfg.Rules.BodyMaxLineLength)
	assert.Equal(t, []string{"^Merge branch"}, cfg.Ignores)
	assert.Equal(t, "type", cfg.Parser.Correspondence["type"])
}

func TestLoadFromYAMLEmptyDocument(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "rules:\n  header-max-lenght: 10\n",
			wantErr: "header-max-lenght",
		},
		{
			name:    "negative length",
			yaml:    "rules:\n  body-max-line-length: -1\n",
			wantErr: "rules.body-max-line-length: must be at least 0",
		},
		{
			name:    "min above max",
			yaml:    "rules:\n  header-max-length: 10\n  header-min-length: 20\n",
			wantErr: "rules.header-min-length: must not exceed header-max-length",
		},
		{
			name:    "invalid ignore",
			yaml:    "ignores: ['([a-z']\n",
			wantErr: "invalid regex pattern",
		},
		{
			name:    "empty pattern",
			yaml:    "parser:\n  pattern: ''\n",
			wantErr: "parser.pattern: is required",
		},
		{
			name:    "bad log level",
			yaml:    "logging:\n  level: loud\n",
			wantErr: "logging.level: must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFromYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Empty(t, cfg.Warnings())

	cfg.Rules.Type.Case = "screaming"
	cfg.Rules.SubjectCase = []string{"sentence-case", "title-case"}
	cfg.Parser.Correspondence["kind"] = "type"

	assert.Equal(t, []string{
		"parser.correspondence: unknown field 'kind'",
		"rules.subject-case: unknown case style 'title-case' is never enforced",
		"rules.type.case: unknown case style 'screaming' is never enforced",
	}, cfg.Warnings())
	require.NoError(t, cfg.Validate())
}

func TestWarningsInvalidPattern(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromYAML([]byte("parser:\n  pattern: '^(?P<type>\\w+'\n"))
	require.NoError(t, err)

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "parser.pattern: invalid header pattern")
	assert.Contains(t, warnings[0], "every message will fail")
}

func TestRegexpValidation(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { newValidator() })
	require.NoError(t, validate.Var(`^Merge`, "regexp"))
	require.Error(t, validate.Var("([", "regexp"))
}

func TestDefaultConfigYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := DefaultConfigYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "header-max-length: 72")

	cfg, err := LoadFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("defaults when nothing found", func(t *testing.T) {
		t.Parallel()

		cfg, source, err := Resolve(afero.NewMemMapFs(), "", "/repo")
		require.NoError(t, err)
		assert.Empty(t, source)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("discovers in order", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/repo/.commitlint.yml", []byte("rules:\n  header-max-length: 60\n"), 0o600))
		require.NoError(t, afero.WriteFile(fs, "/repo/commitlint.yaml", []byte("rules:\n  header-max-length: 50\n"), 0o600))

		cfg, source, err := Resolve(fs, "", "/repo")
		require.NoError(t, err)
		assert.Equal(t, "/repo/commitlint.yaml", source)
		assert.Equal(t, 50, cfg.Rules.HeaderMaxLength)
	})

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/lint.yml", []byte("ignores: ['^WIP']\n"), 0o600))

		cfg, source, err := Resolve(fs, "/etc/lint.yml", "/repo")
		require.NoError(t, err)
		assert.Equal(t, "/etc/lint.yml", source)
		assert.Equal(t, []string{"^WIP"}, cfg.Ignores)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Parallel()

		_, _, err := Resolve(afero.NewMemMapFs(), "/nope.yml", "/repo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/repo/commitlint.yml", []byte("rules: [\n"), 0o600))

		_, _, err := Resolve(fs, "", "/repo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/repo/commitlint.yml")
	})
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	off := false
	cfg := Default()
	cfg.ApplyEnv(Env{LogLevel: "debug", History: &off})

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.History.Enabled)

	cfg = Default()
	cfg.ApplyEnv(Env{})
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("COMMITLINT_CONFIG", "/tmp/x.yml")
	t.Setenv("COMMITLINT_HISTORY", "false")
	t.Setenv("COMMITLINT_LOG_LEVEL", "warn")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.yml", env.Config)
	assert.Equal(t, "warn", env.LogLevel)
	require.NotNil(t, env.History)
	assert.False(t, *env.History)
	assert.False(t, env.NoColor)
}
