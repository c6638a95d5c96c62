package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "commitlint.db", DatabaseFilename)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "commitlint.log", LogFilename)
}

func TestConfigFilenamesOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "commitlint.yml", ConfigFilenames[0])
	assert.Len(t, ConfigFilenames, 4)
}

func TestRulesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, rule := range Rules {
		assert.False(t, seen[rule], "duplicate rule %s", rule)
		seen[rule] = true
	}
	assert.Len(t, Rules, 13)
}
