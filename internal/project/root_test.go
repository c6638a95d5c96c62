package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGitDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/repo/.git/hooks", 0o750))
	require.NoError(t, fs.MkdirAll("/repo/src/pkg", 0o750))

	gitDir, err := FindGitDir(fs, "/repo/src/pkg")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.git", gitDir)

	hooks, err := HooksDir(fs, "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.git/hooks", hooks)
}

func TestFindGitDir_NotRepository(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/plain/dir", 0o750))

	_, err := FindGitDir(fs, "/plain/dir")
	require.ErrorIs(t, err, ErrNotRepository)

	_, err = HooksDir(fs, "/plain/dir")
	require.ErrorIs(t, err, ErrNotRepository)
}

func TestFindGitDir_Submodule(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/super/.git/modules/lib", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/super/lib/.git", []byte("gitdir: ../.git/modules/lib\n"), 0o600))

	gitDir, err := FindGitDir(fs, "/super/lib")
	require.NoError(t, err)
	assert.Equal(t, "/super/.git/modules/lib", gitDir)
}

func TestFindGitDir_Worktree(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/main/.git/worktrees/feature", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/main/.git/worktrees/feature/commondir", []byte("../..\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/wt/.git", []byte("gitdir: /main/.git/worktrees/feature"), 0o600))

	gitDir, err := FindGitDir(fs, "/wt")
	require.NoError(t, err)
	assert.Equal(t, "/main/.git", gitDir)
}

func TestFindGitDir_InvalidPointer(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad/.git", []byte("nonsense"), 0o600))

	_, err := FindGitDir(fs, "/bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid gitdir file")
}

func TestFindRootFrom(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/app/.git", 0o750))
	require.NoError(t, fs.MkdirAll("/work/app/internal/x", 0o750))
	require.NoError(t, afero.WriteFile(fs, "/work/lint/.commitlint.yml", nil, 0o600))
	require.NoError(t, fs.MkdirAll("/work/lint/sub", 0o750))
	require.NoError(t, fs.MkdirAll("/elsewhere", 0o750))

	root, found := FindRootFrom(fs, "/work/app/internal/x")
	assert.True(t, found)
	assert.Equal(t, "/work/app", root)

	root, found = FindRootFrom(fs, "/work/lint/sub")
	assert.True(t, found)
	assert.Equal(t, "/work/lint", root)

	_, found = FindRootFrom(fs, "/elsewhere")
	assert.False(t, found)
}

//nolint:paralleltest // changes working directory
func TestFindRoot_FromSubdirectory(t *testing.T) {
	projectDir := t.TempDir()
	subDir := filepath.Join(projectDir, "cmd", "app")
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, ".git"), 0o750))
	require.NoError(t, os.MkdirAll(subDir, 0o750))
	t.Chdir(subDir)

	root, err := FindRoot()
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(projectDir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
