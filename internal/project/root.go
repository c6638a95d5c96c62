// Package project locates the repository a commit is being made in.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/constants"
)

// ErrNotRepository is returned when no git directory is found.
var ErrNotRepository = errors.New("not a git repository (or any parent directory)")

// FindRoot finds the project root directory from the working directory,
// falling back to the working directory itself.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindRootFrom(afero.NewOsFs(), cwd); found {
		return root, nil
	}

	return cwd, nil
}

// FindRootFrom searches startDir and its parents for a git directory or a
// commitlint config file.
func FindRootFrom(fs afero.Fs, startDir string) (string, bool) {
	markers := append([]string{constants.GitDir}, constants.ConfigFilenames...)
	currentDir := startDir

	for {
		if hasProjectMarker(fs, currentDir, markers) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// hasProjectMarker checks if any of the given markers exist in the directory
func hasProjectMarker(fs afero.Fs, dir string, markers []string) bool {
	for _, marker := range markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// FindGitDir walks up from startDir to the nearest .git entry. A .git file
// holding a "gitdir:" pointer is followed, and linked worktrees resolve to
// their common directory so hooks are shared.
func FindGitDir(fs afero.Fs, startDir string) (string, error) {
	currentDir := startDir

	for {
		candidate := filepath.Join(currentDir, constants.GitDir)
		info, err := fs.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return candidate, nil
			}
			return resolveGitFile(fs, currentDir, candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", ErrNotRepository
		}
		currentDir = parentDir
	}
}

// HooksDir returns the hooks directory of the repository containing startDir.
func HooksDir(fs afero.Fs, startDir string) (string, error) {
	gitDir, err := FindGitDir(fs, startDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, constants.HooksDir), nil
}

func resolveGitFile(fs afero.Fs, dir, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir:")
	if !ok {
		return "", fmt.Errorf("invalid gitdir file %s", path)
	}
	gitDir := absJoin(dir, strings.TrimSpace(target))

	common, err := afero.ReadFile(fs, filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir, nil //nolint:nilerr // not a linked worktree
	}
	return absJoin(gitDir, strings.TrimSpace(string(common))), nil
}

func absJoin(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
