// Package hook installs and removes the git commit-msg hook that runs
// commitlint on every commit.
package hook

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/constants"
)

// Marker identifies hooks written by commitlint.
const Marker = "# Git commit-msg hook installed by " + constants.AppName

// ErrForeignHook is returned when a commit-msg hook not written by commitlint exists.
var ErrForeignHook = errors.New("a commit-msg hook not installed by commitlint already exists")

var scriptTemplate = template.Must(template.New("hook").Parse(`#!/bin/sh
{{.Marker}}
# Validates commit messages against the Conventional Commits specification

COMMIT_MSG_FILE="$1"

exec {{.Binary}} check --file "$COMMIT_MSG_FILE"
`))

// State describes the commit-msg hook in a hooks directory.
type State int

const (
	// StateMissing means no commit-msg hook exists.
	StateMissing State = iota
	// StateInstalled means the hook was written by commitlint.
	StateInstalled
	// StateForeign means another tool owns the hook.
	StateForeign
)

func (s State) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateForeign:
		return "foreign"
	default:
		return "missing"
	}
}

// Installer manages the commit-msg hook in one hooks directory.
type Installer struct {
	fs       afero.Fs
	hooksDir string
	binary   string
}

// NewInstaller creates an Installer writing hooks that invoke binary.
func NewInstaller(fs afero.Fs, hooksDir, binary string) *Installer {
	return &Installer{fs: fs, hooksDir: hooksDir, binary: binary}
}

// Path returns the commit-msg hook path.
func (i *Installer) Path() string {
	return filepath.Join(i.hooksDir, constants.CommitMsgHook)
}

// Script renders the hook script.
func (i *Installer) Script() (string, error) {
	var buf bytes.Buffer
	err := scriptTemplate.Execute(&buf, map[string]string{
		"Marker": Marker,
		"Binary": shellQuote(i.binary),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render hook script: %w", err)
	}
	return buf.String(), nil
}

// Status reports who owns the commit-msg hook.
func (i *Installer) Status() (State, error) {
	data, err := afero.ReadFile(i.fs, i.Path())
	if errors.Is(err, os.ErrNotExist) {
		return StateMissing, nil
	}
	if err != nil {
		return StateMissing, fmt.Errorf("failed to read hook %s: %w", i.Path(), err)
	}
	if strings.Contains(string(data), Marker) {
		return StateInstalled, nil
	}
	return StateForeign, nil
}

// Install writes an executable commit-msg hook. An existing foreign hook is
// only replaced when force is set.
func (i *Installer) Install(force bool) error {
	state, err := i.Status()
	if err != nil {
		return err
	}
	if state == StateForeign && !force {
		return fmt.Errorf("%w: %s", ErrForeignHook, i.Path())
	}

	if err := i.fs.MkdirAll(i.hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory %s: %w", i.hooksDir, err)
	}

	script, err := i.Script()
	if err != nil {
		return err
	}

	//nolint:gosec // hooks must be executable
	if err := afero.WriteFile(i.fs, i.Path(), []byte(script), 0o755); err != nil {
		return fmt.Errorf("failed to write commit-msg hook: %w", err)
	}
	// WriteFile keeps the mode of an existing file
	if err := i.fs.Chmod(i.Path(), 0o755); err != nil {
		return fmt.Errorf("failed to make hook executable: %w", err)
	}

	return nil
}

// Uninstall removes the hook when commitlint owns it and returns the state
// found before removal.
func (i *Installer) Uninstall() (State, error) {
	state, err := i.Status()
	if err != nil {
		return state, err
	}
	if state != StateInstalled {
		return state, nil
	}

	if err := i.fs.Remove(i.Path()); err != nil {
		return state, fmt.Errorf("failed to remove hook %s: %w", i.Path(), err)
	}
	return state, nil
}

// ResolveBinary decides how the hook should invoke commitlint given the
// command it was started with.
func ResolveBinary(originalCommand string) string {
	baseName := filepath.Base(originalCommand)
	hasPathSep := strings.Contains(originalCommand, string(filepath.Separator))

	// run from PATH
	if baseName == constants.AppName && !hasPathSep {
		return constants.AppName
	}

	if !filepath.IsAbs(originalCommand) && hasPathSep {
		abs, err := filepath.Abs(originalCommand)
		if err != nil {
			return originalCommand
		}
		return abs
	}

	return originalCommand
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r == '/' || r == '.' || r == '-' || r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
