// Package prompt asks for the parts of a conventional commit interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/samber/lo"
	"github.com/wizzomafizzo/commitlint/internal/commit"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter completing from words.
func NewLinerPrompter(words []string) *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		return lo.Filter(words, func(w string, _ int) bool { return strings.HasPrefix(w, prefix) })
	})
	return &LinerPrompter{State: line}
}

// Answers are the parts of a commit collected from the user.
type Answers struct {
	Type         string
	Scope        string
	Subject      string
	Body         string
	BreakingNote string
	Breaking     bool
}

// Message assembles the commit message described by a.
func (a Answers) Message() string {
	var header strings.Builder
	header.WriteString(a.Type)
	if a.Scope != "" {
		header.WriteString("(" + a.Scope + ")")
	}
	if a.Breaking {
		header.WriteString("!")
	}
	header.WriteString(": " + a.Subject)

	parts := []string{header.String()}
	if a.Body != "" {
		parts = append(parts, a.Body)
	}
	if a.Breaking && a.BreakingNote != "" {
		parts = append(parts, commit.BreakingChangeToken+" "+a.BreakingNote)
	}
	return strings.Join(parts, "\n\n")
}

// Ask collects answers through p. types is shown as a hint for the type.
func Ask(p Prompter, types []string) (Answers, error) {
	var a Answers
	var err error

	hint := ""
	if len(types) > 0 {
		hint = " [" + strings.Join(types, ", ") + "]"
	}

	if a.Type, err = TextInputWithPrompter(p, "type"+hint+":"); err != nil {
		return Answers{}, err
	}
	if a.Scope, err = TextInputWithPrompter(p, "scope (optional):"); err != nil {
		return Answers{}, err
	}
	breaking, err := TextInputWithPrompter(p, "breaking change? [y/N]:")
	if err != nil {
		return Answers{}, err
	}
	a.Breaking = strings.EqualFold(breaking, "y") || strings.EqualFold(breaking, "yes")
	if a.Subject, err = TextInputWithPrompter(p, "subject:"); err != nil {
		return Answers{}, err
	}
	if a.Body, err = TextInputWithPrompter(p, "body (optional):"); err != nil {
		return Answers{}, err
	}
	if a.Breaking {
		if a.BreakingNote, err = TextInputWithPrompter(p, "describe the breaking change:"); err != nil {
			return Answers{}, err
		}
	}

	return a, nil
}

// TextInputWithPrompter provides simple text input using a custom prompter
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	coloredPrompt := color.CyanString(prompt + " ")
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}
