// Package commit splits raw commit messages into their header, body and footer
// blocks and extracts conventional commit fields from them.
package commit

import (
	"regexp"
	"strings"
)

// BreakingChangeToken starts a footer line announcing a breaking change.
const BreakingChangeToken = "BREAKING CHANGE:"

// footerTokenRe matches trailer tokens such as "Closes:" or "Co-Authored-By:".
var footerTokenRe = regexp.MustCompile(`^[A-Z][a-z]+(?:-[A-Z][a-z]+)*:`)

// Message is a raw commit message split into its blocks.
// Body and Footer are empty when HasBody and HasFooter are false.
type Message struct {
	Raw       string
	Header    string
	Body      string
	Footer    string
	HasBody   bool
	HasFooter bool
}

// Segment splits raw into header, body and footer. It never fails.
func Segment(raw string) *Message {
	lines := SplitLines(raw)
	msg := &Message{Raw: raw}
	if len(lines) == 0 {
		return msg
	}
	msg.Header = lines[0]

	var bodyLines, footerLines []string
	inFooter := false
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if i == 1 && strings.TrimSpace(line) == "" {
			continue
		}

		// once a footer token is seen every following line is footer
		if !inFooter && IsFooterStart(line) {
			inFooter = true
		}

		if inFooter {
			footerLines = append(footerLines, line)
		} else {
			bodyLines = append(bodyLines, line)
		}
	}

	if len(bodyLines) > 0 {
		msg.Body = strings.Join(bodyLines, "\n")
		msg.HasBody = true
	}
	if len(footerLines) > 0 {
		msg.Footer = strings.Join(footerLines, "\n")
		msg.HasFooter = true
	}

	return msg
}

// IsFooterStart reports whether line opens the footer block.
func IsFooterStart(line string) bool {
	return strings.HasPrefix(line, BreakingChangeToken) || footerTokenRe.MatchString(line)
}

// SplitLines splits s on newlines. A single trailing newline does not produce
// an empty final line and a trailing carriage return is dropped from each line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
