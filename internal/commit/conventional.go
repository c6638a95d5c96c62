package commit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern matches headers shaped like "type(scope)!: subject".
const DefaultPattern = `^(?P<type>\w+)(?:\((?P<scope>[^)]+)\))?(?P<breaking>!)?:\s(?P<subject>.*)$`

// Canonical field names understood by the extractor.
const (
	FieldType     = "type"
	FieldScope    = "scope"
	FieldBreaking = "breaking"
	FieldSubject  = "subject"
)

// BreakingChangeKey is the footer metadata key for breaking change notes.
const BreakingChangeKey = "BREAKING CHANGE"

var (
	// ErrInvalidPattern is returned when the header pattern does not compile.
	ErrInvalidPattern = errors.New("invalid header pattern")
	// ErrNoMatch is returned when the header does not match the pattern.
	ErrNoMatch = errors.New("commit message does not match conventional commit format")
	// ErrMissingField is returned when a mandatory group is absent from a match.
	ErrMissingField = errors.New("missing field in commit message")
)

// Conventional holds the fields of a conventional commit.
type Conventional struct {
	Footer   map[string]string
	Type     string
	Scope    string
	Subject  string
	Body     string
	HasScope bool
	HasBody  bool
	Breaking bool
}

// Parser describes how a header is matched. Correspondence maps canonical
// field names to the capture group names used by Pattern; missing entries
// fall back to the canonical name.
type Parser struct {
	Correspondence map[string]string
	Pattern        string
}

// group returns the capture group name for a canonical field.
func (p Parser) group(field string) string {
	if name, ok := p.Correspondence[field]; ok && name != "" {
		return name
	}
	return field
}

// Extract parses msg with pattern using the canonical group names.
func Extract(msg *Message, pattern string) (*Conventional, error) {
	return ExtractWith(msg, Parser{Pattern: pattern})
}

// ExtractWith parses msg according to p. Either every field is returned or
// an error is; a partial result is never produced.
func ExtractWith(msg *Message, p Parser) (*Conventional, error) {
	e, err := NewExtractor(p)
	if err != nil {
		return nil, err
	}
	return e.Extract(msg)
}

// Extractor applies a compiled header pattern. It is safe for concurrent use.
type Extractor struct {
	re     *regexp.Regexp
	parser Parser
}

// NewExtractor compiles the pattern of p.
func NewExtractor(p Parser) (*Extractor, error) {
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return &Extractor{re: re, parser: p}, nil
}

// Extract parses msg. See ExtractWith.
func (e *Extractor) Extract(msg *Message) (*Conventional, error) {
	re, p := e.re, e.parser

	loc := re.FindStringSubmatchIndex(msg.Header)
	if loc == nil {
		return nil, ErrNoMatch
	}

	capture := func(field string) (string, bool) {
		idx := re.SubexpIndex(p.group(field))
		if idx < 0 || loc[2*idx] < 0 {
			return "", false
		}
		return msg.Header[loc[2*idx]:loc[2*idx+1]], true
	}

	typ, ok := capture(FieldType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, FieldType)
	}
	subject, ok := capture(FieldSubject)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, FieldSubject)
	}
	scope, hasScope := capture(FieldScope)
	_, breaking := capture(FieldBreaking)

	footer := ParseFooter(msg.Footer)
	if _, ok := footer[BreakingChangeKey]; ok {
		breaking = true
	}
	if len(footer) == 0 {
		footer = nil
	}

	return &Conventional{
		Type:     typ,
		Scope:    scope,
		HasScope: hasScope,
		Breaking: breaking,
		Subject:  subject,
		Body:     msg.Body,
		HasBody:  msg.HasBody,
		Footer:   footer,
	}, nil
}

// ParseFooter reads "key: value" pairs from a footer block. Lines without a
// colon are skipped. Later keys overwrite earlier ones.
func ParseFooter(footer string) map[string]string {
	meta := make(map[string]string)
	for _, line := range SplitLines(footer) {
		if rest, ok := strings.CutPrefix(line, BreakingChangeToken); ok {
			meta[BreakingChangeKey] = strings.TrimSpace(rest)
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return meta
}
