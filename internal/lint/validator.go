// Package lint applies the configured rules to a commit message and collects
// every violation.
package lint

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/wizzomafizzo/commitlint/internal/commit"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/logging"
)

// Validator checks messages against one configuration snapshot. It holds no
// mutable state and is safe for concurrent use.
type Validator struct {
	config     *config.Config
	extractor  *commit.Extractor
	patternErr error
	ignores    []*regexp.Regexp
}

// New creates a Validator for cfg. Ignore patterns that fail to compile never
// match. A header pattern that fails to compile is reported by every
// Validate call.
func New(cfg *config.Config) *Validator {
	v := &Validator{config: cfg}
	v.extractor, v.patternErr = commit.NewExtractor(cfg.CommitParser())
	for _, pattern := range cfg.Ignores {
		if re, err := regexp.Compile(pattern); err == nil {
			v.ignores = append(v.ignores, re)
		}
	}
	return v
}

// Validate checks message against cfg. See Validator.Validate.
func Validate(ctx context.Context, message string, cfg *config.Config) error {
	return New(cfg).Validate(ctx, message)
}

// Ignored reports whether message matches any ignore pattern.
func (v *Validator) Ignored(message string) bool {
	return lo.SomeBy(v.ignores, func(re *regexp.Regexp) bool { return re.MatchString(message) })
}

// Validate returns nil when message passes every rule, otherwise an Errors
// value listing each violation in evaluation order.
func (v *Validator) Validate(ctx context.Context, message string) error {
	log := logging.Get(ctx)

	if v.Ignored(message) {
		log.Debug().Msg("message matches ignore pattern, skipping validation")
		return nil
	}

	msg := commit.Segment(message)
	rules := &v.config.Rules

	var errs Errors
	errs = append(errs, v.checkHeader(msg.Header)...)

	conv, err := v.extract(msg)
	if err != nil {
		log.Debug().Err(err).Str("header", msg.Header).Msg("conventional extraction failed")
		errs = append(errs, ValidationError{
			Rule:    constants.RuleTypeEnum,
			Message: fmt.Sprintf("Invalid conventional commit format: %v", err),
		})
	} else {
		errs = append(errs, v.checkConventional(conv)...)
	}

	if msg.HasBody {
		errs = append(errs, checkBlock("body", msg.Body, rules.BodyLeadingBlank, rules.BodyMaxLineLength,
			constants.RuleBodyLeadingBlank, constants.RuleBodyMaxLineLength)...)
	}
	if msg.HasFooter {
		errs = append(errs, checkBlock("footer", msg.Footer, rules.FooterLeadingBlank, rules.FooterMaxLineLength,
			constants.RuleFooterLeadingBlank, constants.RuleFooterMaxLineLength)...)
	}

	if len(errs) == 0 {
		return nil
	}

	log.Debug().Int("violations", len(errs)).Strs("rules", errs.Rules()).Msg("message failed validation")
	return errs
}

func (v *Validator) extract(msg *commit.Message) (*commit.Conventional, error) {
	if v.patternErr != nil {
		return nil, v.patternErr
	}
	return v.extractor.Extract(msg)
}

func (v *Validator) checkHeader(header string) []ValidationError {
	var errs []ValidationError
	rules := &v.config.Rules
	length := utf8.RuneCountInString(header)

	if length > rules.HeaderMaxLength {
		errs = append(errs, ValidationError{
			Rule: constants.RuleHeaderMaxLength,
			Message: fmt.Sprintf("header must not be longer than %d characters, current length is %d",
				rules.HeaderMaxLength, length),
		})
	}
	if length < rules.HeaderMinLength {
		errs = append(errs, ValidationError{
			Rule: constants.RuleHeaderMinLength,
			Message: fmt.Sprintf("header must be at least %d characters, current length is %d",
				rules.HeaderMinLength, length),
		})
	}

	return errs
}

func (v *Validator) checkConventional(conv *commit.Conventional) []ValidationError {
	var errs []ValidationError
	rules := &v.config.Rules

	errs = append(errs, checkToken("type", conv.Type, rules.Type, constants.RuleTypeEnum, constants.RuleTypeCase)...)
	if conv.HasScope {
		errs = append(errs, checkToken("scope", conv.Scope, rules.Scope, constants.RuleScopeEnum, constants.RuleScopeCase)...)
	}

	if !rules.SubjectEmpty && strings.TrimSpace(conv.Subject) == "" {
		errs = append(errs, ValidationError{
			Rule:    constants.RuleSubjectEmpty,
			Message: "subject must not be empty",
		})
	}

	if len(rules.SubjectCase) > 0 {
		matched := lo.SomeBy(rules.SubjectCase, func(style string) bool {
			return MatchesSubjectCase(conv.Subject, style)
		})
		if !matched {
			errs = append(errs, ValidationError{
				Rule:    constants.RuleSubjectCase,
				Message: "subject must match one of: " + strings.Join(rules.SubjectCase, ", "),
			})
		}
	}

	if stop := rules.SubjectFullStop; stop != "" && strings.HasSuffix(conv.Subject, stop) {
		errs = append(errs, ValidationError{
			Rule:    constants.RuleSubjectFullStop,
			Message: fmt.Sprintf("subject must not end with '%s'", stop),
		})
	}

	return errs
}

// checkToken applies the enum and case checks of rule to a type or scope.
func checkToken(name, value string, rule config.CaseRule, enumRule, caseRule string) []ValidationError {
	var errs []ValidationError

	if len(rule.Enum) > 0 && !lo.Contains(rule.Enum, value) {
		errs = append(errs, ValidationError{
			Rule:    enumRule,
			Message: fmt.Sprintf("%s must be one of [%s]", name, strings.Join(rule.Enum, ", ")),
		})
	}
	if !MatchesCase(value, rule.Case) {
		errs = append(errs, ValidationError{
			Rule:    caseRule,
			Message: fmt.Sprintf("%s must be %s", name, rule.Case),
		})
	}

	return errs
}

// checkBlock applies the leading blank and line length rules to a body or
// footer block. Line numbers are 1-indexed within the block.
func checkBlock(name, block string, leadingBlank bool, maxLen int, blankRule, lengthRule string) []ValidationError {
	var errs []ValidationError

	for i, line := range commit.SplitLines(block) {
		if i == 0 && leadingBlank && strings.TrimSpace(line) != "" {
			errs = append(errs, ValidationError{
				Rule:    blankRule,
				Message: name + " must have leading blank line",
			})
		}

		if length := utf8.RuneCountInString(line); length > maxLen {
			errs = append(errs, ValidationError{
				Rule: lengthRule,
				Message: fmt.Sprintf("%s line %d must not be longer than %d characters, current length is %d",
					name, i+1, maxLen, length),
			})
		}
	}

	return errs
}

// AsErrors extracts the violation list from an error returned by Validate.
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
