package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wizzomafizzo/commitlint/internal/commit"
	"github.com/wizzomafizzo/commitlint/internal/constants"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "regexp", func(fl validator.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("config: register %q validation: %v", tag, err))
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "regexp":
		return fmt.Sprintf("%s: invalid regex pattern '%v'", field, fe.Value())
	case "gte":
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "ltefield":
		return field + ": must not exceed header-max-length"
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return field + ": is required"
	default:
		return fmt.Sprintf("%s: failed %s check", field, fe.Tag())
	}
}

// Warnings reports settings that are accepted but have no effect.
func (c *Config) Warnings() []string {
	var warnings []string

	check := func(name, style string, known []string) {
		if style != "" && !slices.Contains(known, style) {
			warnings = append(warnings, fmt.Sprintf("%s: unknown case style '%s' is never enforced", name, style))
		}
	}
	check("rules.type.case", c.Rules.Type.Case, constants.CaseStyles)
	check("rules.scope.case", c.Rules.Scope.Case, constants.CaseStyles)
	for _, style := range c.Rules.SubjectCase {
		check("rules.subject-case", style, constants.SubjectCaseStyles)
	}

	if _, err := commit.NewExtractor(c.CommitParser()); err != nil {
		warnings = append(warnings, fmt.Sprintf("parser.pattern: %v, every message will fail type-enum", err))
	}

	fields := []string{commit.FieldType, commit.FieldScope, commit.FieldSubject, commit.FieldBreaking}
	for key := range c.Parser.Correspondence {
		if !slices.Contains(fields, key) {
			warnings = append(warnings, fmt.Sprintf("parser.correspondence: unknown field '%s'", key))
		}
	}
	slices.Sort(warnings)

	return warnings
}
