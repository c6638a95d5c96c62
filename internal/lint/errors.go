package lint

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ValidationError is a single rule violation.
type ValidationError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("[%s] %s", e.Rule, e.Message)
}

// Errors is the ordered list of violations found in one message.
type Errors []ValidationError

func (e Errors) Error() string {
	return strings.Join(lo.Map(e, func(v ValidationError, _ int) string { return v.String() }), "\n")
}

// Rules returns the rule identifier of each violation in order.
func (e Errors) Rules() []string {
	return lo.Map(e, func(v ValidationError, _ int) string { return v.Rule })
}

// Has reports whether any violation was raised by rule.
func (e Errors) Has(rule string) bool {
	return lo.ContainsBy(e, func(v ValidationError) bool { return v.Rule == rule })
}
