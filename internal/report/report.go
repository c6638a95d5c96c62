// Package report renders validation results and tables for the terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/database"
	"github.com/wizzomafizzo/commitlint/internal/lint"
)

// Printer writes human-readable output.
type Printer struct {
	out   io.Writer
	ok    *color.Color
	fail  *color.Color
	rule  *color.Color
	faint *color.Color
}

// New creates a Printer writing to out. Colors are disabled when noColor is set.
func New(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:   out,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
		rule:  color.New(color.FgYellow),
		faint: color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.ok, p.fail, p.rule, p.faint} {
			c.DisableColor()
		}
	}
	return p
}

// Result prints the outcome of a validation. err is nil or the value
// returned by lint.Validate.
func (p *Printer) Result(err error) error {
	if err == nil {
		_, werr := p.ok.Fprintln(p.out, "✓ Commit message is valid")
		return wrapWrite(werr)
	}

	violations, ok := lint.AsErrors(err)
	if !ok {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	if _, werr := p.fail.Fprint(p.out, "✗ Commit message validation failed:\n\n"); werr != nil {
		return wrapWrite(werr)
	}
	for _, v := range violations {
		_, werr := fmt.Fprintf(p.out, "  - %s %s\n", p.rule.Sprintf("[%s]", v.Rule), v.Message)
		if werr != nil {
			return wrapWrite(werr)
		}
	}
	return nil
}

// Warnings prints configuration warnings, one per line.
func (p *Printer) Warnings(warnings []string) error {
	for _, w := range warnings {
		if _, err := p.rule.Fprintf(p.out, "⚠ %s\n", w); err != nil {
			return wrapWrite(err)
		}
	}
	return nil
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format+"\n", args...)
	return wrapWrite(err)
}

// Success prints a line in the success color.
func (p *Printer) Success(format string, args ...any) error {
	_, err := p.ok.Fprintf(p.out, format+"\n", args...)
	return wrapWrite(err)
}

// Hint prints a de-emphasized line.
func (p *Printer) Hint(format string, args ...any) error {
	_, err := p.faint.Fprintf(p.out, format+"\n", args...)
	return wrapWrite(err)
}

// RuleSettings lists each rule identifier with its effective setting.
func RuleSettings(cfg *config.Config) [][]string {
	r := cfg.Rules
	settings := map[string]string{
		constants.RuleHeaderMaxLength:     strconv.Itoa(r.HeaderMaxLength),
		constants.RuleHeaderMinLength:     strconv.Itoa(r.HeaderMinLength),
		constants.RuleTypeEnum:            enumSetting(r.Type.Enum),
		constants.RuleTypeCase:            r.Type.Case,
		constants.RuleScopeEnum:           enumSetting(r.Scope.Enum),
		constants.RuleScopeCase:           r.Scope.Case,
		constants.RuleSubjectEmpty:        lo.Ternary(r.SubjectEmpty, "allowed", "enforced"),
		constants.RuleSubjectCase:         enumSetting(r.SubjectCase),
		constants.RuleSubjectFullStop:     lo.Ternary(r.SubjectFullStop == "", "off", strconv.Quote(r.SubjectFullStop)),
		constants.RuleBodyLeadingBlank:    toggle(r.BodyLeadingBlank),
		constants.RuleBodyMaxLineLength:   strconv.Itoa(r.BodyMaxLineLength),
		constants.RuleFooterLeadingBlank:  toggle(r.FooterLeadingBlank),
		constants.RuleFooterMaxLineLength: strconv.Itoa(r.FooterMaxLineLength),
	}

	return lo.Map(constants.Rules, func(rule string, _ int) []string {
		return []string{rule, settings[rule]}
	})
}

// RulesTable renders RuleSettings as a table.
func RulesTable(w io.Writer, cfg *config.Config) {
	table := newTable(w)
	table.SetHeader([]string{"Rule", "Setting"})
	table.AppendBulk(RuleSettings(cfg))
	table.Render()
}

// HistoryTable renders recorded runs, newest first.
func HistoryTable(w io.Writer, runs []database.Run) {
	table := newTable(w)
	table.SetHeader([]string{"When", "Result", "Header", "Violations"})
	for _, run := range runs {
		table.Append([]string{
			run.CreatedAt.Local().Format(time.DateTime),
			lo.Ternary(run.Valid, "ok", "failed"),
			run.Header,
			strings.Join(lo.Uniq(run.Violations.Rules()), ", "),
		})
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func enumSetting(values []string) string {
	if len(values) == 0 {
		return "any"
	}
	return strings.Join(values, ", ")
}

func toggle(on bool) string {
	return lo.Ternary(on, "enforced", "off")
}

var errWrite = errors.New("failed to write output")

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errWrite, err)
}
