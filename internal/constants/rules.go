package constants

// Rule identifiers reported with each violation
const (
	RuleHeaderMaxLength     = "header-max-length"
	RuleHeaderMinLength     = "header-min-length"
	RuleTypeEnum            = "type-enum"
	RuleTypeCase            = "type-case"
	RuleScopeEnum           = "scope-enum"
	RuleScopeCase           = "scope-case"
	RuleSubjectEmpty        = "subject-empty"
	RuleSubjectCase         = "subject-case"
	RuleSubjectFullStop     = "subject-full-stop"
	RuleBodyLeadingBlank    = "body-leading-blank"
	RuleBodyMaxLineLength   = "body-max-line-length"
	RuleFooterLeadingBlank  = "footer-leading-blank"
	RuleFooterMaxLineLength = "footer-max-line-length"
)

// Case styles for type and scope
const (
	CaseLower  = "lowercase"
	CaseUpper  = "uppercase"
	CaseCamel  = "camel-case"
	CaseKebab  = "kebab-case"
	CasePascal = "pascal-case"
	CaseSnake  = "snake-case"
)

// Extra case styles accepted for subjects
const (
	CaseSentence = "sentence-case"
	CaseStart    = "start-case"
)

// Rules lists every rule identifier in evaluation order.
var Rules = []string{
	RuleHeaderMaxLength,
	RuleHeaderMinLength,
	RuleTypeEnum,
	RuleTypeCase,
	RuleScopeEnum,
	RuleScopeCase,
	RuleSubjectEmpty,
	RuleSubjectCase,
	RuleSubjectFullStop,
	RuleBodyLeadingBlank,
	RuleBodyMaxLineLength,
	RuleFooterLeadingBlank,
	RuleFooterMaxLineLength,
}

// CaseStyles lists the styles understood for type and scope.
var CaseStyles = []string{CaseLower, CaseUpper, CaseCamel, CaseKebab, CasePascal, CaseSnake}

// SubjectCaseStyles lists the styles understood for subjects.
var SubjectCaseStyles = []string{CaseLower, CaseUpper, CaseSentence, CaseStart}
