package lint

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"github.com/wizzomafizzo/commitlint/internal/constants"
)

// MatchesCase reports whether text satisfies a type or scope case style.
// Unknown styles are always satisfied.
func MatchesCase(text, style string) bool {
	runes := []rune(text)

	switch style {
	case constants.CaseLower:
		return lo.EveryBy(runes, notUpper)
	case constants.CaseUpper:
		return lo.EveryBy(runes, notLower)
	case constants.CaseCamel:
		return len(runes) > 0 && unicode.IsLower(runes[0])
	case constants.CaseKebab:
		return lo.EveryBy(runes, func(r rune) bool { return unicode.IsLower(r) || r == '-' })
	case constants.CasePascal:
		return len(runes) > 0 && unicode.IsUpper(runes[0])
	case constants.CaseSnake:
		return lo.EveryBy(runes, func(r rune) bool { return unicode.IsLower(r) || r == '_' })
	default:
		return true
	}
}

// MatchesSubjectCase reports whether subject satisfies a subject case style.
// Unknown styles are always satisfied.
func MatchesSubjectCase(subject, style string) bool {
	runes := []rune(subject)

	switch style {
	case constants.CaseLower:
		return lo.EveryBy(runes, notUpper)
	case constants.CaseUpper:
		return lo.EveryBy(runes, notLower)
	case constants.CaseSentence:
		// lowercase first words are accepted as sentence case
		if len(runes) == 0 {
			return true
		}
		first := runes[0]
		return unicode.IsLower(first) || unicode.IsUpper(first) || unicode.IsNumber(first)
	case constants.CaseStart:
		return lo.EveryBy(strings.Fields(subject), func(word string) bool {
			first := []rune(word)[0]
			return unicode.IsUpper(first)
		})
	default:
		return true
	}
}

func notUpper(r rune) bool { return !unicode.IsUpper(r) }

func notLower(r rune) bool { return !unicode.IsLower(r) }
