package constants

import "strings"

// Language is the target language of an accident report. Damage assessments
// are language-agnostic and ignore it.
type Language string

const (
	LanguageEN Language = "en"
	LanguageNL Language = "nl"
	LanguageDE Language = "de"
)

var allLanguages = []Language{LanguageEN, LanguageNL, LanguageDE}

func ParseLanguage(s string) (Language, bool) {
	v := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range allLanguages {
		if v == l {
			return l, true
		}
	}
	return "", false
}

func LanguagesAsStrings() []string {
	out := make([]string, len(allLanguages))
	for i, l := range allLanguages {
		out[i] = string(l)
	}
	return out
}
