package entity

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is the notification language. Only Arabic and English are produced.
type Language int

const (
	LanguageEnglish Language = iota
	LanguageArabic
)

func (l Language) String() string {
	if l == LanguageArabic {
		return "ar"
	}

	return "en"
}

var arabicBase, _ = language.Arabic.Base()

// ClassifyLocale maps a client locale tag such as "ar", "ar_SA" or "ar-EG" to Arabic
// and everything else, including empty or malformed tags, to English.
func ClassifyLocale(locale string) Language {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return LanguageEnglish
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEnglish
	}

	base, confidence := tag.Base()
	if confidence == language.No || base != arabicBase {
		return LanguageEnglish
	}

	return LanguageArabic
}
