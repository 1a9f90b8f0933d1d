package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   Language
	}{
		{"ar", LanguageArabic},
		{"ar_SA", LanguageArabic},
		{"ar-EG", LanguageArabic},
		{"AR", LanguageArabic},
		{"en", LanguageEnglish},
		{"en_US", LanguageEnglish},
		{"fr", LanguageEnglish},
		{"", LanguageEnglish},
		{"not a locale", LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLocale(tt.locale))
		})
	}
}
