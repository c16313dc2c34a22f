// Package language detects the language of extracted page text so the
// "auto" preference can report what it preserved. Detection is advisory
// metadata only; it never changes which language the summary is written in.
package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/page-digest/models"
)

// Detector construction is expensive (it loads language models), so it is
// built once on first use.
var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		WithPreloadedLanguageModels().
		Build()
})

// Detect returns the ISO 639-1 code of the text's language when it is both
// confidently detected and part of the supported-language set.
func Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	lang, ok := detector().DetectLanguageOf(text)
	if !ok {
		return "", false
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	if code == models.LanguageAuto || !models.IsSupportedLanguage(code) {
		return "", false
	}
	return code, true
}

// DisplayName resolves a detected code to its English name, falling back to
// the code itself for display robustness.
func DisplayName(code string) string {
	if name, ok := models.LanguageName(code); ok {
		return name
	}
	return code
}
