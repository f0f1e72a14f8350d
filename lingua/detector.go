// Package lingua implements pagemeta.LanguageDetector using lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/pagemeta"
	"github.com/pemistahl/lingua-go"
)

// maxSampleRunes bounds the amount of text handed to the detector.
const maxSampleRunes = 4000

var _ pagemeta.LanguageDetector = (*Detector)(nil)

// Detector identifies the natural language of article text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector restricted to the given languages.
// With fewer than two languages every supported language is considered.
func NewDetector(languages ...lingua.Language) *Detector {
	var builder lingua.LanguageDetectorBuilder
	if len(languages) >= 2 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	return &Detector{detector: builder.Build()}
}

// DetectLanguage returns the lowercase ISO 639-1 code of the text's
// language, or "" when the text is blank or the language is ambiguous.
func (d *Detector) DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if runes := []rune(text); len(runes) > maxSampleRunes {
		text = string(runes[:maxSampleRunes])
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
