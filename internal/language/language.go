// Package language normalizes user-supplied language input to the
// two-letter ISO 639-1 codes the Whisper tooling accepts.
package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

// wordForms maps full language names to codes for the inputs BCP 47
// parsing cannot handle.
var wordForms = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"russian":    "ru",
	"arabic":     "ar",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
	"danish":     "da",
	"norwegian":  "no",
	"finnish":    "fi",
}

// Normalize converts input such as "en", "eng", "en-US", or "English"
// to an ISO 639-1 code. Unrecognized two-letter input passes through
// lowercased so obscure codes still reach the model; anything else
// unrecognized returns the empty string.
func Normalize(input string) string {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return ""
	}
	if code, ok := wordForms[trimmed]; ok {
		return code
	}
	if tag, err := xlang.Parse(trimmed); err == nil {
		if base, confidence := tag.Base(); confidence > xlang.No {
			if code := base.String(); len(code) == 2 {
				return code
			}
		}
	}
	if len(trimmed) == 2 {
		return trimmed
	}
	return ""
}
