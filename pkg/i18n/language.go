package i18n

import (
	"errors"
	"strings"
)

// Language is a supported display language code.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
	LangTelugu  Language = "te"
	LangBengali Language = "bn"
)

// DefaultLanguage is the fallback language for lookup and startup.
const DefaultLanguage = LangEnglish

// ErrUnsupportedLanguage is returned by SetLanguage for codes outside the
// supported set. The current selection is left untouched.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language code")

// LanguageInfo describes a selectable language for the language picker.
type LanguageInfo struct {
	// Code is the language code.
	Code Language

	// Name is the language's own name for itself.
	Name string
}

// supportedLanguages lists every selectable language with its native name.
var supportedLanguages = []LanguageInfo{
	{Code: LangEnglish, Name: "English"},
	{Code: LangHindi, Name: "हिंदी"},
	{Code: LangTamil, Name: "தமிழ்"},
	{Code: LangTelugu, Name: "తెలుగు"},
	{Code: LangBengali, Name: "বাংলা"},
}

// Supported returns the selectable languages in display order.
func Supported() []LanguageInfo {
	out := make([]LanguageInfo, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsSupported reports whether code is a supported language.
func IsSupported(code Language) bool {
	for _, info := range supportedLanguages {
		if info.Code == code {
			return true
		}
	}
	return false
}

// Match resolves a host-environment locale string ("hi-IN", "ta_IN.UTF-8",
// "en") to a supported language. Returns ("", false) when nothing matches.
func Match(locale string) (Language, bool) {
	if locale == "" {
		return "", false
	}
	base := locale
	for _, sep := range []string{"-", "_", "."} {
		if i := strings.Index(base, sep); i >= 0 {
			base = base[:i]
		}
	}
	code := Language(strings.ToLower(base))
	if IsSupported(code) {
		return code, true
	}
	return "", false
}
