package models

// LanguageAuto keeps the summary in the source text's own language.
const LanguageAuto = "auto"

// Language pairs an ISO 639-1 code with the English name used in prompt
// construction and the native name used for display.
type Language struct {
	Code   string `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Native string `json:"native" yaml:"native"`
}

// Languages is the supported-language set, LanguageAuto first.
var Languages = []Language{
	{Code: LanguageAuto, Name: "Auto", Native: "Auto (Original Language)"},
	{Code: "en", Name: "English", Native: "English"},
	{Code: "ru", Name: "Russian", Native: "Русский"},
	{Code: "es", Name: "Spanish", Native: "Español"},
	{Code: "fr", Name: "French", Native: "Français"},
	{Code: "de", Name: "German", Native: "Deutsch"},
	{Code: "it", Name: "Italian", Native: "Italiano"},
	{Code: "pt", Name: "Portuguese", Native: "Português"},
	{Code: "zh", Name: "Chinese", Native: "中文"},
	{Code: "ja", Name: "Japanese", Native: "日本語"},
	{Code: "ko", Name: "Korean", Native: "한국어"},
	{Code: "ar", Name: "Arabic", Native: "العربية"},
	{Code: "hi", Name: "Hindi", Native: "हिन्दी"},
	{Code: "tr", Name: "Turkish", Native: "Türkçe"},
	{Code: "pl", Name: "Polish", Native: "Polski"},
	{Code: "nl", Name: "Dutch", Native: "Nederlands"},
	{Code: "sv", Name: "Swedish", Native: "Svenska"},
	{Code: "da", Name: "Danish", Native: "Dansk"},
	{Code: "no", Name: "Norwegian", Native: "Norsk"},
	{Code: "fi", Name: "Finnish", Native: "Suomi"},
}

// LanguageName returns the English name for a supported language code.
// LanguageAuto and unknown codes report ok=false; callers fall back to the
// preserve-source-language directive.
func LanguageName(code string) (string, bool) {
	if code == "" || code == LanguageAuto {
		return "", false
	}
	for _, l := range Languages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// IsSupportedLanguage reports whether code is LanguageAuto or a member of
// the supported set.
func IsSupportedLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// ResolveLanguage applies the resolution rule: the explicit request code if
// set, else the ambient setting, else LanguageAuto.
func ResolveLanguage(requested, ambient string) string {
	if requested != "" {
		return requested
	}
	if ambient != "" {
		return ambient
	}
	return LanguageAuto
}
