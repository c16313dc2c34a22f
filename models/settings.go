package models

// DefaultModel is the general-purpose fast model used when the user has not
// picked one.
const DefaultModel = "openai/gpt-4o-mini"

// Model identifies a completion model offered in the options surface.
type Model struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// KnownModels lists the completion models the options surface offers.
var KnownModels = []Model{
	{ID: "openai/gpt-4o", Name: "GPT-4o"},
	{ID: "openai/gpt-4o-mini", Name: "GPT-4o Mini"},
	{ID: "anthropic/claude-3.5-sonnet", Name: "Claude 3.5 Sonnet"},
	{ID: "anthropic/claude-3-haiku", Name: "Claude 3 Haiku"},
	{ID: "google/gemini-pro-1.5", Name: "Gemini Pro 1.5"},
	{ID: "meta-llama/llama-3.1-70b-instruct", Name: "Llama 3.1 70B"},
}

// Settings is the persisted user configuration consumed by the
// summarization pipeline. The API key is required before any network call;
// everything else has a default.
type Settings struct {
	APIKey          string        `json:"apiKey,omitempty" yaml:"api_key,omitempty"`
	Model           string        `json:"model" yaml:"model"`
	SummaryLength   SummaryLength `json:"summaryLength" yaml:"summary_length"`
	SummaryLanguage string        `json:"summaryLanguage" yaml:"summary_language"`
	Theme           string        `json:"theme" yaml:"theme"`
}

// DefaultSettings returns the defaults applied over an empty store.
func DefaultSettings() Settings {
	return Settings{
		Model:           DefaultModel,
		SummaryLength:   LengthMedium,
		SummaryLanguage: LanguageAuto,
		Theme:           "auto",
	}
}

// WithDefaults fills any unset field from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.Model == "" {
		s.Model = def.Model
	}
	if s.SummaryLength == "" {
		s.SummaryLength = def.SummaryLength
	}
	if s.SummaryLanguage == "" {
		s.SummaryLanguage = def.SummaryLanguage
	}
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	return s
}
