// Package settings implements the CLI surface over the persisted user
// settings.
package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/store"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func GetAction(c *cli.Context) error {
	s, err := openStore(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer s.Close()

	settings, err := s.Load(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.APIKey = maskKey(settings.APIKey)

	var data []byte
	if strings.ToLower(c.String("format")) == "yaml" {
		data, err = yaml.Marshal(settings)
	} else {
		data, err = json.MarshalIndent(settings, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func SetAction(c *cli.Context) error {
	s, err := openStore(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer s.Close()

	settings, err := s.Load(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed := false
	if c.IsSet("api-key") {
		settings.APIKey = c.String("api-key")
		changed = true
	}
	if c.IsSet("model") {
		settings.Model = c.String("model")
		changed = true
	}
	if c.IsSet("length") {
		length, ok := models.ParseLength(c.String("length"))
		if !ok {
			return fmt.Errorf("invalid length %q: must be short, medium, or long", c.String("length"))
		}
		settings.SummaryLength = length
		changed = true
	}
	if c.IsSet("language") {
		lang := c.String("language")
		if lang != models.LanguageAuto && !models.IsSupportedLanguage(lang) {
			return fmt.Errorf("unsupported language code %q", lang)
		}
		settings.SummaryLanguage = lang
		changed = true
	}
	if c.IsSet("theme") {
		settings.Theme = c.String("theme")
		changed = true
	}
	if !changed {
		return fmt.Errorf("no settings provided; see 'settings set --help' for flags")
	}

	if err := s.Save(c.Context, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Settings saved to %s\n", s.Path())
	return nil
}

// options is the choice set a configuration surface can offer.
type options struct {
	Models    []models.Model    `json:"models" yaml:"models"`
	Languages []models.Language `json:"languages" yaml:"languages"`
	Lengths   []string          `json:"lengths" yaml:"lengths"`
}

func OptionsAction(c *cli.Context) error {
	opts := options{
		Models:    models.KnownModels,
		Languages: models.Languages,
		Lengths: []string{
			string(models.LengthShort),
			string(models.LengthMedium),
			string(models.LengthLong),
		},
	}

	var data []byte
	var err error
	if strings.ToLower(c.String("format")) == "yaml" {
		data, err = yaml.Marshal(opts)
	} else {
		data, err = json.MarshalIndent(opts, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func openStore(path string) (*store.Store, error) {
	if path != "" {
		return store.OpenAt(path)
	}
	return store.Open()
}

// maskKey hides all but the tail of a stored API key for display.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
