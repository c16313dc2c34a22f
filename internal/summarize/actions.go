// Package summarize implements the one-shot CLI pipeline: fetch a page,
// extract its readable text, and print the summary.
package summarize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/page-digest/internal/common"
	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/extractor"
	"github.com/dtnitsch/page-digest/pkg/fetcher"
	"github.com/dtnitsch/page-digest/pkg/language"
	"github.com/dtnitsch/page-digest/pkg/readingtime"
	"github.com/dtnitsch/page-digest/pkg/store"
	"github.com/dtnitsch/page-digest/pkg/summarizer"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// output is the CLI's printable result envelope.
type output struct {
	URL      string               `json:"url,omitempty" yaml:"url,omitempty"`
	Title    string               `json:"title,omitempty" yaml:"title,omitempty"`
	Byline   string               `json:"byline,omitempty" yaml:"byline,omitempty"`
	Language string               `json:"language,omitempty" yaml:"language,omitempty"`
	Result   models.SummaryResult `json:"result" yaml:"result"`
}

func SummarizeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rawURL := c.String("url")
	rawText := c.String("text")
	if rawURL == "" && rawText == "" {
		return fmt.Errorf("nothing to summarize: pass --url or --text")
	}
	if rawURL != "" {
		cleaned, err := common.ValidateURL(rawURL)
		if err != nil {
			return err
		}
		rawURL = cleaned
	}

	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		settings.APIKey = key
	}
	if model := os.Getenv("PAGE_DIGEST_MODEL"); model != "" {
		settings.Model = model
	}
	if length, ok := models.ParseLength(c.String("length")); ok {
		settings.SummaryLength = length
	}

	out := output{URL: rawURL}
	extracted := models.ExtractedText{Text: rawText}
	if rawText == "" {
		logger.Info("Fetching page", "url", rawURL)
		page, err := fetcher.New().GetPage(c.Context, rawURL)
		if err != nil {
			return fmt.Errorf("failed to fetch page: %w", err)
		}
		out.Title = page.Title
		out.Byline = page.Byline

		extracted = extractor.FromDocument(page.Document)
		if extracted.Text == "" {
			return fmt.Errorf("no readable text found at %s", rawURL)
		}
		logger.Info("Extracted page text",
			"chars", len(extracted.Text),
			"truncated", extracted.Truncated)
	}

	lang := models.ResolveLanguage(c.String("language"), settings.SummaryLanguage)
	if code, ok := language.Detect(extracted.Text); ok {
		out.Language = code
		logger.Info("Detected page language", "language", code)
	}

	client := summarizer.New(summarizer.Config{
		APIKey: settings.APIKey,
		Model:  settings.Model,
	})
	result, err := client.Summarize(c.Context, models.SummaryRequest{
		Text:     extracted.Text,
		Length:   settings.SummaryLength,
		Language: lang,
	})
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	if c.Bool("tldr") {
		tldr, err := client.TLDR(c.Context, extracted.Text, lang)
		if err != nil {
			logger.Warn("TL;DR call failed", "error", err)
		} else {
			result.TLDR = tldr
		}
	}

	if rt := result.ReadingTime; rt != nil {
		logger.Info("Reading time",
			"original", readingtime.FormatMinutes(rt.OriginalReadingTimeMinutes),
			"summary", readingtime.FormatMinutes(rt.SummaryReadingTimeMinutes),
			"saved", readingtime.FormatTimeSaved(rt.TimeSavedMinutes, rt.TimeSavedPercentage))
	}

	out.Result = *result
	return printOutput(out, c.String("format"))
}

func loadSettings(c *cli.Context) (models.Settings, error) {
	s, err := openStore(c.String("db"))
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to open settings store: %w", err)
	}
	defer s.Close()

	settings, err := s.Load(c.Context)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func openStore(path string) (*store.Store, error) {
	if path != "" {
		return store.OpenAt(path)
	}
	return store.Open()
}

func printOutput(out output, format string) error {
	var data []byte
	var err error
	if strings.ToLower(format) == "yaml" {
		data, err = yaml.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
