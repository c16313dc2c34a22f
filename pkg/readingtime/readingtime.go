// Package readingtime computes word counts, reading times, and time-saved
// figures for a source text and its summary. Average online reading speed
// runs 150-200 words per minute; 180 is used as a realistic middle ground.
package readingtime

import (
	"fmt"
	"math"
	"strings"
)

const wordsPerMinute = 180

// Info aggregates the reading-time comparison between an original text and
// its summary. It is derived entirely from the two strings and recomputed on
// every summarization.
type Info struct {
	OriginalWordCount          int     `json:"originalWordCount" yaml:"original_word_count"`
	SummaryWordCount           int     `json:"summaryWordCount" yaml:"summary_word_count"`
	OriginalReadingTimeMinutes float64 `json:"originalReadingTimeMinutes" yaml:"original_reading_time_minutes"`
	SummaryReadingTimeMinutes  float64 `json:"summaryReadingTimeMinutes" yaml:"summary_reading_time_minutes"`
	TimeSavedMinutes           float64 `json:"timeSavedMinutes" yaml:"time_saved_minutes"`
	TimeSavedPercentage        int     `json:"timeSavedPercentage" yaml:"time_saved_percentage"`
}

// CountWords splits on whitespace runs and discards empty tokens.
// Empty or whitespace-only text yields 0.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Minutes converts a word count to reading minutes, rounded to one decimal
// place with a 0.1 floor whenever any words are present.
func Minutes(wordCount int) float64 {
	if wordCount <= 0 {
		return 0
	}
	minutes := math.Round(float64(wordCount)/wordsPerMinute*10) / 10
	return math.Max(0.1, minutes)
}

// ForTexts computes the full reading-time comparison for an original text
// and its summary.
func ForTexts(originalText, summaryText string) Info {
	originalWords := CountWords(originalText)
	summaryWords := CountWords(summaryText)

	originalMinutes := Minutes(originalWords)
	summaryMinutes := Minutes(summaryWords)

	saved := math.Max(0, originalMinutes-summaryMinutes)
	percentage := 0
	if originalMinutes > 0 {
		percentage = int(math.Round(saved / originalMinutes * 100))
	}

	return Info{
		OriginalWordCount:          originalWords,
		SummaryWordCount:           summaryWords,
		OriginalReadingTimeMinutes: originalMinutes,
		SummaryReadingTimeMinutes:  summaryMinutes,
		TimeSavedMinutes:           saved,
		TimeSavedPercentage:        percentage,
	}
}

// FormatMinutes renders a minute count for display: "< 1 min" below one
// minute, whole minutes below an hour, "H hr" / "H hr M min" above.
func FormatMinutes(minutes float64) string {
	if minutes < 1 {
		return "< 1 min"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", int(math.Round(minutes)))
	}
	hours := int(minutes) / 60
	remaining := int(math.Round(math.Mod(minutes, 60)))
	if remaining == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, remaining)
}

// FormatTimeSaved renders the saved time with its percentage,
// e.g. "5 min (63%)".
func FormatTimeSaved(minutes float64, percentage int) string {
	return fmt.Sprintf("%s (%d%%)", FormatMinutes(minutes), percentage)
}
