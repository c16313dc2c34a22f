// Package models defines the shared data types for summarization requests,
// results, and user settings.
package models

import (
	"strings"

	"github.com/dtnitsch/page-digest/pkg/readingtime"
)

// SummaryLength is the user's length preference for the main summary.
type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// ParseLength maps a user-supplied string to a SummaryLength.
func ParseLength(s string) (SummaryLength, bool) {
	switch SummaryLength(strings.ToLower(strings.TrimSpace(s))) {
	case LengthShort:
		return LengthShort, true
	case LengthMedium:
		return LengthMedium, true
	case LengthLong:
		return LengthLong, true
	}
	return "", false
}

// ExtractedText is the bounded plain-text excerpt of a page's main content.
// Text never exceeds the extractor's character cap; Truncated reports whether
// the pre-truncation text was longer.
type ExtractedText struct {
	Text      string `json:"text" yaml:"text"`
	Truncated bool   `json:"truncated" yaml:"truncated"`
}

// SummaryRequest carries the extracted page text and the user's preferences
// into the summarization client. Language is an ISO 639-1 code or
// LanguageAuto.
type SummaryRequest struct {
	Text     string        `json:"text" yaml:"text"`
	Length   SummaryLength `json:"length" yaml:"length"`
	Language string        `json:"language,omitempty" yaml:"language,omitempty"`
}

// SummaryResult is the outcome of one successful summarization. TLDR is
// empty unless the caller made the secondary TL;DR call.
type SummaryResult struct {
	Summary     string            `json:"summary" yaml:"summary"`
	TLDR        string            `json:"tldr,omitempty" yaml:"tldr,omitempty"`
	ReadingTime *readingtime.Info `json:"readingTime,omitempty" yaml:"reading_time,omitempty"`
}
