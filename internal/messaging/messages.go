// Package messaging defines the typed request/response pairs exchanged with
// the UI and extraction surfaces, and the router that runs the
// summarization pipeline behind them. The surfaces share no memory with
// this core; everything crosses as one of these messages.
package messaging

import (
	"github.com/dtnitsch/page-digest/pkg/readingtime"
)

// SummarizeRequest asks for a summary of a tab's page. Text carries the
// already-extracted content; when it is empty and URL is set, the router
// fetches and extracts the page itself. Length and Language override the
// ambient settings when non-empty.
type SummarizeRequest struct {
	TabID    int    `json:"tabId"`
	Text     string `json:"text,omitempty"`
	URL      string `json:"url,omitempty"`
	Length   string `json:"length,omitempty"`
	Language string `json:"language,omitempty"`
	TLDR     bool   `json:"tldr,omitempty"`
}

// SummarizeResponse reports one attempt's outcome. Error is set exactly
// when Success is false.
type SummarizeResponse struct {
	Success     bool              `json:"success"`
	Summary     string            `json:"summary,omitempty"`
	TLDR        string            `json:"tldr,omitempty"`
	ReadingTime *readingtime.Info `json:"readingTime,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// PageTextRequest asks the extraction surface for a page's readable text.
type PageTextRequest struct {
	URL string `json:"url"`
}

// PageTextResponse wraps the extractor's output.
type PageTextResponse struct {
	Success   bool   `json:"success"`
	Text      string `json:"text,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
	Language  string `json:"language,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CurrentSummaryResponse projects a tab's stored state for display. All
// fields are empty for an idle tab; Error carries the reason for a failed
// one.
type CurrentSummaryResponse struct {
	Status      string            `json:"status"`
	Summary     string            `json:"summary,omitempty"`
	TLDR        string            `json:"tldr,omitempty"`
	ReadingTime *readingtime.Info `json:"readingTime,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// BadgeResponse is what a badge surface should paint for a tab.
type BadgeResponse struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}
