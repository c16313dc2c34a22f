package messaging

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/page-digest/internal/state"
	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/language"
)

// Summarizer is the completion client the router drives.
type Summarizer interface {
	Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error)
	TLDR(ctx context.Context, text, lang string) (string, error)
}

// PageSource produces a page's readable text on demand. It stands in for
// the in-page extraction surface, which cannot be called directly.
type PageSource interface {
	PageText(ctx context.Context, url string) (models.ExtractedText, error)
}

// SettingsSource supplies the ambient user settings.
type SettingsSource interface {
	Load(ctx context.Context) (models.Settings, error)
}

// Router executes the summarization pipeline for each inbound message:
// extract, size, summarize, compute reading time, record in the state
// store. Each call is one independent sequential attempt; concurrent calls
// are not coordinated (see state.Store on last-writer-wins).
type Router struct {
	summarizer Summarizer
	pages      PageSource
	settings   SettingsSource
	store      *state.Store
	logger     *slog.Logger
}

func NewRouter(summarizer Summarizer, pages PageSource, settings SettingsSource, store *state.Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		summarizer: summarizer,
		pages:      pages,
		settings:   settings,
		store:      store,
		logger:     logger,
	}
}

// Summarize handles a SUMMARIZE message. Any failure is terminal for the
// attempt: it is returned structured and recorded as the tab's failed
// state, never retried.
func (r *Router) Summarize(ctx context.Context, req SummarizeRequest) SummarizeResponse {
	attemptID := r.store.Begin(req.TabID)
	log := r.logger.With("tab_id", req.TabID, "attempt_id", attemptID)

	settings, err := r.settings.Load(ctx)
	if err != nil {
		return r.fail(log, req.TabID, "failed to load settings: "+err.Error())
	}

	text := req.Text
	if text == "" && req.URL != "" {
		extracted, err := r.pages.PageText(ctx, req.URL)
		if err != nil {
			return r.fail(log, req.TabID, err.Error())
		}
		text = extracted.Text
	}
	if text == "" {
		return r.fail(log, req.TabID, "no page text to summarize")
	}

	length := settings.SummaryLength
	if parsed, ok := models.ParseLength(req.Length); ok {
		length = parsed
	}
	lang := models.ResolveLanguage(req.Language, settings.SummaryLanguage)

	result, err := r.summarizer.Summarize(ctx, models.SummaryRequest{
		Text:     text,
		Length:   length,
		Language: lang,
	})
	if err != nil {
		return r.fail(log, req.TabID, err.Error())
	}

	if req.TLDR {
		tldr, err := r.summarizer.TLDR(ctx, text, lang)
		if err != nil {
			// The main summary stands on its own; a failed TL;DR call
			// is logged and the field left empty.
			log.Warn("TL;DR call failed", "error", err)
		} else {
			result.TLDR = tldr
		}
	}

	r.store.Complete(req.TabID, result)
	log.Info("summarization complete",
		"summary_words", result.ReadingTime.SummaryWordCount,
		"time_saved_pct", result.ReadingTime.TimeSavedPercentage)

	return SummarizeResponse{
		Success:     true,
		Summary:     result.Summary,
		TLDR:        result.TLDR,
		ReadingTime: result.ReadingTime,
	}
}

// PageText handles a GET_PAGE_TEXT message.
func (r *Router) PageText(ctx context.Context, req PageTextRequest) PageTextResponse {
	extracted, err := r.pages.PageText(ctx, req.URL)
	if err != nil {
		r.logger.Error("page text extraction failed", "url", req.URL, "error", err)
		return PageTextResponse{Error: err.Error()}
	}

	resp := PageTextResponse{
		Success:   true,
		Text:      extracted.Text,
		Truncated: extracted.Truncated,
	}
	if code, ok := language.Detect(extracted.Text); ok {
		resp.Language = code
	}
	return resp
}

// CurrentSummary handles a GET_CURRENT_SUMMARY message, projecting the
// tab's stored state. Idle tabs yield an empty projection.
func (r *Router) CurrentSummary(tabID int) CurrentSummaryResponse {
	entry, _ := r.store.Get(tabID)
	resp := CurrentSummaryResponse{Status: string(entry.Status)}
	switch entry.Status {
	case state.StatusSuccess:
		resp.Summary = entry.Result.Summary
		resp.TLDR = entry.Result.TLDR
		resp.ReadingTime = entry.Result.ReadingTime
	case state.StatusFailed:
		resp.Error = entry.Reason
	}
	return resp
}

// Forget drops a tab's stored state, e.g. when its tab closes.
func (r *Router) Forget(tabID int) {
	r.store.Forget(tabID)
}

// Badge projects a tab's state into badge content.
func (r *Router) Badge(tabID int) BadgeResponse {
	text, color := r.store.Badge(tabID)
	return BadgeResponse{Text: text, Color: color}
}

func (r *Router) fail(log *slog.Logger, tabID int, reason string) SummarizeResponse {
	log.Error("summarization failed", "reason", reason)
	r.store.Fail(tabID, reason)
	return SummarizeResponse{Error: reason}
}
