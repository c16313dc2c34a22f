// Package summarizer orchestrates chat-completion calls against an
// OpenRouter-compatible endpoint: it sizes the prompt to the source text,
// resolves the output language, parses the response, and attaches
// reading-time savings to the result.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/promptsize"
	"github.com/dtnitsch/page-digest/pkg/readingtime"
)

// DefaultBaseURL is the OpenRouter chat-completions API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// clientTitle identifies this client to the provider.
const clientTitle = "page-digest"

// Sampling temperature fixed low for deterministic, faithful summaries.
const temperature = 0.3

// tldrMaxTokens is the fixed budget for the secondary TL;DR call; it is
// never sized to the source text.
const tldrMaxTokens = 80

// ErrMissingAPIKey aborts a summarization before any network call when no
// credential is configured.
var ErrMissingAPIKey = errors.New("API key not configured. Set your OpenRouter API key with 'page-digest settings set --api-key <key>'")

// ErrEmptyCompletion reports a transport success that carried zero choices.
var ErrEmptyCompletion = errors.New("No response from AI model")

// ErrEmptyText rejects a request whose text is empty after trimming.
var ErrEmptyText = errors.New("no text to summarize")

// APIError carries the provider's own error message when one is present in
// the response body; the message takes precedence over the HTTP status for
// diagnosing failure and is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Config wires a Client. Referer identifies the calling surface to
// OpenRouter; HTTPClient may be nil.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Referer    string
	HTTPClient *http.Client
}

// Client performs summarization calls. One Summarize invocation makes
// exactly one outbound request; TL;DR is a second, independent call. There
// are no retries and no caching here.
type Client struct {
	cfg Config
	api *openai.Client
}

// New builds a Client from cfg, filling in the default endpoint and model.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = models.DefaultModel
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	apiCfg.HTTPClient = &http.Client{
		Transport: &headerTransport{
			base:    httpClient.Transport,
			referer: cfg.Referer,
		},
		Timeout: httpClient.Timeout,
	}

	return &Client{cfg: cfg, api: openai.NewClientWithConfig(apiCfg)}
}

// Summarize generates the main summary for req and computes reading-time
// savings against the source text. The returned result's TLDR is empty;
// callers wanting one make the separate TLDR call.
func (c *Client) Summarize(ctx context.Context, req models.SummaryRequest) (*models.SummaryResult, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	wordCount := readingtime.CountWords(req.Text)
	plan := promptsize.ForText(wordCount, req.Length)

	summary, err := c.complete(ctx, summarySystemPrompt, summaryUserPrompt(req, wordCount, plan), plan.MaxTokens)
	if err != nil {
		return nil, err
	}

	info := readingtime.ForTexts(req.Text, summary)
	return &models.SummaryResult{Summary: summary, ReadingTime: &info}, nil
}

// TLDR generates the one-line variant with a short fixed token budget,
// using the same language resolution as the main summary but no sizing.
func (c *Client) TLDR(ctx context.Context, text, lang string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return c.complete(ctx, tldrSystemPrompt, tldrUserPrompt(text, lang), tldrMaxTokens)
}

// complete issues one chat-completion call and returns the trimmed first
// choice.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyError maps transport failures to the client's error taxonomy. A
// provider-supplied message is kept verbatim; anything else gets a generic
// message naming the status.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("API request failed with status %d", apiErr.HTTPStatusCode)
		}
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Message: msg}
	}
	return fmt.Errorf("failed to reach summarization API: %w", err)
}

// headerTransport adds the OpenRouter client-identification headers to
// every request.
type headerTransport struct {
	base    http.RoundTripper
	referer string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if t.referer != "" {
		clone.Header.Set("HTTP-Referer", t.referer)
	}
	clone.Header.Set("X-Title", clientTitle)
	return base.RoundTrip(clone)
}
