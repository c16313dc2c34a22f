// Package fetcher retrieves a page over HTTP and exposes it both as a
// parsed document for extraction and as readability article metadata for
// display. It stands in for the in-page extraction surface when running
// from the command line or the HTTP API.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const defaultTimeout = 30 * time.Second

type Fetcher struct {
	client *http.Client
}

func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Page is one fetched page: the raw bytes, the parsed tree, and the
// readability metadata (title, byline, excerpt) when readability could make
// sense of it.
type Page struct {
	URL      string
	Document *goquery.Document
	Title    string
	Byline   string
	Excerpt  string
	SiteName string
}

// GetHTMLBytes fetches rawURL and returns the response body.
func (f *Fetcher) GetHTMLBytes(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, nil
}

// GetDocument fetches rawURL and parses it into a goquery document.
func (f *Fetcher) GetDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	bodyBytes, err := f.GetHTMLBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// GetPage fetches rawURL and enriches the parsed document with readability
// metadata. Readability failures are not fatal; the metadata fields stay
// empty and extraction proceeds on the document alone.
func (f *Fetcher) GetPage(ctx context.Context, rawURL string) (*Page, error) {
	bodyBytes, err := f.GetHTMLBytes(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &Page{URL: rawURL, Document: doc}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return page, nil
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(bodyBytes)), parsedURL)
	if err != nil {
		return page, nil
	}

	page.Title = strings.TrimSpace(article.Title)
	page.Byline = strings.TrimSpace(article.Byline)
	page.Excerpt = strings.TrimSpace(article.Excerpt)
	page.SiteName = strings.TrimSpace(article.SiteName)
	return page, nil
}
