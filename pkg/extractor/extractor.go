// Package extractor pulls the readable main content out of a parsed page
// and bounds it to a size suitable as LLM input. The heuristic prefers
// semantic landmarks and common content containers and falls back to the
// whole body when a page's structure gives it nothing to work with.
package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/page-digest/models"
)

// MaxExtractChars caps the extracted text so a single page cannot blow the
// prompt budget.
const MaxExtractChars = 10000

const (
	// Fragments at or below this rune count are treated as noise
	// (nav labels, button text, bylines).
	minFragmentChars = 20

	// Below this many qualifying fragments the structural heuristic is
	// considered to have failed and the whole body is used instead.
	minFragments = 5
)

// contentSelectors are tried in priority order to locate the main content
// node: landmarks first, explicit ARIA roles, then common class/id
// conventions.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	`[role="article"]`,
	".content",
	"#content",
	".post",
	".entry-content",
	".article-content",
	".post-content",
	".main-content",
}

const fragmentSelector = "p, h1, h2, h3, h4, h5, h6, li, td, th, blockquote, pre"

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	whitespaceRuns = regexp.MustCompile(`\s{2,}`)
)

// FromHTML parses raw HTML and extracts its readable text. An error here
// means the markup could not be parsed at all; malformed-but-parseable
// documents always yield a best-effort result.
func FromHTML(html string) (models.ExtractedText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.ExtractedText{}, fmt.Errorf("failed to parse page HTML: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument extracts readable text from an already-parsed document.
// The document is cloned first; the caller's tree is never mutated.
func FromDocument(doc *goquery.Document) models.ExtractedText {
	clone := goquery.CloneDocument(doc)

	clone.Find("script, style, noscript").Remove()
	clone.Find("*").Each(func(_ int, s *goquery.Selection) {
		if isHidden(s) {
			s.Remove()
		}
	})

	main := findMainContent(clone)

	var fragments []string
	main.Find(fragmentSelector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minFragmentChars {
			fragments = append(fragments, text)
		}
	})

	// Unusual page structures leave the selector heuristic with nothing
	// useful; fall back to the full visible body text.
	if len(fragments) < minFragments {
		body := strings.TrimSpace(whitespaceRuns.ReplaceAllString(bodyText(clone), " "))
		text, truncated := truncateRunes(body, MaxExtractChars)
		return models.ExtractedText{Text: text, Truncated: truncated}
	}

	full := strings.Join(fragments, "\n\n")
	full = excessNewlines.ReplaceAllString(full, "\n\n")
	full = whitespaceRuns.ReplaceAllString(full, " ")

	text, truncated := truncateRunes(full, MaxExtractChars)
	if truncated {
		text += "..."
	}
	return models.ExtractedText{Text: text, Truncated: truncated}
}

func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if m := doc.Find(selector).First(); m.Length() > 0 {
			return m
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// isHidden approximates the computed-visibility check available in a
// rendering engine with what the markup itself declares: an inline
// display:none / visibility:hidden style, or the hidden attribute.
func isHidden(s *goquery.Selection) bool {
	if _, ok := s.Attr("hidden"); ok {
		return true
	}
	style, ok := s.Attr("style")
	if !ok {
		return false
	}
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

func bodyText(doc *goquery.Document) string {
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body.Text()
	}
	return doc.Text()
}

// truncateRunes cuts text to at most limit runes. The second return value
// reports whether anything was cut.
func truncateRunes(text string, limit int) (string, bool) {
	if utf8.RuneCountInString(text) <= limit {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:limit]), true
}
