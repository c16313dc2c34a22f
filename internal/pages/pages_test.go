package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articleHTML = `<!DOCTYPE html>
<html>
<body>
  <article>
    <h1>A Headline Worth Reading Twice</h1>
    <p>The first paragraph carries enough words to pass the fragment filter easily.</p>
    <p>The second paragraph also carries enough words to pass the fragment filter.</p>
    <p>A third paragraph with sufficient length keeps the structural path engaged.</p>
    <p>Four fragments are not enough, so here is a fifth one to round things out.</p>
    <p>And one more paragraph for good measure, long enough to count as readable.</p>
  </article>
</body>
</html>`

func TestPageText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	source := NewSource(nil)
	extracted, err := source.PageText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("PageText() error = %v", err)
	}
	if !strings.Contains(extracted.Text, "A Headline Worth Reading Twice") {
		t.Errorf("Text missing headline: %q", extracted.Text)
	}
	if extracted.Truncated {
		t.Error("Truncated = true for a short page")
	}
}

func TestPageTextInvalidURL(t *testing.T) {
	source := NewSource(nil)
	if _, err := source.PageText(context.Background(), "not a url at all"); err == nil {
		t.Error("PageText() = nil error for an invalid URL")
	}
}

func TestPageTextSanitizesURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	source := NewSource(nil)
	if _, err := source.PageText(context.Background(), " "+server.URL+"/post, "); err != nil {
		t.Fatalf("PageText() error = %v", err)
	}
	if gotPath != "/post" {
		t.Errorf("requested path = %q, want the sanitized /post", gotPath)
	}
}

func TestPageTextHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource(nil)
	if _, err := source.PageText(context.Background(), server.URL); err == nil {
		t.Error("PageText() = nil error for a 404 response")
	}
}
