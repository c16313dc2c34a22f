package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fixtureHTML = `<html><head><title>Fixture Page</title></head><body>
<main>
<h1>Fixture Page Heading</h1>
<p>The first paragraph of the fixture page, long enough to matter.</p>
<p>The second paragraph of the fixture page, also long enough.</p>
</main>
</body></html>`

func TestGetPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fixtureHTML))
	}))
	defer srv.Close()

	page, err := New().GetPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetPage() error = %v", err)
	}

	if page.Document == nil {
		t.Fatal("GetPage() returned nil document")
	}
	if got := page.Document.Find("p").Length(); got != 2 {
		t.Errorf("document has %d paragraphs, want 2", got)
	}
	if !strings.Contains(page.Title, "Fixture Page") {
		t.Errorf("Title = %q, want the page title", page.Title)
	}
}

func TestGetDocumentHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().GetDocument(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("GetDocument() error = nil, want non-nil for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want the status code named", err)
	}
}

func TestGetHTMLBytesContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().GetHTMLBytes(ctx, srv.URL); err == nil {
		t.Fatal("GetHTMLBytes() error = nil, want context error")
	}
}
