package extractor

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

// articleHTML builds a page with a <main> landmark holding n paragraphs.
func articleHTML(n int) string {
	var b strings.Builder
	b.WriteString("<html><body><nav>Home</nav><main>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "<p>Paragraph number %d carries enough readable text to qualify.</p>", i)
	}
	b.WriteString("</main><footer>Footer</footer></body></html>")
	return b.String()
}

func TestFromDocumentStructuralExtraction(t *testing.T) {
	doc := mustDoc(t, articleHTML(6))

	got := FromDocument(doc)

	if got.Truncated {
		t.Error("Truncated = true for a small article, want false")
	}
	for i := 0; i < 6; i++ {
		want := fmt.Sprintf("Paragraph number %d carries enough readable text to qualify.", i)
		if !strings.Contains(got.Text, want) {
			t.Errorf("Text missing fragment %q", want)
		}
	}
	if strings.Contains(got.Text, "Home") || strings.Contains(got.Text, "Footer") {
		t.Errorf("Text includes content from outside the main landmark: %q", got.Text)
	}
}

func TestFromDocumentSkipsShortFragments(t *testing.T) {
	html := `<html><body><main>` +
		`<p>ok</p><p>short</p>` +
		strings.Repeat(`<p>This paragraph is clearly long enough to keep around.</p>`, 6) +
		`</main></body></html>`
	got := FromDocument(mustDoc(t, html))

	if strings.Contains(got.Text, "short") {
		t.Errorf("Text includes sub-threshold fragment: %q", got.Text)
	}
}

func TestFromDocumentRemovesScriptsAndHidden(t *testing.T) {
	html := `<html><body><main>
		<script>var tracking = "analytics payload here";</script>
		<style>p { color: red; font-family: sans-serif; }</style>
		<p style="display: none">This hidden paragraph is long enough to qualify.</p>
		<p style="visibility:hidden">Another hidden paragraph that is long enough too.</p>
		<div hidden><p>A structurally hidden paragraph with plenty of text.</p></div>` +
		strings.Repeat(`<p>Visible paragraph content that should be extracted fine.</p>`, 5) +
		`</main></body></html>`
	got := FromDocument(mustDoc(t, html))

	for _, banned := range []string{"analytics payload", "color: red", "hidden paragraph", "structurally hidden"} {
		if strings.Contains(got.Text, banned) {
			t.Errorf("Text includes removed content %q", banned)
		}
	}
	if !strings.Contains(got.Text, "Visible paragraph content") {
		t.Errorf("Text lost visible content: %q", got.Text)
	}
}

func TestFromDocumentSelectorPriority(t *testing.T) {
	html := `<html><body>
		<div class="post">` + strings.Repeat(`<p>Post container paragraph that is long enough to count.</p>`, 6) + `</div>
		<main>` + strings.Repeat(`<p>Main landmark paragraph that is long enough to count.</p>`, 6) + `</main>
	</body></html>`
	got := FromDocument(mustDoc(t, html))

	if !strings.Contains(got.Text, "Main landmark paragraph") {
		t.Errorf("Text missing main landmark content: %q", got.Text)
	}
	if strings.Contains(got.Text, "Post container paragraph") {
		t.Errorf("Text includes lower-priority container content: %q", got.Text)
	}
}

func TestFromDocumentBodyFallback(t *testing.T) {
	// Two qualifying fragments is below the structural threshold.
	html := `<html><body>
		<h1>Short</h1>
		<div>Free-floating text not inside any content-bearing element but clearly readable.</div>
		<p>Only paragraph one, long enough to qualify as a fragment.</p>
		<p>Only paragraph two, long enough to qualify as a fragment.</p>
	</body></html>`
	got := FromDocument(mustDoc(t, html))

	if got.Text == "" {
		t.Fatal("fallback extraction returned empty text for a page with visible body text")
	}
	if !strings.Contains(got.Text, "Free-floating text") {
		t.Errorf("fallback missed body text outside content elements: %q", got.Text)
	}
	if !strings.Contains(got.Text, "Only paragraph one") {
		t.Errorf("fallback missed paragraph text: %q", got.Text)
	}
}

func TestFromDocumentTruncation(t *testing.T) {
	got := FromDocument(mustDoc(t, articleHTML(400)))

	if !got.Truncated {
		t.Error("Truncated = false for an oversized article, want true")
	}
	if n := utf8.RuneCountInString(got.Text); n != MaxExtractChars+3 {
		t.Errorf("len(Text) = %d runes, want %d (cap plus ellipsis)", n, MaxExtractChars+3)
	}
	if !strings.HasSuffix(got.Text, "...") {
		t.Errorf("truncated text missing ellipsis marker, ends %q", got.Text[len(got.Text)-10:])
	}
}

func TestFromDocumentLengthBound(t *testing.T) {
	for _, n := range []int{0, 1, 6, 50, 400} {
		got := FromDocument(mustDoc(t, articleHTML(n)))
		if runes := utf8.RuneCountInString(got.Text); runes > MaxExtractChars+3 {
			t.Errorf("articleHTML(%d): len(Text) = %d runes, exceeds bound", n, runes)
		}
		if got.Truncated != (utf8.RuneCountInString(got.Text) >= MaxExtractChars) {
			t.Errorf("articleHTML(%d): Truncated = %v inconsistent with length %d",
				n, got.Truncated, utf8.RuneCountInString(got.Text))
		}
	}
}

func TestFromDocumentDoesNotMutateInput(t *testing.T) {
	doc := mustDoc(t, `<html><body><main><p style="display:none">Hidden but long enough to qualify here.</p><p>Visible and long enough to qualify as content.</p></main></body></html>`)

	FromDocument(doc)

	if doc.Find("p").Length() != 2 {
		t.Errorf("input document mutated: %d paragraphs remain, want 2", doc.Find("p").Length())
	}
}

func TestFromHTMLMalformed(t *testing.T) {
	// html.Parse is forgiving; malformed markup must still yield output,
	// never a panic.
	got, err := FromHTML(`<div><p>Unclosed but readable content that goes on long enough.<td>stray cell`)
	if err != nil {
		t.Fatalf("FromHTML() error = %v, want nil", err)
	}
	if got.Text == "" {
		t.Error("FromHTML() returned empty text for malformed but readable markup")
	}
}
