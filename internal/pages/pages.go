// Package pages adapts the HTTP fetcher and readability extractor into
// the messaging router's page-text source.
package pages

import (
	"context"

	"github.com/dtnitsch/page-digest/internal/common"
	"github.com/dtnitsch/page-digest/models"
	"github.com/dtnitsch/page-digest/pkg/extractor"
	"github.com/dtnitsch/page-digest/pkg/fetcher"
)

type Source struct {
	fetcher *fetcher.Fetcher
}

func NewSource(f *fetcher.Fetcher) *Source {
	if f == nil {
		f = fetcher.New()
	}
	return &Source{fetcher: f}
}

// PageText fetches a URL and reduces it to readable text.
func (s *Source) PageText(ctx context.Context, url string) (models.ExtractedText, error) {
	cleaned, err := common.ValidateURL(url)
	if err != nil {
		return models.ExtractedText{}, err
	}
	doc, err := s.fetcher.GetDocument(ctx, cleaned)
	if err != nil {
		return models.ExtractedText{}, err
	}
	return extractor.FromDocument(doc), nil
}
