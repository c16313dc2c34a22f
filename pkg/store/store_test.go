package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/page-digest/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(filepath.Join(t.TempDir(), "settings-test.db"))
	if err != nil {
		t.Fatalf("OpenAt() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptyStoreReturnsDefaults(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := models.DefaultSettings()
	if got != want {
		t.Errorf("Load() = %+v, want defaults %+v", got, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	in := models.Settings{
		APIKey:          "sk-or-test",
		Model:           "anthropic/claude-3.5-sonnet",
		SummaryLength:   models.LengthLong,
		SummaryLanguage: "de",
		Theme:           "dark",
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != in {
		t.Errorf("Load() = %+v, want %+v", got, in)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first := models.DefaultSettings()
	first.APIKey = "first-key"
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save() first error = %v", err)
	}

	second := first
	second.APIKey = "second-key"
	second.SummaryLength = models.LengthShort
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save() second error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.APIKey != "second-key" {
		t.Errorf("APIKey = %q, want the overwrite to win", got.APIKey)
	}
	if got.SummaryLength != models.LengthShort {
		t.Errorf("SummaryLength = %q, want %q", got.SummaryLength, models.LengthShort)
	}
}

func TestLoadFillsPartialSettings(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// Only the key set; everything else should come back defaulted.
	if err := s.Save(ctx, models.Settings{APIKey: "only-key"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.APIKey != "only-key" {
		t.Errorf("APIKey = %q, want only-key", got.APIKey)
	}
	if got.Model != models.DefaultModel {
		t.Errorf("Model = %q, want default %q", got.Model, models.DefaultModel)
	}
	if got.SummaryLength != models.LengthMedium {
		t.Errorf("SummaryLength = %q, want medium default", got.SummaryLength)
	}
	if got.SummaryLanguage != models.LanguageAuto {
		t.Errorf("SummaryLanguage = %q, want auto default", got.SummaryLanguage)
	}
}
