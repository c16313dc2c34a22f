// Package state holds the per-tab summarization status and the most recent
// result. It is the single process-wide mutable store; nothing here is
// persisted, so a process restart returns every tab to idle.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/page-digest/models"
)

// Status is the lifecycle position of a tab's latest summarization attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Entry is the whole of what is known about one tab. Entries are replaced
// wholesale, never partially mutated; a new attempt overwrites any prior
// entry regardless of its state.
type Entry struct {
	Status    Status
	Result    *models.SummaryResult
	Reason    string
	AttemptID string
	StartedAt time.Time
}

// Store maps tab ids to entries. Concurrent attempts on the same tab are
// not coordinated: completion order decides which result is visible, so a
// slow early attempt can overwrite a newer one (last writer wins).
type Store struct {
	mu      sync.RWMutex
	entries map[int]Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[int]Entry)}
}

// Begin records a new loading attempt for tabID, replacing any existing
// entry, and returns the attempt id used in logs.
func (s *Store) Begin(tabID int) string {
	attemptID := uuid.NewString()
	s.mu.Lock()
	s.entries[tabID] = Entry{
		Status:    StatusLoading,
		AttemptID: attemptID,
		StartedAt: time.Now(),
	}
	s.mu.Unlock()
	return attemptID
}

// Complete transitions tabID to success with the given result.
func (s *Store) Complete(tabID int, result *models.SummaryResult) {
	s.mu.Lock()
	s.entries[tabID] = Entry{
		Status:    StatusSuccess,
		Result:    result,
		StartedAt: time.Now(),
	}
	s.mu.Unlock()
}

// Fail transitions tabID to failed, discarding any prior success.
func (s *Store) Fail(tabID int, reason string) {
	s.mu.Lock()
	s.entries[tabID] = Entry{
		Status:    StatusFailed,
		Reason:    reason,
		StartedAt: time.Now(),
	}
	s.mu.Unlock()
}

// Get returns the entry for tabID. A tab never summarized reports an idle
// entry and ok = false.
func (s *Store) Get(tabID int) (Entry, bool) {
	s.mu.RLock()
	entry, ok := s.entries[tabID]
	s.mu.RUnlock()
	if !ok {
		return Entry{Status: StatusIdle}, false
	}
	return entry, true
}

// Forget drops the entry for tabID, e.g. when the tab closes.
func (s *Store) Forget(tabID int) {
	s.mu.Lock()
	delete(s.entries, tabID)
	s.mu.Unlock()
}

// Badge projects a tab's state into the text and color a badge surface
// should paint. Idle tabs paint nothing.
func (s *Store) Badge(tabID int) (text, color string) {
	entry, _ := s.Get(tabID)
	switch entry.Status {
	case StatusLoading:
		return "...", "#FFA500"
	case StatusSuccess:
		return "✓", "#4CAF50"
	case StatusFailed:
		return "!", "#F44336"
	default:
		return "", ""
	}
}
