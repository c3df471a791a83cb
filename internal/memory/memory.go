// Package memory is the recommendation/outcome log: every recommendation
// the service hands out can later be annotated with what actually happened.
// The log is injected wherever it is needed so the analysis core stays
// pure and testable without file I/O.
package memory

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

// ErrNotFound is returned when an outcome references an unknown entry.
var ErrNotFound = errors.New("memory: entry not found")

// Log records recommendations and their eventual outcomes.
type Log interface {
	Record(accountID, recommendation string) (string, error)
	RecordOutcome(id, outcome string) error
}

// Entry is one logged recommendation.
type Entry struct {
	ID             string     `json:"id"`
	AccountID      string     `json:"account_id"`
	Recommendation string     `json:"recommendation"`
	Outcome        string     `json:"outcome,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	OutcomeAt      *time.Time `json:"outcome_at,omitempty"`
}

// MemLog is the in-memory Log used in tests and when no database path is
// configured.
type MemLog struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[string]*Entry
}

func NewMemLog() *MemLog {
	return &MemLog{entries: make(map[string]*Entry)}
}

func (m *MemLog) Record(accountID, recommendation string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := strconv.FormatUint(m.nextID, 10)
	m.entries[id] = &Entry{
		ID:             id,
		AccountID:      accountID,
		Recommendation: recommendation,
		CreatedAt:      time.Now().UTC(),
	}
	return id, nil
}

func (m *MemLog) RecordOutcome(id, outcome string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	e.Outcome = outcome
	e.OutcomeAt = &now
	return nil
}

// Get is a test helper; not part of Log.
func (m *MemLog) Get(id string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}
