// Package memory provides in-process adapters: a journal store and a
// catalog loader. Both are used by tests and by embedded hosts that do
// not need persistence.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/reflex/pkg/domain"
)

// Journal implements ports.JournalStore in memory.
type Journal struct {
	mu      sync.RWMutex
	records []domain.ExecutionRecord
}

// NewJournal creates an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append stores a copy of rec.
func (j *Journal) Append(ctx context.Context, rec *domain.ExecutionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, *rec)
	return nil
}

// Last returns the most recently appended record.
func (j *Journal) Last(ctx context.Context) (*domain.ExecutionRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.records) == 0 {
		return nil, domain.ErrNoJournalEntries
	}
	rec := j.records[len(j.records)-1]
	return &rec, nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	n := len(j.records)
	if limit > n {
		limit = n
	}
	out := make([]domain.ExecutionRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, j.records[i])
	}
	return out, nil
}
