package ports

import (
	"context"

	"github.com/aretw0/reflex/pkg/domain"
)

// JournalStore persists execution records. It backs the "redo last
// command" operation and the execution history surfaces.
type JournalStore interface {
	// Append writes one record. Records are ordered by append time.
	Append(ctx context.Context, rec *domain.ExecutionRecord) error

	// Last returns the most recently appended record.
	// Returns domain.ErrNoJournalEntries when the journal is empty.
	Last(ctx context.Context) (*domain.ExecutionRecord, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error)
}
