package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/reflex/pkg/domain"
)

// RunJournalStoreContract exercises the JournalStore semantics every
// implementation must satisfy. Adapter tests call it with a fresh, empty
// store.
func RunJournalStoreContract(t *testing.T, store JournalStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("EmptyJournal", func(t *testing.T) {
		_, err := store.Last(ctx)
		assert.ErrorIs(t, err, domain.ErrNoJournalEntries)

		recs, err := store.Recent(ctx, 10)
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("AppendAndLast", func(t *testing.T) {
		first := &domain.ExecutionRecord{
			Command:   "open-browser",
			Extras:    map[string]any{"url": "https://example.com"},
			Success:   true,
			StartedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		assert.NoError(t, store.Append(ctx, first))

		second := &domain.ExecutionRecord{
			Command:   "press-enter",
			Success:   false,
			Error:     "boom",
			StartedAt: time.Now().UTC().Truncate(time.Millisecond),
		}
		assert.NoError(t, store.Append(ctx, second))

		last, err := store.Last(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "press-enter", last.Command)
		assert.Equal(t, "boom", last.Error)
	})

	t.Run("RecentNewestFirst", func(t *testing.T) {
		recs, err := store.Recent(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, "press-enter", recs[0].Command)
		assert.Equal(t, "open-browser", recs[1].Command)
	})

	t.Run("RecentHonorsLimit", func(t *testing.T) {
		recs, err := store.Recent(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, "press-enter", recs[0].Command)
	})
}
