// Package redis provides a Redis-backed journal store, giving a shared
// execution history across host restarts and processes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/reflex/pkg/domain"
)

// Journal implements ports.JournalStore using Redis. Each record is a
// JSON value keyed by a monotonically increasing sequence number; a ZSET
// indexed by that sequence keeps recency ordering stable even when two
// appends land in the same millisecond.
type Journal struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Journal)

// WithTTL sets the expiration for journal entries.
func WithTTL(ttl time.Duration) Option {
	return func(j *Journal) {
		j.ttl = ttl
	}
}

// WithPrefix sets the key prefix for journal entries.
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// New creates a Redis journal with its own client.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		prefix: "reflex:journal:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Journal) entryKey(seq int64) string {
	return j.prefix + "entry:" + strconv.FormatInt(seq, 10)
}

func (j *Journal) indexKey() string {
	return j.prefix + "index"
}

func (j *Journal) seqKey() string {
	return j.prefix + "seq"
}

// Append persists the record and adds it to the recency index.
func (j *Journal) Append(ctx context.Context, rec *domain.ExecutionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	seq, err := j.client.Incr(ctx, j.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}

	pipe := j.client.Pipeline()
	pipe.Set(ctx, j.entryKey(seq), data, j.ttl)
	pipe.ZAdd(ctx, j.indexKey(), backend.Z{
		Score:  float64(seq),
		Member: seq,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Last returns the most recently appended record.
func (j *Journal) Last(ctx context.Context) (*domain.ExecutionRecord, error) {
	recs, err := j.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.ErrNoJournalEntries
	}
	return &recs[0], nil
}

// Recent returns up to limit records, newest first. Entries whose value
// expired are lazily removed from the index.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := j.client.ZRevRange(ctx, j.indexKey(), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal index: %w", err)
	}

	out := make([]domain.ExecutionRecord, 0, len(members))
	for _, member := range members {
		seq, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		data, err := j.client.Get(ctx, j.entryKey(seq)).Bytes()
		if err == backend.Nil {
			// Value expired, drop the dangling index member.
			j.client.ZRem(ctx, j.indexKey(), member)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read journal entry: %w", err)
		}
		var rec domain.ExecutionRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journal entry: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
