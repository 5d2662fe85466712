package action

import (
	"context"
	"errors"
	"fmt"
)

// Series executes its items in order. Each failing item is handed to the
// Reporter exactly once; StopOnFailures then decides whether the rest of
// the sequence still runs.
type Series struct {
	// Items is the flattened, ordered child list. Children are shared
	// references: the same node may appear under several parents.
	Items []Action

	// StopOnFailures aborts the series on the first failing item when
	// true. It may be flipped between executions.
	StopOnFailures bool

	reporter Reporter
}

// NewSeries constructs a series over the given items. Items are stored
// as-is; use Sequence or Fallback for the flattening concatenation rules.
func NewSeries(stopOnFailures bool, items ...Action) *Series {
	return &Series{
		Items:          append([]Action{}, items...),
		StopOnFailures: stopOnFailures,
	}
}

// SetReporter injects the failure-reporting collaborator. A nil reporter
// falls back to the package default (slog).
func (s *Series) SetReporter(r Reporter) {
	s.reporter = r
}

// Then returns a new series with other's items appended, keeping the
// receiver's failure policy. The receiver is not modified.
func (s *Series) Then(other Action) *Series {
	return Sequence(s, other)
}

// Else returns a new series with other's items appended and failures
// downgraded to continue-past.
func (s *Series) Else(other Action) *Series {
	return Fallback(s, other)
}

// Execute runs every item in order with the same data mapping. Item
// failures are reported and either abort the series or are skipped past,
// per StopOnFailures. An ActionError (unresolvable repeat factor) is a
// configuration error and always aborts, bypassing both the reporter and
// the failure policy.
func (s *Series) Execute(ctx context.Context, data Extras) error {
	for i, item := range s.Items {
		err := item.Execute(ctx, data)
		if err == nil {
			continue
		}
		var actionErr *ActionError
		if errors.As(err, &actionErr) {
			return err
		}
		s.report(ctx, item, err)
		if s.StopOnFailures {
			return fmt.Errorf("series aborted at item %d: %w", i, err)
		}
	}
	return nil
}

func (s *Series) report(ctx context.Context, item Action, err error) {
	r := s.reporter
	if r == nil {
		r = defaultReporter
	}
	r.ActionFailed(ctx, item, err)
}
