package action_test

import (
	"context"

	"github.com/aretw0/reflex/pkg/action"
)

// recorder is a leaf that appends its name to a shared call log and
// optionally captures the data it was executed with.
type recorder struct {
	name  string
	calls *[]string
	seen  *[]action.Extras
	err   error
}

func (r *recorder) Execute(ctx context.Context, data action.Extras) error {
	*r.calls = append(*r.calls, r.name)
	if r.seen != nil {
		cp := make(action.Extras, len(data))
		for k, v := range data {
			cp[k] = v
		}
		*r.seen = append(*r.seen, cp)
	}
	return r.err
}

func (r *recorder) Name() string { return r.name }

// countingReporter tallies reporter invocations per failing item.
type countingReporter struct {
	failures []error
}

func (c *countingReporter) ActionFailed(ctx context.Context, act action.Action, err error) {
	c.failures = append(c.failures, err)
}
