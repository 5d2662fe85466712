package action

import (
	"context"
	"log/slog"
)

// Reporter is the injected collaborator a Series calls when one of its
// items fails. It is invoked exactly once per failing item encountered;
// the series applies its failure policy afterwards.
type Reporter interface {
	ActionFailed(ctx context.Context, act Action, err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, act Action, err error)

func (f ReporterFunc) ActionFailed(ctx context.Context, act Action, err error) {
	f(ctx, act, err)
}

// NewSlogReporter reports failures through a structured logger.
func NewSlogReporter(logger *slog.Logger) Reporter {
	return ReporterFunc(func(ctx context.Context, act Action, err error) {
		logger.ErrorContext(ctx, "action failed",
			"action", describe(act),
			"err", err,
		)
	})
}

// defaultReporter backs series with no injected reporter.
var defaultReporter Reporter = NewSlogReporter(slog.Default())

// SetDefaultReporter swaps the fallback reporter used by series without
// an explicit one. It must not be called while executions are in flight.
func SetDefaultReporter(r Reporter) {
	if r != nil {
		defaultReporter = r
	}
}

// describe yields a short label for log output.
func describe(act Action) string {
	switch a := act.(type) {
	case *Series:
		if a.StopOnFailures {
			return "series"
		}
		return "fallback series"
	case *Repetition:
		return "repetition"
	case *Bound:
		return "bound " + describe(a.Action)
	case *Func:
		return "func"
	case interface{ Name() string }:
		return a.Name()
	default:
		return "action"
	}
}
