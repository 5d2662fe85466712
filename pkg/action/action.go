package action

import (
	"context"
	"maps"
)

// Extras is the execution data supplied to an action: the named values
// captured by an external trigger (e.g. speech-recognition results).
// Actions only read it; every merge works on a fresh copy so the caller's
// map is never mutated.
type Extras map[string]any

// clone returns a copy of e with room for extra keys. A nil receiver
// yields an empty, writable map.
func (e Extras) clone(extra int) Extras {
	out := make(Extras, len(e)+extra)
	maps.Copy(out, e)
	return out
}

// Action is the unit of execution. Execute runs the action against the
// supplied extras and returns nil on success. Leaf actions are provided by
// the host (registry tools, Func adapters); this package defines how
// results propagate through composed trees.
//
// Execution is synchronous and depth-first. A tree must not be mutated
// while an Execute call is in flight.
type Action interface {
	Execute(ctx context.Context, data Extras) error
}

// itemsOf flattens one level: a Series contributes its items, anything
// else contributes itself. Concatenation therefore never produces a
// series-of-series for direct chains.
func itemsOf(a Action) []Action {
	if s, ok := a.(*Series); ok {
		return s.Items
	}
	return []Action{a}
}

// Sequence composes actions into a Series executed left to right, folding
// pairwise. The result stops on the first failing item unless the leftmost
// operand is already a Series, in which case its existing policy is
// preserved.
func Sequence(first Action, rest ...Action) *Series {
	out := asSeries(first, true)
	for _, a := range rest {
		items := append(append([]Action{}, out.Items...), itemsOf(a)...)
		next := NewSeries(out.StopOnFailures, items...)
		next.reporter = out.reporter
		out = next
	}
	return out
}

// Fallback composes actions into a Series that attempts every item
// regardless of failures. Unlike Sequence, the policy of an existing
// Series operand is overridden.
func Fallback(first Action, rest ...Action) *Series {
	out := asSeries(first, false)
	out.StopOnFailures = false
	for _, a := range rest {
		items := append(append([]Action{}, out.Items...), itemsOf(a)...)
		next := NewSeries(false, items...)
		next.reporter = out.reporter
		out = next
	}
	return out
}

// asSeries lifts a into a Series without adding nesting. Non-series
// actions become a single-item Series with the given default policy; an
// existing Series is copied so the original is not aliased.
func asSeries(a Action, stopOnFailures bool) *Series {
	if s, ok := a.(*Series); ok {
		cp := NewSeries(s.StopOnFailures, s.Items...)
		cp.reporter = s.reporter
		return cp
	}
	return NewSeries(stopOnFailures, a)
}
