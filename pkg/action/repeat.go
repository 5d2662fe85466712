package action

import "context"

// RepeatSpec describes how to obtain a repeat count: either a fixed
// integer or the name of an extras field resolved at execution time.
// Exactly one of the two is set; the zero value behaves as Times(0).
type RepeatSpec struct {
	count int
	extra string
}

// Times returns a fixed repeat count. Negative counts clamp to zero
// iterations.
func Times(n int) RepeatSpec {
	if n < 0 {
		n = 0
	}
	return RepeatSpec{count: n}
}

// FromExtra returns a repeat count resolved from the named extras field
// when the repetition executes.
func FromExtra(name string) RepeatSpec {
	return RepeatSpec{extra: name}
}

// Factor resolves the iteration count against the given data. A named
// factor that is absent yields an ActionError; one that is present but
// not integral yields an ActionError as well, since both are
// configuration mistakes rather than leaf failures.
func (r RepeatSpec) Factor(data Extras) (int, error) {
	if r.extra == "" {
		return r.count, nil
	}
	v, ok := data[r.extra]
	if !ok {
		return 0, newMissingFactorError(r.extra)
	}
	n, ok := asInt(v)
	if !ok {
		return 0, newBadFactorError(r.extra, v)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// asInt accepts the integer shapes that survive JSON/YAML decoding.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if n == float32(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Repetition executes a child action a number of times determined by its
// RepeatSpec. The resolved data mapping is shared across iterations and
// never re-resolved.
type Repetition struct {
	Action Action
	Spec   RepeatSpec
}

// Repeat wraps act so it executes per the given spec.
func Repeat(act Action, spec RepeatSpec) *Repetition {
	return &Repetition{Action: act, Spec: spec}
}

// RepeatN wraps act with a fixed count, normalizing plain integers into a
// RepeatSpec.
func RepeatN(act Action, n int) *Repetition {
	return Repeat(act, Times(n))
}

// Execute resolves the factor first: a resolution error surfaces
// immediately and the child never runs. A count of zero is a successful
// no-op. A child failure stops the remaining iterations and propagates to
// the enclosing series.
func (r *Repetition) Execute(ctx context.Context, data Extras) error {
	n, err := r.Spec.Factor(data)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := r.Action.Execute(ctx, data); err != nil {
			return err
		}
	}
	return nil
}
