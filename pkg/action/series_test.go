package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/reflex/pkg/action"
)

func TestSequence_Order(t *testing.T) {
	var calls []string
	x := &recorder{name: "x", calls: &calls}
	y := &recorder{name: "y", calls: &calls}

	s := action.Sequence(x, y)
	err := s.Execute(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, calls)
	assert.True(t, s.StopOnFailures)
}

func TestSequence_Flattening(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}
	c := &recorder{name: "c", calls: &calls}
	d := &recorder{name: "d", calls: &calls}

	s1 := action.Sequence(a, b)
	s2 := action.Sequence(c, d)
	s := action.Sequence(s1, s2)

	assert.Len(t, s.Items, 4, "direct chains must not nest series")

	err := s.Execute(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, calls)
}

func TestSequence_StopOnFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls, err: boom}
	c := &recorder{name: "c", calls: &calls}

	rep := &countingReporter{}
	s := action.Sequence(a, b, c)
	s.SetReporter(rep)

	err := s.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls, "no items after the failure may run")
	assert.Len(t, rep.failures, 1, "reporter fires once per failing item")
}

func TestFallback_ContinuesPastFailures(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls, err: errors.New("a failed")}
	b := &recorder{name: "b", calls: &calls}
	c := &recorder{name: "c", calls: &calls, err: errors.New("c failed")}

	rep := &countingReporter{}
	s := action.Fallback(a, b, c)
	s.SetReporter(rep)

	err := s.Execute(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls, "all items run despite failures")
	assert.Len(t, rep.failures, 2)
	assert.False(t, s.StopOnFailures)
}

func TestFallback_OverridesSeriesPolicy(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}

	strict := action.Sequence(a, b)
	loose := action.Fallback(strict, &recorder{name: "c", calls: &calls})

	assert.True(t, strict.StopOnFailures)
	assert.False(t, loose.StopOnFailures)
	assert.Len(t, loose.Items, 3)
}

func TestSeries_PolicyMutableBetweenExecutions(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls, err: errors.New("a failed")}
	b := &recorder{name: "b", calls: &calls}

	s := action.Sequence(a, b)
	s.SetReporter(&countingReporter{})

	assert.Error(t, s.Execute(context.Background(), nil))
	assert.Equal(t, []string{"a"}, calls)

	calls = calls[:0]
	s.StopOnFailures = false
	assert.NoError(t, s.Execute(context.Background(), nil))
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestSeries_SharedChildren(t *testing.T) {
	var calls []string
	c := &recorder{name: "c", calls: &calls}

	doubled := action.Sequence(action.Sequence(c, c), action.Sequence(c, c))
	err := doubled.Execute(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "c", "c", "c"}, calls)
}

func TestSeries_ActionErrorNotAbsorbed(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls}
	missing := action.Repeat(&recorder{name: "r", calls: &calls}, action.FromExtra("n"))
	z := &recorder{name: "z", calls: &calls}

	rep := &countingReporter{}
	s := action.Fallback(a, missing, z)
	s.SetReporter(rep)

	err := s.Execute(context.Background(), action.Extras{"m": 2})

	var actionErr *action.ActionError
	assert.ErrorAs(t, err, &actionErr)
	assert.Equal(t, []string{"a"}, calls, "resolution error aborts even a fallback series")
	assert.Empty(t, rep.failures, "configuration errors bypass the reporter")
}

func TestThenElse_RebindNotMutate(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}

	s := action.Sequence(a)
	grown := s.Then(b)

	assert.Len(t, s.Items, 1, "Then must construct a new node")
	assert.Len(t, grown.Items, 2)

	loose := grown.Else(&recorder{name: "c", calls: &calls})
	assert.True(t, grown.StopOnFailures)
	assert.False(t, loose.StopOnFailures)
}
