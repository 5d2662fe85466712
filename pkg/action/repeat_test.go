package action_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/reflex/pkg/action"
)

func TestRepetition_FixedCount(t *testing.T) {
	var calls []string
	var seen []action.Extras
	x := &recorder{name: "x", calls: &calls, seen: &seen}

	data := action.Extras{"k": "v"}
	err := action.RepeatN(x, 3).Execute(context.Background(), data)

	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, calls)
	for _, d := range seen {
		assert.Equal(t, action.Extras{"k": "v"}, d, "same data every iteration")
	}
}

func TestRepetition_ZeroIsNoop(t *testing.T) {
	var calls []string
	x := &recorder{name: "x", calls: &calls}

	assert.NoError(t, action.RepeatN(x, 0).Execute(context.Background(), nil))
	assert.Empty(t, calls)
}

func TestRepetition_NegativeClampsToZero(t *testing.T) {
	var calls []string
	x := &recorder{name: "x", calls: &calls}

	assert.NoError(t, action.RepeatN(x, -4).Execute(context.Background(), nil))
	assert.Empty(t, calls)
}

func TestRepetition_DynamicFactor(t *testing.T) {
	var calls []string
	x := &recorder{name: "x", calls: &calls}
	rep := action.Repeat(x, action.FromExtra("n"))

	err := rep.Execute(context.Background(), action.Extras{"n": 2})
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, calls)
}

func TestRepetition_MissingDynamicFactor(t *testing.T) {
	var calls []string
	x := &recorder{name: "x", calls: &calls}
	rep := action.Repeat(x, action.FromExtra("n"))

	err := rep.Execute(context.Background(), action.Extras{"m": 2})

	var actionErr *action.ActionError
	assert.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "No extra repeat factor found for name 'n'", actionErr.Error())
	assert.Empty(t, calls, "child must not run when the factor is unresolvable")
}

func TestRepetition_ChildFailureStopsIterations(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	x := &recorder{name: "x", calls: &calls, err: boom}

	err := action.RepeatN(x, 5).Execute(context.Background(), nil)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"x"}, calls)
}

func TestRepeatSpec_Factor(t *testing.T) {
	tests := []struct {
		name    string
		spec    action.RepeatSpec
		data    action.Extras
		want    int
		wantErr bool
	}{
		{name: "fixed", spec: action.Times(4), want: 4},
		{name: "fixed negative", spec: action.Times(-1), want: 0},
		{name: "zero value", spec: action.RepeatSpec{}, want: 0},
		{name: "named int", spec: action.FromExtra("n"), data: action.Extras{"n": 7}, want: 7},
		{name: "named int64", spec: action.FromExtra("n"), data: action.Extras{"n": int64(7)}, want: 7},
		{name: "named whole float", spec: action.FromExtra("n"), data: action.Extras{"n": 2.0}, want: 2},
		{name: "named negative clamps", spec: action.FromExtra("n"), data: action.Extras{"n": -3}, want: 0},
		{name: "named missing", spec: action.FromExtra("n"), data: action.Extras{"m": 1}, wantErr: true},
		{name: "named fractional", spec: action.FromExtra("n"), data: action.Extras{"n": 2.5}, wantErr: true},
		{name: "named string", spec: action.FromExtra("n"), data: action.Extras{"n": "two"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Factor(tt.data)
			if tt.wantErr {
				var actionErr *action.ActionError
				assert.ErrorAs(t, err, &actionErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
