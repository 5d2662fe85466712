package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/reflex/pkg/action"
	"github.com/aretw0/reflex/pkg/registry"
)

func TestRegistry_Action(t *testing.T) {
	reg := registry.New()

	var got action.Extras
	reg.Register(registry.Tool{
		Name:     "greet",
		Params:   []string{"name", "greeting"},
		Defaults: action.Extras{"greeting": "hello"},
		Fn: func(ctx context.Context, args action.Extras) error {
			got = args
			return nil
		},
	})

	act, err := reg.Action("greet", action.Extras{"name": "world"}, nil)
	assert.NoError(t, err)

	err = act.Execute(context.Background(), action.Extras{"ignored": true})
	assert.NoError(t, err)
	assert.Equal(t, action.Extras{"name": "world", "greeting": "hello"}, got)
}

func TestRegistry_StepDefaultsOverrideToolDefaults(t *testing.T) {
	reg := registry.New()

	var got action.Extras
	reg.Register(registry.Tool{
		Name:     "greet",
		Params:   []string{"greeting"},
		Defaults: action.Extras{"greeting": "hello"},
		Fn: func(ctx context.Context, args action.Extras) error {
			got = args
			return nil
		},
	})

	act, err := reg.Action("greet", action.Extras{"greeting": "hi"}, nil)
	assert.NoError(t, err)

	assert.NoError(t, act.Execute(context.Background(), nil))
	assert.Equal(t, action.Extras{"greeting": "hi"}, got)
}

func TestRegistry_UnknownTool(t *testing.T) {
	reg := registry.New()

	_, err := reg.Action("missing", nil, nil)
	assert.Error(t, err)
	assert.False(t, reg.Has("missing"))
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.Tool{Name: "zeta"})
	reg.Register(registry.Tool{Name: "alpha"})

	tools := reg.List()
	assert.Len(t, tools, 2)
	assert.Equal(t, "alpha", tools[0].Name)
	assert.Equal(t, "zeta", tools[1].Name)
}
