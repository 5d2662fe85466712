package action

import (
	"context"
	"maps"
)

// Bound wraps an action with a fixed default data mapping captured at
// Bind time. At execution the defaults override the caller-supplied
// extras for overlapping keys; when bindings nest, the binding nearest
// the leaf is applied last and therefore has final say.
type Bound struct {
	Action   Action
	Defaults Extras
}

// Bind wraps act with the given defaults. The mapping is copied so later
// changes by the caller do not leak into the binding.
func Bind(act Action, defaults Extras) *Bound {
	return &Bound{Action: act, Defaults: defaults.clone(0)}
}

// Execute merges the caller data with the bound defaults (defaults win)
// and delegates to the wrapped action. The caller's map is left intact.
func (b *Bound) Execute(ctx context.Context, data Extras) error {
	merged := data.clone(len(b.Defaults))
	maps.Copy(merged, b.Defaults)
	return b.Action.Execute(ctx, merged)
}
