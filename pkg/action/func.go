package action

import "context"

// Callable is the signature for functions wrapped by Func. It receives
// only the keyword arguments it declared; anything else in the execution
// data is filtered out before the call.
type Callable func(ctx context.Context, args Extras) error

// Func adapts a host callable into an action. Argument assembly at
// execution time, in order:
//
//  1. start from the default keyword values,
//  2. merge the non-remapped execution-data keys over them,
//  3. apply the remap table (extras key -> parameter name), which wins
//     over both defaults and direct extras,
//  4. drop every key the callable did not declare.
//
// Errors from the callable are returned as-is; the enclosing series
// decides what to do with them.
type Func struct {
	fn       Callable
	params   []string
	defaults Extras
	remap    map[string]string
}

// FuncOption configures a Func at construction.
type FuncOption func(*Func)

// WithDefaults sets default keyword values, overridden by execution data
// for matching keys.
func WithDefaults(defaults Extras) FuncOption {
	return func(f *Func) {
		f.defaults = defaults.clone(0)
	}
}

// WithRemap renames execution-data keys before the call: each entry maps
// an extras key to the parameter name the callable expects.
func WithRemap(remap map[string]string) FuncOption {
	return func(f *Func) {
		f.remap = make(map[string]string, len(remap))
		for k, v := range remap {
			f.remap[k] = v
		}
	}
}

// NewFunc wraps fn as an action. params declares the keyword names the
// callable accepts; unknown keys in the execution data are silently
// ignored rather than rejected.
func NewFunc(fn Callable, params []string, opts ...FuncOption) *Func {
	f := &Func{
		fn:     fn,
		params: append([]string{}, params...),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Params returns the declared keyword names.
func (f *Func) Params() []string {
	return append([]string{}, f.params...)
}

func (f *Func) Execute(ctx context.Context, data Extras) error {
	work := f.defaults.clone(len(data))
	for k, v := range data {
		if _, remapped := f.remap[k]; remapped {
			continue
		}
		work[k] = v
	}
	for extra, param := range f.remap {
		if v, ok := data[extra]; ok {
			work[param] = v
		}
	}

	args := make(Extras, len(f.params))
	for _, p := range f.params {
		if v, ok := work[p]; ok {
			args[p] = v
		}
	}
	return f.fn(ctx, args)
}
