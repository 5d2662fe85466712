// Package registry manages the named leaf tools a host makes available
// to the command compiler. Each tool carries the keyword parameters it
// declares, so composed Func actions can filter execution data without
// reflection.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/reflex/pkg/action"
)

// Tool describes a host-provided callable and its capability descriptor.
type Tool struct {
	Name        string
	Description string
	// Params are the keyword names the callable accepts; everything else
	// in the execution data is dropped before the call.
	Params []string
	// Defaults are keyword values used when the execution data does not
	// supply them.
	Defaults action.Extras
	Fn       action.Callable
}

// Registry is a thread-safe map of tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool. If a tool with the same name exists, it is
// overwritten.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
}

// Has reports whether a tool is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Action builds a Func leaf for the named tool, layering extra defaults
// (from a catalog step's `with` block) over the tool's own, and applying
// an optional remap table.
func (r *Registry) Action(name string, defaults action.Extras, remap map[string]string) (*action.Func, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}

	merged := make(action.Extras, len(tool.Defaults)+len(defaults))
	for k, v := range tool.Defaults {
		merged[k] = v
	}
	for k, v := range defaults {
		merged[k] = v
	}

	opts := []action.FuncOption{action.WithDefaults(merged)}
	if len(remap) > 0 {
		opts = append(opts, action.WithRemap(remap))
	}
	return action.NewFunc(tool.Fn, tool.Params, opts...), nil
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
