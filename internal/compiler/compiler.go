// Package compiler turns a YAML command catalog into executable action
// trees, resolving each step's tool against the host registry and
// applying the composition operators (sequence, fallback, repeat, bind).
package compiler

import (
	"errors"
	"fmt"

	"github.com/aretw0/reflex/pkg/action"
	"github.com/aretw0/reflex/pkg/registry"
)

// Compiler resolves catalog steps against a tool registry.
type Compiler struct {
	registry *registry.Registry
	reporter action.Reporter
}

// New creates a compiler. reporter may be nil; series then use the
// package default.
func New(reg *registry.Registry, reporter action.Reporter) *Compiler {
	return &Compiler{registry: reg, reporter: reporter}
}

// Compile builds one action tree per catalog command. Validation runs
// first so a broken catalog is rejected as a whole.
func (c *Compiler) Compile(cat *Catalog) (map[string]action.Action, error) {
	if err := c.Validate(cat); err != nil {
		return nil, err
	}

	out := make(map[string]action.Action, len(cat.Commands))
	for _, cmd := range cat.Commands {
		act, err := c.compileCommand(cmd)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", cmd.Name, err)
		}
		out[cmd.Name] = act
	}
	return out, nil
}

func (c *Compiler) compileCommand(cmd Command) (action.Action, error) {
	series, err := c.compileSeries(cmd.Steps, cmd.OnFailure != FailurePolicyContinue)
	if err != nil {
		return nil, err
	}

	var act action.Action = series
	if len(cmd.Bind) > 0 {
		act = action.Bind(act, action.Extras(cmd.Bind))
	}
	return act, nil
}

func (c *Compiler) compileSeries(steps []Step, stopOnFailures bool) (*action.Series, error) {
	items := make([]action.Action, 0, len(steps))
	for i, step := range steps {
		act, err := c.compileStep(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		items = append(items, act)
	}

	series := action.NewSeries(stopOnFailures, items...)
	series.SetReporter(c.reporter)
	return series, nil
}

func (c *Compiler) compileStep(step Step) (action.Action, error) {
	var act action.Action
	var err error

	switch {
	case step.Tool != "":
		act, err = c.registry.Action(step.Tool, action.Extras(step.With), step.Remap)
	case len(step.Steps) > 0:
		act, err = c.compileSeries(step.Steps, true)
	case len(step.AnyOf) > 0:
		act, err = c.compileSeries(step.AnyOf, false)
	default:
		err = errors.New("step declares no tool, steps or any_of")
	}
	if err != nil {
		return nil, err
	}

	// Wrapping order matters: bind applies inside the repetition so every
	// iteration sees the bound values.
	if len(step.Bind) > 0 {
		act = action.Bind(act, action.Extras(step.Bind))
	}
	if step.Repeat != nil {
		act = action.Repeat(act, repeatSpec(step.Repeat))
	}
	return act, nil
}

func repeatSpec(f *RepeatField) action.RepeatSpec {
	if f.Extra != "" {
		return action.FromExtra(f.Extra)
	}
	if f.Count != nil {
		return action.Times(*f.Count)
	}
	return action.Times(0)
}

// Validate checks the catalog for structural problems: duplicate or
// unnamed commands, steps without an action, unknown tools, and repeat
// fields that set both (or neither of) count and extra.
func (c *Compiler) Validate(cat *Catalog) error {
	var errs []error
	seen := make(map[string]bool)

	for i, cmd := range cat.Commands {
		if cmd.Name == "" {
			errs = append(errs, fmt.Errorf("command %d: missing name", i))
			continue
		}
		if seen[cmd.Name] {
			errs = append(errs, fmt.Errorf("command %q: duplicate name", cmd.Name))
		}
		seen[cmd.Name] = true

		if cmd.OnFailure != "" && cmd.OnFailure != FailurePolicyStop && cmd.OnFailure != FailurePolicyContinue {
			errs = append(errs, fmt.Errorf("command %q: invalid on_failure %q", cmd.Name, cmd.OnFailure))
		}
		if len(cmd.Steps) == 0 {
			errs = append(errs, fmt.Errorf("command %q: no steps", cmd.Name))
		}
		errs = append(errs, c.validateSteps(cmd.Name, cmd.Steps)...)
	}

	return errors.Join(errs...)
}

func (c *Compiler) validateSteps(cmdName string, steps []Step) []error {
	var errs []error
	for i, step := range steps {
		where := fmt.Sprintf("command %q, step %d", cmdName, i)

		forms := 0
		if step.Tool != "" {
			forms++
			if !c.registry.Has(step.Tool) {
				errs = append(errs, fmt.Errorf("%s: unknown tool %q", where, step.Tool))
			}
		}
		if len(step.Steps) > 0 {
			forms++
			errs = append(errs, c.validateSteps(cmdName, step.Steps)...)
		}
		if len(step.AnyOf) > 0 {
			forms++
			errs = append(errs, c.validateSteps(cmdName, step.AnyOf)...)
		}
		if forms == 0 {
			errs = append(errs, fmt.Errorf("%s: declares no tool, steps or any_of", where))
		}
		if forms > 1 {
			errs = append(errs, fmt.Errorf("%s: tool, steps and any_of are mutually exclusive", where))
		}

		if step.Repeat != nil {
			hasCount := step.Repeat.Count != nil
			hasExtra := step.Repeat.Extra != ""
			if hasCount == hasExtra {
				errs = append(errs, fmt.Errorf("%s: repeat needs exactly one of count or extra", where))
			}
		}
	}
	return errs
}
