package reflex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/reflex/internal/compiler"
	"github.com/aretw0/reflex/pkg/action"
	"github.com/aretw0/reflex/pkg/adapters/file"
	"github.com/aretw0/reflex/pkg/domain"
	"github.com/aretw0/reflex/pkg/ports"
	"github.com/aretw0/reflex/pkg/registry"
)

// Engine is the high-level entry point for the reflex library. It owns
// the compiled command catalog and executes commands against trigger
// extras, recording each run in the journal when one is configured.
type Engine struct {
	registry *registry.Registry
	loader   ports.CatalogLoader
	journal  ports.JournalStore
	hooks    domain.LifecycleHooks
	reporter action.Reporter
	logger   *slog.Logger
	commands map[string]action.Action
	infos    []domain.CommandInfo
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry injects the tool registry the catalog compiles against.
// Tools must be registered before New is called.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithLoader injects a custom CatalogLoader, bypassing the default file
// loader.
func WithLoader(l ports.CatalogLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithJournal enables execution recording and the Redo operation.
func WithJournal(j ports.JournalStore) Option {
	return func(e *Engine) {
		e.journal = j
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithReporter sets the failure-reporting collaborator for series
// execution. Defaults to structured logging through the engine logger.
func WithReporter(r action.Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine from a catalog. By default the catalog is
// read from catalogPath; WithLoader overrides the source, in which case
// catalogPath may be empty and only serves as a display label.
func New(catalogPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if catalogPath == "" {
			return nil, fmt.Errorf("catalogPath is required when no custom loader is provided")
		}
		eng.loader = file.NewLoader(catalogPath)
	}
	if catalogPath != "" {
		eng.Name = filepath.Base(catalogPath)
	}

	if eng.registry == nil {
		eng.registry = registry.New()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	raw, err := eng.loader.Load()
	if err != nil {
		return nil, err
	}
	cat, err := compiler.Parse(raw)
	if err != nil {
		return nil, err
	}
	if cat.Name != "" {
		eng.Name = cat.Name
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("catalog", eng.Name)
	}
	if eng.reporter == nil {
		eng.reporter = action.NewSlogReporter(eng.logger)
	}

	comp := compiler.New(eng.registry, &engineReporter{engine: eng})
	eng.commands, err = comp.Compile(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog: %w", err)
	}

	eng.infos = make([]domain.CommandInfo, 0, len(cat.Commands))
	for _, cmd := range cat.Commands {
		policy := cmd.OnFailure
		if policy == "" {
			policy = compiler.FailurePolicyStop
		}
		eng.infos = append(eng.infos, domain.CommandInfo{
			Name:        cmd.Name,
			Description: cmd.Description,
			Steps:       len(cmd.Steps),
			OnFailure:   policy,
		})
	}

	return eng, nil
}

// Execute runs the named command once with the given trigger extras.
// The returned record describes the run and is appended to the journal
// when one is configured; the error is the action tree's own result
// (including ActionError for unresolvable repeat factors).
func (e *Engine) Execute(ctx context.Context, name string, extras action.Extras) (*domain.ExecutionRecord, error) {
	act, ok := e.commands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCommandNotFound, name)
	}

	ctx = withCommand(ctx, name)
	start := time.Now()

	e.fire(e.hooks.OnCommandStart, ctx, &domain.ActionEvent{
		Timestamp: start,
		Type:      domain.EventCommandStart,
		Command:   name,
		Extras:    extras,
	})

	execErr := act.Execute(ctx, extras)

	rec := &domain.ExecutionRecord{
		Command:   name,
		Extras:    extras,
		Success:   execErr == nil,
		StartedAt: start,
		Duration:  time.Since(start),
	}
	if execErr != nil {
		rec.Error = execErr.Error()
	}

	if e.journal != nil {
		if err := e.journal.Append(ctx, rec); err != nil {
			e.logger.Warn("failed to append journal entry", "err", err)
		}
	}

	e.fire(e.hooks.OnCommandEnd, ctx, &domain.ActionEvent{
		Timestamp: time.Now(),
		Type:      domain.EventCommandEnd,
		Command:   name,
		Success:   rec.Success,
		Error:     rec.Error,
		Duration:  rec.Duration,
	})

	return rec, execErr
}

// Redo re-executes the most recently journaled command with its original
// extras. Returns domain.ErrNoJournalEntries when there is nothing to
// replay or no journal is configured.
func (e *Engine) Redo(ctx context.Context) (*domain.ExecutionRecord, error) {
	if e.journal == nil {
		return nil, domain.ErrNoJournalEntries
	}
	last, err := e.journal.Last(ctx)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, last.Command, last.Extras)
}

// Recent returns up to limit journaled executions, newest first.
func (e *Engine) Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error) {
	if e.journal == nil {
		return nil, nil
	}
	return e.journal.Recent(ctx, limit)
}

// Commands returns the catalog view, in catalog order.
func (e *Engine) Commands() []domain.CommandInfo {
	return e.infos
}

// Action returns the compiled tree for a command, for hosts that want to
// compose it further with the action package operators.
func (e *Engine) Action(name string) (action.Action, bool) {
	act, ok := e.commands[name]
	return act, ok
}

// Registry returns the tool registry the engine compiled against.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

func (e *Engine) fire(hook func(context.Context, *domain.ActionEvent), ctx context.Context, ev *domain.ActionEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}

type commandKey struct{}

func withCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

func commandFrom(ctx context.Context) string {
	name, _ := ctx.Value(commandKey{}).(string)
	return name
}

// engineReporter fans each item failure out to the OnItemFailure hook
// and the configured reporter. The command name travels in the context
// because series are compiled once and shared across executions.
type engineReporter struct {
	engine *Engine
}

func (r *engineReporter) ActionFailed(ctx context.Context, act action.Action, err error) {
	e := r.engine
	e.fire(e.hooks.OnItemFailure, ctx, &domain.ActionEvent{
		Timestamp: time.Now(),
		Type:      domain.EventItemFailure,
		Command:   commandFrom(ctx),
		Error:     err.Error(),
	})
	e.reporter.ActionFailed(ctx, act, err)
}
