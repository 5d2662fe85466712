package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/reflex/pkg/action"
	"github.com/aretw0/reflex/pkg/registry"
)

// RegisterBuiltins adds the host-independent tools every CLI session
// gets: print, log, pause and noop. Engine-specific tools (keystrokes,
// window control) are expected from embedding hosts, not from here.
func RegisterBuiltins(reg *registry.Registry, out io.Writer) {
	reg.Register(registry.Tool{
		Name:        "print",
		Description: "Write a line of text to standard output",
		Params:      []string{"text"},
		Defaults:    action.Extras{"text": ""},
		Fn: func(ctx context.Context, args action.Extras) error {
			_, err := fmt.Fprintln(out, args["text"])
			return err
		},
	})

	reg.Register(registry.Tool{
		Name:        "log",
		Description: "Emit a structured log line",
		Params:      []string{"message"},
		Fn: func(ctx context.Context, args action.Extras) error {
			slog.InfoContext(ctx, fmt.Sprint(args["message"]))
			return nil
		},
	})

	reg.Register(registry.Tool{
		Name:        "pause",
		Description: "Wait for a number of milliseconds",
		Params:      []string{"ms"},
		Defaults:    action.Extras{"ms": 100},
		Fn: func(ctx context.Context, args action.Extras) error {
			ms, ok := asMillis(args["ms"])
			if !ok {
				return fmt.Errorf("pause: ms is not a number: %v", args["ms"])
			}
			p := action.Pause{Duration: time.Duration(ms) * time.Millisecond}
			return p.Execute(ctx, nil)
		},
	})

	reg.Register(registry.Tool{
		Name:        "noop",
		Description: "Do nothing, successfully",
		Fn: func(ctx context.Context, args action.Extras) error {
			return nil
		},
	})
}

func asMillis(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
