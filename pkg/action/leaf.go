package action

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Noop is a leaf action that succeeds without doing anything. Useful for
// wiring up trees in tests and for nullified branches.
type Noop struct{}

func (Noop) Execute(ctx context.Context, data Extras) error {
	return nil
}

func (Noop) Name() string { return "noop" }

// Print is a leaf action that writes a formatted line to a writer,
// pulling the format arguments from named extras fields. Missing keys
// render as <nil>.
type Print struct {
	W      io.Writer
	Format string
	Keys   []string
}

// NewPrint builds a Print leaf. keys name the extras fields substituted
// into format, in order.
func NewPrint(w io.Writer, format string, keys ...string) *Print {
	return &Print{W: w, Format: format, Keys: keys}
}

func (p *Print) Execute(ctx context.Context, data Extras) error {
	args := make([]any, len(p.Keys))
	for i, k := range p.Keys {
		args[i] = data[k]
	}
	_, err := fmt.Fprintf(p.W, p.Format+"\n", args...)
	return err
}

func (p *Print) Name() string { return "print" }

// Pause is a leaf action that blocks for a fixed duration, honoring
// context cancellation. It mirrors the timing actions most automation
// hosts need between emulated inputs.
type Pause struct {
	Duration time.Duration
}

func (p Pause) Execute(ctx context.Context, data Extras) error {
	timer := time.NewTimer(p.Duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p Pause) Name() string { return "pause" }
