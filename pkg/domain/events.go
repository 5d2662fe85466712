package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommandStart EventType = "command_start"
	EventCommandEnd   EventType = "command_end"
	EventItemFailure  EventType = "item_failure"
)

// ActionEvent describes one step of a command execution for observers.
type ActionEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      EventType      `json:"type"`
	Command   string         `json:"command"`
	Extras    map[string]any `json:"extras,omitempty"`
	Success   bool           `json:"success,omitempty"`
	Error     string         `json:"error,omitempty"`
	Duration  time.Duration  `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability. Any field
// may be nil.
type LifecycleHooks struct {
	OnCommandStart func(context.Context, *ActionEvent)
	OnCommandEnd   func(context.Context, *ActionEvent)
	OnItemFailure  func(context.Context, *ActionEvent)
}
