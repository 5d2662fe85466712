package domain

import "time"

// ExecutionRecord is the journal entry written once per command
// execution. It carries enough to replay the command (name + extras) and
// to inspect the outcome.
type ExecutionRecord struct {
	Command   string         `json:"command"`
	Extras    map[string]any `json:"extras,omitempty"`
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
}

// CommandInfo is the catalog view exposed to hosts (CLI list, HTTP).
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Steps       int    `json:"steps"`
	OnFailure   string `json:"on_failure"`
}
