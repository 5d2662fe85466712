package domain

import "errors"

// ErrCommandNotFound is returned when a command name is not present in
// the compiled catalog.
var ErrCommandNotFound = errors.New("command not found")

// ErrNoJournalEntries is returned when the journal has nothing to replay.
var ErrNoJournalEntries = errors.New("no journal entries")
