// Package domain holds the shared value types of the reflex engine:
// lifecycle events, execution records and sentinel errors. It has no
// behavior of its own and no dependencies on the rest of the module.
package domain
