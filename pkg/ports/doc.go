// Package ports defines the interfaces between the reflex core and its
// adapters (storage, catalog loading). Implementations live under
// pkg/adapters.
package ports
