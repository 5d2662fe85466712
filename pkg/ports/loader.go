package ports

// CatalogLoader defines how the engine retrieves the raw command catalog.
// This decouples the source (file, memory, remote) from the compiler.
type CatalogLoader interface {
	// Load returns the raw catalog bytes (YAML) for the compiler.
	Load() ([]byte, error)
}
