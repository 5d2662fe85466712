package memory

// Loader implements ports.CatalogLoader over a byte slice.
type Loader struct {
	data []byte
}

// NewLoader wraps raw catalog bytes (YAML).
func NewLoader(data []byte) *Loader {
	return &Loader{data: data}
}

func (l *Loader) Load() ([]byte, error) {
	return l.data, nil
}
