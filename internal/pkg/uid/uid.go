package uid

// NumberID generates numeric identifiers for persisted entities.
type NumberID interface {
	// Generate returns a new int64 identifier.
	Generate() int64
}

// StringID generates string identifiers (correlation IDs, nonces, etc).
type StringID interface {
	// Generate returns a new string identifier.
	Generate() string
}
