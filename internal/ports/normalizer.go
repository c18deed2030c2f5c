package ports

// Normalizer defines the interface for preprocessing text before it is scored.
type Normalizer interface {
	Normalize(text string) string
}
