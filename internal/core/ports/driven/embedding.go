package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Two variants exist: a real provider backed by a model server, and a
// degraded provider that produces deterministic but semantically
// meaningless vectors so the pipeline stays usable in demo mode.
// Callers can always tell which one they hold via Degraded.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, one vector
	// per input, order-preserving.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the fixed embedding vector size.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Degraded reports whether this is the fallback provider whose
	// vectors carry no semantic meaning.
	Degraded() bool

	// Ping validates the provider is usable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
