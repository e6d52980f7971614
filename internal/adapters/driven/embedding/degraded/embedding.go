// Package degraded provides a fallback embedding service that produces
// deterministic but semantically meaningless vectors. It keeps the
// pipeline functional in demo mode when no real provider is reachable,
// and is always distinguishable from a real provider via Degraded().
package degraded

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions matches the default real provider so collections
// built in degraded mode keep the same shape.
const DefaultDimensions = 768

// EmbeddingService generates pseudo-random unit vectors seeded by the
// input text. Identical texts always map to identical vectors, so
// exact-duplicate retrieval still works; nothing else does.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates a degraded embedding service.
// If dimensions is zero, DefaultDimensions is used.
func NewEmbeddingService(dimensions int) *EmbeddingService {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &EmbeddingService{dimensions: dimensions}
}

// Embed generates a deterministic pseudo-random unit vector for text.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float32, s.dimensions)
	var norm float64
	for i := range vec {
		v := rng.Float64()*2 - 1
		vec[i] = float32(v)
		norm += v * v
	}

	// L2-normalise so cosine scores stay in the expected range
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}

	return vec, nil
}

// EmbedBatch generates one vector per input, order-preserving.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName identifies the fallback generator.
func (s *EmbeddingService) ModelName() string {
	return "degraded-random"
}

// Degraded reports that these vectors carry no semantic meaning.
func (s *EmbeddingService) Degraded() bool {
	return true
}

// Ping always succeeds; there is no remote service.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}
