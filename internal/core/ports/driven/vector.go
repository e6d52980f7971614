package driven

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// IndexItem is a chunk record to be embedded and upserted.
type IndexItem struct {
	// ID is the chunk id; unique within a collection, upserts replace.
	ID string

	// Content is the text to embed and store.
	Content string

	// Meta is the chunk metadata stored alongside the vector.
	Meta domain.ChunkMeta
}

// VectorStore stores embedded chunks in named collections and answers
// k-nearest-neighbour queries by cosine similarity.
//
// The distance metric is fixed: cosine distance (1 − cosine similarity),
// so the returned score (1 − distance) is the cosine similarity itself
// and stays within [-1, 1].
type VectorStore interface {
	// Initialise creates the named collection if absent and attaches
	// to it. Idempotent; safe to call redundantly.
	Initialise(ctx context.Context, collection string) error

	// AddDocuments embeds each item's content and upserts
	// (id, vector, content, metadata) into the attached collection.
	// Returns domain.ErrNotInitialised before Initialise.
	AddDocuments(ctx context.Context, items []IndexItem) error

	// SimilaritySearch embeds the query and returns up to opts.Limit
	// results ordered by descending score. An empty collection yields
	// an empty slice, not an error.
	SimilaritySearch(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SimilarityResult, error)

	// DeleteCollection drops the named collection and its chunks.
	DeleteCollection(ctx context.Context, collection string) error

	// Count returns the number of chunks in the attached collection.
	// Returns domain.ErrNotInitialised before Initialise.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
