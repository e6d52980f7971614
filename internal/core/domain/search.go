package domain

// SearchOptions configures a similarity search.
type SearchOptions struct {
	// Limit is the maximum number of results (k in k-NN).
	Limit int

	// DocumentID restricts results to chunks of a single document.
	// Empty means search across all ingested documents.
	DocumentID string
}

// SimilarityResult is a single retrieval hit. Derived at query time,
// never stored.
type SimilarityResult struct {
	// ID is the matched chunk id.
	ID string

	// Content is the chunk text.
	Content string

	// Meta is the chunk metadata.
	Meta ChunkMeta

	// Score is the relevance score: 1 − cosine distance, i.e. the
	// cosine similarity. Higher is more similar.
	Score float64
}
