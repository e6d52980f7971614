// Package memory provides in-memory implementations of the storage
// ports. Used for tests and for --ephemeral runs where nothing should
// touch disk.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/vectormath"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// record holds one upserted chunk with its vector.
type record struct {
	id      string
	content string
	meta    domain.ChunkMeta
	vector  []float32
}

// VectorStore is an in-memory implementation of driven.VectorStore.
// Collections are maps keyed by chunk id; search is brute-force cosine.
type VectorStore struct {
	mu          sync.RWMutex
	embedder    driven.EmbeddingService
	collections map[string]map[string]record
	current     string
}

// NewVectorStore creates an in-memory vector store using the given
// embedding provider.
func NewVectorStore(embedder driven.EmbeddingService) *VectorStore {
	return &VectorStore{
		embedder:    embedder,
		collections: make(map[string]map[string]record),
	}
}

// Initialise creates the collection if absent and attaches to it.
// Idempotent.
func (s *VectorStore) Initialise(_ context.Context, collection string) error {
	if collection == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = make(map[string]record)
	}
	s.current = collection
	return nil
}

// AddDocuments embeds each item and upserts it into the attached
// collection. Upserts are last-write-wins per id.
func (s *VectorStore) AddDocuments(ctx context.Context, items []driven.IndexItem) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == "" {
		return domain.ErrNotInitialised
	}
	if len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Content
	}

	// Embedding happens outside the lock; only the upsert is guarded.
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[current]
	if !ok {
		return domain.ErrNotInitialised
	}
	for i, item := range items {
		coll[item.ID] = record{
			id:      item.ID,
			content: item.Content,
			meta:    item.Meta,
			vector:  vectors[i],
		}
	}
	return nil
}

// SimilaritySearch embeds the query and returns up to opts.Limit
// results ordered by descending cosine similarity.
func (s *VectorStore) SimilaritySearch(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SimilarityResult, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == "" {
		return nil, domain.ErrNotInitialised
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	coll, ok := s.collections[current]
	if !ok {
		return nil, domain.ErrNotInitialised
	}

	results := make([]domain.SimilarityResult, 0, len(coll))
	for _, rec := range coll {
		if opts.DocumentID != "" && rec.meta.DocumentID != opts.DocumentID {
			continue
		}
		results = append(results, domain.SimilarityResult{
			ID:      rec.id,
			Content: rec.content,
			Meta:    rec.meta,
			Score:   vectormath.Cosine(queryVec, rec.vector),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// DeleteCollection drops the named collection. Dropping the attached
// collection detaches the store; Initialise must be called again.
func (s *VectorStore) DeleteCollection(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
	if s.current == collection {
		s.current = ""
	}
	return nil
}

// Count returns the number of chunks in the attached collection.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return 0, domain.ErrNotInitialised
	}
	return len(s.collections[s.current]), nil
}

// Close releases resources.
func (s *VectorStore) Close() error {
	return nil
}
