package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/vectormath"
)

// vectorStore implements driven.VectorStore on the SQLite backend.
// Vectors are stored as little-endian float32 blobs; search loads the
// collection's candidate rows and scores them in memory by cosine
// similarity. Collections here are small (one process, a handful of
// RFPs), so exact brute force beats an approximate index.
type vectorStore struct {
	store    *Store
	embedder driven.EmbeddingService

	mu      sync.RWMutex
	current string
}

var _ driven.VectorStore = (*vectorStore)(nil)

// Initialise creates the collection row if absent and attaches to it.
// Idempotent; the second call is a no-op apart from re-attaching.
func (s *vectorStore) Initialise(ctx context.Context, collection string) error {
	if collection == "" {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx,
		"INSERT INTO collections (name) VALUES (?) ON CONFLICT(name) DO NOTHING", collection)
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	s.mu.Lock()
	s.current = collection
	s.mu.Unlock()
	return nil
}

// AddDocuments embeds each item's content and upserts it into the
// attached collection. Upserts are last-write-wins per id.
func (s *vectorStore) AddDocuments(ctx context.Context, items []driven.IndexItem) error {
	collection, err := s.attached()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i, item := range items {
		metaJSON, err := json.Marshal(item.Meta)
		if err != nil {
			return fmt.Errorf("marshalling metadata: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chunks (id, collection, document_id, content, embedding, metadata)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id, collection) DO UPDATE SET
				document_id = excluded.document_id,
				content = excluded.content,
				embedding = excluded.embedding,
				metadata = excluded.metadata
		`, item.ID, collection, item.Meta.DocumentID, item.Content,
			float32SliceToBytes(vectors[i]), string(metaJSON))
		if err != nil {
			return fmt.Errorf("upserting chunk %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// SimilaritySearch embeds the query and returns up to opts.Limit
// results ordered by descending cosine similarity.
func (s *vectorStore) SimilaritySearch(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SimilarityResult, error) {
	collection, err := s.attached()
	if err != nil {
		return nil, err
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
	}

	sqlQuery := "SELECT id, content, embedding, metadata FROM chunks WHERE collection = ?"
	args := []any{collection}
	if opts.DocumentID != "" {
		sqlQuery += " AND document_id = ?"
		args = append(args, opts.DocumentID)
	}

	rows, err := s.store.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var results []domain.SimilarityResult
	for rows.Next() {
		var (
			id, content, metaJSON string
			embeddingBlob         []byte
		)
		if err := rows.Scan(&id, &content, &embeddingBlob, &metaJSON); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}

		var meta domain.ChunkMeta
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata for %s: %w", id, err)
		}

		results = append(results, domain.SimilarityResult{
			ID:      id,
			Content: content,
			Meta:    meta,
			Score:   vectormath.Cosine(queryVec, bytesToFloat32Slice(embeddingBlob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// DeleteCollection drops the named collection; chunks cascade.
// Dropping the attached collection detaches the store.
func (s *vectorStore) DeleteCollection(ctx context.Context, collection string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM collections WHERE name = ?", collection); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	s.mu.Lock()
	if s.current == collection {
		s.current = ""
	}
	s.mu.Unlock()
	return nil
}

// Count returns the number of chunks in the attached collection.
func (s *vectorStore) Count(ctx context.Context) (int, error) {
	collection, err := s.attached()
	if err != nil {
		return 0, err
	}

	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks WHERE collection = ?", collection)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// Close is a no-op; the unified Store owns the connection.
func (s *vectorStore) Close() error {
	return nil
}

// attached returns the currently attached collection name.
func (s *vectorStore) attached() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return "", domain.ErrNotInitialised
	}
	return s.current, nil
}
