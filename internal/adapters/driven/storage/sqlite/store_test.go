package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding/degraded"
	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	// Reopening the same database must be a no-op for migrations.
	s2, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer s2.Close()

	var version int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 1, version)
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	docs := s.DocumentStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID: "doc-1",
		Meta: domain.DocumentMeta{
			Title:      "City IT Services RFP",
			Agency:     "City of Springfield",
			DueDate:    "2026-03-01",
			RFPNumber:  "RFP-2026-017",
			FileName:   "rfp.pdf",
			FileType:   "application/pdf",
			FileSize:   4096,
			IngestedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Meta.Title, got.Meta.Title)
	assert.Equal(t, doc.Meta.RFPNumber, got.Meta.RFPNumber)
	assert.Equal(t, doc.Meta.FileSize, got.Meta.FileSize)
}

func TestDocumentStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DocumentStore().GetDocument(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_SaveUpdatesExisting(t *testing.T) {
	s := newTestStore(t)
	docs := s.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID:   "doc-1",
		Meta: domain.DocumentMeta{Title: "Draft"},
	}))
	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID:   "doc-1",
		Meta: domain.DocumentMeta{Title: "Final"},
	}))

	got, err := docs.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Meta.Title)

	list, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDocumentStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	docs := s.DocumentStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID: "old", Meta: domain.DocumentMeta{IngestedAt: base},
	}))
	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID: "new", Meta: domain.DocumentMeta{IngestedAt: base.Add(time.Hour)},
	}))

	list, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestDocumentStore_Delete(t *testing.T) {
	s := newTestStore(t)
	docs := s.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{ID: "doc-1"}))
	require.NoError(t, docs.DeleteDocument(ctx, "doc-1"))

	_, err := docs.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func newTestVectorStore(t *testing.T) driven.VectorStore {
	t.Helper()
	return newTestStore(t).VectorStore(degraded.NewEmbeddingService(64))
}

func TestVectorStore_AddBeforeInitialise(t *testing.T) {
	vs := newTestVectorStore(t)

	err := vs.AddDocuments(context.Background(), []driven.IndexItem{{ID: "a", Content: "x"}})
	assert.ErrorIs(t, err, domain.ErrNotInitialised)
}

func TestVectorStore_RoundTrip(t *testing.T) {
	vs := newTestVectorStore(t)
	ctx := context.Background()
	require.NoError(t, vs.Initialise(ctx, "rfps"))

	err := vs.AddDocuments(ctx, []driven.IndexItem{
		{ID: "a", Content: "Vendors must hold ISO 9001 certification.", Meta: domain.ChunkMeta{DocumentID: "doc-1", ChunkIndex: 0}},
		{ID: "b", Content: "Lunch will be provided in the atrium.", Meta: domain.ChunkMeta{DocumentID: "doc-1", ChunkIndex: 1}},
	})
	require.NoError(t, err)

	// Stored blobs must round-trip: an identical query ranks its own
	// chunk first with a perfect score.
	results, err := vs.SimilaritySearch(ctx, "Vendors must hold ISO 9001 certification.", domain.SearchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "a", results[0].ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-6)
	assert.Equal(t, "doc-1", results[0].Meta.DocumentID)
	assert.Equal(t, 0, results[0].Meta.ChunkIndex)
}

func TestVectorStore_DocumentScope(t *testing.T) {
	vs := newTestVectorStore(t)
	ctx := context.Background()
	require.NoError(t, vs.Initialise(ctx, "rfps"))

	require.NoError(t, vs.AddDocuments(ctx, []driven.IndexItem{
		{ID: "doc-1-chunk-0", Content: "first document text", Meta: domain.ChunkMeta{DocumentID: "doc-1"}},
		{ID: "doc-2-chunk-0", Content: "second document text", Meta: domain.ChunkMeta{DocumentID: "doc-2"}},
	}))

	results, err := vs.SimilaritySearch(ctx, "text", domain.SearchOptions{Limit: 10, DocumentID: "doc-2"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "doc-2-chunk-0", results[0].ID)
}

func TestVectorStore_UpsertReplacesByID(t *testing.T) {
	vs := newTestVectorStore(t)
	ctx := context.Background()
	require.NoError(t, vs.Initialise(ctx, "rfps"))

	require.NoError(t, vs.AddDocuments(ctx, []driven.IndexItem{{ID: "a", Content: "old"}}))
	require.NoError(t, vs.AddDocuments(ctx, []driven.IndexItem{{ID: "a", Content: "new"}}))

	count, err := vs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	results, err := vs.SimilaritySearch(ctx, "new", domain.SearchOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "new", results[0].Content)
}

func TestVectorStore_DeleteCollectionCascades(t *testing.T) {
	s := newTestStore(t)
	vs := s.VectorStore(degraded.NewEmbeddingService(64))
	ctx := context.Background()
	require.NoError(t, vs.Initialise(ctx, "rfps"))
	require.NoError(t, vs.AddDocuments(ctx, []driven.IndexItem{{ID: "a", Content: "x"}}))

	require.NoError(t, vs.DeleteCollection(ctx, "rfps"))

	_, err := vs.Count(ctx)
	assert.ErrorIs(t, err, domain.ErrNotInitialised)

	// Chunk rows cascade with the collection.
	var orphans int
	row := s.db.QueryRow("SELECT COUNT(*) FROM chunks")
	require.NoError(t, row.Scan(&orphans))
	assert.Equal(t, 0, orphans)

	require.NoError(t, vs.Initialise(ctx, "rfps"))
	count, err := vs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestVectorEncoding_RoundTrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.14159, 0}

	out := bytesToFloat32Slice(float32SliceToBytes(in))
	assert.Equal(t, in, out)
}
