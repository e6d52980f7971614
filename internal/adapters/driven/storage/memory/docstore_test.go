package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID: "doc-1",
		Meta: domain.DocumentMeta{
			Title:      "City IT Services RFP",
			Agency:     "City of Springfield",
			FileName:   "rfp.pdf",
			FileType:   "application/pdf",
			IngestedAt: time.Now(),
		},
	}
	require.NoError(t, s.SaveDocument(ctx, doc))

	got, err := s.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "City IT Services RFP", got.Meta.Title)
}

func TestDocumentStore_GetMissing(t *testing.T) {
	s := NewDocumentStore()

	_, err := s.GetDocument(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListNewestFirst(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	older := &domain.Document{ID: "old", Meta: domain.DocumentMeta{IngestedAt: time.Now().Add(-time.Hour)}}
	newer := &domain.Document{ID: "new", Meta: domain.DocumentMeta{IngestedAt: time.Now()}}
	require.NoError(t, s.SaveDocument(ctx, older))
	require.NoError(t, s.SaveDocument(ctx, newer))

	docs, err := s.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "new", docs[0].ID)
	assert.Equal(t, "old", docs[1].ID)
}

func TestDocumentStore_Delete(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, &domain.Document{ID: "doc-1"}))
	require.NoError(t, s.DeleteDocument(ctx, "doc-1"))

	_, err := s.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
