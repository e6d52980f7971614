package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding/degraded"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/storage/memory"
	"github.com/rfplens-labs/rfplens-cli/internal/chunker"
	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors/plaintext"
)

type ingestFixture struct {
	svc     *IngestionService
	vectors *memory.VectorStore
	docs    *memory.DocumentStore
}

func newIngestFixture(t *testing.T) *ingestFixture {
	t.Helper()

	vectors := memory.NewVectorStore(degraded.NewEmbeddingService(64))
	require.NoError(t, vectors.Initialise(context.Background(), DefaultCollection))

	docs := memory.NewDocumentStore()
	svc := NewIngestionService(
		extractors.NewRegistry(plaintext.New()),
		chunker.New(chunker.WithChunkSize(100), chunker.WithOverlap(20)),
		vectors,
		docs,
	)
	return &ingestFixture{svc: svc, vectors: vectors, docs: docs}
}

func TestIngest_PlainText(t *testing.T) {
	f := newIngestFixture(t)
	ctx := context.Background()

	raw := domain.RawDocument{
		FileName: "rfp.txt",
		MIMEType: "text/plain",
		Title:    "Permit System Modernisation",
		Agency:   "City of Springfield",
		Content:  []byte(strings.Repeat("Vendors must respond to every requirement in this section. ", 10)),
	}

	documentID, err := f.svc.Ingest(ctx, raw)
	require.NoError(t, err)
	require.NotEmpty(t, documentID)

	count, err := f.vectors.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, 1)

	doc, err := f.docs.GetDocument(ctx, documentID)
	require.NoError(t, err)
	assert.Equal(t, "Permit System Modernisation", doc.Meta.Title)
	assert.Equal(t, "text/plain", doc.Meta.FileType)
	assert.Equal(t, int64(len(raw.Content)), doc.Meta.FileSize)
	assert.False(t, doc.Meta.IngestedAt.IsZero())
}

func TestIngest_ChunkMetadata(t *testing.T) {
	f := newIngestFixture(t)
	ctx := context.Background()

	documentID, err := f.svc.Ingest(ctx, domain.RawDocument{
		FileName: "rfp.txt",
		MIMEType: "text/plain",
		Content:  []byte(strings.Repeat("Each sentence here is indexed under the parent document. ", 8)),
	})
	require.NoError(t, err)

	results, err := f.vectors.SimilaritySearch(ctx, "indexed", domain.SearchOptions{Limit: 10, DocumentID: documentID})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	total := results[0].Meta.TotalChunks
	assert.Greater(t, total, 1)
	for _, result := range results {
		assert.Equal(t, documentID, result.Meta.DocumentID)
		assert.Equal(t, total, result.Meta.TotalChunks)
		assert.Equal(t, fmt.Sprintf("%s-chunk-%d", documentID, result.Meta.ChunkIndex), result.ID)
	}
}

func TestIngest_UnsupportedMIMEType(t *testing.T) {
	f := newIngestFixture(t)

	_, err := f.svc.Ingest(context.Background(), domain.RawDocument{
		FileName: "rfp.docx",
		MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Content:  []byte("irrelevant"),
	})
	assert.ErrorIs(t, err, domain.ErrIngestionFailed)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestIngest_EmptyDocument(t *testing.T) {
	f := newIngestFixture(t)

	_, err := f.svc.Ingest(context.Background(), domain.RawDocument{
		FileName: "empty.txt",
		MIMEType: "text/plain",
		Content:  []byte("   \n\t  "),
	})
	assert.ErrorIs(t, err, domain.ErrIngestionFailed)
}

func TestIngest_ThenAnalyseEndToEnd(t *testing.T) {
	f := newIngestFixture(t)
	ctx := context.Background()

	text := "Vendors must have ISO 9001 certification to qualify for this engagement. " +
		"Bidders must have at least 3 years experience delivering comparable systems. " +
		"The selected vendor must demonstrate Cloud capability across the full stack."

	documentID, err := f.svc.Ingest(ctx, domain.RawDocument{
		FileName: "rfp.txt",
		MIMEType: "text/plain",
		Content:  []byte(text),
	})
	require.NoError(t, err)

	analysis := NewAnalysisService(f.vectors, &mockAnswerGenerator{answer: "ok"})
	report, err := analysis.AnalyseEligibility(ctx, documentID, testProfile())
	require.NoError(t, err)

	assert.True(t, report.Eligible, "missing: %v", report.MissingRequirements)
	assert.NotEmpty(t, report.Requirements)
}
