package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfplens-labs/rfplens-cli/internal/chunker"
	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driving"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors"
	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// DefaultCollection is the collection all ingested RFPs share.
const DefaultCollection = "rfp_documents"

// Ensure IngestionService implements the interface.
var _ driving.IngestionService = (*IngestionService)(nil)

// IngestionService orchestrates extraction, chunking, embedding and
// indexing of raw RFP documents.
type IngestionService struct {
	extractors  *extractors.Registry
	chunker     *chunker.Chunker
	vectorStore driven.VectorStore
	docStore    driven.DocumentStore
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(
	registry *extractors.Registry,
	splitter *chunker.Chunker,
	vectorStore driven.VectorStore,
	docStore driven.DocumentStore,
) *IngestionService {
	return &IngestionService{
		extractors:  registry,
		chunker:     splitter,
		vectorStore: vectorStore,
		docStore:    docStore,
	}
}

// Ingest runs the full pipeline: extract text, clean and chunk it,
// embed and index every chunk under a fresh document id, then record
// the document's metadata. Returns the generated document id.
//
// Ingestion is not transactional. If indexing fails partway, chunks
// already upserted stay in the store under the aborted id; callers
// needing atomicity must delete them themselves.
func (s *IngestionService) Ingest(ctx context.Context, raw domain.RawDocument) (string, error) {
	logger.Section("Ingestion")
	logger.Debug("File: %s (%s, %d bytes)", raw.FileName, raw.MIMEType, len(raw.Content))

	extractor, err := s.extractors.ForMIMEType(raw.MIMEType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrIngestionFailed, err)
	}

	text, err := extractor.Extract(ctx, &raw)
	if err != nil {
		return "", fmt.Errorf("%w: extracting text: %w", domain.ErrIngestionFailed, err)
	}

	text = chunker.Clean(text)
	if text == "" {
		return "", fmt.Errorf("%w: document contains no text", domain.ErrIngestionFailed)
	}

	segments := s.chunker.Chunk(text)
	logger.Debug("Split into %d chunks", len(segments))

	documentID := uuid.New().String()
	meta := domain.DocumentMeta{
		Title:      raw.Title,
		Agency:     raw.Agency,
		DueDate:    raw.DueDate,
		RFPNumber:  raw.RFPNumber,
		FileName:   raw.FileName,
		FileType:   raw.MIMEType,
		FileSize:   int64(len(raw.Content)),
		IngestedAt: time.Now().UTC(),
	}

	items := make([]driven.IndexItem, len(segments))
	for i, segment := range segments {
		items[i] = driven.IndexItem{
			ID:      domain.ChunkID(documentID, i),
			Content: segment,
			Meta: domain.ChunkMeta{
				DocumentMeta: meta,
				DocumentID:   documentID,
				ChunkIndex:   i,
				TotalChunks:  len(segments),
			},
		}
	}

	if err := s.vectorStore.AddDocuments(ctx, items); err != nil {
		return "", fmt.Errorf("%w: indexing chunks: %w", domain.ErrIngestionFailed, err)
	}

	if err := s.docStore.SaveDocument(ctx, &domain.Document{ID: documentID, Meta: meta}); err != nil {
		return "", fmt.Errorf("%w: saving document record: %w", domain.ErrIngestionFailed, err)
	}

	logger.Info("Ingested %s as %s (%d chunks)", raw.FileName, documentID, len(segments))
	return documentID, nil
}
