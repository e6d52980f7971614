package driven

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// DocumentStore persists document-level metadata for ingested RFPs.
// Chunk text and vectors live in the VectorStore; this store only
// answers "what has been ingested".
type DocumentStore interface {
	// SaveDocument stores a document record.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by id.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all ingested documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes a document record.
	DeleteDocument(ctx context.Context, id string) error
}
