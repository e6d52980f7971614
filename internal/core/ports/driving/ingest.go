package driving

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// IngestionService turns raw RFP documents into indexed chunks.
type IngestionService interface {
	// Ingest extracts, cleans, chunks, embeds and indexes the raw
	// document, returning the generated document id.
	//
	// Ingestion is not transactional: on failure a partial set of
	// chunks may remain indexed under the aborted document id.
	Ingest(ctx context.Context, raw domain.RawDocument) (string, error)
}
