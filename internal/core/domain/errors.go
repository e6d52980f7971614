package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type no extractor handles.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNotInitialised indicates the vector store was used before
	// Initialise selected a collection.
	ErrNotInitialised = errors.New("vector store not initialised")

	// ErrEmbeddingFailure indicates the embedding provider failed.
	ErrEmbeddingFailure = errors.New("embedding failure")

	// ErrIngestionFailed wraps any stage failure during ingestion.
	// Ingestion is not transactional: a partial set of chunks may
	// remain indexed under the aborted document id.
	ErrIngestionFailed = errors.New("ingestion failed")

	// ErrRetrievalFailed indicates a similarity search error.
	ErrRetrievalFailed = errors.New("retrieval failed")

	// ErrAnalysisFailed wraps a retrieval or extraction error during a
	// specific report.
	ErrAnalysisFailed = errors.New("analysis failed")
)
