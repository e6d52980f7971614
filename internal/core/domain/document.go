package domain

import (
	"fmt"
	"time"
)

// DocumentMeta carries the RFP-level metadata captured at ingestion.
type DocumentMeta struct {
	// Title is the human-readable RFP title.
	Title string

	// Agency is the issuing agency or organisation.
	Agency string

	// DueDate is the submission due date as provided by the caller.
	// Optional; free-form because source documents disagree on formats.
	DueDate string

	// RFPNumber is the solicitation number. Optional.
	RFPNumber string

	// FileName is the original file name.
	FileName string

	// FileType is the MIME type of the original file.
	FileType string

	// FileSize is the original file size in bytes.
	FileSize int64

	// IngestedAt is when the document entered the index.
	IngestedAt time.Time
}

// Document represents an ingested RFP. It is created once at ingestion
// and never mutated afterwards; chunks are its only children.
type Document struct {
	// ID is the unique identifier generated at ingestion.
	ID string

	// Meta is the document-level metadata.
	Meta DocumentMeta
}

// ChunkMeta is the per-chunk metadata stored alongside each vector.
// It merges the owning document's metadata with chunk position fields.
type ChunkMeta struct {
	DocumentMeta

	// DocumentID links back to the owning Document.
	DocumentID string

	// ChunkIndex is the ordinal position within the document.
	ChunkIndex int

	// TotalChunks is the number of chunks the document was split into.
	TotalChunks int
}

// Chunk is the atomic unit stored and retrieved: a bounded-length,
// overlap-preserving segment of a document's cleaned text.
type Chunk struct {
	// ID is the composite identifier "<documentID>-chunk-<index>".
	ID string

	// Text is the chunk content.
	Text string

	// Meta is the chunk metadata.
	Meta ChunkMeta
}

// ChunkID builds the composite chunk identifier for a document and index.
func ChunkID(documentID string, index int) string {
	return fmt.Sprintf("%s-chunk-%d", documentID, index)
}

// RawDocument is an unprocessed document as received at the ingestion
// boundary, before text extraction.
type RawDocument struct {
	// FileName is the original file name.
	FileName string

	// MIMEType identifies the content format (e.g. application/pdf).
	MIMEType string

	// Content is the raw file bytes.
	Content []byte

	// Title, Agency, DueDate and RFPNumber are caller-supplied
	// document metadata. Title falls back to the file name when empty.
	Title     string
	Agency    string
	DueDate   string
	RFPNumber string
}
