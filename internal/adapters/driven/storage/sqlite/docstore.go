package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
)

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocument stores or updates a document record.
func (s *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	meta := doc.Meta
	if meta.IngestedAt.IsZero() {
		meta.IngestedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, agency, due_date, rfp_number, file_name, file_type, file_size, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			agency = excluded.agency,
			due_date = excluded.due_date,
			rfp_number = excluded.rfp_number,
			file_name = excluded.file_name,
			file_type = excluded.file_type,
			file_size = excluded.file_size,
			ingested_at = excluded.ingested_at
	`, doc.ID, meta.Title, meta.Agency, meta.DueDate, meta.RFPNumber,
		meta.FileName, meta.FileType, meta.FileSize, meta.IngestedAt)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by id.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, agency, due_date, rfp_number, file_name, file_type, file_size, ingested_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns all ingested documents, newest first.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, agency, due_date, rfp_number, file_name, file_type, file_size, ingested_at
		FROM documents ORDER BY ingested_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document record.
func (s *documentStore) DeleteDocument(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	if err := row.Scan(
		&doc.ID, &doc.Meta.Title, &doc.Meta.Agency, &doc.Meta.DueDate,
		&doc.Meta.RFPNumber, &doc.Meta.FileName, &doc.Meta.FileType,
		&doc.Meta.FileSize, &doc.Meta.IngestedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}
