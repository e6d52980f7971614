package driven

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// TextExtractor turns raw document bytes into plain UTF-8 text.
// Each extractor handles specific MIME types (e.g. PDF, plain text).
type TextExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract returns the plain text content of the raw document.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}
