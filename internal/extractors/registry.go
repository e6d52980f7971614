package extractors

import (
	"fmt"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
)

// Registry selects a TextExtractor by MIME type.
type Registry struct {
	byMIME map[string]driven.TextExtractor
}

// NewRegistry creates a registry with the given extractors.
// Later registrations win on MIME type conflicts.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	r := &Registry{byMIME: make(map[string]driven.TextExtractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor for all of its supported MIME types.
func (r *Registry) Register(e driven.TextExtractor) {
	for _, mime := range e.SupportedMIMETypes() {
		r.byMIME[mime] = e
	}
}

// ForMIMEType returns the extractor handling the given MIME type.
// Returns domain.ErrUnsupportedType if none is registered.
func (r *Registry) ForMIMEType(mimeType string) (driven.TextExtractor, error) {
	e, ok := r.byMIME[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
	return e, nil
}
