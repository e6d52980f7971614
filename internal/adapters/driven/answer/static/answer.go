// Package static provides a placeholder answer generator for use when
// no generation model is reachable. It never synthesises text; it
// points the reader at the retrieved excerpts instead.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
)

// Ensure AnswerGenerator implements the interface.
var _ driven.AnswerGenerator = (*AnswerGenerator)(nil)

// AnswerGenerator returns a fixed notice plus the retrieved excerpts.
type AnswerGenerator struct{}

// NewAnswerGenerator creates a new static answer generator.
func NewAnswerGenerator() *AnswerGenerator {
	return &AnswerGenerator{}
}

// Answer renders the retrieved chunks verbatim under a notice that no
// generation model is available.
func (g *AnswerGenerator) Answer(_ context.Context, _ string, chunks []domain.SimilarityResult) (string, error) {
	if len(chunks) == 0 {
		return "No relevant passages were found in the ingested documents.", nil
	}

	var b strings.Builder
	b.WriteString("No generation model is available; the most relevant passages are:\n\n")
	for i, chunk := range chunks {
		fmt.Fprintf(&b, "[%d] %s\n\n", i+1, chunk.Content)
	}
	return strings.TrimSpace(b.String()), nil
}

// ModelName identifies the placeholder generator.
func (g *AnswerGenerator) ModelName() string {
	return "static-placeholder"
}
