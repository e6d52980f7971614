package driven

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// AnswerGenerator synthesises an answer to a question from retrieved
// chunks. The retrieval core does not assume any specific generation
// technology; a static placeholder implementation is always available.
type AnswerGenerator interface {
	// Answer produces an answer grounded in the given chunks.
	Answer(ctx context.Context, question string, chunks []domain.SimilarityResult) (string, error)

	// ModelName returns the name of the generator being used.
	ModelName() string
}
