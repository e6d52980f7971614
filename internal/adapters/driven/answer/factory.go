// Package answer selects an answer generator at construction time:
// Ollama when reachable, otherwise a static placeholder.
package answer

import (
	"context"
	"time"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/answer/ollama"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/answer/static"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// pingTimeout bounds the reachability check at startup.
const pingTimeout = 5 * time.Second

// Settings configures generator construction.
type Settings struct {
	// BaseURL is the Ollama API base URL.
	BaseURL string

	// Model is the generation model name.
	Model string
}

// NewGenerator returns an Ollama-backed generator when the API is
// reachable, otherwise the static placeholder. The selection is logged
// so a placeholder answer is never mistaken for a generated one.
func NewGenerator(ctx context.Context, settings Settings) driven.AnswerGenerator {
	gen := ollama.NewAnswerGenerator(ollama.Config{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := gen.Ping(pingCtx); err != nil {
		logger.Warn("Generation model unreachable: %v", err)
		logger.Warn("Answers will show retrieved passages only")
		return static.NewAnswerGenerator()
	}

	logger.Info("Answer generation: ollama (%s)", gen.ModelName())
	return gen
}
