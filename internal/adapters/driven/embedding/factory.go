// Package embedding selects the embedding provider for the process:
// the real Ollama-backed service when reachable, otherwise the
// degraded fallback so the rest of the pipeline keeps working.
package embedding

import (
	"context"
	"time"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding/degraded"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding/ollama"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// pingTimeout is the maximum time to wait for provider connectivity
// validation.
const pingTimeout = 5 * time.Second

// Settings configures provider construction.
type Settings struct {
	// BaseURL is the Ollama API base URL.
	BaseURL string

	// Model is the embedding model name.
	Model string

	// Dimensions is the embedding vector size.
	Dimensions int

	// RequestsPerSecond limits batch embedding requests.
	RequestsPerSecond int
}

// NewService creates the Ollama embedding provider and validates
// connectivity. If the provider is unreachable it falls back to the
// degraded provider; the swap is logged and permanently visible via
// the service's Degraded method, never silent.
func NewService(ctx context.Context, settings Settings) driven.EmbeddingService {
	svc := ollama.NewEmbeddingService(ollama.Config{
		BaseURL:           settings.BaseURL,
		Model:             settings.Model,
		Dimensions:        settings.Dimensions,
		RequestsPerSecond: settings.RequestsPerSecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		logger.Warn("Embedding provider unreachable: %v", err)
		logger.Warn("Falling back to degraded embeddings: retrieval will not be semantic")
		return degraded.NewEmbeddingService(settings.Dimensions)
	}

	logger.Info("Embedding provider ready: %s (%d dimensions)", svc.ModelName(), svc.Dimensions())
	return svc
}
