package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding/degraded"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/storage/memory"
	"github.com/rfplens-labs/rfplens-cli/internal/chunker"
	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/services"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors/plaintext"
)

// stubAnswerGenerator keeps command tests free of any model backend.
type stubAnswerGenerator struct{}

func (stubAnswerGenerator) Answer(_ context.Context, _ string, _ []domain.SimilarityResult) (string, error) {
	return "stub answer", nil
}

func (stubAnswerGenerator) ModelName() string { return "stub" }

// injectServices wires the package-level services onto in-memory
// adapters so commands run without touching disk or network. Restores
// the previous wiring on cleanup.
func injectServices(t *testing.T) *memory.DocumentStore {
	t.Helper()

	oldDocStore, oldVectorStore := docStore, vectorStore
	oldIngest, oldAnalysis := ingestionService, analysisService
	t.Cleanup(func() {
		docStore, vectorStore = oldDocStore, oldVectorStore
		ingestionService, analysisService = oldIngest, oldAnalysis
	})

	vectors := memory.NewVectorStore(degraded.NewEmbeddingService(64))
	require.NoError(t, vectors.Initialise(context.Background(), services.DefaultCollection))
	docs := memory.NewDocumentStore()

	docStore = docs
	vectorStore = vectors
	ingestionService = services.NewIngestionService(
		extractors.NewRegistry(plaintext.New()),
		chunker.New(),
		vectors,
		docs,
	)
	analysisService = services.NewAnalysisService(vectors, stubAnswerGenerator{})
	return docs
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDocumentsCmd_Empty(t *testing.T) {
	injectServices(t)

	out, err := execute(t, "documents")
	require.NoError(t, err)
	assert.Contains(t, out, "No documents ingested yet")
}

func TestDocumentsCmd_ListsIngested(t *testing.T) {
	docs := injectServices(t)
	require.NoError(t, docs.SaveDocument(context.Background(), &domain.Document{
		ID: "doc-1",
		Meta: domain.DocumentMeta{
			Title:      "Permit System RFP",
			FileName:   "rfp.txt",
			IngestedAt: time.Now().UTC(),
		},
	}))

	out, err := execute(t, "documents")
	require.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "Permit System RFP")
}

func TestDocumentsShowCmd_NotFound(t *testing.T) {
	injectServices(t)

	_, err := execute(t, "documents", "show", "missing")
	assert.Error(t, err)
}

func TestAskCmd_ShowsAnswerAndSources(t *testing.T) {
	injectServices(t)

	out, err := execute(t, "ask", "what is the contract term?")
	require.NoError(t, err)
	assert.Contains(t, out, "stub answer")
}

func TestResetCmd_RequiresConfirmation(t *testing.T) {
	injectServices(t)

	_, err := execute(t, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}
