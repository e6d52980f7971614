// Package cli implements the rfplens command line interface.
// Commands are thin adapters over the driving port services; all
// wiring of driven adapters happens once per invocation in setup.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/answer"
	configfile "github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/config/file"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/embedding"
	"github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/storage/sqlite"
	"github.com/rfplens-labs/rfplens-cli/internal/chunker"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driving"
	"github.com/rfplens-labs/rfplens-cli/internal/core/services"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors/pdf"
	"github.com/rfplens-labs/rfplens-cli/internal/extractors/plaintext"
	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	dataDir   string
	configDir string
)

// Services wired by setup. Tests may substitute these directly.
var (
	configStore      driven.ConfigStore
	docStore         driven.DocumentStore
	vectorStore      driven.VectorStore
	ingestionService driving.IngestionService
	analysisService  driving.AnalysisService

	store *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "rfplens",
	Short: "Retrieval-augmented RFP analysis",
	Long: `rfplens ingests procurement documents (RFPs), indexes them for
semantic retrieval, and layers rule-based analysis on top: eligibility
checks against a company profile, submission checklists, contract risk
reports and combined summaries.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.rfplens/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.rfplens)")
}

// Execute runs the root command.
func Execute() {
	defer closeServices()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires the driven adapters and services. Called lazily by
// commands that need them; repeated calls are no-ops so tests can
// pre-populate the package vars.
func setup(ctx context.Context) error {
	if ingestionService != nil && analysisService != nil {
		return nil
	}

	var err error
	configStore, err = configfile.NewConfigStore(configDir)
	if err != nil {
		return err
	}

	embedder := embedding.NewService(ctx, embedding.Settings{
		BaseURL:           configStore.GetString("embedding.base_url"),
		Model:             configStore.GetString("embedding.model"),
		Dimensions:        configStore.GetInt("embedding.dimensions"),
		RequestsPerSecond: configStore.GetInt("embedding.requests_per_second"),
	})

	dir := dataDir
	if dir == "" {
		dir = configStore.GetString("storage.data_dir")
	}
	store, err = sqlite.NewStore(dir)
	if err != nil {
		return err
	}

	docStore = store.DocumentStore()
	vectorStore = store.VectorStore(embedder)
	if err := vectorStore.Initialise(ctx, services.DefaultCollection); err != nil {
		return err
	}

	registry := extractors.NewRegistry(plaintext.New(), pdf.New())

	var chunkerOpts []chunker.Option
	if size := configStore.GetInt("chunker.size"); size > 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithChunkSize(size))
	}
	if overlap := configStore.GetInt("chunker.overlap"); overlap > 0 {
		chunkerOpts = append(chunkerOpts, chunker.WithOverlap(overlap))
	}
	splitter := chunker.New(chunkerOpts...)

	generator := answer.NewGenerator(ctx, answer.Settings{
		BaseURL: configStore.GetString("answer.base_url"),
		Model:   configStore.GetString("answer.model"),
	})

	ingestionService = services.NewIngestionService(registry, splitter, vectorStore, docStore)
	analysisService = services.NewAnalysisService(vectorStore, generator)
	return nil
}

// closeServices releases the shared store.
func closeServices() {
	if store != nil {
		store.Close()
		store = nil
	}
}

// requireServices is the guard every service-backed command runs first.
func requireServices(ctx context.Context) error {
	if err := setup(ctx); err != nil {
		return err
	}
	if ingestionService == nil || analysisService == nil {
		return errors.New("services not configured")
	}
	return nil
}
