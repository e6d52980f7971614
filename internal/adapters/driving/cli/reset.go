package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfplens-labs/rfplens-cli/internal/core/services"
)

// resetConfirmed skips the interactive confirmation.
var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all indexed chunks and document records",
	Long: `Drops the chunk collection and every document record. The
collection is recreated empty on the next command.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirmed, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !resetConfirmed {
		return fmt.Errorf("reset deletes all indexed data; re-run with --yes to confirm")
	}

	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	if err := vectorStore.DeleteCollection(ctx, services.DefaultCollection); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	docs, err := docStore.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	for _, doc := range docs {
		if err := docStore.DeleteDocument(ctx, doc.ID); err != nil {
			return fmt.Errorf("deleting document %s: %w", doc.ID, err)
		}
	}

	cmd.Printf("Deleted collection and %d document records.\n", len(docs))
	return nil
}
