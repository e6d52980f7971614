package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// askDocumentID optionally scopes the question to one document.
var askDocumentID string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about ingested documents",
	Long: `Retrieves the passages most relevant to the question and generates
an answer from them. Without a reachable generation model the answer
lists the retrieved passages instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDocumentID, "document", "d", "", "scope the question to one document id")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	answer, err := analysisService.AskQuestion(ctx, args[0], askDocumentID)
	if err != nil {
		return fmt.Errorf("question failed: %w", err)
	}

	cmd.Println(answer.Text)
	cmd.Println()
	printSources(cmd, answer.Sources)
	return nil
}
