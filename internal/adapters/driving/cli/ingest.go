package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// Ingest flags.
var (
	ingestTitle     string
	ingestAgency    string
	ingestDueDate   string
	ingestRFPNumber string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest an RFP document",
	Long: `Extracts text from the file, splits it into overlapping chunks,
embeds each chunk and indexes it for retrieval. Supports PDF, plain
text, markdown and CSV files.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "document title (defaults to file name)")
	ingestCmd.Flags().StringVar(&ingestAgency, "agency", "", "issuing agency")
	ingestCmd.Flags().StringVar(&ingestDueDate, "due", "", "submission due date")
	ingestCmd.Flags().StringVar(&ingestRFPNumber, "rfp-number", "", "RFP reference number")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	path := args[0]
	raw, err := readRawDocument(path)
	if err != nil {
		return err
	}

	raw.Title = ingestTitle
	if raw.Title == "" {
		raw.Title = raw.FileName
	}
	raw.Agency = ingestAgency
	raw.DueDate = ingestDueDate
	raw.RFPNumber = ingestRFPNumber

	documentID, err := ingestionService.Ingest(ctx, raw)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %s\n", raw.FileName)
	cmd.Printf("Document ID: %s\n", documentID)
	return nil
}

// readRawDocument loads a file and infers its MIME type from the
// extension.
func readRawDocument(path string) (domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return domain.RawDocument{
		FileName: filepath.Base(path),
		MIMEType: mimeTypeFor(path),
		Content:  content,
	}, nil
}

// mimeTypeFor maps a file extension to the MIME type the extractor
// registry keys on. Unknown extensions are treated as plain text.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".md", ".markdown":
		return "text/markdown"
	case ".csv":
		return "text/csv"
	default:
		return "text/plain"
	}
}
