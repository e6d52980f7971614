package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List ingested documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show document metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document record",
	Long: `Removes the document's metadata record. Indexed chunks remain in
the collection until a reset; retrieval scoped to this document id
will still return them.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentsDelete,
}

func init() {
	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	docs, err := docStore.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet.")
		return nil
	}

	cmd.Printf("%d documents:\n\n", len(docs))
	for _, doc := range docs {
		title := doc.Meta.Title
		if title == "" {
			title = doc.Meta.FileName
		}
		cmd.Printf("  %s  %s\n", doc.ID, title)
		cmd.Printf("      %s, ingested %s\n", doc.Meta.FileName, doc.Meta.IngestedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	doc, err := docStore.GetDocument(ctx, args[0])
	if err != nil {
		return fmt.Errorf("getting document: %w", err)
	}

	cmd.Printf("ID:          %s\n", doc.ID)
	cmd.Printf("Title:       %s\n", doc.Meta.Title)
	cmd.Printf("Agency:      %s\n", doc.Meta.Agency)
	cmd.Printf("Due date:    %s\n", doc.Meta.DueDate)
	cmd.Printf("RFP number:  %s\n", doc.Meta.RFPNumber)
	cmd.Printf("File:        %s (%s, %d bytes)\n", doc.Meta.FileName, doc.Meta.FileType, doc.Meta.FileSize)
	cmd.Printf("Ingested:    %s\n", doc.Meta.IngestedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	if err := docStore.DeleteDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
