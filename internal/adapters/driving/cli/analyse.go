package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/rfplens-labs/rfplens-cli/internal/adapters/driven/config/file"
	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// profilePath is shared by the commands that need a company profile.
var profilePath string

var eligibilityCmd = &cobra.Command{
	Use:   "eligibility [doc-id]",
	Short: "Check eligibility against the company profile",
	Long: `Extracts mandatory requirement lines from the document and checks
each against the company profile (certifications, experience and
capabilities). Eligible means nothing is missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runEligibility,
}

var checklistCmd = &cobra.Command{
	Use:   "checklist [doc-id]",
	Short: "Extract the submission checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklist,
}

var risksCmd = &cobra.Command{
	Use:   "risks [doc-id]",
	Short: "Flag risky contract clauses",
	Args:  cobra.ExactArgs(1),
	RunE:  runRisks,
}

var summaryCmd = &cobra.Command{
	Use:   "summary [doc-id]",
	Short: "Generate a combined RFP summary",
	Long: `Retrieves an overview of the document and combines it with the
eligibility, checklist and risk analyses into one report.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	for _, cmd := range []*cobra.Command{eligibilityCmd, summaryCmd} {
		cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "company profile TOML (default ~/.rfplens/profile.toml)")
	}

	rootCmd.AddCommand(eligibilityCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(risksCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runEligibility(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	profile, err := configfile.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	report, err := analysisService.AnalyseEligibility(ctx, args[0], profile)
	if err != nil {
		return fmt.Errorf("eligibility analysis failed: %w", err)
	}

	cmd.Println(report.Report)
	return nil
}

func runChecklist(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	checklist, err := analysisService.ExtractSubmissionRequirements(ctx, args[0])
	if err != nil {
		return fmt.Errorf("checklist extraction failed: %w", err)
	}

	cmd.Println(checklist.Report)
	return nil
}

func runRisks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	report, err := analysisService.AnalyseContractRisks(ctx, args[0])
	if err != nil {
		return fmt.Errorf("risk analysis failed: %w", err)
	}

	cmd.Println(report.Report)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	profile, err := configfile.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	summary, err := analysisService.GenerateSummary(ctx, args[0], profile)
	if err != nil {
		return fmt.Errorf("summary generation failed: %w", err)
	}

	cmd.Println(summary.Report)
	return nil
}

// printSources renders retrieval provenance under an answer.
func printSources(cmd *cobra.Command, sources []domain.SimilarityResult) {
	if len(sources) == 0 {
		return
	}
	cmd.Println("Sources:")
	for i, source := range sources {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, source.ID, source.Score)
	}
}
