package driving

import (
	"context"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// AnalysisService layers rule-based analysis on top of retrieval
// results to produce eligibility, checklist, risk and summary reports.
// Every call is stateless; reports are recomputed on each request.
type AnalysisService interface {
	// AnalyseEligibility extracts mandatory requirement lines from
	// retrieved chunks and matches them against the company profile.
	AnalyseEligibility(ctx context.Context, documentID string, profile domain.CompanyProfile) (*domain.EligibilityReport, error)

	// ExtractSubmissionRequirements buckets retrieved lines into
	// format rules, required documents and deadlines.
	ExtractSubmissionRequirements(ctx context.Context, documentID string) (*domain.SubmissionChecklist, error)

	// AnalyseContractRisks flags risky clauses in retrieved text and
	// suggests modifications.
	AnalyseContractRisks(ctx context.Context, documentID string) (*domain.RiskReport, error)

	// GenerateSummary combines an overview with the three analyses
	// above into one report. A single failed retrieval fails the
	// whole summary.
	GenerateSummary(ctx context.Context, documentID string, profile domain.CompanyProfile) (*domain.Summary, error)

	// AskQuestion retrieves the most relevant chunks for a free-form
	// question, optionally scoped to one document, and generates an
	// answer from them.
	AskQuestion(ctx context.Context, question, documentID string) (*domain.Answer, error)
}
