package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driven"
	"github.com/rfplens-labs/rfplens-cli/internal/core/ports/driving"
	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// Fixed retrieval queries, one per analysis intent.
const (
	eligibilityQuery = "mandatory eligibility requirements qualifications certifications the vendor must have"
	submissionQuery  = "submission requirements, document format, deadlines and instructions for submitting the proposal"
	riskQuery        = "contract terms, conditions, liability, termination, penalties that could disadvantage the vendor"
	overviewQuery    = "project overview, scope of work, objectives and background"
)

// Retrieval limits per analysis.
const (
	analysisLimit = 10
	overviewLimit = 5
	answerLimit   = 5
)

// Summary truncation windows.
const (
	overviewMaxLength = 500
	riskMaxLength     = 1000
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService issues fixed retrieval queries against the vector
// store and applies rule-based extraction to the returned chunks.
// Stateless; every report is recomputed on each call.
type AnalysisService struct {
	vectorStore driven.VectorStore
	answers     driven.AnswerGenerator
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(vectorStore driven.VectorStore, answers driven.AnswerGenerator) *AnalysisService {
	return &AnalysisService{
		vectorStore: vectorStore,
		answers:     answers,
	}
}

// AnalyseEligibility extracts mandatory requirement lines from the
// retrieved chunks and checks each against the company profile.
// Eligible iff nothing is missing.
func (s *AnalysisService) AnalyseEligibility(
	ctx context.Context, documentID string, profile domain.CompanyProfile,
) (*domain.EligibilityReport, error) {
	logger.Section("Eligibility Analysis")

	results, err := s.retrieve(ctx, eligibilityQuery, documentID, analysisLimit)
	if err != nil {
		return nil, err
	}

	var requirements []string
	for _, result := range results {
		requirements = append(requirements, extractRequirements(result.Content)...)
	}
	requirements = dedupe(requirements)
	logger.Debug("Extracted %d requirement lines", len(requirements))

	var missing []string
	for _, requirement := range requirements {
		if !profile.Meets(requirement) {
			missing = append(missing, requirement)
		}
	}

	report := &domain.EligibilityReport{
		DocumentID:          documentID,
		Requirements:        requirements,
		MissingRequirements: missing,
		Eligible:            len(missing) == 0,
	}
	report.Report = renderEligibilityReport(report, profile, results)

	logger.Info("Eligible: %t (%d requirements, %d missing)",
		report.Eligible, len(requirements), len(missing))
	return report, nil
}

// ExtractSubmissionRequirements buckets retrieved lines into format
// rules, required documents and deadlines.
func (s *AnalysisService) ExtractSubmissionRequirements(
	ctx context.Context, documentID string,
) (*domain.SubmissionChecklist, error) {
	logger.Section("Submission Requirements")

	results, err := s.retrieve(ctx, submissionQuery, documentID, analysisLimit)
	if err != nil {
		return nil, err
	}

	var buckets submissionBuckets
	for _, result := range results {
		bucketSubmissionLines(result.Content, &buckets)
	}

	checklist := &domain.SubmissionChecklist{
		DocumentID:         documentID,
		FormatRequirements: dedupe(buckets.format),
		RequiredDocuments:  dedupe(buckets.documents),
		Deadlines:          dedupe(buckets.deadlines),
	}
	checklist.Report = renderSubmissionChecklist(checklist)

	logger.Info("Checklist: %d format, %d documents, %d deadlines",
		len(checklist.FormatRequirements), len(checklist.RequiredDocuments), len(checklist.Deadlines))
	return checklist, nil
}

// AnalyseContractRisks flags risky clauses in the retrieved text and
// attaches a suggested modification and risk level to each.
func (s *AnalysisService) AnalyseContractRisks(
	ctx context.Context, documentID string,
) (*domain.RiskReport, error) {
	logger.Section("Contract Risk Analysis")

	results, err := s.retrieve(ctx, riskQuery, documentID, analysisLimit)
	if err != nil {
		return nil, err
	}

	var findings []domain.RiskFinding
	seen := make(map[string]struct{})
	for _, result := range results {
		for _, finding := range flagRiskyClauses(result.Content) {
			if _, ok := seen[finding.Clause]; ok {
				continue
			}
			seen[finding.Clause] = struct{}{}
			findings = append(findings, finding)
		}
	}

	report := &domain.RiskReport{
		DocumentID: documentID,
		Findings:   findings,
	}
	report.Report = renderRiskReport(report)

	logger.Info("Flagged %d risky clauses", len(findings))
	return report, nil
}

// GenerateSummary retrieves an overview and dispatches the three
// analyses concurrently. Each analysis issues its own retrieval; a
// single failure fails the whole summary.
func (s *AnalysisService) GenerateSummary(
	ctx context.Context, documentID string, profile domain.CompanyProfile,
) (*domain.Summary, error) {
	logger.Section("RFP Summary")

	overview, err := s.retrieve(ctx, overviewQuery, documentID, overviewLimit)
	if err != nil {
		return nil, err
	}

	var contents []string
	for _, result := range overview {
		contents = append(contents, result.Content)
	}

	var (
		wg          sync.WaitGroup
		eligibility *domain.EligibilityReport
		checklist   *domain.SubmissionChecklist
		risks       *domain.RiskReport
		eligErr     error
		checkErr    error
		riskErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		eligibility, eligErr = s.AnalyseEligibility(ctx, documentID, profile)
	}()
	go func() {
		defer wg.Done()
		checklist, checkErr = s.ExtractSubmissionRequirements(ctx, documentID)
	}()
	go func() {
		defer wg.Done()
		risks, riskErr = s.AnalyseContractRisks(ctx, documentID)
	}()
	wg.Wait()

	for _, err := range []error{eligErr, checkErr, riskErr} {
		if err != nil {
			return nil, err
		}
	}

	summary := &domain.Summary{
		DocumentID:  documentID,
		Overview:    Summarise(strings.Join(contents, " "), overviewMaxLength),
		Eligibility: eligibility,
		Checklist:   checklist,
		Risks:       risks,
	}
	summary.Report = renderSummary(summary)
	return summary, nil
}

// AskQuestion retrieves the chunks most relevant to a free-form
// question, optionally scoped to one document, and generates an answer
// from them.
func (s *AnalysisService) AskQuestion(
	ctx context.Context, question, documentID string,
) (*domain.Answer, error) {
	logger.Section("Question")
	logger.Debug("Question: %q", question)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	results, err := s.retrieve(ctx, question, documentID, answerLimit)
	if err != nil {
		return nil, err
	}

	text, err := s.answers.Answer(ctx, question, results)
	if err != nil {
		return nil, fmt.Errorf("%w: generating answer: %w", domain.ErrAnalysisFailed, err)
	}

	return &domain.Answer{
		Question: question,
		Text:     text,
		Model:    s.answers.ModelName(),
		Sources:  results,
	}, nil
}

// retrieve runs one similarity search, scoped to a document when an id
// is given, and wraps failures in the analysis error taxonomy.
func (s *AnalysisService) retrieve(
	ctx context.Context, query, documentID string, limit int,
) ([]domain.SimilarityResult, error) {
	results, err := s.vectorStore.SimilaritySearch(ctx, query, domain.SearchOptions{
		Limit:      limit,
		DocumentID: documentID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", domain.ErrAnalysisFailed, domain.ErrRetrievalFailed, err)
	}
	logger.Debug("Retrieved %d chunks for %q", len(results), query)
	return results, nil
}
