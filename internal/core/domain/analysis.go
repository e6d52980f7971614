package domain

// RiskLevel is a coarse classification of a contract clause.
type RiskLevel string

// Risk levels, highest first.
const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// RiskFinding is a flagged contract clause with a suggested modification.
type RiskFinding struct {
	// Clause is the flagged contract text.
	Clause string

	// Term is the risk term that triggered the flag.
	Term string

	// Suggestion is the keyword-driven suggested modification.
	Suggestion string

	// Level is the High/Medium/Low classification.
	Level RiskLevel
}

// EligibilityReport is the outcome of matching extracted mandatory
// requirements against a company profile.
type EligibilityReport struct {
	// DocumentID identifies the analysed RFP.
	DocumentID string

	// Requirements is every requirement line detected in the retrieved
	// chunks, deduplicated.
	Requirements []string

	// MissingRequirements are the requirements the profile fails.
	MissingRequirements []string

	// Eligible is true iff MissingRequirements is empty.
	Eligible bool

	// Report is the rendered markdown report.
	Report string
}

// SubmissionChecklist groups submission requirements into buckets.
type SubmissionChecklist struct {
	// DocumentID identifies the analysed RFP.
	DocumentID string

	// FormatRequirements are page/font/margin style rules.
	FormatRequirements []string

	// RequiredDocuments are forms and attachments to include.
	RequiredDocuments []string

	// Deadlines are date-bearing submission lines.
	Deadlines []string

	// Report is the rendered markdown checklist.
	Report string
}

// RiskReport lists flagged contract clauses.
type RiskReport struct {
	// DocumentID identifies the analysed RFP.
	DocumentID string

	// Findings are the flagged clauses, one per distinct clause.
	Findings []RiskFinding

	// Report is the rendered markdown report.
	Report string
}

// Summary is the combined RFP overview report.
type Summary struct {
	// DocumentID identifies the analysed RFP.
	DocumentID string

	// Overview is the truncated retrieved overview text.
	Overview string

	// Eligibility is the embedded eligibility result.
	Eligibility *EligibilityReport

	// Checklist is the embedded submission checklist.
	Checklist *SubmissionChecklist

	// Risks is the embedded risk report.
	Risks *RiskReport

	// Report is the rendered markdown summary.
	Report string
}

// Answer is the result of a free-form question against the index.
type Answer struct {
	// Question is the original question.
	Question string

	// Text is the generated (or placeholder) answer.
	Text string

	// Model names the answer generator that produced Text.
	Model string

	// Sources are the retrieved chunks the answer is based on.
	Sources []SimilarityResult
}
