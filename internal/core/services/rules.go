package services

import (
	"regexp"
	"strings"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// minRequirementLength suppresses noise lines in requirement extraction.
const minRequirementLength = 10

// minClauseLength suppresses sentence fragments in risk flagging.
const minClauseLength = 20

// requirementSignals mark a line as a candidate mandatory requirement.
var requirementSignals = []string{
	"must have", "required", "shall have", "minimum", "at least",
}

// formatKeywords bucket a line as a proposal format rule.
var formatKeywords = []string{
	"page", "font", "margin", "spacing", "format", "template",
	"size", "header", "footer",
}

// documentKeywords bucket a line as a required document or attachment.
var documentKeywords = []string{
	"submit", "include", "attach", "provide", "form",
	"document", "certificate",
}

// dateKeywords mark a line as deadline-related.
var dateKeywords = []string{"deadline", "due", "date"}

// riskTerms flag a clause as risky, checked in order with the first
// match winning. The "terminat" stem covers both "termination" and
// "terminated".
var riskTerms = []string{
	"terminat", "unilateral", "waive", "without cause", "sole discretion",
	"unlimited liability", "indemnification", "warranty",
	"liquidated damages", "penalties", "remedy", "exclusive",
	"limitation of liability",
}

// highRiskTerms escalate a flagged clause to High.
var highRiskTerms = []string{
	"unlimited liability", "without cause", "waive", "sole discretion",
	"liquidated damages",
}

// mediumRiskTerms classify a flagged clause as Medium when no
// high-risk term is present.
var mediumRiskTerms = []string{
	"terminat", "unilateral", "indemnification", "warranty",
	"penalties", "limitation of liability",
}

var (
	numericListPattern = regexp.MustCompile(`^\d+[.)]`)
	datePattern        = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	clausePattern      = regexp.MustCompile(`[.;]\s+`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// extractRequirements pulls candidate requirement lines from chunk
// text. A line qualifies if it carries a bullet marker, a numeric list
// marker, or a requirement-signal keyword, and is long enough to be a
// real requirement rather than noise.
func extractRequirements(text string) []string {
	var requirements []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minRequirementLength {
			continue
		}

		lower := strings.ToLower(line)
		isBullet := strings.HasPrefix(line, "-") ||
			strings.HasPrefix(line, "•") ||
			strings.HasPrefix(line, "*")
		isNumbered := numericListPattern.MatchString(line)

		if isBullet || isNumbered || containsAny(lower, requirementSignals) {
			requirements = append(requirements, line)
		}
	}
	return requirements
}

// submissionBuckets holds the three submission requirement categories.
type submissionBuckets struct {
	format    []string
	documents []string
	deadlines []string
}

// bucketSubmissionLines sorts chunk lines into format, document and
// deadline buckets. A line may land in more than one bucket.
func bucketSubmissionLines(text string, buckets *submissionBuckets) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minRequirementLength {
			continue
		}

		lower := strings.ToLower(line)
		if containsAny(lower, formatKeywords) {
			buckets.format = append(buckets.format, line)
		}
		if containsAny(lower, documentKeywords) {
			buckets.documents = append(buckets.documents, line)
		}
		if containsAny(lower, dateKeywords) && containsDate(lower) {
			buckets.deadlines = append(buckets.deadlines, line)
		}
	}
}

// containsDate reports whether a lowercased line carries a numeric
// date or a month name.
func containsDate(lower string) bool {
	return datePattern.MatchString(lower) || containsAny(lower, monthNames)
}

// flagRiskyClauses splits chunk text on sentence boundaries and flags
// each clause containing a risk term, at most one flag per clause.
func flagRiskyClauses(text string) []domain.RiskFinding {
	var findings []domain.RiskFinding
	for _, clause := range clausePattern.Split(text, -1) {
		clause = strings.TrimSpace(clause)
		if len(clause) <= minClauseLength {
			continue
		}

		lower := strings.ToLower(clause)
		for _, term := range riskTerms {
			if !strings.Contains(lower, term) {
				continue
			}
			findings = append(findings, domain.RiskFinding{
				Clause:     clause,
				Term:       term,
				Suggestion: suggestModification(lower),
				Level:      classifyRisk(lower),
			})
			break
		}
	}
	return findings
}

// classifyRisk assigns High, Medium or Low based on fixed term subsets.
func classifyRisk(lower string) domain.RiskLevel {
	if containsAny(lower, highRiskTerms) {
		return domain.RiskHigh
	}
	if containsAny(lower, mediumRiskTerms) {
		return domain.RiskMedium
	}
	return domain.RiskLow
}

// suggestModification picks a suggested contract modification, first
// matching rule wins.
func suggestModification(lower string) string {
	switch {
	case strings.Contains(lower, "terminat"):
		return "Negotiate a mutual termination clause with an adequate notice period."
	case strings.Contains(lower, "unilateral") || strings.Contains(lower, "sole discretion"):
		return "Request mutual consent or objective criteria for such decisions."
	case strings.Contains(lower, "liability") || strings.Contains(lower, "indemnification"):
		return "Cap liability at the contract value and make indemnification mutual."
	case strings.Contains(lower, "warranty"):
		return "Limit the warranty duration and scope to industry standards."
	case strings.Contains(lower, "damages") || strings.Contains(lower, "penalties"):
		return "Negotiate a cap on damages and a graduated penalty structure."
	default:
		return "Review this clause with legal counsel before signing."
	}
}

// Summarise truncates text to roughly maxLength characters. When a
// sentence boundary falls past 70% of the window the cut happens
// there; either way a truncation marker is appended.
func Summarise(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	cut := text[:maxLength]
	if i := strings.LastIndexByte(cut, '.'); i > maxLength*7/10 {
		cut = cut[:i+1]
	}
	return cut + " [...]"
}

// containsAny reports whether s contains any of the needles.
// Callers pass s already lowercased.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
