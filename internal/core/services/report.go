package services

import (
	"fmt"
	"strings"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// finalVerificationItems close out every submission checklist.
var finalVerificationItems = []string{
	"All required documents are included and signed",
	"Formatting requirements are met throughout",
	"Submission is complete before the stated deadline",
	"A copy of the full submission is retained",
}

// renderEligibilityReport builds the markdown eligibility report:
// profile, verdict, missing requirements and the retrieved text the
// requirements came from.
func renderEligibilityReport(
	report *domain.EligibilityReport, profile domain.CompanyProfile, results []domain.SimilarityResult,
) string {
	var b strings.Builder
	b.WriteString("# Eligibility Analysis\n\n")

	b.WriteString("## Company Profile\n\n")
	fmt.Fprintf(&b, "- Certifications: %s\n", joinOrNone(profile.Certifications))
	var areas []string
	for area, exp := range profile.Experience {
		areas = append(areas, fmt.Sprintf("%s (%d years)", area, exp.Years))
	}
	fmt.Fprintf(&b, "- Experience: %s\n", joinOrNone(areas))
	fmt.Fprintf(&b, "- Capabilities: %s\n\n", joinOrNone(profile.Capabilities))

	if report.Eligible {
		b.WriteString("## Verdict: ELIGIBLE\n\n")
		b.WriteString("All detected mandatory requirements are met by the company profile.\n\n")
	} else {
		b.WriteString("## Verdict: NOT ELIGIBLE\n\n")
		b.WriteString("### Missing Requirements\n\n")
		for _, missing := range report.MissingRequirements {
			fmt.Fprintf(&b, "- %s\n", missing)
		}
		b.WriteString("\n")
	}

	if len(report.Requirements) > 0 {
		b.WriteString("### Detected Requirements\n\n")
		for _, requirement := range report.Requirements {
			fmt.Fprintf(&b, "- %s\n", requirement)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Source Text\n\n")
	for _, result := range results {
		fmt.Fprintf(&b, "> %s\n\n", result.Content)
	}

	return b.String()
}

// renderSubmissionChecklist builds the markdown checklist with the
// fixed final verification items appended.
func renderSubmissionChecklist(checklist *domain.SubmissionChecklist) string {
	var b strings.Builder
	b.WriteString("# Submission Checklist\n\n")

	writeChecklistSection(&b, "Format Requirements", checklist.FormatRequirements)
	writeChecklistSection(&b, "Required Documents", checklist.RequiredDocuments)
	writeChecklistSection(&b, "Deadlines", checklist.Deadlines)
	writeChecklistSection(&b, "Final Verification", finalVerificationItems)

	return b.String()
}

func writeChecklistSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_None detected._\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- [ ] %s\n", item)
	}
	b.WriteString("\n")
}

// renderRiskReport builds the markdown risk report, one section per
// flagged clause.
func renderRiskReport(report *domain.RiskReport) string {
	var b strings.Builder
	b.WriteString("# Contract Risk Analysis\n\n")

	if len(report.Findings) == 0 {
		b.WriteString("No risky clauses detected in the retrieved contract text.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d potentially risky clauses detected.\n\n", len(report.Findings))
	for i, finding := range report.Findings {
		fmt.Fprintf(&b, "## Risk %d: %s (%s)\n\n", i+1, finding.Term, finding.Level)
		fmt.Fprintf(&b, "> %s\n\n", finding.Clause)
		fmt.Fprintf(&b, "**Suggested modification:** %s\n\n", finding.Suggestion)
	}

	return b.String()
}

// renderSummary composes the combined overview report. The
// recommendation sentence keys only on the eligibility verdict.
func renderSummary(summary *domain.Summary) string {
	var b strings.Builder
	b.WriteString("# RFP Summary\n\n")

	b.WriteString("## Overview\n\n")
	b.WriteString(summary.Overview)
	b.WriteString("\n\n")

	b.WriteString("## Eligibility\n\n")
	if summary.Eligibility.Eligible {
		b.WriteString("ELIGIBLE: all detected mandatory requirements are met.\n\n")
	} else {
		b.WriteString("NOT ELIGIBLE. Missing requirements:\n\n")
		for _, missing := range summary.Eligibility.MissingRequirements {
			fmt.Fprintf(&b, "- %s\n", missing)
		}
		b.WriteString("\n")
	}

	b.WriteString(summary.Checklist.Report)
	b.WriteString("\n")

	b.WriteString("## Contract Risks\n\n")
	b.WriteString(Summarise(summary.Risks.Report, riskMaxLength))
	b.WriteString("\n\n")

	b.WriteString("## Recommendation\n\n")
	if summary.Eligibility.Eligible {
		b.WriteString("The company meets the detected requirements; proceeding with a bid is recommended, subject to legal review of the flagged contract risks.\n")
	} else {
		b.WriteString("The company does not meet all detected requirements; address the missing items before committing to a bid.\n")
	}

	return b.String()
}

// joinOrNone renders a list for the profile section.
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none declared"
	}
	return strings.Join(items, ", ")
}
