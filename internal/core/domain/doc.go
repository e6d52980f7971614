// Package domain contains the core business entities for RFP analysis:
// documents, chunks, similarity results, company profiles and reports.
// It has no dependencies on adapters or infrastructure.
package domain
