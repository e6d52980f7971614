// Package driving provides interfaces exposed to external actors
// (primary/inbound ports): ingestion and analysis.
package driving
