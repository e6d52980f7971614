// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): embedding providers, vector stores,
// document stores, text extractors and answer generators.
package driven
