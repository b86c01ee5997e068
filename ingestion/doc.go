// Package ingestion orchestrates the scrape-categorize-embed-store
// flow. The Pipeline walks configured sources sequentially, isolating
// per-source failures while treating storage failures as fatal. The
// Vectorizer applies the pipeline's vector policy on top of a raw
// embedder: fixed dimensionality, unit normalization and zero vectors
// for empty text.
package ingestion
