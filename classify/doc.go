// Package classify assigns topic categories to articles via zero-shot
// classification. It is deliberately fail-soft: short texts and
// classifier errors resolve to the fallback category so a labeling
// problem never blocks ingestion.
package classify
