// Package storage defines the persistence contract for embedded
// articles. The ArticleRepository interface covers idempotent writes,
// filtered similarity queries and bulk metadata access for migrations.
// The badger subpackage provides the embedded implementation.
package storage
