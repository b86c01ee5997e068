// Package badger implements the article repository over BadgerDB, an
// embedded key-value store. Each article is a single JSON value under
// an id-derived key; similarity queries scan the collection and score
// unit vectors by dot product. A collection manifest pins the vector
// dimensions so a database is never reopened with a different embedder
// geometry.
package badger
