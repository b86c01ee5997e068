// Package search resolves text queries against the article store by
// embedding the query and running a nearest-neighbor scan, optionally
// restricted to a single category.
package search
