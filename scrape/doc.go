// Package scrape fetches news landing pages and extracts candidate
// articles from them using per-source CSS selectors.
//
// The package is split into three stages. A Fetcher loads a page and
// returns its rendered HTML. Extract pulls raw items out of the HTML
// using a source's selector set. Normalize trims and validates each raw
// item, resolving relative URLs against the page URL, and drops items
// that cannot become articles.
//
// Source definitions live in a YAML config file so new sites can be
// added without code changes.
package scrape
