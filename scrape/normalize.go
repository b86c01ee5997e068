package scrape

import (
	"net/url"
	"strings"
	"time"

	"github.com/newsvec/newsvec/core"
)

// Normalize turns a raw item into an article, or reports false when the
// item cannot become one. Whitespace is trimmed, relative link and image
// URLs are resolved against pageURL, and items with no usable headline or
// link are rejected.
func Normalize(item RawItem, pageURL string) (*core.Article, bool) {
	headline := strings.TrimSpace(item.Headline)
	if headline == "" || headline == core.PlaceholderHeadline {
		return nil, false
	}

	link := resolveURL(strings.TrimSpace(item.Link), pageURL)
	if link == "" {
		return nil, false
	}

	return &core.Article{
		Headline:    headline,
		Description: strings.TrimSpace(item.Description),
		URL:         link,
		Image:       resolveURL(strings.TrimSpace(item.Image), pageURL),
		Source:      pageURL,
		ScrapedAt:   time.Now().UTC(),
	}, true
}

// resolveURL resolves raw against base. Absolute URLs pass through
// unchanged; unparseable values collapse to empty.
func resolveURL(raw, base string) string {
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return raw
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(ref).String()
}
