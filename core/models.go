package core

import (
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/go-crypt/x/blake2b"
)

// SchemaVersion is the current metadata schema version. Records written by
// the pipeline always carry it; the migration stamps it onto legacy records
// so repeated migration runs can skip already-current data cheaply.
const SchemaVersion = 1

// Storage-time caps for oversized metadata fields.
const (
	MaxDescriptionLength = 500
	MaxImageLength       = 200
)

// ID is a unique identifier for a stored article.
// It is a pure function of the article's URL and headline, which makes
// re-ingestion of previously seen content an overwrite rather than a duplicate.
type ID string

// ArticleID generates a deterministic ID from an article's URL and headline
// using BLAKE2b hashing. A newline separates the two fields; it cannot occur
// in an absolute URL, so distinct (url, headline) pairs hash distinctly.
func ArticleID(url, headline string) ID {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(url))
	h.Write([]byte{'\n'})
	h.Write([]byte(headline))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Article is an in-flight news article: extracted from a page, then enriched
// with a category and finally handed to storage. URLs are absolute.
type Article struct {
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	Source      string    `json:"source"`
	ScrapedAt   time.Time `json:"scraped_at"`
	Category    string    `json:"category"`
	Confidence  float64   `json:"confidence"`
}

// Document returns the text used for categorization and embedding.
func (a *Article) Document() string {
	if a.Description == "" {
		return a.Headline
	}
	return a.Headline + " " + a.Description
}

// Metadata is the structured payload stored alongside an article's vector.
// Category is always a single scalar string, never an array or a
// delimiter-joined list.
type Metadata struct {
	Headline      string    `json:"headline"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Image         string    `json:"image"`
	Source        string    `json:"source"`
	ScrapedAt     time.Time `json:"scraped_at"`
	Category      string    `json:"category"`
	TextLength    int       `json:"text_length"`
	SchemaVersion int       `json:"schema_version"`
}

// NewMetadata builds storage metadata from an article, applying the
// storage-time truncation caps and stamping the current schema version.
// Truncation happens here rather than during normalization so the in-flight
// record stays faithful to the source.
func NewMetadata(a *Article) *Metadata {
	return &Metadata{
		Headline:      a.Headline,
		Description:   truncate(a.Description, MaxDescriptionLength),
		URL:           a.URL,
		Image:         truncate(a.Image, MaxImageLength),
		Source:        a.Source,
		ScrapedAt:     a.ScrapedAt,
		Category:      a.Category,
		TextLength:    utf8.RuneCountInString(a.Document()),
		SchemaVersion: SchemaVersion,
	}
}

// StoredArticle is the terminal form of an article: the tuple written to the
// similarity-indexed store.
type StoredArticle struct {
	ID       ID        `json:"id"`
	Vector   []float32 `json:"vector"`
	Document string    `json:"document"`
	Metadata *Metadata `json:"metadata"`
}

// QueryMatch is a single nearest-neighbor result. Distance is cosine
// distance: 0 is identical, lower is closer.
type QueryMatch struct {
	ID       ID
	Metadata *Metadata
	Distance float32
}

// truncate keeps at most max bytes of s. The cut never splits a multi-byte
// character; it retreats to the nearest rune boundary so the result is
// always valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
