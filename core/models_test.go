package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := ArticleID("https://example.com/story", "Big News")
		b := ArticleID("https://example.com/story", "Big News")

		assert.Equal(t, a, b)
		assert.Len(t, string(a), 32)
	})

	t.Run("distinct inputs produce distinct ids", func(t *testing.T) {
		base := ArticleID("https://example.com/story", "Big News")

		assert.NotEqual(t, base, ArticleID("https://example.com/other", "Big News"))
		assert.NotEqual(t, base, ArticleID("https://example.com/story", "Other News"))
	})

	t.Run("field boundary matters", func(t *testing.T) {
		// url="a", headline="bc" must not collide with url="ab", headline="c"
		assert.NotEqual(t,
			ArticleID("https://example.com/a", "bc"),
			ArticleID("https://example.com/ab", "c"))
	})
}

func TestArticleDocument(t *testing.T) {
	t.Run("headline and description", func(t *testing.T) {
		a := &Article{Headline: "Markets rally", Description: "Stocks up broadly."}
		assert.Equal(t, "Markets rally Stocks up broadly.", a.Document())
	})

	t.Run("headline only", func(t *testing.T) {
		a := &Article{Headline: "Markets rally"}
		assert.Equal(t, "Markets rally", a.Document())
	})
}

func TestNewMetadata(t *testing.T) {
	now := time.Now().UTC()

	t.Run("copies fields and stamps schema version", func(t *testing.T) {
		a := &Article{
			Headline:    "Markets rally",
			Description: "Stocks up broadly.",
			URL:         "https://example.com/story",
			Image:       "https://example.com/img.jpg",
			Source:      "https://example.com",
			ScrapedAt:   now,
			Category:    "business",
			Confidence:  0.93,
		}

		meta := NewMetadata(a)

		assert.Equal(t, a.Headline, meta.Headline)
		assert.Equal(t, a.Description, meta.Description)
		assert.Equal(t, a.URL, meta.URL)
		assert.Equal(t, a.Image, meta.Image)
		assert.Equal(t, a.Source, meta.Source)
		assert.Equal(t, now, meta.ScrapedAt)
		assert.Equal(t, "business", meta.Category)
		assert.Equal(t, utf8.RuneCountInString(a.Document()), meta.TextLength)
		assert.Equal(t, SchemaVersion, meta.SchemaVersion)
	})

	t.Run("truncates oversized fields", func(t *testing.T) {
		a := &Article{
			Headline:    "Markets rally",
			Description: strings.Repeat("d", MaxDescriptionLength+100),
			Image:       strings.Repeat("i", MaxImageLength+50),
		}

		meta := NewMetadata(a)

		assert.Len(t, meta.Description, MaxDescriptionLength)
		assert.Len(t, meta.Image, MaxImageLength)
		// TextLength reflects the embedded document, not the truncation.
		assert.Equal(t, utf8.RuneCountInString(a.Document()), meta.TextLength)
	})

	t.Run("never splits a multi-byte character at the cap", func(t *testing.T) {
		// The two-byte é straddles the cap; the cut must fall before it.
		a := &Article{
			Headline:    "Markets rally",
			Description: strings.Repeat("a", MaxDescriptionLength-1) + "é",
		}

		meta := NewMetadata(a)

		assert.True(t, utf8.ValidString(meta.Description))
		assert.Equal(t, strings.Repeat("a", MaxDescriptionLength-1), meta.Description)
	})

	t.Run("truncated metadata survives a JSON round trip", func(t *testing.T) {
		a := &Article{
			Headline:    "Markets rally",
			Description: strings.Repeat("a", MaxDescriptionLength-1) + "日本語",
			Image:       strings.Repeat("i", MaxImageLength-1) + "ü",
		}

		meta := NewMetadata(a)

		data, err := json.Marshal(meta)
		require.NoError(t, err)

		var decoded Metadata
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *meta, decoded)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		a := &Article{Headline: "日本語"}
		assert.Equal(t, 3, NewMetadata(a).TextLength)
	})
}
