package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsvec/newsvec/core"
)

func TestStoredArticleRoundTrip(t *testing.T) {
	record := &core.StoredArticle{
		ID:       core.ArticleID("https://example.com/story", "Markets rally"),
		Vector:   []float32{0.1, 0.2, 0.3},
		Document: "Markets rally Stocks up broadly.",
		Metadata: &core.Metadata{
			Headline:      "Markets rally",
			Description:   "Stocks up broadly.",
			URL:           "https://example.com/story",
			Source:        "https://example.com",
			ScrapedAt:     time.Now().UTC().Truncate(time.Second),
			Category:      "business",
			TextLength:    32,
			SchemaVersion: core.SchemaVersion,
		},
	}

	data, err := MarshalStoredArticle(record)
	require.NoError(t, err)

	decoded, err := UnmarshalStoredArticle(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestMarshalStoredArticleNil(t *testing.T) {
	_, err := MarshalStoredArticle(nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestUnmarshalStoredArticleInvalid(t *testing.T) {
	_, err := UnmarshalStoredArticle([]byte("not json"))
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestMarshalMetadataNil(t *testing.T) {
	_, err := MarshalMetadata(nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
