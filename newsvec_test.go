package newsvec

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsvec/newsvec/ai"
	"github.com/newsvec/newsvec/ai/mock"
	"github.com/newsvec/newsvec/scrape"
)

const storeTestDims = 8

// cannedFetcher serves fixed HTML for every URL.
type cannedFetcher struct {
	html string
}

func (f *cannedFetcher) FetchRenderedHTML(ctx context.Context, pageURL string) (string, error) {
	if f.html == "" {
		return "", fmt.Errorf("fetch %s: no content", pageURL)
	}
	return f.html, nil
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = storeTestDims
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockClassifier())

	store, err := Open("",
		WithProvider(provider),
		WithAIConfig(ai.NewConfig(ai.WithEmbeddingDimensions(storeTestDims))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSources() []scrape.Source {
	return []scrape.Source{{
		Name: "example",
		URL:  "https://example.com/news",
		Selectors: scrape.Selectors{
			Container:   "article.story",
			Headline:    "h2",
			Description: "p",
			Link:        "a",
			Image:       "img",
		},
		Limit: scrape.DefaultItemLimit,
	}}
}

const storeTestPage = `
<html><body>
  <article class="story">
    <h2>Central bank raises interest rates</h2>
    <p>Borrowing gets more expensive for everyone.</p>
    <a href="/stories/rates">read</a>
  </article>
  <article class="story">
    <h2>Local team wins championship</h2>
    <p>Fans celebrate late into the night.</p>
    <a href="/stories/champs">read</a>
  </article>
</body></html>`

func TestStoreIngestAndSearch(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	articles, err := store.Ingest(ctx, testSources(), &cannedFetcher{html: storeTestPage})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	for _, article := range articles {
		assert.NotEmpty(t, article.Category)
		assert.Equal(t, "https://example.com/news", article.Source)
	}

	matches, err := store.Search(ctx, "Central bank raises interest rates Borrowing gets more expensive for everyone.", 5, "")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Central bank raises interest rates", matches[0].Metadata.Headline)
	assert.InDelta(t, 0, matches[0].Distance, 1e-5)
}

func TestStoreIngestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	fetcher := &cannedFetcher{html: storeTestPage}

	_, err := store.Ingest(ctx, testSources(), fetcher)
	require.NoError(t, err)
	_, err = store.Ingest(ctx, testSources(), fetcher)
	require.NoError(t, err)

	all, err := store.Articles().AllMetadata(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStoreMigrate(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	// A fresh store has nothing legacy to migrate.
	migrated, err := store.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, migrated)

	_, err = store.Ingest(ctx, testSources(), &cannedFetcher{html: storeTestPage})
	require.NoError(t, err)

	// Pipeline output is already at the current schema version.
	migrated, err = store.Migrate(ctx)
	require.NoError(t, err)
	assert.Zero(t, migrated)
}

func TestOpenRejectsDimensionChange(t *testing.T) {
	dir := t.TempDir()

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = storeTestDims
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockClassifier())

	store, err := Open(dir,
		WithProvider(provider),
		WithAIConfig(ai.NewConfig(ai.WithEmbeddingDimensions(storeTestDims))),
	)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = Open(dir,
		WithProvider(provider),
		WithAIConfig(ai.NewConfig(ai.WithEmbeddingDimensions(storeTestDims+1))),
	)
	assert.Error(t, err)
}
