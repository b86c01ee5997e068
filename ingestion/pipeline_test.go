package ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsvec/newsvec/ai/mock"
	"github.com/newsvec/newsvec/classify"
	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/scrape"
	"github.com/newsvec/newsvec/storage"
	badgerstore "github.com/newsvec/newsvec/storage/badger"
)

const pipelineTestDims = 8

// stubFetcher serves canned HTML per URL and fails for unknown ones.
type stubFetcher struct {
	pages map[string]string
}

func (f *stubFetcher) FetchRenderedHTML(ctx context.Context, pageURL string) (string, error) {
	html, ok := f.pages[pageURL]
	if !ok {
		return "", fmt.Errorf("fetch %s: connection refused", pageURL)
	}
	return html, nil
}

// failingRepository wraps a repository and fails every Upsert.
type failingRepository struct {
	storage.ArticleRepository
}

func (r *failingRepository) Upsert(ctx context.Context, records []*core.StoredArticle) error {
	return errors.New("disk full")
}

func pageWith(headlines ...string) string {
	html := "<html><body>"
	for i, h := range headlines {
		html += fmt.Sprintf(
			`<article class="story"><h2>%s</h2><p>A descriptive enough summary.</p><a href="/stories/%d">read</a></article>`,
			h, i)
	}
	return html + "</body></html>"
}

func testSource(name, url string) scrape.Source {
	return scrape.Source{
		Name: name,
		URL:  url,
		Selectors: scrape.Selectors{
			Container:   "article.story",
			Headline:    "h2",
			Description: "p",
			Link:        "a",
			Image:       "img",
		},
		Limit: scrape.DefaultItemLimit,
	}
}

func newTestPipeline(t *testing.T, fetcher scrape.Fetcher, sources []scrape.Source, repo storage.ArticleRepository) *Pipeline {
	t.Helper()

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = pipelineTestDims
	vectorizer, err := NewVectorizer(embedder, pipelineTestDims)
	require.NoError(t, err)

	categorizer := classify.NewCategorizer(mock.NewMockClassifier())

	pipeline, err := NewPipeline(fetcher, sources, categorizer, vectorizer, repo,
		WithSourceDelay(0))
	require.NoError(t, err)
	return pipeline
}

func TestNewPipeline(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = pipelineTestDims
	vectorizer, err := NewVectorizer(embedder, pipelineTestDims)
	require.NoError(t, err)
	categorizer := classify.NewCategorizer(mock.NewMockClassifier())
	fetcher := &stubFetcher{}
	sources := []scrape.Source{testSource("a", "https://a.example.com")}

	t.Run("requires sources", func(t *testing.T) {
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		_, err := NewPipeline(fetcher, nil, categorizer, vectorizer, repo)
		assert.ErrorIs(t, err, ErrNoSources)
	})

	t.Run("rejects dimension disagreement at construction", func(t *testing.T) {
		repo := badgerstore.NewTestRepository(t, pipelineTestDims+1)
		_, err := NewPipeline(fetcher, sources, categorizer, vectorizer, repo)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("requires every dependency", func(t *testing.T) {
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		_, err := NewPipeline(nil, sources, categorizer, vectorizer, repo)
		assert.ErrorIs(t, err, ErrMissingDependency)

		_, err = NewPipeline(fetcher, sources, nil, vectorizer, repo)
		assert.ErrorIs(t, err, ErrMissingDependency)

		_, err = NewPipeline(fetcher, sources, categorizer, nil, repo)
		assert.ErrorIs(t, err, ErrMissingDependency)

		_, err = NewPipeline(fetcher, sources, categorizer, vectorizer, nil)
		assert.ErrorIs(t, err, ErrMissingDependency)
	})
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("stores articles from every source", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			"https://a.example.com": pageWith("Alpha one", "Alpha two"),
			"https://b.example.com": pageWith("Beta one"),
		}}
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		pipeline := newTestPipeline(t, fetcher, []scrape.Source{
			testSource("a", "https://a.example.com"),
			testSource("b", "https://b.example.com"),
		}, repo)

		articles, err := pipeline.Run(ctx)
		require.NoError(t, err)
		require.Len(t, articles, 3)

		for _, article := range articles {
			assert.NotEmpty(t, article.Category)
			require.NoError(t, core.ValidateArticle(article))
		}

		all, err := repo.AllMetadata(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
		for _, meta := range all {
			assert.Equal(t, core.SchemaVersion, meta.SchemaVersion)
		}
	})

	t.Run("a failing source is skipped, the rest proceed", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			"https://a.example.com": pageWith("Alpha one"),
			"https://c.example.com": pageWith("Gamma one"),
		}}
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		pipeline := newTestPipeline(t, fetcher, []scrape.Source{
			testSource("a", "https://a.example.com"),
			testSource("b", "https://b.example.com"),
			testSource("c", "https://c.example.com"),
		}, repo)

		articles, err := pipeline.Run(ctx)
		require.NoError(t, err)
		assert.Len(t, articles, 2)

		all, err := repo.AllMetadata(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("all sources failing yields an empty run, not an error", func(t *testing.T) {
		fetcher := &stubFetcher{}
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		pipeline := newTestPipeline(t, fetcher, []scrape.Source{
			testSource("a", "https://a.example.com"),
		}, repo)

		articles, err := pipeline.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("repository failure aborts the run", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			"https://a.example.com": pageWith("Alpha one"),
		}}
		repo := &failingRepository{
			ArticleRepository: badgerstore.NewTestRepository(t, pipelineTestDims),
		}
		pipeline := newTestPipeline(t, fetcher, []scrape.Source{
			testSource("a", "https://a.example.com"),
		}, repo)

		_, err := pipeline.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("reingesting the same page does not duplicate", func(t *testing.T) {
		fetcher := &stubFetcher{pages: map[string]string{
			"https://a.example.com": pageWith("Alpha one", "Alpha two"),
		}}
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)
		sources := []scrape.Source{testSource("a", "https://a.example.com")}

		pipeline := newTestPipeline(t, fetcher, sources, repo)
		_, err := pipeline.Run(ctx)
		require.NoError(t, err)

		pipeline = newTestPipeline(t, fetcher, sources, repo)
		_, err = pipeline.Run(ctx)
		require.NoError(t, err)

		all, err := repo.AllMetadata(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("cancellation stops between sources", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		fetcher := &stubFetcher{pages: map[string]string{
			"https://a.example.com": pageWith("Alpha one"),
			"https://b.example.com": pageWith("Beta one"),
		}}
		repo := badgerstore.NewTestRepository(t, pipelineTestDims)

		embedder := mock.NewMockEmbedder()
		embedder.Dimensions = pipelineTestDims
		vectorizer, err := NewVectorizer(embedder, pipelineTestDims)
		require.NoError(t, err)

		pipeline, err := NewPipeline(fetcher, []scrape.Source{
			testSource("a", "https://a.example.com"),
			testSource("b", "https://b.example.com"),
		}, classify.NewCategorizer(mock.NewMockClassifier()), vectorizer, repo)
		require.NoError(t, err)

		_, err = pipeline.Run(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
