package scrape

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
sources:
  - name: example
    url: https://example.com/news
    limit: 5
    selectors:
      container: article.story
      headline: h2
      description: p.summary
      link: a.story-link
      image: img.hero
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg.Sources, 1)

		src := cfg.Sources[0]
		assert.Equal(t, "example", src.Name)
		assert.Equal(t, "https://example.com/news", src.URL)
		assert.Equal(t, 5, src.Limit)
		assert.Equal(t, "article.story", src.Selectors.Container)
		assert.Equal(t, "h2", src.Selectors.Headline)
		assert.Equal(t, "p.summary", src.Selectors.Description)
	})

	t.Run("defaults applied for optional fields", func(t *testing.T) {
		path := writeConfig(t, `
sources:
  - name: minimal
    url: https://example.com
    selectors:
      container: article
      headline: h2
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		src := cfg.Sources[0]
		assert.Equal(t, defaultDescriptionSelector, src.Selectors.Description)
		assert.Equal(t, defaultLinkSelector, src.Selectors.Link)
		assert.Equal(t, defaultImageSelector, src.Selectors.Image)
		assert.Equal(t, DefaultItemLimit, src.Limit)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "sources: [unclosed"))
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Sources: []Source{{
			Name: "example",
			URL:  "https://example.com",
			Selectors: Selectors{
				Container: "article",
				Headline:  "h2",
			},
		}}}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("no sources", func(t *testing.T) {
		assert.Error(t, (&Config{}).Validate())
	})

	tests := []struct {
		name   string
		modify func(*Source)
	}{
		{"missing name", func(s *Source) { s.Name = "" }},
		{"missing url", func(s *Source) { s.URL = "" }},
		{"missing container", func(s *Source) { s.Selectors.Container = "" }},
		{"missing headline", func(s *Source) { s.Selectors.Headline = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg.Sources[0])

			assert.Error(t, cfg.Validate())
		})
	}
}
