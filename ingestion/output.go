package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/newsvec/newsvec/core"
)

// WriteArticles writes the collected articles to path as an indented
// JSON array. An empty run writes an empty array rather than nothing so
// downstream consumers always find valid JSON.
func WriteArticles(path string, articles []*core.Article) error {
	if articles == nil {
		articles = []*core.Article{}
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
