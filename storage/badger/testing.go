package badger

import "testing"

// NewTestRepository creates an in-memory repository for tests. The
// backend is closed automatically when the test ends.
func NewTestRepository(t *testing.T, dimensions int) *ArticleRepository {
	t.Helper()

	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("failed to open in-memory backend: %v", err)
	}
	t.Cleanup(func() {
		if !backend.IsClosed() {
			_ = backend.Close()
		}
	})

	repo, err := NewArticleRepository(backend, dimensions)
	if err != nil {
		t.Fatalf("failed to create article repository: %v", err)
	}
	return repo
}
