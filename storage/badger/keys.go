package badger

import (
	"fmt"

	"github.com/newsvec/newsvec/core"
)

// Key prefixes for different data types
const (
	articleRecordPrefix = "artrec"
	collectionKey       = "artcoll"
)

// makeArticleKey generates a key for an article record by ID.
func makeArticleKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", articleRecordPrefix, id))
}

// makeCollectionKey generates the key for the collection manifest.
func makeCollectionKey() []byte {
	return []byte(collectionKey)
}
