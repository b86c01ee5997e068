package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsvec/newsvec/ai"
)

func TestDecodeLegacyCategory(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCat     string
		wantChanged bool
	}{
		{
			name:        "empty value",
			raw:         "",
			wantCat:     ai.FallbackCategory,
			wantChanged: true,
		},
		{
			name:        "json score array",
			raw:         `[{"category":"economy","score":0.91},{"category":"tech","score":0.09}]`,
			wantCat:     "economy",
			wantChanged: true,
		},
		{
			name:        "empty json array",
			raw:         "[]",
			wantCat:     ai.FallbackCategory,
			wantChanged: true,
		},
		{
			name:        "json array with empty category",
			raw:         `[{"category":"","score":0.5}]`,
			wantCat:     ai.FallbackCategory,
			wantChanged: true,
		},
		{
			name:        "comma joined list",
			raw:         "sports, tech, economy",
			wantCat:     "sports",
			wantChanged: true,
		},
		{
			name:        "comma list with leading space",
			raw:         " politics ,economy",
			wantCat:     "politics",
			wantChanged: true,
		},
		{
			name:        "already scalar",
			raw:         "tech",
			wantCat:     "tech",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, changed, err := decodeLegacyCategory(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}

	t.Run("malformed json is an error", func(t *testing.T) {
		_, _, err := decodeLegacyCategory(`[{"category":`)
		assert.ErrorIs(t, err, ErrMalformedCategory)
	})
}
