package imdb_test

import (
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titlelookup/pkg/core/imdb"
)

func TestBuildQueryTitleMode(t *testing.T) {
	q := imdb.BuildQuery("The Matrix", true)

	assert.Equal(t, "The Matrix", q.Title)
	assert.Empty(t, q.TitleID)
}

func TestBuildQueryIDMode(t *testing.T) {
	q := imdb.BuildQuery("tt0133093", false)

	assert.Equal(t, "tt0133093", q.TitleID)
	assert.Empty(t, q.Title)
}

func TestQueryEncodesSingleParameter(t *testing.T) {
	tests := []struct {
		name    string
		q       imdb.Query
		encoded string
	}{
		{"title search", imdb.BuildQuery("blade runner", true), "q=blade+runner"},
		{"id lookup", imdb.BuildQuery("tt0083658", false), "tconst=tt0083658"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := query.Values(tc.q)
			require.NoError(t, err)
			// Exactly one key, never both.
			assert.Len(t, v, 1)
			assert.Equal(t, tc.encoded, v.Encode())
		})
	}
}
