package reasoning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityCacheRanksCloserTextFirst(t *testing.T) {
	cache, err := NewSimilarityCache()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, cache.Remember(ctx, "raven", "<raven --> bird>"))
	require.NoError(t, cache.Remember(ctx, "rock", "<rock --> mineral>"))

	ranked, err := cache.RankBySimilarity(ctx, "<raven --> animal>", 2)
	require.NoError(t, err)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "raven", ranked[0])
}

func TestSimilarityCacheEmptyReturnsNoResults(t *testing.T) {
	cache, err := NewSimilarityCache()
	require.NoError(t, err)
	ranked, err := cache.RankBySimilarity(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
