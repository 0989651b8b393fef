package reasoning

import (
	"context"
	"fmt"
	"math"

	chromem "github.com/philippgille/chromem-go"
)

// SimilarityCache ranks terms by embedding similarity of their textual
// form to a query term, purely as a search-order aid. No reasoner or
// phase code calls it: term links are swept in full each cycle and the
// cache plays no part in their order. It never feeds into a truth or
// budget function.
type SimilarityCache struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewSimilarityCache builds an in-memory chromem-go collection using a
// local character-trigram embedding function, so the cache works offline
// and deterministically rather than depending on a network embedding API.
func NewSimilarityCache() (*SimilarityCache, error) {
	db := chromem.NewDB()
	col, err := db.CreateCollection("term-links", nil, trigramEmbedding)
	if err != nil {
		return nil, fmt.Errorf("reasoning: create similarity collection: %w", err)
	}
	return &SimilarityCache{db: db, collection: col}, nil
}

// Remember indexes a term's textual form under key so it can later be
// ranked against a query term.
func (s *SimilarityCache) Remember(ctx context.Context, key, text string) error {
	if err := s.collection.AddDocument(ctx, chromem.Document{ID: key, Content: text}); err != nil {
		return fmt.Errorf("reasoning: remember %s: %w", key, err)
	}
	return nil
}

// RankBySimilarity returns up to n remembered keys ordered by similarity
// to query, most similar first.
func (s *SimilarityCache) RankBySimilarity(ctx context.Context, query string, n int) ([]string, error) {
	if s.collection.Count() == 0 {
		return nil, nil
	}
	if n > s.collection.Count() {
		n = s.collection.Count()
	}
	results, err := s.collection.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("reasoning: rank by similarity: %w", err)
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids, nil
}

// trigramEmbedding is a small, deterministic, offline stand-in for a real
// embedding model: it buckets character trigrams of text into a fixed-size
// vector. Good enough to rank textually similar term renderings against
// each other; never used for anything but search-order tie-breaking.
func trigramEmbedding(_ context.Context, text string) ([]float32, error) {
	const dims = 256
	vec := make([]float32, dims)
	runes := []rune(text)
	for i := 0; i+2 < len(runes); i++ {
		h := uint32(runes[i])*31*31 + uint32(runes[i+1])*31 + uint32(runes[i+2])
		vec[h%dims]++
	}
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec, nil
	}
	norm = float32(1) / float32(math.Sqrt(float64(norm)))
	for i := range vec {
		vec[i] *= norm
	}
	return vec, nil
}
