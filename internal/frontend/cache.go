package frontend

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cours-de-latin/nganasan"
)

// Cache memoizes analyses per part of speech and word.
type Cache struct {
	analyzer *nganasan.Analyzer
	results  *cache.Cache
}

// NewCache returns a cache in front of a whose entries expire after ttl.
func NewCache(a *nganasan.Analyzer, ttl time.Duration) *Cache {
	return &Cache{
		analyzer: a,
		results:  cache.New(ttl, 2*ttl),
	}
}

// Analyze returns the analysis of word by the tier pos selects, running
// the analyzer on a miss. Failed analyses are not cached.
func (c *Cache) Analyze(word string, pos nganasan.PartOfSpeech) (nganasan.Result, error) {
	key := string(pos) + "|" + word
	if v, ok := c.results.Get(key); ok {
		return v.(nganasan.Result), nil
	}
	r, err := SafeAnalyze(func() nganasan.Result {
		return c.analyzer.AnalyzeAs(word, pos)
	})
	if err != nil {
		return r, err
	}
	c.results.SetDefault(key, r)
	return r, nil
}

// Len returns the number of cached analyses, expired ones included.
func (c *Cache) Len() int {
	return c.results.ItemCount()
}
