package references

import (
	"sort"
	"strings"
)

// DefaultQueryLimit caps query results when callers pass no explicit limit.
const DefaultQueryLimit = 3

const (
	keywordWeight = 0.6
	tokenWeight   = 0.4
)

// RawRecord is one dataset entry before indexing.
type RawRecord struct {
	Source   string   `json:"source"`
	Citation string   `json:"citation"`
	URL      string   `json:"url"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

type record struct {
	ref      Reference
	keywords []string
	tokens   map[string]int
}

// Index answers relevance queries over a fixed set of citations. It is built
// once at startup and must not be mutated afterwards; concurrent reads need
// no locking.
type Index struct {
	records []record
}

// NewIndex derives the keyword and token profiles for each raw record. Load
// order is preserved and acts as the tie-break for equal scores.
func NewIndex(raw []RawRecord) *Index {
	idx := &Index{records: make([]record, 0, len(raw))}
	for _, entry := range raw {
		keywords := make([]string, 0, len(entry.Keywords))
		for _, key := range entry.Keywords {
			keywords = append(keywords, strings.ToLower(key))
		}
		idx.records = append(idx.records, record{
			ref: Reference{
				Source:   entry.Source,
				Citation: entry.Citation,
				URL:      entry.URL,
			},
			keywords: keywords,
			tokens:   tokenCounts(entry.Content),
		})
	}
	return idx
}

// Len reports how many citations are indexed.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Query scores every indexed citation against the text and returns the
// citations of the best-scoring records, at most limit (DefaultQueryLimit
// when limit is not positive). Only strictly positive scores qualify; no
// match yields an empty slice, never an error.
func (idx *Index) Query(text string, limit int) []Reference {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	lowered := strings.ToLower(text)
	queryTokens := tokenCounts(text)

	type candidate struct {
		score float64
		ref   Reference
	}
	candidates := make([]candidate, 0, len(idx.records))
	for _, rec := range idx.records {
		score := 0.0
		for _, keyword := range rec.keywords {
			if strings.Contains(lowered, keyword) {
				score += keywordWeight
			}
		}
		for token, count := range rec.tokens {
			if queryCount := queryTokens[token]; queryCount > 0 {
				score += tokenWeight * float64(min(queryCount, count))
			}
		}
		if score > 0 {
			candidates = append(candidates, candidate{score: score, ref: rec.ref})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Reference, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ref)
	}
	return out
}
