// Package lexical provides the TF-IDF similarity engine.
//
// The vectorizer is fitted once over every row's combined text. Weights
// use smooth inverse document frequency, ln((1+n)/(1+df)) + 1, on raw
// term counts, and every row is L2-normalized. Rows are held as an
// inverted index so a query touches only the postings of its own terms.
package lexical

import (
	"context"
	"math"
	"sort"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// ModelName identifies the engine in metadata.
const ModelName = "tfidf"

// Ensure Engine implements the interface.
var _ driven.SimilarityEngine = (*Engine)(nil)

type posting struct {
	row    int
	weight float64
}

// Engine is an immutable fitted TF-IDF index.
type Engine struct {
	vocab       map[string]int
	idf         []float64
	postings    [][]posting
	rows        int
	fingerprint string
}

// New fits the engine over the catalog. It never fails; an empty
// catalog yields an engine that returns empty score vectors.
func New(c *domain.Catalog) *Engine {
	texts := c.CombinedTexts()
	docs := make([]map[string]int, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		counts := make(map[string]int)
		for _, tok := range Tokenize(text) {
			counts[tok]++
		}
		for term := range counts {
			df[term]++
		}
		docs[i] = counts
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	e := &Engine{
		vocab:       make(map[string]int, len(terms)),
		idf:         make([]float64, len(terms)),
		postings:    make([][]posting, len(terms)),
		rows:        len(texts),
		fingerprint: c.Fingerprint(),
	}
	n := float64(len(texts))
	for id, term := range terms {
		e.vocab[term] = id
		e.idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	for row, counts := range docs {
		vec := e.weigh(counts)
		for _, t := range vec {
			e.postings[t.id] = append(e.postings[t.id], posting{row: row, weight: t.weight})
		}
	}
	return e
}

type termWeight struct {
	id     int
	weight float64
}

// weigh converts term counts to an L2-normalized TF-IDF vector sorted by
// term id. Unknown terms are ignored.
func (e *Engine) weigh(counts map[string]int) []termWeight {
	vec := make([]termWeight, 0, len(counts))
	for term, count := range counts {
		if id, ok := e.vocab[term]; ok {
			vec = append(vec, termWeight{id: id, weight: float64(count) * e.idf[id]})
		}
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].id < vec[b].id })

	var norm float64
	for _, t := range vec {
		norm += t.weight * t.weight
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].weight /= norm
	}
	return vec
}

// Meta describes the engine.
func (e *Engine) Meta() domain.EngineMetadata {
	model := ModelName
	return domain.EngineMetadata{
		Type:        domain.EngineLexical,
		ModelName:   &model,
		Fingerprint: e.fingerprint,
	}
}

// QuerySimilarities returns the cosine similarity of query to every row.
// A query with no known terms scores zero everywhere.
func (e *Engine) QuerySimilarities(ctx context.Context, query string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sims := make([]float64, e.rows)
	counts := make(map[string]int)
	for _, tok := range Tokenize(query) {
		counts[tok]++
	}
	for _, q := range e.weigh(counts) {
		for _, p := range e.postings[q.id] {
			sims[p.row] += q.weight * p.weight
		}
	}
	return sims, nil
}

// VocabularySize returns the number of fitted terms.
func (e *Engine) VocabularySize() int {
	return len(e.vocab)
}
