// Package retrieval answers free-text queries against the knowledge
// base with lexical scoring. The engine serves reads from an immutable
// in-memory snapshot; reloads build a fresh snapshot and swap it in,
// so searches never observe a half-loaded knowledge base.
package retrieval

import (
	"sort"
	"strings"
	"sync/atomic"
)

type Document struct {
	ChunkId      string
	Question     string
	Answer       string
	Section      string
	DocumentName string
	Page         int
}

type Match struct {
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Section      string  `json:"section"`
	DocumentName string  `json:"document"`
	Score        float64 `json:"score"`
	ChunkId      string  `json:"chunk_id"`
}

// domain terms that boost relevance when they appear in the query
var educationTerms = map[string]struct{}{
	"study": {}, "studying": {}, "education": {}, "university": {},
	"college": {}, "course": {}, "program": {}, "degree": {},
	"requirements": {}, "australia": {}, "usa": {}, "uk": {},
	"canada": {}, "application": {}, "admission": {},
}

type snapshot struct {
	docs []Document
}

type Engine struct {
	current atomic.Value // *snapshot
}

func NewEngine() *Engine {
	e := &Engine{}
	e.current.Store(&snapshot{})
	return e
}

// Replace swaps in a new knowledge-base snapshot. In-flight searches
// keep reading the old one.
func (e *Engine) Replace(docs []Document) {
	copied := make([]Document, len(docs))
	copy(copied, docs)
	e.current.Store(&snapshot{docs: copied})
}

// Size reports how many documents the active snapshot holds.
func (e *Engine) Size() int {
	return len(e.current.Load().(*snapshot).docs)
}

// Search scores every document against the query and returns the top
// k matches, score descending. Equal scores keep document order, so
// result order is deterministic for a given snapshot.
func (e *Engine) Search(query string, k int) []Match {
	docs := e.current.Load().(*snapshot).docs
	queryLower := strings.ToLower(query)
	queryWords := fields(queryLower)

	var results []Match
	for _, doc := range docs {
		score := scoreDocument(doc, queryLower, queryWords)
		if score > 0 {
			results = append(results, Match{
				Question:     doc.Question,
				Answer:       doc.Answer,
				Section:      doc.Section,
				DocumentName: doc.DocumentName,
				Score:        score,
				ChunkId:      doc.ChunkId,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}

// BestAnswer returns the single best match when its score reaches
// minScore, or nil when nothing qualifies.
func (e *Engine) BestAnswer(query string, minScore float64) *Match {
	results := e.Search(query, 1)
	if len(results) > 0 && results[0].Score >= minScore {
		return &results[0]
	}
	return nil
}

func scoreDocument(doc Document, queryLower string, queryWords map[string]struct{}) float64 {
	score := 0.0

	questionLower := strings.ToLower(doc.Question)
	answerLower := strings.ToLower(doc.Answer)

	if strings.Contains(questionLower, queryLower) {
		score += 1.0
	}
	if strings.Contains(answerLower, queryLower) {
		score += 0.8
	}

	if len(queryWords) == 0 {
		return score
	}

	questionWords := fields(questionLower)
	answerWords := fields(answerLower)

	questionOverlap := intersectionSize(queryWords, questionWords)
	answerOverlap := intersectionSize(queryWords, answerWords)
	educationOverlap := intersectionSize(queryWords, educationTerms)

	if questionOverlap > 0 {
		score += 0.6 * float64(questionOverlap) / float64(len(queryWords))
	}
	if answerOverlap > 0 {
		score += 0.4 * float64(answerOverlap) / float64(len(queryWords))
	}
	if educationOverlap > 0 {
		score += 0.3 * float64(educationOverlap)
	}

	return score
}

func fields(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
