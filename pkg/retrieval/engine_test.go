package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEngine(docs ...Document) *Engine {
	e := NewEngine()
	e.Replace(docs)
	return e
}

func TestSearchRanksQuestionMatchAboveAnswerMatch(t *testing.T) {
	e := newTestEngine(
		Document{
			ChunkId:  "in-answer",
			Question: "what are the tuition fees",
			Answer:   "the application deadline is march",
		},
		Document{
			ChunkId:  "in-question",
			Question: "when is the application deadline",
			Answer:   "march",
		},
	)

	results := e.Search("application deadline", 5)

	assert.Len(t, results, 2)
	assert.Equal(t, "in-question", results[0].ChunkId)
	assert.Equal(t, "in-answer", results[1].ChunkId)

	// query is a substring of the question (1.0), both query words
	// overlap the question (0.6) and "application" is a domain term (0.3)
	assert.InDelta(t, 1.9, results[0].Score, 0.0001)
	// substring of the answer (0.8) plus answer word overlap (0.4)
	// plus the domain term (0.3)
	assert.InDelta(t, 1.5, results[1].Score, 0.0001)
}

func TestSearchSkipsUnrelatedDocuments(t *testing.T) {
	e := newTestEngine(Document{
		ChunkId:  "c1",
		Question: "how do i bake a cake",
		Answer:   "flour and sugar",
	})

	results := e.Search("visa processing time", 5)

	assert.Empty(t, results)
}

func TestSearchEqualScoresKeepDocumentOrder(t *testing.T) {
	e := newTestEngine(
		Document{ChunkId: "first", Question: "scholarship options", Answer: "several exist"},
		Document{ChunkId: "second", Question: "scholarship options", Answer: "several exist"},
	)

	results := e.Search("scholarship options", 5)

	assert.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "first", results[0].ChunkId)
	assert.Equal(t, "second", results[1].ChunkId)
}

func TestSearchLimitsToTopK(t *testing.T) {
	e := newTestEngine(
		Document{ChunkId: "c1", Question: "ielts score needed", Answer: "usually 6.5"},
		Document{ChunkId: "c2", Question: "ielts validity", Answer: "two years"},
		Document{ChunkId: "c3", Question: "ielts test centers", Answer: "many cities"},
	)

	results := e.Search("ielts", 2)

	assert.Len(t, results, 2)
}

func TestBestAnswerHonorsMinScore(t *testing.T) {
	e := newTestEngine(Document{
		ChunkId:  "c1",
		Question: "when is the application deadline",
		Answer:   "march",
	})

	match := e.BestAnswer("application deadline", 0.2)
	assert.NotNil(t, match)
	assert.Equal(t, "march", match.Answer)

	match = e.BestAnswer("application deadline", 5.0)
	assert.Nil(t, match)
}

func TestBestAnswerEmptySnapshot(t *testing.T) {
	e := NewEngine()

	assert.Equal(t, 0, e.Size())
	assert.Nil(t, e.BestAnswer("anything", 0.2))
}

func TestReplaceCopiesDocuments(t *testing.T) {
	docs := []Document{
		{ChunkId: "c1", Question: "study in canada", Answer: "yes"},
	}
	e := NewEngine()
	e.Replace(docs)

	// mutating the caller's slice must not leak into the snapshot
	docs[0].Answer = "mutated"

	results := e.Search("study in canada", 1)
	assert.Len(t, results, 1)
	assert.Equal(t, "yes", results[0].Answer)
}

func TestReplaceSwapsWholeSnapshot(t *testing.T) {
	e := newTestEngine(
		Document{ChunkId: "old", Question: "old question", Answer: "old answer"},
	)
	assert.Equal(t, 1, e.Size())

	e.Replace([]Document{
		{ChunkId: "new1", Question: "new question", Answer: "new answer"},
		{ChunkId: "new2", Question: "another question", Answer: "another answer"},
	})

	assert.Equal(t, 2, e.Size())
	assert.Empty(t, e.Search("old question", 5))
}
