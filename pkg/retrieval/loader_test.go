package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNestedKnowledgeFile(t *testing.T) {
	raw := []byte(`{
		"universities": {
			"australia": [
				{"chunk_id": "au-1", "question": "q1", "answer": "a1", "section": "intro", "document": "guide.pdf", "page": 3},
				{"chunk_id": "au-2", "question": "q2", "answer": "a2"}
			]
		},
		"visas": {
			"student": [
				{"chunk_id": "v-1", "question": "q3", "answer": "a3"}
			]
		}
	}`)

	docs, skipped, err := Parse(raw)

	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Len(t, docs, 3)

	byChunk := map[string]Document{}
	for _, d := range docs {
		byChunk[d.ChunkId] = d
	}
	assert.Equal(t, "intro", byChunk["au-1"].Section)
	assert.Equal(t, "guide.pdf", byChunk["au-1"].DocumentName)
	assert.Equal(t, 3, byChunk["au-1"].Page)
}

func TestParseSkipsIncompleteRecords(t *testing.T) {
	raw := []byte(`{
		"universities": {
			"australia": [
				{"chunk_id": "", "question": "q1", "answer": "a1"},
				{"chunk_id": "au-2", "question": "", "answer": "a2"},
				{"chunk_id": "au-3", "question": "q3", "answer": ""},
				{"chunk_id": "au-4", "question": "q4", "answer": "a4"}
			]
		}
	}`)

	docs, skipped, err := Parse(raw)

	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, docs, 1)
	assert.Equal(t, "au-4", docs[0].ChunkId)
}

func TestParseSkipsNonListSubcategory(t *testing.T) {
	raw := []byte(`{
		"universities": {
			"metadata": {"version": 2},
			"australia": [
				{"chunk_id": "au-1", "question": "q1", "answer": "a1"}
			]
		}
	}`)

	docs, skipped, err := Parse(raw)

	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Len(t, docs, 1)
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, _, err := Parse([]byte(`{not json`))
	assert.Error(t, err)
}
