package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/pkg/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKnowledgeFixture(t *testing.T) (IKnowledgeService, *retrieval.Engine, unitofwork.RepositoryFactory) {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	engine := retrieval.NewEngine()
	svc := NewKnowledgeService(uowFactory, engine, nil, nopLogger{})
	return svc, engine, uowFactory
}

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPersistsAndRefreshesSnapshot(t *testing.T) {
	svc, engine, _ := newKnowledgeFixture(t)
	ctx := context.Background()

	path := writeKnowledgeFile(t, `{
		"visas": {
			"australia": [
				{"chunk_id": "au-1", "question": "how long does the visa take", "answer": "About four weeks."},
				{"chunk_id": "", "question": "broken", "answer": "broken"}
			]
		}
	}`)

	res, err := svc.Load(ctx, &dto.LoadKnowledgeRequest{FilePath: path})

	require.NoError(t, err)
	assert.Equal(t, 1, res.DocumentsLoaded)
	assert.Equal(t, 1, res.RecordsSkipped)
	assert.Equal(t, 1, engine.Size())

	search, err := svc.Search(ctx, &dto.SearchKnowledgeRequest{Query: "how long does the visa take"})
	require.NoError(t, err)
	require.Len(t, search.Results, 1)
	assert.Equal(t, "About four weeks.", search.Results[0].Answer)
}

func TestLoadUpsertsByChunkId(t *testing.T) {
	svc, engine, uowFactory := newKnowledgeFixture(t)
	ctx := context.Background()

	first := writeKnowledgeFile(t, `{
		"visas": {"australia": [
			{"chunk_id": "au-1", "question": "how long does the visa take", "answer": "About four weeks."}
		]}
	}`)
	_, err := svc.Load(ctx, &dto.LoadKnowledgeRequest{FilePath: first})
	require.NoError(t, err)

	// same chunk id with a corrected answer replaces, not duplicates
	second := writeKnowledgeFile(t, `{
		"visas": {"australia": [
			{"chunk_id": "au-1", "question": "how long does the visa take", "answer": "About six weeks."}
		]}
	}`)
	_, err = svc.Load(ctx, &dto.LoadKnowledgeRequest{FilePath: second})
	require.NoError(t, err)

	assert.Equal(t, 1, engine.Size())

	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.RAGDocumentRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	search, err := svc.Search(ctx, &dto.SearchKnowledgeRequest{Query: "how long does the visa take"})
	require.NoError(t, err)
	require.Len(t, search.Results, 1)
	assert.Equal(t, "About six weeks.", search.Results[0].Answer)
}

func TestLoadMissingFileIsValidationError(t *testing.T) {
	svc, _, _ := newKnowledgeFixture(t)

	_, err := svc.Load(context.Background(), &dto.LoadKnowledgeRequest{FilePath: "/does/not/exist.json"})

	require.Error(t, err)
	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, kind)
}

func TestSearchDefaultsToThreeResults(t *testing.T) {
	svc, engine, _ := newKnowledgeFixture(t)

	engine.Replace([]retrieval.Document{
		{ChunkId: "c1", Question: "ielts score for australia", Answer: "6.5"},
		{ChunkId: "c2", Question: "ielts score for canada", Answer: "6.0"},
		{ChunkId: "c3", Question: "ielts score for uk", Answer: "6.5"},
		{ChunkId: "c4", Question: "ielts score for usa", Answer: "7.0"},
	})

	res, err := svc.Search(context.Background(), &dto.SearchKnowledgeRequest{Query: "ielts score"})

	require.NoError(t, err)
	assert.Len(t, res.Results, 3)
}
