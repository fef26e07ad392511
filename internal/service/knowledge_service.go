package service

import (
	"context"
	"time"

	"educonsult-be/internal/dto"
	"educonsult-be/internal/entity"
	"educonsult-be/internal/pkg/apperror"
	"educonsult-be/internal/pkg/logger"
	"educonsult-be/internal/repository/specification"
	"educonsult-be/internal/repository/unitofwork"
	"educonsult-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicKnowledgeReloaded is the in-process topic published after the
// knowledge base changes in the database. Subscribers refresh the
// retrieval snapshot.
const TopicKnowledgeReloaded = "knowledge.base.reloaded"

type IKnowledgeService interface {
	Load(ctx context.Context, req *dto.LoadKnowledgeRequest) (*dto.LoadKnowledgeResponse, error)
	Search(ctx context.Context, req *dto.SearchKnowledgeRequest) (*dto.SearchKnowledgeResponse, error)
	RefreshSnapshot(ctx context.Context) error
}

type knowledgeService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *retrieval.Engine
	pubSub     *gochannel.GoChannel
	logger     logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	engine *retrieval.Engine,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory: uowFactory,
		engine:     engine,
		pubSub:     pubSub,
		logger:     log,
	}
}

// Load parses a knowledge file, upserts its records by chunk id and
// announces the reload so snapshots refresh.
func (s *knowledgeService) Load(ctx context.Context, req *dto.LoadKnowledgeRequest) (*dto.LoadKnowledgeResponse, error) {
	docs, skipped, err := retrieval.LoadFile(req.FilePath)
	if err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, doc := range docs {
		record := &entity.RAGDocument{
			ChunkId:   doc.ChunkId,
			Question:  doc.Question,
			Answer:    doc.Answer,
			Section:   doc.Section,
			Document:  doc.DocumentName,
			Page:      doc.Page,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := uow.RAGDocumentRepository().UpsertByChunkId(ctx, record); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("KnowledgeService", "Knowledge base loaded", map[string]interface{}{
		"documents": len(docs),
		"skipped":   skipped,
		"file":      req.FilePath,
	})

	if s.pubSub != nil {
		msg := message.NewMessage(uuid.NewString(), []byte(TopicKnowledgeReloaded))
		if err := s.pubSub.Publish(TopicKnowledgeReloaded, msg); err != nil {
			s.logger.Warn("KnowledgeService", "Failed to publish reload notification", map[string]interface{}{"error": err.Error()})
		}
	}

	// Refresh the local snapshot immediately rather than waiting for
	// the fanout to come back around.
	if err := s.RefreshSnapshot(ctx); err != nil {
		return nil, err
	}

	return &dto.LoadKnowledgeResponse{
		DocumentsLoaded: len(docs),
		RecordsSkipped:  skipped,
	}, nil
}

func (s *knowledgeService) Search(ctx context.Context, req *dto.SearchKnowledgeRequest) (*dto.SearchKnowledgeResponse, error) {
	k := req.K
	if k <= 0 {
		k = 3
	}

	matches := s.engine.Search(req.Query, k)
	results := make([]dto.KnowledgeMatchDTO, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.KnowledgeMatchDTO{
			Question: m.Question,
			Answer:   m.Answer,
			Section:  m.Section,
			Document: m.DocumentName,
			Score:    m.Score,
			ChunkId:  m.ChunkId,
		})
	}

	return &dto.SearchKnowledgeResponse{Results: results}, nil
}

// RefreshSnapshot rebuilds the retrieval snapshot from the active
// documents in the database.
func (s *knowledgeService) RefreshSnapshot(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.RAGDocumentRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return err
	}

	docs := make([]retrieval.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, retrieval.Document{
			ChunkId:      r.ChunkId,
			Question:     r.Question,
			Answer:       r.Answer,
			Section:      r.Section,
			DocumentName: r.Document,
			Page:         r.Page,
		})
	}

	s.engine.Replace(docs)
	s.logger.Info("KnowledgeService", "Retrieval snapshot refreshed", map[string]interface{}{"documents": len(docs)})
	return nil
}
