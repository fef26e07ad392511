package implementation

import (
	"context"
	"errors"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/mapper"
	"educonsult-be/internal/model"
	"educonsult-be/internal/repository/contract"
	"educonsult-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RAGDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RAGMapper
}

func NewRAGDocumentRepository(db *gorm.DB) contract.RAGDocumentRepository {
	return &RAGDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewRAGMapper(),
	}
}

func (r *RAGDocumentRepositoryImpl) UpsertByChunkId(ctx context.Context, doc *entity.RAGDocument) error {
	var existing model.RAGDocument
	err := r.db.WithContext(ctx).Where("chunk_id = ?", doc.ChunkId).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if doc.Id == uuid.Nil {
			doc.Id = uuid.New()
		}
		m := r.mapper.RAGDocumentToModel(doc)
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
		*doc = *r.mapper.RAGDocumentToEntity(m)
		return nil
	}

	doc.Id = existing.Id
	doc.CreatedAt = existing.CreatedAt
	m := r.mapper.RAGDocumentToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.RAGDocumentToEntity(m)
	return nil
}

func (r *RAGDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RAGDocument, error) {
	var models []*model.RAGDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.RAGDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RAGDocumentToEntity(m)
	}
	return entities, nil
}

func (r *RAGDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.RAGDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
