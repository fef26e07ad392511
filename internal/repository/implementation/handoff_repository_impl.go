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

type HandoffSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HandoffMapper
}

func NewHandoffSessionRepository(db *gorm.DB) contract.HandoffSessionRepository {
	return &HandoffSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewHandoffMapper(),
	}
}

func (r *HandoffSessionRepositoryImpl) Create(ctx context.Context, handoff *entity.HandoffSession) error {
	if handoff.Id == uuid.Nil {
		handoff.Id = uuid.New()
	}
	m := r.mapper.HandoffSessionToModel(handoff)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*handoff = *r.mapper.HandoffSessionToEntity(m)
	return nil
}

func (r *HandoffSessionRepositoryImpl) Update(ctx context.Context, handoff *entity.HandoffSession) error {
	m := r.mapper.HandoffSessionToModel(handoff)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *HandoffSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HandoffSession, error) {
	var m model.HandoffSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.HandoffSessionToEntity(&m), nil
}

func (r *HandoffSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HandoffSession, error) {
	var models []*model.HandoffSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.HandoffSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.HandoffSessionToEntity(m)
	}
	return entities, nil
}

func (r *HandoffSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.HandoffSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type SessionTransferRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HandoffMapper
}

func NewSessionTransferRepository(db *gorm.DB) contract.SessionTransferRepository {
	return &SessionTransferRepositoryImpl{
		db:     db,
		mapper: mapper.NewHandoffMapper(),
	}
}

func (r *SessionTransferRepositoryImpl) Create(ctx context.Context, transfer *entity.SessionTransfer) error {
	if transfer.Id == uuid.Nil {
		transfer.Id = uuid.New()
	}
	m := r.mapper.SessionTransferToModel(transfer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*transfer = *r.mapper.SessionTransferToEntity(m)
	return nil
}

func (r *SessionTransferRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionTransfer, error) {
	var models []*model.SessionTransfer
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SessionTransfer, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SessionTransferToEntity(m)
	}
	return entities, nil
}
