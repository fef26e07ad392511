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

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HandoffMapper
}

func NewAgentRepository(db *gorm.DB) contract.AgentRepository {
	return &AgentRepositoryImpl{
		db:     db,
		mapper: mapper.NewHandoffMapper(),
	}
}

func (r *AgentRepositoryImpl) Create(ctx context.Context, agent *entity.Agent) error {
	if agent.Id == uuid.Nil {
		agent.Id = uuid.New()
	}
	m := r.mapper.AgentToModel(agent)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*agent = *r.mapper.AgentToEntity(m)
	return nil
}

func (r *AgentRepositoryImpl) Update(ctx context.Context, agent *entity.Agent) error {
	m := r.mapper.AgentToModel(agent)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *AgentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error) {
	var m model.Agent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AgentToEntity(&m), nil
}

func (r *AgentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	var models []*model.Agent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Agent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AgentToEntity(m)
	}
	return entities, nil
}

func (r *AgentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Agent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type AgentActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HandoffMapper
}

func NewAgentActivityRepository(db *gorm.DB) contract.AgentActivityRepository {
	return &AgentActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewHandoffMapper(),
	}
}

func (r *AgentActivityRepositoryImpl) Create(ctx context.Context, activity *entity.AgentActivity) error {
	if activity.Id == uuid.Nil {
		activity.Id = uuid.New()
	}
	m := r.mapper.AgentActivityToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.AgentActivityToEntity(m)
	return nil
}

func (r *AgentActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentActivity, error) {
	var models []*model.AgentActivity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AgentActivity, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AgentActivityToEntity(m)
	}
	return entities, nil
}

func (r *AgentActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AgentActivity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
