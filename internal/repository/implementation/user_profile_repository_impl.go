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

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *UserProfileRepositoryImpl) Create(ctx context.Context, profile *entity.UserProfile) error {
	if profile.Id == uuid.Nil {
		profile.Id = uuid.New()
	}
	m := r.mapper.UserProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.UserProfileToEntity(m)
	return nil
}

func (r *UserProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserProfile{}, id).Error
}

func (r *UserProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error) {
	var m model.UserProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UserProfileToEntity(&m), nil
}

func (r *UserProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error) {
	var models []*model.UserProfile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserProfile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UserProfileToEntity(m)
	}
	return entities, nil
}

func (r *UserProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.UserProfile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
