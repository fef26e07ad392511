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

type UploadedFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewUploadedFileRepository(db *gorm.DB) contract.UploadedFileRepository {
	return &UploadedFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *UploadedFileRepositoryImpl) Create(ctx context.Context, file *entity.UploadedFile) error {
	if file.Id == uuid.Nil {
		file.Id = uuid.New()
	}
	m := r.mapper.UploadedFileToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.UploadedFileToEntity(m)
	return nil
}

func (r *UploadedFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UploadedFile{}, id).Error
}

func (r *UploadedFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UploadedFile, error) {
	var m model.UploadedFile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UploadedFileToEntity(&m), nil
}

func (r *UploadedFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UploadedFile, error) {
	var models []*model.UploadedFile
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UploadedFile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UploadedFileToEntity(m)
	}
	return entities, nil
}

func (r *UploadedFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.UploadedFile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
