package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UploadedFileRepository interface {
	Create(ctx context.Context, file *entity.UploadedFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UploadedFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UploadedFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
