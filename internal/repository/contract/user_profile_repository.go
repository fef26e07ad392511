package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
