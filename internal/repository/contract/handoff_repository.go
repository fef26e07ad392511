package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"
)

type HandoffSessionRepository interface {
	Create(ctx context.Context, handoff *entity.HandoffSession) error
	Update(ctx context.Context, handoff *entity.HandoffSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HandoffSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HandoffSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SessionTransferRepository interface {
	Create(ctx context.Context, transfer *entity.SessionTransfer) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionTransfer, error)
}
