package contract

import (
	"context"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/specification"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AgentActivityRepository interface {
	Create(ctx context.Context, activity *entity.AgentActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
